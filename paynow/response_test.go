package paynow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paynow-go/form"
)

func TestStatusResponse_Paid(t *testing.T) {
	build := func(status string) *StatusResponse {
		v := form.New()
		v.Set("reference", "INV-1")
		v.Set("amount", "10.00")
		v.Set("status", status)
		return newStatusResponse(v)
	}

	assert.True(t, build("Paid").Paid())
	assert.True(t, build("PAID").Paid())
	assert.False(t, build("Awaiting Delivery").Paid())
	assert.False(t, build("Created").Paid())
	assert.False(t, build("Cancelled").Paid())
}

func TestStatusResponse_Amount(t *testing.T) {
	t.Run("Parsed", func(t *testing.T) {
		v := form.New()
		v.Set("amount", "123.45")
		v.Set("status", "Paid")
		assert.InDelta(t, 123.45, newStatusResponse(v).Amount(), 0.001)
	})

	t.Run("Unparseable", func(t *testing.T) {
		v := form.New()
		v.Set("amount", "abc")
		v.Set("status", "Paid")
		assert.Zero(t, newStatusResponse(v).Amount())
	})
}

func TestMobileInitResponse_Error(t *testing.T) {
	t.Run("LowercaseField", func(t *testing.T) {
		v := form.New()
		v.Set("status", "Error")
		v.Set("error", "Insufficient balance")
		assert.Equal(t, "Insufficient balance", newMobileInitResponse(v).Error())
	})

	t.Run("CapitalisedField", func(t *testing.T) {
		v := form.New()
		v.Set("status", "Error")
		v.Set("Error", "Insufficient balance")
		assert.Equal(t, "Insufficient balance", newMobileInitResponse(v).Error())
	})
}

func TestWebInitResponse_Success(t *testing.T) {
	v := form.New()
	v.Set("status", "ok")
	v.Set("browserurl", "https://www.paynow.co.zw/payment/7")
	v.Set("pollurl", "https://www.paynow.co.zw/interface/poll/7")

	resp := newWebInitResponse(v)
	assert.True(t, resp.Success())
	assert.Equal(t, "https://www.paynow.co.zw/payment/7", resp.RedirectURL())
	assert.Equal(t, "https://www.paynow.co.zw/interface/poll/7", resp.PollURL())
}
