package paynow

import (
	"fmt"
	"strconv"
	"strings"

	"paynow-go/form"
)

// LineItem is one priced entry in an itemized payment's cart.
type LineItem struct {
	Name     string
	Amount   float64
	Quantity int
}

type paymentKind int

const (
	kindItemized paymentKind = iota
	kindDirect
)

// Payment is one transaction request being assembled on the merchant
// side. It is either itemized (a cart of line items, total derived) or
// direct (a fixed, externally-agreed amount). Reference and auth email
// are fixed at construction; items may be appended until submission.
type Payment struct {
	reference string
	authEmail string
	kind      paymentKind
	amount    float64
	items     []LineItem
}

// NewPayment creates an itemized payment for the given merchant
// reference. Not usable for mobile transactions without an auth email.
func NewPayment(reference string) *Payment {
	return &Payment{reference: reference}
}

// NewPaymentWithEmail creates an itemized payment carrying the payer's
// auth email, as required by mobile transactions.
func NewPaymentWithEmail(reference, authEmail string) *Payment {
	return &Payment{reference: reference, authEmail: authEmail}
}

// NewDirectPayment creates a payment with a fixed amount and no cart.
func NewDirectPayment(reference, authEmail string, amount float64) *Payment {
	return &Payment{
		reference: reference,
		authEmail: authEmail,
		kind:      kindDirect,
		amount:    amount,
	}
}

func (p *Payment) Reference() string {
	return p.reference
}

func (p *Payment) AuthEmail() string {
	return p.authEmail
}

// AddItem appends a line item to an itemized payment.
func (p *Payment) AddItem(name string, amount float64, quantity int) error {
	if p.kind != kindItemized {
		return ErrNotItemized
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyItemName
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	p.items = append(p.items, LineItem{Name: name, Amount: amount, Quantity: quantity})
	return nil
}

// Total recomputes the payment total from the current cart, or returns
// the fixed amount for a direct payment.
func (p *Payment) Total() float64 {
	if p.kind == kindDirect {
		return p.amount
	}

	var total float64
	for _, item := range p.items {
		total += item.Amount * float64(item.Quantity)
	}
	return total
}

// requestFields renders the payment into the flat field set the gateway
// expects. Field order is part of the hash contract and must not change.
func (p *Payment) requestFields() *form.Values {
	fields := form.New()
	fields.Set("reference", p.reference)
	fields.Set("amount", fmt.Sprintf("%.2f", p.Total()))
	fields.Set("additionalinfo", p.description())

	if p.kind == kindItemized {
		var units int
		for _, item := range p.items {
			units += item.Quantity
		}
		fields.Set("items", strconv.Itoa(len(p.items)))
		fields.Set("quantities", strconv.Itoa(units))
	}

	if p.authEmail != "" {
		fields.Set("authemail", p.authEmail)
	}

	return fields
}

func (p *Payment) description() string {
	if len(p.items) == 0 {
		return p.reference
	}

	names := make([]string, 0, len(p.items))
	for _, item := range p.items {
		names = append(names, item.Name)
	}
	return strings.Join(names, ", ")
}
