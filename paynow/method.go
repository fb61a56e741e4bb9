package paynow

// MobileMethod identifies the mobile money network carrying a mobile
// transaction. Sent to the gateway verbatim in the method field.
type MobileMethod string

const (
	MethodEcocash  MobileMethod = "ecocash"
	MethodOneMoney MobileMethod = "onemoney"
	MethodTelecash MobileMethod = "telecash"
)

// Transaction status tokens the gateway is known to return.
const (
	StatusOk               = "Ok"
	StatusError            = "Error"
	StatusPaid             = "Paid"
	StatusAwaitingDelivery = "Awaiting Delivery"
	StatusDelivered        = "Delivered"
	StatusCreated          = "Created"
	StatusSent             = "Sent"
	StatusCancelled        = "Cancelled"
)
