package model

// Intent is the classified purpose of a user message. Closed set:
// classification always yields exactly one of these values.
type Intent string

const (
	IntentGreeting          Intent = "greeting"
	IntentHelp              Intent = "help"
	IntentPriceInquiry      Intent = "price_inquiry"
	IntentAvailabilityCheck Intent = "availability_check"
	IntentPurchase          Intent = "purchase"
	IntentOrderStatus       Intent = "order_status"
	IntentUnknown           Intent = "unknown"
)

// String returns the wire representation of the intent.
func (i Intent) String() string {
	return string(i)
}

// Intents lists every recognizable intent.
func Intents() []Intent {
	return []Intent{
		IntentGreeting,
		IntentHelp,
		IntentPriceInquiry,
		IntentAvailabilityCheck,
		IntentPurchase,
		IntentOrderStatus,
		IntentUnknown,
	}
}
