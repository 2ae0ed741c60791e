package model

// ResponseKind names the templated response a turn resolved to. Every turn
// ends in exactly one of these; rendering to user-facing text is the
// response renderer's job, the engine only emits structured descriptors.
type ResponseKind string

const (
	ResponseGreeting      ResponseKind = "greeting"
	ResponseHelp          ResponseKind = "help"
	ResponseNotFound      ResponseKind = "not_found"
	ResponseOutOfStock    ResponseKind = "out_of_stock"
	ResponseProductDetail ResponseKind = "product_detail"
	ResponseProductList   ResponseKind = "product_list"
	ResponsePaymentLink   ResponseKind = "payment_link"
	ResponsePaymentFailed ResponseKind = "payment_failed"
	ResponseNoContext     ResponseKind = "no_context"
	ResponseUnknown       ResponseKind = "unknown"
)

// ResponseDescriptor carries the structured data a renderer needs to
// produce the final reply text.
type ResponseDescriptor struct {
	Kind              ResponseKind `json:"kind"`
	Product           *Product     `json:"product,omitempty"`
	Products          []Product    `json:"products,omitempty"`
	Query             string       `json:"query,omitempty"`
	PaymentLink       string       `json:"payment_link,omitempty"`
	LinkExpiryMinutes int          `json:"link_expiry_minutes,omitempty"`
}

// TurnResult is the outcome of processing one inbound message.
type TurnResult struct {
	Intent            Intent             `json:"intent"`
	Response          ResponseDescriptor `json:"response"`
	Product           *Product           `json:"product,omitempty"`
	PaymentLink       string             `json:"payment_link,omitempty"`
	PurchaseRequested bool               `json:"purchase_requested"`
}
