package model

import "time"

// ConversationState tracks per-user dialogue context so the bot remembers
// what products were discussed across turns.
//
// Invariants: AwaitingSelection is true iff LastProducts holds more than one
// entry and the user has not picked one since; CurrentProduct is set iff
// exactly one product is in focus. The state store owns every instance;
// nothing outside the dialogue engine mutates one directly.
type ConversationState struct {
	LastProducts      []Product `json:"last_products"`
	CurrentProduct    *Product  `json:"current_product,omitempty"`
	AwaitingSelection bool      `json:"awaiting_selection"`
	LastQuery         string    `json:"last_query"`
	LastUpdated       time.Time `json:"last_updated"`
}

// Expired reports whether the conversation has gone idle past timeout.
func (s *ConversationState) Expired(timeout time.Duration) bool {
	return time.Since(s.LastUpdated) > timeout
}

// Reset clears all context and stamps the state as freshly touched.
func (s *ConversationState) Reset() {
	s.LastProducts = nil
	s.CurrentProduct = nil
	s.AwaitingSelection = false
	s.LastQuery = ""
	s.LastUpdated = time.Now()
}

// SetProducts stores the results of a search. Exactly one result puts that
// product in focus; more than one flags the state as awaiting selection.
func (s *ConversationState) SetProducts(products []Product, query string) {
	s.LastProducts = products
	s.LastQuery = query
	s.AwaitingSelection = len(products) > 1
	if len(products) == 1 {
		p := products[0]
		s.CurrentProduct = &p
	} else {
		s.CurrentProduct = nil
	}
	s.LastUpdated = time.Now()
}

// SelectProduct resolves a pending disambiguation to a single product.
func (s *ConversationState) SelectProduct(p Product) {
	s.CurrentProduct = &p
	s.AwaitingSelection = false
	s.LastUpdated = time.Now()
}

// Clone returns a deep copy safe to hand outside the store's lock.
func (s *ConversationState) Clone() ConversationState {
	out := *s
	if s.LastProducts != nil {
		out.LastProducts = make([]Product, len(s.LastProducts))
		copy(out.LastProducts, s.LastProducts)
	}
	if s.CurrentProduct != nil {
		p := *s.CurrentProduct
		out.CurrentProduct = &p
	}
	return out
}
