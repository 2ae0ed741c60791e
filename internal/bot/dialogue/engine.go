// Package dialogue implements the turn-by-turn state machine that decides
// what the bot says next. A turn consumes (user id, message text, catalog
// snapshot), consults the intent recognizer, product resolver and the
// conversation store, and produces a structured turn result. Rendering the
// result to text is the response renderer's job.
package dialogue

import (
	"context"
	"errors"
	"fmt"

	"github.com/juggernaut7777/kofa/internal/bot/conversation"
	"github.com/juggernaut7777/kofa/internal/bot/intent"
	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/bot/search"
	"github.com/juggernaut7777/kofa/internal/core/errx"
	"github.com/juggernaut7777/kofa/internal/payment"
	logx "github.com/juggernaut7777/kofa/pkg/logger"
)

type Engine struct {
	store      conversation.Store
	recognizer *intent.Recognizer
	resolver   *search.Resolver
	payments   payment.LinkGenerator
}

func NewEngine(store conversation.Store, resolver *search.Resolver, payments payment.LinkGenerator) *Engine {
	return &Engine{
		store:      store,
		recognizer: intent.NewRecognizer(),
		resolver:   resolver,
		payments:   payments,
	}
}

// ProcessTurn runs one dialogue turn. It never returns an error to the
// caller for conversational outcomes — out-of-stock, no match and failed
// disambiguation are normal branches — and any unexpected internal fault
// degrades to the unknown fallback response: a chat channel has no good
// way to show a customer a stack trace.
func (e *Engine) ProcessTurn(ctx context.Context, userID, text string, catalog []model.Product) (result model.TurnResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("component", "dialogue").Str("userID", userID).Msgf("panic recovered: %v", r)
			result = model.TurnResult{
				Intent:   model.IntentUnknown,
				Response: model.ResponseDescriptor{Kind: model.ResponseUnknown},
			}
			err = nil
		}
	}()

	catalog = sanitizeCatalog(catalog)

	it, phrase := e.recognizer.Recognize(text)
	result.Intent = it

	turnRan := false
	storeErr := e.store.Do(ctx, userID, func(state *model.ConversationState) error {
		turnRan = true
		e.runTurn(ctx, userID, text, phrase, it, catalog, state, &result)
		return nil
	})
	if storeErr != nil {
		// State backend trouble: answer the customer anyway. When the turn
		// already ran (persist failed after fn), the result is complete and
		// coherent, only the context is lost; rerunning would repeat side
		// effects like minting a second payment link. Only a load failure,
		// where the turn never ran, gets a stateless rerun on a zeroed
		// result.
		logx.Error().Err(storeErr).Str("userID", userID).Msg("conversation store failed, continuing without persisted state")
		if !turnRan {
			result = model.TurnResult{Intent: it}
			var stateless model.ConversationState
			stateless.Reset()
			e.runTurn(ctx, userID, text, phrase, it, catalog, &stateless, &result)
		}
	}

	return result, nil
}

// runTurn applies the turn algorithm, in priority order:
//  1. a pending disambiguation consumes the reply if it resolves;
//  2. a purchase intent on the product in focus goes straight to checkout;
//  3. otherwise dispatch on intent.
func (e *Engine) runTurn(ctx context.Context, userID, text, phrase string, it model.Intent, catalog []model.Product, state *model.ConversationState, result *model.TurnResult) {
	// Step 1: selection from a previously shown list.
	if state.AwaitingSelection && len(state.LastProducts) > 0 {
		selected, err := e.resolver.SelectFromList(text, state.LastProducts)
		if err == nil {
			state.SelectProduct(selected)
			result.Product = &selected
			result.Response = detailOrOutOfStock(selected)
			return
		}
		if !errors.Is(err, errx.ErrAmbiguousSelection) {
			logx.Warn().Err(err).Str("userID", userID).Msg("selection failed")
		}
		// Could not disambiguate: leave state untouched and fall through,
		// the message may be a fresh query.
	}

	// Step 2: follow-up purchase on the product in focus.
	if state.CurrentProduct != nil && it == model.IntentPurchase {
		e.purchase(ctx, userID, *state.CurrentProduct, result)
		return
	}

	// Step 3: dispatch on intent.
	switch it {
	case model.IntentGreeting:
		state.Reset()
		result.Response = model.ResponseDescriptor{Kind: model.ResponseGreeting}

	case model.IntentHelp:
		result.Response = model.ResponseDescriptor{Kind: model.ResponseHelp}

	case model.IntentPriceInquiry, model.IntentAvailabilityCheck, model.IntentPurchase:
		if phrase == "" {
			if state.CurrentProduct != nil {
				p := *state.CurrentProduct
				if it == model.IntentPurchase {
					e.purchase(ctx, userID, p, result)
				} else {
					result.Product = &p
					result.Response = detailOrOutOfStock(p)
				}
				return
			}
			result.Response = model.ResponseDescriptor{Kind: model.ResponseNoContext}
			return
		}
		e.searchAndRespond(ctx, userID, phrase, it, catalog, state, result)

	default:
		// UNKNOWN (and unhandled intents like order status) fall back to
		// searching the whole raw message before giving up. Maximizing
		// the chance of showing the customer something is a product
		// decision, not an accident.
		matches := e.resolver.SmartSearch(text, catalog)
		if len(matches) == 0 {
			result.Response = model.ResponseDescriptor{Kind: model.ResponseUnknown}
			return
		}
		state.SetProducts(matches, text)
		if len(matches) == 1 {
			p := matches[0]
			result.Product = &p
			result.Response = detailOrOutOfStock(p)
			return
		}
		result.Response = model.ResponseDescriptor{Kind: model.ResponseProductList, Products: matches, Query: text}
	}
}

// searchAndRespond runs the smart search for a product intent and branches
// on the match count.
func (e *Engine) searchAndRespond(ctx context.Context, userID, phrase string, it model.Intent, catalog []model.Product, state *model.ConversationState, result *model.TurnResult) {
	matches := e.resolver.SmartSearch(phrase, catalog)

	switch len(matches) {
	case 0:
		result.Response = model.ResponseDescriptor{Kind: model.ResponseNotFound, Query: phrase}

	case 1:
		p := matches[0]
		state.SetProducts(matches, phrase)
		result.Product = &p
		if it == model.IntentPurchase {
			e.purchase(ctx, userID, p, result)
			return
		}
		result.Response = detailOrOutOfStock(p)

	default:
		state.SetProducts(matches, phrase)
		result.Response = model.ResponseDescriptor{Kind: model.ResponseProductList, Products: matches, Query: phrase}
	}
}

// purchase drives the checkout flow for a resolved product. Zero stock is
// a terminal out-of-stock reply, not an error.
func (e *Engine) purchase(ctx context.Context, userID string, p model.Product, result *model.TurnResult) {
	result.PurchaseRequested = true
	result.Product = &p

	if !p.InStock() {
		result.Response = model.ResponseDescriptor{Kind: model.ResponseOutOfStock, Product: &p}
		return
	}

	orderID := payment.ChatOrderID(userID, p.ID)
	link, err := e.payments.GenerateLink(ctx, orderID, p.PriceNGN, userID, fmt.Sprintf("Purchase %s", p.Name))
	if err != nil || link == "" {
		logx.Error().Err(err).Str("userID", userID).Str("productID", p.ID).Msg("payment link generation failed")
		result.Response = model.ResponseDescriptor{Kind: model.ResponsePaymentFailed, Product: &p}
		return
	}

	result.PaymentLink = link
	result.Response = model.ResponseDescriptor{
		Kind:              model.ResponsePaymentLink,
		Product:           &p,
		PaymentLink:       link,
		LinkExpiryMinutes: payment.LinkExpiryMinutes,
	}
}

// detailOrOutOfStock picks the product response for a single resolved item.
func detailOrOutOfStock(p model.Product) model.ResponseDescriptor {
	if p.InStock() {
		return model.ResponseDescriptor{Kind: model.ResponseProductDetail, Product: &p}
	}
	return model.ResponseDescriptor{Kind: model.ResponseOutOfStock, Product: &p}
}

// sanitizeCatalog applies defaulting rules to malformed entries so a bad
// catalog row can never crash a turn.
func sanitizeCatalog(catalog []model.Product) []model.Product {
	out := make([]model.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.Malformed() {
			logx.Warn().Err(errx.ErrMalformedProduct).Str("productID", p.ID).Msg("catalog entry missing fields, applying defaults")
			p = p.Normalized()
		}
		out = append(out, p)
	}
	return out
}
