// Package respond turns structured turn results into user-facing text.
// It sits outside the dialogue core: the engine hands over descriptors
// and never deals in copy. Two personalities are available, switchable at
// runtime from the merchant dashboard.
package respond

import (
	"fmt"
	"strings"
	"sync"

	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/payment"
)

// Style selects the bot personality.
type Style string

const (
	// StyleCorporate is polished storefront English.
	StyleCorporate Style = "corporate"
	// StyleStreet is Nigerian Pidgin street tone.
	StyleStreet Style = "street"
)

// ParseStyle normalises a style value, defaulting to corporate.
func ParseStyle(v string) Style {
	if strings.EqualFold(v, string(StyleStreet)) {
		return StyleStreet
	}
	return StyleCorporate
}

// Renderer renders response descriptors in the configured style.
type Renderer struct {
	mu    sync.RWMutex
	style Style
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

func (r *Renderer) Style() Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.style
}

func (r *Renderer) SetStyle(s Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.style = s
}

// Render produces the reply text for a processed turn.
func (r *Renderer) Render(result model.TurnResult) string {
	street := r.Style() == StyleStreet
	d := result.Response

	switch d.Kind {
	case model.ResponseGreeting:
		if street {
			return "How far! Welcome o. Wetin you dey find today? Just tell me the product name."
		}
		return "Welcome! How can I help you today? Tell me what you're looking for and I'll check our stock."

	case model.ResponseHelp:
		if street {
			return "No wahala! Just ask me things like \"how much is red shoes\" or \"you get leather bag?\" and I go check am for you. When you ready to buy, talk say \"buy\"."
		}
		return "You can ask me about any product, for example: \"how much is red shoes\" or \"do you have leather bags?\". When you're ready, say \"buy\" and I'll send a payment link."

	case model.ResponseNotFound:
		if street {
			return fmt.Sprintf("Ah, I no see \"%s\" for our store o. Try another name or ask wetin we get.", d.Query)
		}
		return fmt.Sprintf("Sorry, I couldn't find \"%s\" in our catalog. Could you try a different name?", d.Query)

	case model.ResponseOutOfStock:
		name := productName(d)
		if street {
			return fmt.Sprintf("Omo, %s don finish for now. E go land soon — check back abeg!", name)
		}
		return fmt.Sprintf("Unfortunately %s is out of stock right now. Please check back soon!", name)

	case model.ResponseProductDetail:
		p := d.Product
		price := payment.FormatNaira(p.PriceNGN)
		if street {
			return fmt.Sprintf("%s dey available! Na %s, and we get %d for stock. You wan buy am?", p.Name, price, p.StockLevel)
		}
		return fmt.Sprintf("%s is available at %s. We have %d in stock. Would you like to buy it?", p.Name, price, p.StockLevel)

	case model.ResponseProductList:
		return r.renderList(d.Products, street)

	case model.ResponsePaymentLink:
		p := d.Product
		price := payment.FormatNaira(p.PriceNGN)
		if street {
			return fmt.Sprintf("Correct choice! Pay %s for %s here: %s (link go expire in %d minutes o).", price, p.Name, d.PaymentLink, d.LinkExpiryMinutes)
		}
		return fmt.Sprintf("Great choice! Complete your payment of %s for %s here: %s (link expires in %d minutes).", price, p.Name, d.PaymentLink, d.LinkExpiryMinutes)

	case model.ResponsePaymentFailed:
		if street {
			return "Chai, payment link no gree generate. Abeg try again small time."
		}
		return "Sorry, we couldn't generate your payment link. Please try again in a moment."

	case model.ResponseNoContext:
		if street {
			return "Wetin you wan buy? Tell me the product name make I check am."
		}
		return "What would you like to buy? Tell me the product name and I'll look it up."

	default: // model.ResponseUnknown
		if street {
			return "I no too understand that one o. You fit ask me about any product, or type \"help\"."
		}
		return "I'm not sure I understood that. You can ask me about any product, or type \"help\"."
	}
}

func (r *Renderer) renderList(products []model.Product, street bool) string {
	var b strings.Builder
	if street {
		b.WriteString("I see plenty options wey match! Which one you want?\n")
	} else {
		b.WriteString("I found a few options that match. Which one would you like?\n")
	}
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s — %s", i+1, p.Name, payment.FormatNaira(p.PriceNGN))
		if p.StockLevel <= 0 {
			b.WriteString(" (out of stock)")
		}
		b.WriteByte('\n')
	}
	if street {
		b.WriteString("Just reply with the number or the name.")
	} else {
		b.WriteString("Reply with the number or name of the one you want.")
	}
	return b.String()
}

func productName(d model.ResponseDescriptor) string {
	if d.Product != nil {
		return d.Product.Name
	}
	return "that item"
}
