package model

import "strings"

// Product is a catalog entry as served by the inventory provider. The bot
// only reads product identity; all mutation goes through the provider.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	PriceNGN    float64  `json:"price_ngn"`
	StockLevel  int      `json:"stock_level"`
	Description string   `json:"description,omitempty"`
	VoiceTags   []string `json:"voice_tags,omitempty"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.StockLevel > 0
}

// Malformed reports whether the entry is missing fields a turn depends on.
// Such entries are tolerated with zero-value defaults, never rejected.
func (p Product) Malformed() bool {
	return strings.TrimSpace(p.Name) == "" || p.PriceNGN < 0 || p.StockLevel < 0
}

// Normalized returns a copy with defaulting rules applied: negative price
// and stock clamp to zero, a blank name falls back to the product id.
func (p Product) Normalized() Product {
	if p.PriceNGN < 0 {
		p.PriceNGN = 0
	}
	if p.StockLevel < 0 {
		p.StockLevel = 0
	}
	if strings.TrimSpace(p.Name) == "" {
		p.Name = p.ID
	}
	return p
}
