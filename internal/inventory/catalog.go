package inventory

import "github.com/juggernaut7777/kofa/internal/bot/model"

// DefaultCatalog seeds a demo merchant catalog. Production deployments
// replace this with products loaded from the merchant's store.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{
			ID:          "prod-001",
			Name:        "Nike Air Max Red",
			Category:    "footwear",
			PriceNGN:    45000,
			StockLevel:  3,
			Description: "Classic red Air Max sneakers, unisex sizes 38-45",
			VoiceTags:   []string{"sneakers", "kicks", "nike", "red"},
		},
		{
			ID:          "prod-002",
			Name:        "White Canvas Sneakers",
			Category:    "footwear",
			PriceNGN:    18000,
			StockLevel:  8,
			Description: "Plain white canvas, goes with everything",
			VoiceTags:   []string{"canvas", "sneakers", "white"},
		},
		{
			ID:          "prod-003",
			Name:        "Men Formal Shirt White",
			Category:    "clothing",
			PriceNGN:    15000,
			StockLevel:  12,
			Description: "Slim-fit white formal shirt, office ready",
			VoiceTags:   []string{"shirt", "formal", "white"},
		},
		{
			ID:          "prod-004",
			Name:        "Plain Round Neck T-Shirt",
			Category:    "clothing",
			PriceNGN:    8000,
			StockLevel:  25,
			Description: "Soft cotton round neck tee, multiple colors",
			VoiceTags:   []string{"t-shirt", "tee", "round neck"},
		},
		{
			ID:          "prod-005",
			Name:        "Black Leather Bag",
			Category:    "accessories",
			PriceNGN:    35000,
			StockLevel:  4,
			Description: "Handmade black leather handbag",
			VoiceTags:   []string{"bag", "handbag", "leather", "black"},
		},
		{
			ID:          "prod-006",
			Name:        "Blue Denim Jeans",
			Category:    "clothing",
			PriceNGN:    22000,
			StockLevel:  10,
			Description: "Stonewashed blue denim, straight cut",
			VoiceTags:   []string{"jeans", "denim", "blue"},
		},
		{
			ID:          "prod-007",
			Name:        "Gold Chain Necklace",
			Category:    "jewelry",
			PriceNGN:    25000,
			StockLevel:  0,
			Description: "18k gold plated chain necklace",
			VoiceTags:   []string{"chain", "necklace", "gold"},
		},
		{
			ID:          "prod-008",
			Name:        "USB-C Fast Charger",
			Category:    "electronics",
			PriceNGN:    6500,
			StockLevel:  30,
			Description: "25W fast charging cable and plug",
			VoiceTags:   []string{"charger", "cable", "usb-c"},
		},
		{
			ID:          "prod-009",
			Name:        "Pam Slippers",
			Category:    "footwear",
			PriceNGN:    9500,
			StockLevel:  15,
			Description: "Comfortable rubber pam slippers",
			VoiceTags:   []string{"slippers", "slides", "pam"},
		},
		{
			ID:          "prod-010",
			Name:        "Classic Black Sunglasses",
			Category:    "accessories",
			PriceNGN:    12000,
			StockLevel:  7,
			Description: "UV400 black frame sunglasses",
			VoiceTags:   []string{"sunglasses", "shades", "black"},
		},
	}
}
