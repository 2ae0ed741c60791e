package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the HTTP surface around a handler.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", h.Health)
	r.Get("/health", h.Health)

	r.Post("/message", h.HandleMessage)

	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Post("/products/{productID}/restock", h.RestockProduct)

	r.Post("/orders", h.CreateOrder)

	r.Get("/settings/bot-style", h.GetBotStyle)
	r.Post("/settings/bot-style", h.SetBotStyle)

	r.Get("/bot/status", h.BotStatus)
	r.Post("/bot/pause", h.SetBotPaused)
	r.Post("/bot/activity", h.RecordVendorActivity)

	return r
}
