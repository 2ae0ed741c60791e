// Package api exposes the bot and merchant operations over HTTP. Handlers
// stay thin: decode, call the relevant component, encode.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/juggernaut7777/kofa/internal/bot/dialogue"
	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/core/errx"
	"github.com/juggernaut7777/kofa/internal/inventory"
	"github.com/juggernaut7777/kofa/internal/payment"
	"github.com/juggernaut7777/kofa/internal/respond"
	"github.com/juggernaut7777/kofa/internal/vendor"
	logx "github.com/juggernaut7777/kofa/pkg/logger"
)

type Handler struct {
	engine    *dialogue.Engine
	renderer  *respond.Renderer
	inventory *inventory.MemoryInventory
	payments  payment.LinkGenerator
	vendors   *vendor.Registry
	vendorID  string
}

func NewHandler(engine *dialogue.Engine, renderer *respond.Renderer, inv *inventory.MemoryInventory, payments payment.LinkGenerator, vendors *vendor.Registry, vendorID string) *Handler {
	if vendorID == "" {
		vendorID = "default"
	}
	return &Handler{
		engine:    engine,
		renderer:  renderer,
		inventory: inv,
		payments:  payments,
		vendors:   vendors,
		vendorID:  vendorID,
	}
}

type messageRequest struct {
	UserID      string `json:"user_id"`
	MessageText string `json:"message_text"`
}

type messageResponse struct {
	Response    string         `json:"response"`
	Intent      string         `json:"intent"`
	Product     *model.Product `json:"product,omitempty"`
	PaymentLink string         `json:"payment_link,omitempty"`
	BotActive   bool           `json:"bot_active"`
	Reason      string         `json:"reason,omitempty"`
}

// HandleMessage is the conversational entrypoint: one inbound customer
// message in, one rendered reply out.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.MessageText == "" {
		writeError(w, http.StatusBadRequest, "user_id and message_text are required")
		return
	}

	if ok, reason := h.vendors.ShouldRespond(h.vendorID, req.UserID); !ok {
		writeJSON(w, http.StatusOK, messageResponse{BotActive: false, Reason: reason})
		return
	}

	catalog, err := h.inventory.ListProducts(r.Context())
	if err != nil {
		logx.Error().Err(err).Msg("catalog fetch failed")
		catalog = nil
	}

	result, err := h.engine.ProcessTurn(r.Context(), req.UserID, req.MessageText, catalog)
	if err != nil {
		// ProcessTurn degrades internally; an error here is unexpected.
		logx.Error().Err(err).Str("userID", req.UserID).Msg("turn processing failed")
		writeError(w, http.StatusInternalServerError, errx.SystemErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Response:    h.renderer.Render(result),
		Intent:      result.Intent.String(),
		Product:     result.Product,
		PaymentLink: result.PaymentLink,
		BotActive:   true,
	})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.inventory.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, errx.SystemErrorMessage)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

type createProductRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	PriceNGN    float64  `json:"price_ngn"`
	StockLevel  int      `json:"stock_level"`
	Description string   `json:"description"`
	VoiceTags   []string `json:"voice_tags"`
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.ID == "" {
		req.ID = "prod-" + uuid.NewString()[:8]
	}

	p := model.Product{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		PriceNGN:    req.PriceNGN,
		StockLevel:  req.StockLevel,
		Description: req.Description,
		VoiceTags:   req.VoiceTags,
	}
	h.inventory.AddProduct(p)
	writeJSON(w, http.StatusCreated, p)
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) RestockProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req restockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	if err := h.inventory.UpdateStock(r.Context(), productID, req.Quantity); err != nil {
		if errors.Is(err, errx.ErrNoMatch) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, errx.SystemErrorMessage)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restocked"})
}

type orderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderRequest struct {
	UserID string      `json:"user_id"`
	Items  []orderItem `json:"items"`
}

type orderResponse struct {
	OrderID     string  `json:"order_id"`
	PaymentLink string  `json:"payment_link"`
	AmountNGN   float64 `json:"amount_ngn"`
}

// CreateOrder builds an order from explicit items, reserves stock and
// returns a payment link.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "user_id and items are required")
		return
	}

	catalog, err := h.inventory.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, errx.SystemErrorMessage)
		return
	}
	byID := make(map[string]model.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	var total float64
	for _, item := range req.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown product "+item.ProductID)
			return
		}
		if item.Quantity <= 0 || item.Quantity > p.StockLevel {
			writeError(w, http.StatusConflict, "insufficient stock for "+p.Name)
			return
		}
		total += p.PriceNGN * float64(item.Quantity)
	}

	orderID := payment.NewOrderID()
	link, err := h.payments.GenerateLink(r.Context(), orderID, total, req.UserID, "Order "+orderID)
	if err != nil {
		logx.Error().Err(err).Str("orderID", orderID).Msg("payment link generation failed")
		writeError(w, http.StatusBadGateway, "failed to generate payment link")
		return
	}

	for _, item := range req.Items {
		if err := h.inventory.UpdateStock(r.Context(), item.ProductID, -item.Quantity); err != nil {
			logx.Warn().Err(err).Str("productID", item.ProductID).Msg("stock reservation failed")
		}
	}

	writeJSON(w, http.StatusCreated, orderResponse{
		OrderID:     orderID,
		PaymentLink: link,
		AmountNGN:   total,
	})
}

type botStyleRequest struct {
	Style string `json:"style"`
}

func (h *Handler) GetBotStyle(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"current_style":    string(h.renderer.Style()),
		"available_styles": []string{string(respond.StyleCorporate), string(respond.StyleStreet)},
	})
}

func (h *Handler) SetBotStyle(w http.ResponseWriter, r *http.Request) {
	var req botStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.renderer.SetStyle(respond.ParseStyle(req.Style))
	writeJSON(w, http.StatusOK, map[string]string{"bot_style": string(h.renderer.Style())})
}

type botPauseRequest struct {
	Paused bool `json:"paused"`
}

func (h *Handler) SetBotPaused(w http.ResponseWriter, r *http.Request) {
	var req botPauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.vendors.SetPaused(h.vendorID, req.Paused)
	writeJSON(w, http.StatusOK, h.vendors.Status(h.vendorID))
}

func (h *Handler) BotStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.vendors.Status(h.vendorID))
}

type vendorActivityRequest struct {
	CustomerID string `json:"customer_id"`
}

// RecordVendorActivity is called when the merchant replies manually; the
// bot auto-silences for that conversation.
func (h *Handler) RecordVendorActivity(w http.ResponseWriter, r *http.Request) {
	var req vendorActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomerID == "" {
		writeError(w, http.StatusBadRequest, "customer_id is required")
		return
	}
	until := h.vendors.RecordActivity(h.vendorID, req.CustomerID)
	writeJSON(w, http.StatusOK, map[string]any{
		"customer_id":    req.CustomerID,
		"silenced_until": until,
	})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
