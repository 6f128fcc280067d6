package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/cart/domain"
	"github.com/shopwell/storefront/internal/cart/usecase/command"
	"github.com/shopwell/storefront/internal/cart/usecase/query"
	"github.com/shopwell/storefront/internal/middleware"
	"github.com/shopwell/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for shopping carts
type CartHandler struct {
	addHandler    *command.AddItemHandler
	updateHandler *command.UpdateItemHandler
	removeHandler *command.RemoveItemHandler
	clearHandler  *command.ClearCartHandler
	getHandler    *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateItemHandler,
	removeHandler *command.RemoveItemHandler,
	clearHandler *command.ClearCartHandler,
	getHandler *query.GetCartHandler,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_requests_total",
			Help: "Total number of requests to the cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		addHandler:     addHandler,
		updateHandler:  updateHandler,
		removeHandler:  removeHandler,
		clearHandler:   clearHandler,
		getHandler:     getHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", middleware.AuthMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", middleware.AuthMiddleware(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", middleware.AuthMiddleware(h.ClearCart))).Methods("DELETE")
	router.HandleFunc("/api/cart/{productId}", h.metricsMiddleware("/api/cart/{productId}", middleware.AuthMiddleware(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/api/cart/{productId}", h.metricsMiddleware("/api/cart/{productId}", middleware.AuthMiddleware(h.RemoveItem))).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.getHandler.Handle(r.Context(), query.GetCartQuery{UserID: middleware.UserID(r)})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get cart")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to get cart"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: cart})
}

type cartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// AddItem handles POST /api/cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cart, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		UserID:    middleware.UserID(r),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

// UpdateItem handles PUT /api/cart/{productId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cart, err := h.updateHandler.Handle(r.Context(), command.UpdateItemCommand{
		UserID:    middleware.UserID(r),
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data:    cart,
	})
}

// RemoveItem handles DELETE /api/cart/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	cart, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		UserID:    middleware.UserID(r),
		ProductID: productID,
	})
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    cart,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{UserID: middleware.UserID(r)})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear cart")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to clear cart"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Cart cleared"})
}

// respondCartError maps cart domain errors to HTTP statuses.
func (h *CartHandler) respondCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
	case errors.Is(err, domain.ErrItemNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Item not in cart"})
	case errors.Is(err, domain.ErrInsufficientStock):
		respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
	default:
		logger.Error(r.Context()).Err(err).Msg("Cart operation failed")
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	}
}

// pathID parses the numeric path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
