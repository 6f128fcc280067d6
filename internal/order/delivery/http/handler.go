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
	"github.com/shopwell/storefront/internal/middleware"
	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/internal/order/usecase/command"
	"github.com/shopwell/storefront/internal/order/usecase/query"
	"github.com/shopwell/storefront/pkg/logger"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	updateHandler *command.UpdateOrderHandler
	listHandler   *query.ListOrdersHandler
	getHandler    *query.GetOrderHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	updateHandler *command.UpdateOrderHandler,
	listHandler *query.ListOrdersHandler,
	getHandler *query.GetOrderHandler,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_requests_total",
			Help: "Total number of requests to the order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of successfully placed orders",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &OrderHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		listHandler:    listHandler,
		getHandler:     getHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		ordersPlaced:   ordersPlaced,
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

func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", middleware.AuthMiddleware(h.CreateOrder))).Methods("POST")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", middleware.AuthMiddleware(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", middleware.AuthMiddleware(h.GetOrder))).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", middleware.AdminMiddleware(h.UpdateOrder))).Methods("PUT")
}

type orderItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items"`
	TotalAmount     float64                `json:"total_amount"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	items := make([]command.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, command.OrderLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		UserID:          middleware.UserID(r),
		Items:           items,
		TotalAmount:     req.TotalAmount,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, catalogdomain.ErrProductNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrPriceMismatch), errors.Is(err, domain.ErrTotalMismatch):
			status = http.StatusConflict
		}
		logger.Warn(r.Context()).Err(err).Msg("Order rejected")
		respondJSON(w, status, Response{Success: false, Error: err.Error()})
		return
	}

	h.ordersPlaced.Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(query.ListOrdersQuery{
		RequesterID:   middleware.UserID(r),
		RequesterRole: middleware.Role(r),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{
		OrderID:       id,
		RequesterID:   middleware.UserID(r),
		RequesterRole: middleware.Role(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
		case errors.Is(err, domain.ErrAccessDenied):
			respondJSON(w, http.StatusForbidden, Response{Success: false, Error: "Access denied"})
		default:
			logger.Error(r.Context()).Err(err).Msg("Failed to get order")
			respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to get order"})
		}
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

type updateOrderRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	order, err := h.updateHandler.Handle(command.UpdateOrderCommand{
		OrderID:       id,
		RequesterRole: middleware.Role(r),
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
		case errors.Is(err, domain.ErrAccessDenied):
			respondJSON(w, http.StatusForbidden, Response{Success: false, Error: "Access denied"})
		case errors.Is(err, domain.ErrInvalidTransition):
			respondJSON(w, http.StatusConflict, Response{Success: false, Error: err.Error()})
		default:
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		}
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
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
