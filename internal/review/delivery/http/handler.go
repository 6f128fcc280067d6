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
	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/internal/review/usecase/command"
	"github.com/shopwell/storefront/internal/review/usecase/query"
	"github.com/shopwell/storefront/pkg/logger"
)

// ReviewHandler handles HTTP requests for product reviews
type ReviewHandler struct {
	createHandler   *command.CreateReviewHandler
	updateHandler   *command.UpdateReviewHandler
	deleteHandler   *command.DeleteReviewHandler
	voteHandler     *command.VoteHelpfulHandler
	reportHandler   *command.ReportReviewHandler
	moderateHandler *command.ModerateReviewHandler
	listHandler     *query.ListReviewsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	reportsCounter prometheus.Counter
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(
	createHandler *command.CreateReviewHandler,
	updateHandler *command.UpdateReviewHandler,
	deleteHandler *command.DeleteReviewHandler,
	voteHandler *command.VoteHelpfulHandler,
	reportHandler *command.ReportReviewHandler,
	moderateHandler *command.ModerateReviewHandler,
	listHandler *query.ListReviewsHandler,
) *ReviewHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_requests_total",
			Help: "Total number of requests to the review endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "review_request_duration_seconds",
			Help:    "Duration of review requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reportsCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "review_reports_total",
			Help: "Total number of review reports filed",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(reportsCounter)

	return &ReviewHandler{
		createHandler:   createHandler,
		updateHandler:   updateHandler,
		deleteHandler:   deleteHandler,
		voteHandler:     voteHandler,
		reportHandler:   reportHandler,
		moderateHandler: moderateHandler,
		listHandler:     listHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		reportsCounter:  reportsCounter,
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

func (h *ReviewHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	// Public
	router.HandleFunc("/api/products/{productId}/reviews", h.metricsMiddleware("/api/products/{productId}/reviews", h.ListReviews)).Methods("GET")

	// Authenticated
	router.HandleFunc("/api/reviews", h.metricsMiddleware("/api/reviews", middleware.AuthMiddleware(h.CreateReview))).Methods("POST")
	router.HandleFunc("/api/reviews/{id}", h.metricsMiddleware("/api/reviews/{id}", middleware.AuthMiddleware(h.UpdateReview))).Methods("PUT")
	router.HandleFunc("/api/reviews/{id}", h.metricsMiddleware("/api/reviews/{id}", middleware.AuthMiddleware(h.DeleteReview))).Methods("DELETE")
	router.HandleFunc("/api/reviews/{id}/helpful", h.metricsMiddleware("/api/reviews/{id}/helpful", middleware.AuthMiddleware(h.VoteHelpful))).Methods("POST")
	router.HandleFunc("/api/reviews/{id}/report", h.metricsMiddleware("/api/reviews/{id}/report", middleware.AuthMiddleware(h.ReportReview))).Methods("POST")

	// Admin
	router.HandleFunc("/api/reviews/{id}/moderate", h.metricsMiddleware("/api/reviews/{id}/moderate", middleware.AdminMiddleware(h.ModerateReview))).Methods("POST")
}

type reviewRequest struct {
	Rating  int      `json:"rating"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// ListReviews handles GET /api/products/{productId}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	reviews, err := h.listHandler.Handle(query.ListReviewsQuery{ProductID: productID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list reviews")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list reviews"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: reviews})
}

type createReviewRequest struct {
	ProductID uint     `json:"product_id"`
	Rating    int      `json:"rating"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	review, err := h.createHandler.Handle(command.CreateReviewCommand{
		UserID:    middleware.UserID(r),
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		Images:    req.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrProductNotFound):
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
		case errors.Is(err, domain.ErrNotPurchased):
			respondJSON(w, http.StatusForbidden, Response{Success: false, Error: "Only verified purchasers can review this product"})
		case errors.Is(err, domain.ErrDuplicateReview):
			respondJSON(w, http.StatusConflict, Response{Success: false, Error: "You have already reviewed this product"})
		default:
			logger.Warn(r.Context()).Err(err).Msg("Review rejected")
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		}
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Review created successfully",
		Data:    review,
	})
}

// UpdateReview handles PUT /api/reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	review, err := h.updateHandler.Handle(command.UpdateReviewCommand{
		ReviewID:      id,
		RequesterID:   middleware.UserID(r),
		RequesterRole: middleware.Role(r),
		Rating:        req.Rating,
		Title:         req.Title,
		Content:       req.Content,
		Images:        req.Images,
	})
	if err != nil {
		h.respondReviewError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Review updated successfully",
		Data:    review,
	})
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.deleteHandler.Handle(command.DeleteReviewCommand{
		ReviewID:      id,
		RequesterID:   middleware.UserID(r),
		RequesterRole: middleware.Role(r),
	})
	if err != nil {
		h.respondReviewError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Review deleted successfully"})
}

// VoteHelpful handles POST /api/reviews/{id}/helpful
func (h *ReviewHandler) VoteHelpful(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.voteHandler.Handle(command.VoteHelpfulCommand{
		ReviewID: id,
		UserID:   middleware.UserID(r),
	})
	if err != nil {
		h.respondReviewError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// ReportReview handles POST /api/reviews/{id}/report
func (h *ReviewHandler) ReportReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	err := h.reportHandler.Handle(r.Context(), command.ReportReviewCommand{
		ReviewID: id,
		UserID:   middleware.UserID(r),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyReported) {
			respondJSON(w, http.StatusConflict, Response{Success: false, Error: "You have already reported this review"})
			return
		}
		h.respondReviewError(w, r, err)
		return
	}

	h.reportsCounter.Inc()

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Review reported"})
}

type moderateRequest struct {
	Action string `json:"action"`
}

// ModerateReview handles POST /api/reviews/{id}/moderate
func (h *ReviewHandler) ModerateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	err := h.moderateHandler.Handle(command.ModerateReviewCommand{
		ReviewID:      id,
		RequesterRole: middleware.Role(r),
		Action:        req.Action,
	})
	if err != nil {
		h.respondReviewError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Moderation applied"})
}

// respondReviewError maps review domain errors to HTTP statuses.
func (h *ReviewHandler) respondReviewError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrReviewNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Review not found"})
	case errors.Is(err, domain.ErrNotAuthorized):
		respondJSON(w, http.StatusForbidden, Response{Success: false, Error: "Not authorized"})
	default:
		logger.Error(r.Context()).Err(err).Msg("Review operation failed")
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
