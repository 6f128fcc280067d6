package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/catalog/usecase/query"
	"github.com/shopwell/storefront/pkg/logger"
)

// SearchHandler handles HTTP requests for catalog search and discovery
type SearchHandler struct {
	searchHandler  *query.SearchProductsHandler
	relatedHandler *query.RelatedProductsHandler
	suggestHandler *query.SuggestProductsHandler

	searchCounter *prometheus.CounterVec
	searchLatency *prometheus.HistogramVec
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(repo domain.ProductRepository) *SearchHandler {
	searchCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search requests",
		},
		[]string{"endpoint", "status"},
	)

	searchLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_request_duration_seconds",
			Help:    "Duration of search requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	prometheus.MustRegister(searchCounter)
	prometheus.MustRegister(searchLatency)

	return &SearchHandler{
		searchHandler:  query.NewSearchProductsHandler(repo),
		relatedHandler: query.NewRelatedProductsHandler(repo),
		suggestHandler: query.NewSuggestProductsHandler(repo),
		searchCounter:  searchCounter,
		searchLatency:  searchLatency,
	}
}

func (h *SearchHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/search", h.withMetrics("/api/search", h.Search)).Methods("GET")
	router.HandleFunc("/api/search/suggest", h.withMetrics("/api/search/suggest", h.Suggest)).Methods("GET")
	router.HandleFunc("/api/search/related/{productId}", h.withMetrics("/api/search/related/{productId}", h.Related)).Methods("GET")
}

func (h *SearchHandler) withMetrics(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.searchCounter.WithLabelValues(endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.searchLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// parseFilter builds a product filter from the search query string.
func parseFilter(r *http.Request) domain.ProductFilter {
	params := r.URL.Query()

	filter := domain.ProductFilter{
		Query:    strings.TrimSpace(params.Get("q")),
		Category: params.Get("category"),
		Brand:    params.Get("brand"),
		InStock:  params.Get("inStock") == "true",
	}

	if v, err := strconv.ParseFloat(params.Get("minPrice"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(params.Get("maxPrice"), 64); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(params.Get("minRating"), 64); err == nil {
		filter.MinRating = &v
	}

	if tags := params.Get("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	return filter
}

// Search handles GET /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.searchHandler.Handle(r.Context(), query.SearchProductsQuery{
		Filter: parseFilter(r),
		SortBy: params.Get("sortBy"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Search failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Search failed"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// Suggest handles GET /api/search/suggest
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.suggestHandler.Handle(query.SuggestProductsQuery{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Suggestions failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Suggestions failed"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: suggestions})
}

// Related handles GET /api/search/related/{productId}
func (h *SearchHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.relatedHandler.Handle(r.Context(), query.RelatedProductsQuery{
		ProductID: id,
		Limit:     limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Related products failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Related products failed"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}
