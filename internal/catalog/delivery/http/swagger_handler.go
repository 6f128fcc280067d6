package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new catalog product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=number,stock=int,category=string,brand=string,tags=array,image_url=string,is_active=bool} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List all products
// @Description Get a list of all active products with pagination
// @Tags Products
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product by its ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update an existing catalog product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,price=number,stock=int,category=string,brand=string,tags=array,image_url=string,is_active=bool} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Soft delete a product by ID (Admin only)
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// UpdateStock godoc
// @Summary Update product stock
// @Description Update the stock quantity of a product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{stock=int} true "Stock data"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStockDoc() {}

// Search godoc
// @Summary Search the catalog
// @Description Full-text search with filters, facets, sorting and pagination
// @Tags Search
// @Produce json
// @Param q query string false "Search query"
// @Param category query string false "Category filter"
// @Param brand query string false "Brand filter"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minRating query number false "Minimum average rating"
// @Param tags query string false "Comma-separated tags"
// @Param inStock query bool false "Only in-stock products"
// @Param sortBy query string false "Sort order (price-asc, price-desc, rating, newest)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{success=bool,data=object{products=array,pagination=object,filters=object}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/search [get]
func (h *SearchHandler) SearchDoc() {}

// Suggest godoc
// @Summary Autocomplete suggestions
// @Description Ranked product name suggestions for a partial query
// @Tags Search
// @Produce json
// @Param q query string true "Partial query (min 2 characters)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/search/suggest [get]
func (h *SearchHandler) SuggestDoc() {}

// Related godoc
// @Summary Related products
// @Description Products sharing a category, brand or tags with the given product
// @Tags Search
// @Produce json
// @Param productId path int true "Product ID"
// @Param limit query int false "Limit"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/search/related/{productId} [get]
func (h *SearchHandler) RelatedDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *ProductHandler) HealthCheckDoc() {}
