package http

// CreateOrder godoc
// @Summary Place an order
// @Description Validate line prices against the catalog and place an order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{items=array,total_amount=number,shipping_address=object,payment_method=string} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// ListOrders godoc
// @Summary List orders
// @Description List the caller's orders; admins see every order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// GetOrder godoc
// @Summary Get order by ID
// @Description Get a single order; owner or admin only
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// UpdateOrder godoc
// @Summary Update order status
// @Description Update order or payment status (Admin only). Status changes follow the fulfillment transition table.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string,payment_status=string} true "Status patch"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [put]
func (h *OrderHandler) UpdateOrderDoc() {}
