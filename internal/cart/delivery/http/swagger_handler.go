package http

// GetCart godoc
// @Summary Get the cart
// @Description Get the caller's shopping cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{user_id=int,items=array,total=number}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add an item to the cart
// @Description Add a product to the cart. Re-adding a product replaces its quantity.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,quantity=int} true "Cart item"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/cart [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateItem godoc
// @Summary Update a cart line
// @Description Change the quantity of a product already in the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/cart/{productId} [put]
func (h *CartHandler) UpdateItemDoc() {}

// RemoveItem godoc
// @Summary Remove a cart line
// @Description Remove a product from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/{productId} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// ClearCart godoc
// @Summary Clear the cart
// @Description Remove every item from the caller's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart [delete]
func (h *CartHandler) ClearCartDoc() {}
