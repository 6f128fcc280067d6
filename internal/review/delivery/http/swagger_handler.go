package http

// ListReviews godoc
// @Summary List product reviews
// @Description Get all reviews of a product, newest first
// @Tags Reviews
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/{productId}/reviews [get]
func (h *ReviewHandler) ListReviewsDoc() {}

// CreateReview godoc
// @Summary Create a review
// @Description Create a verified-purchase review. Requires a delivered order containing the product.
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,rating=int,title=string,content=string,images=array} true "Review data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/reviews [post]
func (h *ReviewHandler) CreateReviewDoc() {}

// UpdateReview godoc
// @Summary Update a review
// @Description Update a review; author or admin only
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body object{rating=int,title=string,content=string,images=array} true "Review data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) UpdateReviewDoc() {}

// DeleteReview godoc
// @Summary Delete a review
// @Description Delete a review; author or admin only
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReviewDoc() {}

// VoteHelpful godoc
// @Summary Toggle helpful vote
// @Description Toggle the caller's helpful vote on a review
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} object{success=bool,data=object{voted=bool,total_votes=int}}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/reviews/{id}/helpful [post]
func (h *ReviewHandler) VoteHelpfulDoc() {}

// ReportReview godoc
// @Summary Report a review
// @Description Report a review for moderation; one report per user
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/reviews/{id}/report [post]
func (h *ReviewHandler) ReportReviewDoc() {}

// ModerateReview godoc
// @Summary Moderate a review
// @Description Apply a moderation action (remove or clear-reports) to a review (Admin only)
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body object{action=string} true "Moderation action"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/reviews/{id}/moderate [post]
func (h *ReviewHandler) ModerateReviewDoc() {}
