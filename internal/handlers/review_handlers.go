package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zelligewear/zellige-api/internal/middleware"
	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/orders"
	"github.com/zelligewear/zellige-api/internal/store"
)

// GetProductReviews is the handler for GET /v1/products/:id/reviews,
// newest first.
func (h *Handlers) GetProductReviews(c *gin.Context) {
	var list []models.Review
	err := h.Store.Collection(ColReviews).All(c.Request.Context(),
		bson.M{"productId": c.Param("id")}, bson.D{{Key: "createdAt", Value: -1}}, &list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	if list == nil {
		list = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}

// GetEligibleOrder is the handler for GET /v1/products/:id/eligible-order.
// The review page uses it to find which of the caller's orders, if any,
// entitles them to review this product.
func (h *Handlers) GetEligibleOrder(c *gin.Context) {
	var list []models.Order
	err := h.Store.Collection(ColOrders).All(c.Request.Context(),
		bson.M{"userId": userID(c), "product._id": c.Param("id")}, nil, &list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	for _, o := range list {
		if orders.Reviewable(o) {
			c.JSON(http.StatusOK, gin.H{"order": o})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "No reviewable order for this product"})
}

type AddReviewInput struct {
	OrderID string `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// AddReview is the handler for POST /v1/reviews. Eligibility is checked
// against the referenced order, then the review insert and the order's
// hasReviewed flag are written in one transaction. The storefront did
// these as two separate writes, which let a crash in between open the door
// to a duplicate review.
func (h *Handlers) AddReview(c *gin.Context) {
	var input AddReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	orderColl := h.Store.Collection(ColOrders)
	reviewColl := h.Store.Collection(ColReviews)

	var review models.Review
	err := h.Store.WithTransaction(c.Request.Context(), func(sc mongo.SessionContext) error {
		var order models.Order
		if err := orderColl.Get(sc, input.OrderID, &order); err != nil {
			return err
		}
		if order.UserID != user.ID {
			return store.ErrNotFound
		}
		if !orders.Reviewable(order) {
			return errNotReviewable
		}

		review = models.Review{
			ID:          store.NewID(),
			UserID:      user.ID,
			UserName:    displayNameOrAnonymous(user),
			ProductID:   order.Product.ID,
			ProductName: order.Product.Name,
			Rating:      input.Rating,
			Comment:     input.Comment,
			CreatedAt:   nowISO(),
		}
		if err := reviewColl.Insert(sc, review); err != nil {
			return err
		}
		return orderColl.Update(sc, order.ID, bson.M{
			"hasReviewed": true,
			"updatedAt":   nowISO(),
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, errNotReviewable):
			c.JSON(http.StatusConflict, gin.H{"error": "This order is not eligible for a review"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

var errNotReviewable = errors.New("order not eligible for review")

func displayNameOrAnonymous(u models.User) string {
	if u.DisplayName == "" {
		return "Anonymous"
	}
	return u.DisplayName
}

// DeleteReview is the handler for DELETE /v1/admin/reviews/:id.
func (h *Handlers) DeleteReview(c *gin.Context) {
	err := h.Store.Collection(ColReviews).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

type AdminReplyInput struct {
	Comment string `json:"comment" binding:"required"`
}

// AddAdminReply is the handler for POST /v1/admin/reviews/:id/reply.
// A review carries at most one staff reply; adding over an existing one
// replaces it, matching the storefront.
func (h *Handlers) AddAdminReply(c *gin.Context) {
	var input AdminReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := models.AdminReply{
		ID:        store.NewID(),
		Comment:   input.Comment,
		CreatedAt: nowISO(),
	}
	err := h.Store.Collection(ColReviews).Update(c.Request.Context(), c.Param("id"), bson.M{
		"adminReply": reply,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add reply"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reply": reply})
}

// UpdateAdminReply is the handler for PUT /v1/admin/reviews/:id/reply.
func (h *Handlers) UpdateAdminReply(c *gin.Context) {
	var input AdminReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll := h.Store.Collection(ColReviews)
	var review models.Review
	if err := coll.Get(c.Request.Context(), c.Param("id"), &review); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}
	if review.AdminReply == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review has no reply to update"})
		return
	}

	err := coll.Update(c.Request.Context(), review.ID, bson.M{
		"adminReply.comment":   input.Comment,
		"adminReply.updatedAt": nowISO(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reply"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply updated successfully"})
}

// DeleteAdminReply is the handler for DELETE /v1/admin/reviews/:id/reply.
func (h *Handlers) DeleteAdminReply(c *gin.Context) {
	err := h.Store.Collection(ColReviews).Unset(c.Request.Context(), c.Param("id"), "adminReply")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reply"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply deleted successfully"})
}
