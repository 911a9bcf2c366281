package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/middleware"
	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/orders"
	"github.com/zelligewear/zellige-api/internal/store"
)

// GetMyOrders is the handler for GET /v1/orders, newest first.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	var list []models.Order
	err := h.Store.Collection(ColOrders).All(c.Request.Context(),
		bson.M{"userId": userID(c)}, bson.D{{Key: "createdAt", Value: -1}}, &list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// GetOrder is the handler for GET /v1/orders/:id. The owner or an admin
// may read an order; anyone else gets the same not-found as a missing one.
func (h *Handlers) GetOrder(c *gin.Context) {
	var order models.Order
	err := h.Store.Collection(ColOrders).Get(c.Request.Context(), c.Param("id"), &order)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	user := middleware.CurrentUser(c)
	if order.UserID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetAllOrders is the handler for GET /v1/admin/orders.
func (h *Handlers) GetAllOrders(c *gin.Context) {
	var list []models.Order
	err := h.Store.Collection(ColOrders).All(c.Request.Context(),
		bson.M{}, bson.D{{Key: "createdAt", Value: -1}}, &list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	if list == nil {
		list = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

type UpdateOrderStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PATCH /v1/admin/orders/:id/status.
// The transition table is enforced here: the old storefront wrote whatever
// status it was handed, this rejects anything the table does not allow.
// Re-sending the current status is an idempotent no-op apart from the
// updatedAt bump.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll := h.Store.Collection(ColOrders)
	orderID := c.Param("id")

	var order models.Order
	if err := coll.Get(c.Request.Context(), orderID, &order); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	if err := orders.CanTransition(order.Status, input.Status); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	err := coll.Update(c.Request.Context(), orderID, bson.M{
		"status":    input.Status,
		"updatedAt": nowISO(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	if order.Status != input.Status {
		h.notify(c.Request.Context(), order.UserID,
			fmt.Sprintf("Your order %s is now %s", order.ID, input.Status), "/profile")
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order status updated to %s", input.Status)})
}

// DeleteOrder is the handler for DELETE /v1/admin/orders/:id. The delete
// is hard and reviews referencing the order are left in place; review
// eligibility is always re-checked against live orders, so a deleted order
// cannot be reviewed again.
func (h *Handlers) DeleteOrder(c *gin.Context) {
	err := h.Store.Collection(ColOrders).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
