package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
)

// StreamOrders is the handler for GET /v1/admin/orders-stream. It pushes a
// full-replace snapshot of the orders collection over SSE whenever anything
// in it changes, which is how the dashboard's order manager stays live.
func (h *Handlers) StreamOrders(c *gin.Context) {
	ctx := c.Request.Context()
	snapshots, err := h.Store.Collection(ColOrders).Watch(ctx, bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open order stream"})
		return
	}

	c.Stream(func(w io.Writer) bool {
		snap, ok := <-snapshots
		if !ok {
			return false
		}
		list := make([]models.Order, 0, len(snap))
		for _, raw := range snap {
			var o models.Order
			if err := bson.Unmarshal(raw, &o); err != nil {
				continue
			}
			list = append(list, o)
		}
		c.SSEvent("orders", list)
		return true
	})
}
