package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
)

// DashboardStats is the aggregate block the admin overview renders.
type DashboardStats struct {
	TotalOrders      int64            `json:"totalOrders"`
	OrdersByStatus   map[string]int64 `json:"ordersByStatus"`
	Revenue          float64          `json:"revenue"`
	TotalProducts    int64            `json:"totalProducts"`
	TotalReviews     int64            `json:"totalReviews"`
	AverageRating    float64          `json:"averageRating"`
	TotalMessages    int64            `json:"totalMessages"`
	TotalSubscribers int64            `json:"totalSubscribers"`
}

// GetDashboardStats is the handler for GET /v1/admin/dashboard-stats.
// Revenue counts successful orders only; their totals are snapshots, so
// catalog price edits never shift past revenue.
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := DashboardStats{OrdersByStatus: make(map[string]int64)}

	var allOrders []models.Order
	if err := h.Store.Collection(ColOrders).All(ctx, bson.M{}, nil, &allOrders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	revenue := decimal.Zero
	for _, o := range allOrders {
		stats.TotalOrders++
		stats.OrdersByStatus[string(o.Status)]++
		if o.Status == models.StatusSuccessful {
			revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		}
	}
	stats.Revenue, _ = revenue.Float64()

	var err error
	if stats.TotalProducts, err = h.Store.Collection(ColProducts).Count(ctx, bson.M{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
		return
	}

	var reviews []models.Review
	if err := h.Store.Collection(ColReviews).All(ctx, bson.M{}, nil, &reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	stats.TotalReviews = int64(len(reviews))
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		stats.AverageRating = float64(sum) / float64(len(reviews))
	}

	if stats.TotalMessages, err = h.Store.Collection(ColMessages).Count(ctx, bson.M{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count messages"})
		return
	}
	if stats.TotalSubscribers, err = h.Store.Collection(ColSubscribers).Count(ctx, bson.M{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count subscribers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
