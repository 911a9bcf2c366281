package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zelligewear/zellige-api/internal/cart"
	"github.com/zelligewear/zellige-api/internal/checkout"
	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

// Collection names. These match the collections the storefront already
// reads and writes.
const (
	ColProducts      = "products"
	ColOrders        = "orders"
	ColReviews       = "reviews"
	ColLikes         = "likes"
	ColMessages      = "messages"
	ColSubscribers   = "subscribers"
	ColPartners      = "partners"
	ColSettings      = "settings"
	ColContent       = "content"
	ColEvents        = "events"
	ColNotifications = "notifications"
	ColUsers         = "users"
)

// Handlers holds all dependencies for the API handlers.
type Handlers struct {
	Store    *store.Store
	Cart     *cart.Store
	Checkout *checkout.Service
}

// New wires the handler set onto its stores and builds the checkout
// service on top of the transactional order writer.
func New(st *store.Store, ct *cart.Store) *Handlers {
	h := &Handlers{Store: st, Cart: ct}
	h.Checkout = checkout.NewService(&orderWriter{h: h})
	return h
}

// orderWriter persists checkout output. All orders from one submission go
// in a single transaction, so a failing line aborts the whole batch.
type orderWriter struct {
	h *Handlers
}

func (w *orderWriter) CreateOrders(ctx context.Context, orders []models.Order) error {
	coll := w.h.Store.Collection(ColOrders)
	err := w.h.Store.WithTransaction(ctx, func(sc mongo.SessionContext) error {
		for _, o := range orders {
			if err := coll.Insert(sc, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, o := range orders {
		w.h.notifyAdmins(ctx, fmt.Sprintf("New order %s: %s x%d", o.ID, o.Product.Name, o.Quantity), "/dashboard/orders")
	}
	return nil
}

// notify writes a notification document for one user. Notifications are
// fire-and-forget: a failure is logged, never surfaced to the caller.
func (h *Handlers) notify(ctx context.Context, userID, message, link string) {
	n := models.Notification{
		UserID:    userID,
		Message:   message,
		Link:      link,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if _, err := h.Store.Collection(ColNotifications).AddAutoID(ctx, n); err != nil {
		log.Printf("notify: failed to write notification for user %s: %v", userID, err)
	}
}

// notifyAdmins fans a notification out to every admin user.
func (h *Handlers) notifyAdmins(ctx context.Context, message, link string) {
	var admins []models.User
	if err := h.Store.Collection(ColUsers).All(ctx, bson.M{"isAdmin": true}, nil, &admins); err != nil {
		log.Printf("notify: failed to list admins: %v", err)
		return
	}
	for _, a := range admins {
		h.notify(ctx, a.ID, message, link)
	}
}

// nowISO is the timestamp format the stored documents use.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
