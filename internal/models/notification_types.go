package models

import "time"

// Notification is a document in the 'notifications' collection. One is
// written for the shop staff when an order is placed and for the order's
// owner when its status changes.
type Notification struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Message   string    `json:"message" bson:"message"`
	Link      string    `json:"link,omitempty" bson:"link,omitempty"`
	IsRead    bool      `json:"isRead" bson:"isRead"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
