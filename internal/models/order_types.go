package models

// OrderStatus is the closed set of states an order can be in.
type OrderStatus string

const (
	StatusPending      OrderStatus = "pending"
	StatusConfirmed    OrderStatus = "confirmed"
	StatusNotConfirmed OrderStatus = "not_confirmed"
	StatusShipping     OrderStatus = "shipping"
	StatusSuccessful   OrderStatus = "successful"
	StatusReturned     OrderStatus = "returned"
)

// Valid reports whether s is one of the known status values.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusNotConfirmed,
		StatusShipping, StatusSuccessful, StatusReturned:
		return true
	}
	return false
}

// OrderDetails carries the buyer's option choices for one order.
// Payment method is "cod" (cash on delivery), the only method modeled.
type OrderDetails struct {
	Color         string `json:"color" bson:"color"`
	Size          string `json:"size" bson:"size"`
	PaymentMethod string `json:"paymentMethod" bson:"paymentMethod"`
}

// Order is a document in the 'orders' collection. It embeds a full copy of
// the product as it looked at purchase time; later catalog edits never touch
// an existing order.
type Order struct {
	ID           string        `json:"id" bson:"_id"`
	Product      Product       `json:"product" bson:"product"`
	CustomerName string        `json:"customerName" bson:"customerName"`
	Email        string        `json:"email" bson:"email"`
	Phone        string        `json:"phone" bson:"phone"`
	IsWhatsApp   bool          `json:"isWhatsApp" bson:"isWhatsApp"`
	Address      string        `json:"address" bson:"address"`
	Status       OrderStatus   `json:"status" bson:"status"`
	CreatedAt    string        `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	Total        float64       `json:"total" bson:"total"`
	UserID       string        `json:"userId" bson:"userId"`
	Quantity     int           `json:"quantity" bson:"quantity"`
	HasReviewed  bool          `json:"hasReviewed" bson:"hasReviewed"`
	Details      *OrderDetails `json:"details,omitempty" bson:"details,omitempty"`
}
