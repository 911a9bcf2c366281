package models

// AdminReply is the single optional staff reply embedded in a review.
// Only the reply is editable once a review is submitted.
type AdminReply struct {
	ID        string `json:"id" bson:"id"`
	Comment   string `json:"comment" bson:"comment"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Review is a document in the 'reviews' collection.
type Review struct {
	ID          string      `json:"id" bson:"_id"`
	UserID      string      `json:"userId" bson:"userId"`
	UserName    string      `json:"userName" bson:"userName"`
	ProductID   string      `json:"productId" bson:"productId"`
	ProductName string      `json:"productName" bson:"productName"`
	Rating      int         `json:"rating" bson:"rating"`
	Comment     string      `json:"comment" bson:"comment"`
	CreatedAt   string      `json:"createdAt" bson:"createdAt"`
	AdminReply  *AdminReply `json:"adminReply,omitempty" bson:"adminReply,omitempty"`
}
