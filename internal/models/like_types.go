package models

// Like is a document in the 'likes' collection. Existence of the
// (userId, productId) pair is the "liked" state; toggling deletes or
// recreates the document.
type Like struct {
	ID        string `json:"id" bson:"_id"`
	UserID    string `json:"userId" bson:"userId"`
	ProductID string `json:"productId" bson:"productId"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}
