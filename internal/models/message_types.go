package models

// Message is a contact-form submission in the 'messages' collection.
type Message struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Message   string `json:"message" bson:"message"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

// Subscriber is a newsletter signup in the 'subscribers' collection.
type Subscriber struct {
	ID           string `json:"id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	SubscribedAt string `json:"subscribedAt" bson:"subscribedAt"`
}
