package models

// Story is the brand story block shown on the story page.
type Story struct {
	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`
	Image   string `json:"image" bson:"image"`
}

// Event is a document in the 'content' collection with kind "event".
type Event struct {
	ID          string `json:"id" bson:"_id"`
	Title       string `json:"title" bson:"title"`
	Date        string `json:"date" bson:"date"`
	Location    string `json:"location" bson:"location"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
}

// ContentPage is an editable static page (contact, faq, shipping, returns).
type ContentPage struct {
	ID          string `json:"id" bson:"_id"`
	Title       string `json:"title" bson:"title"`
	Content     string `json:"content" bson:"content"`
	LastUpdated string `json:"lastUpdated" bson:"lastUpdated"`
}

// SettingsLogo holds the light and dark logo variants.
type SettingsLogo struct {
	URL     string `json:"url" bson:"url"`
	DarkURL string `json:"darkUrl" bson:"darkUrl"`
}

// SettingsHeritage is the heritage section content on the home page.
type SettingsHeritage struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Image1      string `json:"image1" bson:"image1"`
	Image2      string `json:"image2" bson:"image2"`
}

// SettingsNewsletter holds the displayed subscriber count.
type SettingsNewsletter struct {
	SubscriberCount int `json:"subscriberCount" bson:"subscriberCount"`
}

// Settings is the single 'settings/general' document.
type Settings struct {
	HeroBackgroundImage string             `json:"heroBackgroundImage" bson:"heroBackgroundImage"`
	Logo                SettingsLogo       `json:"logo" bson:"logo"`
	Heritage            SettingsHeritage   `json:"heritage" bson:"heritage"`
	Newsletter          SettingsNewsletter `json:"newsletter" bson:"newsletter"`
}
