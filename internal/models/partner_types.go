package models

// PartnerSocialLinks holds the optional social profiles shown on a partner page.
type PartnerSocialLinks struct {
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Website   string `json:"website,omitempty" bson:"website,omitempty"`
}

// PartnerImage is a captioned gallery image on a partner profile.
type PartnerImage struct {
	URL     string `json:"url" bson:"url"`
	Caption string `json:"caption" bson:"caption"`
}

// PartnerVideo is an embedded video on a partner profile.
type PartnerVideo struct {
	URL       string `json:"url" bson:"url"`
	Title     string `json:"title" bson:"title"`
	Thumbnail string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
}

// PartnerContactInfo is the contact block on a partner profile.
type PartnerContactInfo struct {
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// Partner is a document in the 'partners' collection.
type Partner struct {
	ID                string             `json:"id" bson:"_id"`
	Name              string             `json:"name" bson:"name"`
	Logo              string             `json:"logo" bson:"logo"`
	Description       string             `json:"description" bson:"description"`
	FullDescription   string             `json:"fullDescription" bson:"fullDescription"`
	ContactInfo       PartnerContactInfo `json:"contactInfo" bson:"contactInfo"`
	SocialLinks       PartnerSocialLinks `json:"socialLinks" bson:"socialLinks"`
	YearsOfExperience int                `json:"yearsOfExperience" bson:"yearsOfExperience"`
	EstablishedYear   int                `json:"establishedYear" bson:"establishedYear"`
	Specialties       []string           `json:"specialties" bson:"specialties"`
	Images            []PartnerImage     `json:"images" bson:"images"`
	Videos            []PartnerVideo     `json:"videos" bson:"videos"`
	WorkStyle         string             `json:"workStyle" bson:"workStyle"`
	Achievements      []string           `json:"achievements" bson:"achievements"`
}
