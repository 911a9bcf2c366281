package models

// ProductImage is one entry of a product's image gallery.
type ProductImage struct {
	URL string `json:"url" bson:"url"`
	Alt string `json:"alt" bson:"alt"`
}

// ProductColor is a selectable color option with its display swatch.
type ProductColor struct {
	Name string `json:"name" bson:"name"`
	Hex  string `json:"hex" bson:"hex"`
}

// ProductDetails is the embedded details record on a product document.
type ProductDetails struct {
	Type              string         `json:"type" bson:"type"` // "T-Shirt" or "Hoodie"
	Sizes             []string       `json:"sizes" bson:"sizes"`
	Colors            []ProductColor `json:"colors" bson:"colors"`
	Material          string         `json:"material" bson:"material"`
	CareInstructions  []string       `json:"careInstructions" bson:"careInstructions"`
	Features          []string       `json:"features" bson:"features"`
	Fit               string         `json:"fit" bson:"fit"`
	PrintTechnique    string         `json:"printTechnique" bson:"printTechnique"`
	DesignInspiration string         `json:"designInspiration" bson:"designInspiration"`
	Sustainability    string         `json:"sustainability" bson:"sustainability"`
	MadeIn            string         `json:"madeIn" bson:"madeIn"`
}

// Product is a document in the 'products' collection.
// Field names match the documents the storefront already stores, so both
// stacks can read the same data.
//
// Price is decimal-as-text on the wire; use decimal.NewFromString for any
// arithmetic instead of parsing it as a float.
type Product struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	Slug        string         `json:"slug,omitempty" bson:"slug,omitempty"`
	Description string         `json:"description" bson:"description"`
	Price       string         `json:"price" bson:"price"`
	Image       string         `json:"image" bson:"image"`
	Images      []ProductImage `json:"images" bson:"images"`
	ModelURL    string         `json:"modelUrl,omitempty" bson:"modelUrl,omitempty"`
	Details     ProductDetails `json:"details" bson:"details"`
	CreatedAt   string         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
