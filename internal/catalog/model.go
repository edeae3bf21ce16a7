package catalog

// MenuItem and SpecialOrder are owned by the upstream backend; this service
// only consumes them. Updates send whole-record replacements.

type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"` // breakfast | lunch | dinner
	IsAvailable bool     `json:"is_available"`
	ImageURLs   []string `json:"image_urls"`
}

type SpecialOrder struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PricePerPerson float64  `json:"price_per_person"`
	MinPeople      int      `json:"min_people"`
	IsAvailable    bool     `json:"is_available"`
	ImageURLs      []string `json:"image_urls"`
}
