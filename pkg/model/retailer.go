package model

// RetailerProduct is the best match a retailer search returned for a label.
type RetailerProduct struct {
	ArticleNumber   string   `json:"articleNumber"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	FoodPairingTags []string `json:"foodPairingTags"`
	URL             string   `json:"url"`
	ImageURL        *string  `json:"imageUrl"`
	Source          string   `json:"source"`
}
