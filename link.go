package horizon

// Link is one HAL link on a Horizon response.
type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
}

// PageLinks are the navigation links on a paginated response.
type PageLinks struct {
	Self Link `json:"self"`
	Next Link `json:"next"`
	Prev Link `json:"prev"`
}
