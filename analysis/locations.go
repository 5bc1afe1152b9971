package analysis

type Recommendation struct {
	Area       string  `json:"area"`
	AvgRent    float64 `json:"avgRent"`
	Distance   string  `json:"distance"`
	TravelCost float64 `json:"travelCost"`
	Tag        string  `json:"tag"`
}

// LocationRecommendations returns the static area list. The stored city is
// echoed by the endpoint but does not filter this list; there is no
// per-city dataset to filter against.
func LocationRecommendations() []Recommendation {
	return []Recommendation{
		{"Electronic City", 8500, "18 km", 2500, "Cheapest"},
		{"Whitefield", 10000, "12 km", 2000, "Best Balance"},
		{"HSR Layout", 11500, "6 km", 1200, ""},
		{"BTM Layout", 9500, "8 km", 1500, ""},
		{"Marathahalli", 9000, "10 km", 1800, ""},
	}
}
