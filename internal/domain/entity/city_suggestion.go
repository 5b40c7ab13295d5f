package entity

type CitySuggestion struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Label renders the suggestion the way the widget lists it, e.g. "Paris, FR".
func (s CitySuggestion) Label() string {
	if s.Country == "" {
		return s.Name
	}
	return s.Name + ", " + s.Country
}
