package model

// CityInputDTO is the body of PUT /widget/city
type CityInputDTO struct {
	Value string `json:"value" example:"Par"`
}

// ErrorDTO is the body of every failed request
type ErrorDTO struct {
	Error string `json:"error" example:"City not found"`
}
