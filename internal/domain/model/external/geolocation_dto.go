package external

// IPLocationResponse is the body of an ip-api.com compatible GET /json/{ip}?fields=status,message,lat,lon.
type IPLocationResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (r *IPLocationResponse) Succeeded() bool {
	return r.Status == "success"
}
