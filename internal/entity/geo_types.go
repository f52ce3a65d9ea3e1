package entity

// GeoLookupResponse is the lookup provider's answer for one IP.
type GeoLookupResponse struct {
	Status     string `json:"status"` // "success" or "fail"
	Message    string `json:"message,omitempty"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
	Query      string `json:"query"`
}
