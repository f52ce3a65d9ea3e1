package entity

// GeoLocation is the resolved location for a caller IP. Fields are pointers
// so unresolvable/loopback addresses serialize as JSON nulls.
type GeoLocation struct {
	Country *string `json:"country"`
	City    *string `json:"city"`
	Region  *string `json:"region"`
	IP      *string `json:"ip"`
}
