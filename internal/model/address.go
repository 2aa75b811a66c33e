package model

// AddressCategory classifies a saved place.
type AddressCategory string

const (
	AddressCategoryHome   AddressCategory = "HOME"
	AddressCategoryOffice AddressCategory = "OFFICE"
	AddressCategoryOther  AddressCategory = "OTHER"
)

// Address is a saved place belonging to the user.
type Address struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	AddressLine  string          `json:"addressLine"`
	Landmark     string          `json:"landmark"`
	Lat          float64         `json:"lat"`
	Lng          float64         `json:"lng"`
	ContactName  string          `json:"contactName"`
	ContactPhone string          `json:"contactPhone"`
	Category     AddressCategory `json:"category"`
}
