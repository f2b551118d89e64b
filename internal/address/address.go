package address

type Address struct {
	AddressID     int    `json:"addressId"`
	UserID        int    `json:"userId"`
	Title         string `json:"title"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	IsDefault     bool   `json:"isDefault"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}
