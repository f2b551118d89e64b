package banner

// Banner is the public DTO for storefront promo banners.
type Banner struct {
	BannerID int     `json:"bannerId"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Link     *string `json:"link,omitempty"`
	Headline *string `json:"headline,omitempty"`
}
