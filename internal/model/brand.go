package model

// Brand is the logo and brand text shown across the site.
type Brand struct {
	LogoURL string `json:"logoUrl"`
	Text    string `json:"text"`
}

// BrandUpdate carries optional brand changes. An empty string clears the
// persisted value.
type BrandUpdate struct {
	LogoURL *string `json:"logoUrl"`
	Text    *string `json:"text"`
}
