package models

// Settings holds the single business profile and invoice presentation
// configuration. There is exactly one settings value per installation, with
// no history; callers pass it explicitly into whatever needs it.
type Settings struct {
	BusinessName  string `bson:"business_name" json:"business_name"`
	Address       string `bson:"address" json:"address,omitempty"`
	Phone         string `bson:"phone" json:"phone,omitempty"`
	Email         string `bson:"email" json:"email,omitempty"`
	TaxID         string `bson:"tax_id" json:"tax_id,omitempty"`
	LogoData      string `bson:"logo_data" json:"logo_data,omitempty"`           // base64 data URL
	SignatureData string `bson:"signature_data" json:"signature_data,omitempty"` // base64 data URL
	Template      string `bson:"template" json:"template"`                       // "classic" or "modern"
	AccentColor   string `bson:"accent_color" json:"accent_color"`
}

// DefaultSettings returns the settings used before the owner has configured
// anything, and whenever stored settings cannot be read back.
func DefaultSettings() Settings {
	return Settings{
		BusinessName: "My HVAC Company",
		Template:     "classic",
		AccentColor:  "#0ea5e9",
	}
}
