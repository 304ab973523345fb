package pdfdoc

// Color is an RGB triple in the 0-255 range gofpdf expects.
type Color struct {
	R, G, B int
}

var (
	White     = Color{255, 255, 255}
	Primary   = Color{234, 88, 12}
	PrimaryBg = Color{255, 247, 237}
	Accent    = Color{253, 186, 116}
	Ink       = Color{17, 24, 39}
	Label     = Color{75, 85, 99}
	Muted     = Color{107, 114, 128}
	Rule      = Color{229, 231, 235}
	Stripe    = Color{249, 250, 251}

	Green = Color{22, 163, 74}
	Red   = Color{220, 38, 38}
	Amber = Color{217, 119, 6}

	Blue     = Color{37, 99, 235}
	BlueBg   = Color{239, 246, 255}
	Purple   = Color{147, 51, 234}
	PurpleBg = Color{250, 245, 255}
	GreenBg  = Color{240, 253, 244}
	AmberBg  = Color{255, 251, 235}
)

// Theme carries the branding printed on every document.
type Theme struct {
	Title      string `toml:"title"`
	Subtitle   string `toml:"subtitle"`
	Disclaimer string `toml:"disclaimer"`
	Contact    string `toml:"contact"`
	ThankYou   string `toml:"thank_you"`
	Blessing   string `toml:"blessing"`
	Banner     Color  `toml:"banner"`
}

// DefaultTheme is used when no theme file is configured.
func DefaultTheme() Theme {
	return Theme{
		Title:      "Temple Donation Services",
		Subtitle:   "Serving the community with devotion",
		Disclaimer: "This is a computer generated document and does not require a signature.",
		Contact:    "For queries contact support@templedonations.org",
		ThankYou:   "Thank you for your generous contribution!",
		Blessing:   "May your kindness be returned to you manifold.",
		Banner:     Primary,
	}
}

// StatusColor classifies a payment status: Paid is green, Failed is red and
// everything else, including unknown values, is amber.
func StatusColor(status string) Color {
	switch status {
	case "Paid":
		return Green
	case "Failed":
		return Red
	default:
		return Amber
	}
}
