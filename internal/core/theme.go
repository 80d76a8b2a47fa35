package core

// StyleRoles maps the named presentation roles of a theme to CSS color
// values. Themes carry no behavior; the projection copies these values out
// for the renderer to apply.
type StyleRoles struct {
	HeaderBg        string
	HeaderText      string
	AccentColor     string
	TableHeaderBg   string
	TableHeaderText string
	BorderColor     string
	BackgroundColor string
	TextColor       string
	MutedTextColor  string
	TotalHighlight  string
}

// Theme is an immutable catalog entry. Every theme has all style roles
// populated; there are no partial themes.
type Theme struct {
	ID          string
	Name        string
	Description string
	Preview     string
	Styles      StyleRoles
}

// Themes is the static theme catalog. The first entry doubles as the
// fallback for unknown ids.
var Themes = []Theme{
	{
		ID:          "modern-blue",
		Name:        "Modern Blue",
		Description: "Clean and professional with blue accents",
		Preview:     "🔵",
		Styles: StyleRoles{
			HeaderBg:        "#2563eb",
			HeaderText:      "#ffffff",
			AccentColor:     "#2563eb",
			TableHeaderBg:   "#eff6ff",
			TableHeaderText: "#1e3a8a",
			BorderColor:     "#bfdbfe",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			MutedTextColor:  "#4b5563",
			TotalHighlight:  "#2563eb",
		},
	},
	{
		ID:          "elegant-green",
		Name:        "Elegant Green",
		Description: "Sophisticated design with green elements",
		Preview:     "🟢",
		Styles: StyleRoles{
			HeaderBg:        "#059669",
			HeaderText:      "#ffffff",
			AccentColor:     "#059669",
			TableHeaderBg:   "#ecfdf5",
			TableHeaderText: "#064e3b",
			BorderColor:     "#a7f3d0",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			MutedTextColor:  "#4b5563",
			TotalHighlight:  "#059669",
		},
	},
	{
		ID:          "minimal-gray",
		Name:        "Minimal Gray",
		Description: "Simple and clean monochrome design",
		Preview:     "⚫",
		Styles: StyleRoles{
			HeaderBg:        "#1f2937",
			HeaderText:      "#ffffff",
			AccentColor:     "#1f2937",
			TableHeaderBg:   "#f3f4f6",
			TableHeaderText: "#111827",
			BorderColor:     "#d1d5db",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			MutedTextColor:  "#4b5563",
			TotalHighlight:  "#1f2937",
		},
	},
	{
		ID:          "creative-purple",
		Name:        "Creative Purple",
		Description: "Bold and creative with purple styling",
		Preview:     "🟣",
		Styles: StyleRoles{
			HeaderBg:        "#9333ea",
			HeaderText:      "#ffffff",
			AccentColor:     "#9333ea",
			TableHeaderBg:   "#faf5ff",
			TableHeaderText: "#581c87",
			BorderColor:     "#e9d5ff",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			MutedTextColor:  "#4b5563",
			TotalHighlight:  "#9333ea",
		},
	},
	{
		ID:          "warm-orange",
		Name:        "Warm Orange",
		Description: "Friendly and approachable orange theme",
		Preview:     "🟠",
		Styles: StyleRoles{
			HeaderBg:        "#ea580c",
			HeaderText:      "#ffffff",
			AccentColor:     "#ea580c",
			TableHeaderBg:   "#fff7ed",
			TableHeaderText: "#7c2d12",
			BorderColor:     "#fed7aa",
			BackgroundColor: "#ffffff",
			TextColor:       "#111827",
			MutedTextColor:  "#4b5563",
			TotalHighlight:  "#ea580c",
		},
	},
}

// DefaultThemeID is the theme used by freshly created invoices.
var DefaultThemeID = Themes[0].ID

// LookupTheme resolves a theme id. Unknown ids fall back to the first
// catalog entry; the lookup never fails.
func LookupTheme(id string) Theme {
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}
	return Themes[0]
}
