package config

// ColorScheme defines the colors used when rendering boards, canvases and notes
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - created records
	Delete string `yaml:"delete"` // Red - removals and discards

	// Board colors
	ColumnBorder string `yaml:"column_border"`
	CardBorder   string `yaml:"card_border"`
	Tag          string `yaml:"tag"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/secondary text
	Normal string `yaml:"normal"`

	// Notification colors
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Delete: "#FF0000",

		ColumnBorder: "#5F87D7",
		CardBorder:   "#585858",
		Tag:          "#D75FD7",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		WarningFg: "#FFD700",
		ErrorFg:   "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder: "#FFFFFF",
		CardBorder:   "#585858",
		Tag:          "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}

// GetPreset returns the color scheme for a preset name
func GetPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// fields lists every color slot paired with its value in other
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.Create, &other.Create},
		{&c.Delete, &other.Delete},
		{&c.ColumnBorder, &other.ColumnBorder},
		{&c.CardBorder, &other.CardBorder},
		{&c.Tag, &other.Tag},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.WarningFg, &other.WarningFg},
		{&c.ErrorFg, &other.ErrorFg},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	for _, f := range c.fields(&preset) {
		if *f[0] == "" {
			*f[0] = *f[1]
		}
	}
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, f := range c.fields(&other) {
		if *f[1] != "" {
			*f[0] = *f[1]
		}
	}
}
