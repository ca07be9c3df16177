package page

// Theme carries the page color scheme. It is an explicit value owned by
// the builder configuration and passed into the renderer and exporter at
// render time; nothing mutates it ambiently.
type Theme struct {
	Primary   string
	Secondary string
	Accent    string
}

// DefaultTheme returns the stock color scheme.
func DefaultTheme() Theme {
	return Theme{
		Primary:   "#3a6ea5",
		Secondary: "#ff6b6b",
		Accent:    "#f9c74f",
	}
}

// WithDefaults fills any unset color from the stock scheme.
func (t Theme) WithDefaults() Theme {
	d := DefaultTheme()
	if t.Primary == "" {
		t.Primary = d.Primary
	}
	if t.Secondary == "" {
		t.Secondary = d.Secondary
	}
	if t.Accent == "" {
		t.Accent = d.Accent
	}
	return t
}
