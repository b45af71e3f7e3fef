package palette

// Scheme resolves semantic color names to hex color codes.
type Scheme struct {
	codes map[ColorName]string
}

// Code returns the hex code for a color name, falling back to the
// foreground color for names the scheme does not carry.
func (s *Scheme) Code(name ColorName) string {
	if c, ok := s.codes[name]; ok {
		return c
	}
	return s.codes[ColorFg]
}

// Default returns the stock gruvbox scheme used by the viewer.
func Default() *Scheme {
	return &Scheme{codes: map[ColorName]string{
		ColorBg:          "#282828",
		ColorFg:          "#ebdbb2",
		ColorFg0:         "#fbf1c7",
		ColorFg1:         "#ebdbb2",
		ColorFg2:         "#d5c4a1",
		ColorFg3:         "#bdae93",
		ColorFg4:         "#a89984",
		ColorGray:        "#a89984",
		ColorLightGray:   "#928374",
		ColorRed:         "#cc241d",
		ColorLightRed:    "#fb4934",
		ColorGreen:       "#98971a",
		ColorLightGreen:  "#b8bb26",
		ColorYellow:      "#d79921",
		ColorLightYellow: "#fabd2f",
		ColorBlue:        "#458588",
		ColorLightBlue:   "#83a598",
		ColorPurple:      "#b16286",
		ColorLightPurple: "#d3869b",
		ColorAqua:        "#689d6a",
		ColorLightAqua:   "#8ec07c",
		ColorOrange:      "#d65d0e",
		ColorLightOrange: "#fe8019",
		ColorVoid:        "#1d2021",
		ColorStone0:      "#282828",
		ColorStone1:      "#32302f",
		ColorStone2:      "#3c3836",
		ColorStone3:      "#504945",
		ColorStone4:      "#665c54",
		ColorStone5:      "#7c6f64",
		ColorStone6:      "#928374",
	}}
}
