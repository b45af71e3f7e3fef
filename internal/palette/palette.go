package palette

// ColorName is a semantic color tag. Terrain classification produces names,
// not RGB values; a Scheme resolves names to concrete colors at draw time.
type ColorName int

const (
	ColorBg ColorName = iota
	ColorFg
	ColorFg0
	ColorFg1
	ColorFg2
	ColorFg3
	ColorFg4
	ColorGray
	ColorLightGray
	ColorRed
	ColorLightRed
	ColorGreen
	ColorLightGreen
	ColorYellow
	ColorLightYellow
	ColorBlue
	ColorLightBlue
	ColorPurple
	ColorLightPurple
	ColorAqua
	ColorLightAqua
	ColorOrange
	ColorLightOrange
	ColorVoid
	ColorStone0
	ColorStone1
	ColorStone2
	ColorStone3
	ColorStone4
	ColorStone5
	ColorStone6
)

var colorNames = map[ColorName]string{
	ColorBg:          "bg",
	ColorFg:          "fg",
	ColorFg0:         "fg0",
	ColorFg1:         "fg1",
	ColorFg2:         "fg2",
	ColorFg3:         "fg3",
	ColorFg4:         "fg4",
	ColorGray:        "gray",
	ColorLightGray:   "light_gray",
	ColorRed:         "red",
	ColorLightRed:    "light_red",
	ColorGreen:       "green",
	ColorLightGreen:  "light_green",
	ColorYellow:      "yellow",
	ColorLightYellow: "light_yellow",
	ColorBlue:        "blue",
	ColorLightBlue:   "light_blue",
	ColorPurple:      "purple",
	ColorLightPurple: "light_purple",
	ColorAqua:        "aqua",
	ColorLightAqua:   "light_aqua",
	ColorOrange:      "orange",
	ColorLightOrange: "light_orange",
	ColorVoid:        "void",
	ColorStone0:      "stone0",
	ColorStone1:      "stone1",
	ColorStone2:      "stone2",
	ColorStone3:      "stone3",
	ColorStone4:      "stone4",
	ColorStone5:      "stone5",
	ColorStone6:      "stone6",
}

func (c ColorName) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "unknown"
}

// StoneColor quantizes a noise sample into the 7-band stone ramp over
// [min, max). Band 0 is void, bands 1-6 ascend through the stone shades.
// Values outside every band (including below min) land in the stone6
// catch-all; that asymmetry is part of the terrain's look and is relied on
// by the ridge generator, which feeds raw signed samples through here.
func StoneColor(v, min, max float64) ColorName {
	step := (max - min) / 7.0
	switch {
	case v >= min && v < min+step:
		return ColorVoid
	case v >= min+step && v < min+2*step:
		return ColorStone1
	case v >= min+2*step && v < min+3*step:
		return ColorStone2
	case v >= min+3*step && v < min+4*step:
		return ColorStone3
	case v >= min+4*step && v < min+5*step:
		return ColorStone4
	case v >= min+5*step && v < min+6*step:
		return ColorStone5
	default:
		return ColorStone6
	}
}

// FloorColor quantizes a noise sample into the floor ramp: 8 equal bands
// over [min, max), of which only bands 0 and 2-5 map to stone shades.
// Band 1 and everything past band 5 fall through to void. The gaps are a
// tuned lookup table, not a formula; do not regularize them.
func FloorColor(v, min, max float64) ColorName {
	step := (max - min) / 8.0
	switch {
	case v >= min && v < min+step:
		return ColorStone6
	case v >= min+2*step && v < min+3*step:
		return ColorStone5
	case v >= min+3*step && v < min+4*step:
		return ColorStone4
	case v >= min+4*step && v < min+5*step:
		return ColorStone3
	case v >= min+5*step && v < min+6*step:
		return ColorStone2
	default:
		return ColorVoid
	}
}
