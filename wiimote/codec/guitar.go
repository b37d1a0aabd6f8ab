package codec

// sliderAbsent is the raw byte a guitar without touch bar hardware
// reports in the slider position.
const sliderAbsent = 0xFF

// sliderInactive values mean the bar is not being touched.
const (
	sliderIdleLow  = 0x00
	sliderIdleHigh = 0x0F
)

// Touch bar band boundaries over the 5-bit slider range. A raw value
// at or below the threshold falls in that band.
const (
	sliderGreenMax  = 0x08
	sliderRedMax    = 0x0D
	sliderYellowMax = 0x15
	sliderBlueMax   = 0x1A
)

// Guitar decodes the 6-byte Guitar Hero controller block: a 6-bit
// stick (the top two bits vary by model and are masked off), a 5-bit
// whammy bar, five active-low fret buttons, strum switches, and the
// optional World Tour touch bar.
type Guitar struct {
	Stick     [2]uint8 // 0-63, center 32
	Whammy    uint8    // 0-31, 0x10 at rest
	SliderRaw uint8    // raw touch bar byte, 0xFF when absent

	Green  bool
	Red    bool
	Yellow bool
	Blue   bool
	Orange bool

	StrumUp   bool
	StrumDown bool
	Plus      bool
	Minus     bool

	GreenSlider  bool
	RedSlider    bool
	YellowSlider bool
	BlueSlider   bool
	OrangeSlider bool
}

func NewGuitar() *Guitar {
	return &Guitar{
		Stick:     [2]uint8{32, 32},
		Whammy:    0x10,
		SliderRaw: sliderIdleHigh,
	}
}

// Decode reads one extension block. A short payload recenters the
// stick, rests the whammy, releases every fret and strum, marks the
// touch bar untouched, and reports failure.
func (g *Guitar) Decode(p []byte) bool {
	if len(p) < 6 {
		*g = *NewGuitar()
		return false
	}
	g.Stick[0] = p[0] & 0x3F
	g.Stick[1] = p[1] & 0x3F
	g.SliderRaw = p[2]
	g.Whammy = p[3] & 0x1F

	g.Plus = p[4]&0x04 == 0
	g.Minus = p[4]&0x10 == 0
	g.StrumDown = p[4]&0x40 == 0

	g.StrumUp = p[5]&0x01 == 0
	g.Yellow = p[5]&0x08 == 0
	g.Green = p[5]&0x10 == 0
	g.Blue = p[5]&0x20 == 0
	g.Red = p[5]&0x40 == 0
	g.Orange = p[5]&0x80 == 0

	g.decodeSlider()
	return true
}

func (g *Guitar) decodeSlider() {
	g.GreenSlider = false
	g.RedSlider = false
	g.YellowSlider = false
	g.BlueSlider = false
	g.OrangeSlider = false

	if g.SliderRaw == sliderAbsent {
		return
	}
	v := g.SliderRaw & 0x1F
	if v == sliderIdleLow || v == sliderIdleHigh {
		return
	}
	switch {
	case v <= sliderGreenMax:
		g.GreenSlider = true
	case v <= sliderRedMax:
		g.RedSlider = true
	case v <= sliderYellowMax:
		g.YellowSlider = true
	case v <= sliderBlueMax:
		g.BlueSlider = true
	default:
		g.OrangeSlider = true
	}
}

// Slider returns the touch bar position normalized into 0-1, or -1
// when the bar is absent or untouched.
func (g *Guitar) Slider() float64 {
	if g.SliderRaw == sliderAbsent {
		return -1
	}
	v := g.SliderRaw & 0x1F
	if v == sliderIdleLow || v == sliderIdleHigh {
		return -1
	}
	return float64(v) / 0x1F
}
