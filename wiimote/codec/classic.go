package codec

// Classic decodes the 6-byte Classic Controller block. The left stick
// is 6 bits per axis, the right stick 5 bits reassembled from three
// split fields, the analog triggers 5 bits reassembled from two.
// All buttons are active low on the wire.
type Classic struct {
	LStick [2]uint8 // 0-63, center 32
	RStick [2]uint8 // 0-31, center 16
	LT     uint8    // 0-31
	RT     uint8    // 0-31

	A bool
	B bool
	X bool
	Y bool

	Up    bool
	Down  bool
	Left  bool
	Right bool

	LFull bool // trigger clicked past the analog range
	RFull bool
	ZL    bool
	ZR    bool

	Plus  bool
	Minus bool
	Home  bool
}

func NewClassic() *Classic {
	return &Classic{
		LStick: [2]uint8{32, 32},
		RStick: [2]uint8{16, 16},
	}
}

// Decode reads one extension block. A short payload recenters both
// sticks, zeroes the triggers, releases every button, and reports
// failure.
func (c *Classic) Decode(p []byte) bool {
	if len(p) < 6 {
		*c = *NewClassic()
		return false
	}
	c.LStick[0] = p[0] & 0x3F
	c.LStick[1] = p[1] & 0x3F
	c.RStick[0] = p[0]&0xC0>>3 | p[1]&0xC0>>5 | p[2]&0x80>>7
	c.RStick[1] = p[2] & 0x1F
	c.LT = p[2]&0x60>>2 | p[3]&0xE0>>5
	c.RT = p[3] & 0x1F

	c.RFull = p[4]&0x02 == 0
	c.Plus = p[4]&0x04 == 0
	c.Home = p[4]&0x08 == 0
	c.Minus = p[4]&0x10 == 0
	c.LFull = p[4]&0x20 == 0
	c.Down = p[4]&0x40 == 0
	c.Right = p[4]&0x80 == 0

	c.Up = p[5]&0x01 == 0
	c.Left = p[5]&0x02 == 0
	c.ZR = p[5]&0x04 == 0
	c.X = p[5]&0x08 == 0
	c.A = p[5]&0x10 == 0
	c.Y = p[5]&0x20 == 0
	c.B = p[5]&0x40 == 0
	c.ZL = p[5]&0x80 == 0
	return true
}
