package codec

// IrMode selects how much data the IR camera packs per tracked dot.
// The values are the mode numbers written to the camera's mode
// register.
type IrMode uint8

const (
	IrOff      IrMode = 0x00
	IrBasic    IrMode = 0x01
	IrExtended IrMode = 0x03
	IrFull     IrMode = 0x05
)

// DataSize returns the number of IR bytes a data report carries in the
// mode. Full mode spans the two halves of an interleaved pair.
func (m IrMode) DataSize() int {
	switch m {
	case IrBasic:
		return 10
	case IrExtended:
		return 12
	case IrFull:
		return 36
	default:
		return 0
	}
}

func (m IrMode) String() string {
	switch m {
	case IrOff:
		return "IrOff"
	case IrBasic:
		return "IrBasic"
	case IrExtended:
		return "IrExtended"
	case IrFull:
		return "IrFull"
	default:
		return "UNKNOWN"
	}
}

// IrDot is one tracked IR point. X spans 0-1023, Y 0-767. Size,
// bounding box and intensity are only populated by the richer modes.
type IrDot struct {
	Visible bool
	X       uint16
	Y       uint16

	Size uint8 // Extended and Full

	// Full mode only.
	XMin      uint8
	YMin      uint8
	XMax      uint8
	YMax      uint8
	Intensity uint8
}

// Ir tracks up to four IR dots.
type Ir struct {
	Mode IrMode
	Dots [4]IrDot
}

func NewIr() *Ir {
	return &Ir{}
}

func (i *Ir) reset(mode IrMode) {
	i.Mode = mode
	i.Dots = [4]IrDot{}
}

// DecodeBasic reads the 10-byte basic block: two 5-byte groups of two
// position-only dots each.
func (i *Ir) DecodeBasic(p []byte) bool {
	if len(p) < 10 {
		i.reset(IrBasic)
		return false
	}
	i.reset(IrBasic)
	for group := 0; group < 2; group++ {
		g := p[group*5 : group*5+5]
		i.Dots[group*2] = basicDot(g[0], g[1], g[2]>>4)
		i.Dots[group*2+1] = basicDot(g[3], g[4], g[2])
	}
	return true
}

// basicDot assembles a dot from its low position bytes and the packed
// nibble carrying the two high bits of each coordinate.
func basicDot(xlo, ylo, packed byte) IrDot {
	x := uint16(xlo) | uint16(packed&0x03)<<8
	y := uint16(ylo) | uint16(packed&0x0C)<<6
	if xlo == 0xFF && ylo == 0xFF && packed&0x0F == 0x0F {
		return IrDot{}
	}
	return IrDot{Visible: true, X: x, Y: y}
}

// DecodeExtended reads the 12-byte extended block: four 3-byte dots
// with a size nibble each.
func (i *Ir) DecodeExtended(p []byte) bool {
	if len(p) < 12 {
		i.reset(IrExtended)
		return false
	}
	i.reset(IrExtended)
	for d := 0; d < 4; d++ {
		b := p[d*3 : d*3+3]
		if b[0] == 0xFF && b[1] == 0xFF && b[2] == 0xFF {
			continue
		}
		i.Dots[d] = IrDot{
			Visible: true,
			X:       uint16(b[0]) | uint16(b[2]&0x30)<<4,
			Y:       uint16(b[1]) | uint16(b[2]&0xC0)<<2,
			Size:    b[2] & 0x0F,
		}
	}
	return true
}

// DecodeInterleaved reads full mode: 36 bytes split over the two
// halves of an interleaved report pair, 18 in each, four 9-byte dots
// carrying bounding box and intensity on top of the extended fields.
func (i *Ir) DecodeInterleaved(first, second []byte) bool {
	if len(first) < 21 || len(second) < 21 {
		i.reset(IrFull)
		return false
	}
	var full [36]byte
	copy(full[:18], first[3:21])
	copy(full[18:], second[3:21])

	i.reset(IrFull)
	for d := 0; d < 4; d++ {
		b := full[d*9 : d*9+9]
		if b[0] == 0xFF && b[1] == 0xFF && b[2] == 0xFF {
			continue
		}
		i.Dots[d] = IrDot{
			Visible:   true,
			X:         uint16(b[0]) | uint16(b[2]&0x30)<<4,
			Y:         uint16(b[1]) | uint16(b[2]&0xC0)<<2,
			Size:      b[2] & 0x0F,
			XMin:      b[3],
			YMin:      b[4],
			XMax:      b[5],
			YMax:      b[6],
			Intensity: b[8],
		}
	}
	return true
}
