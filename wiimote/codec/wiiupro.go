package codec

// Wii U Pro stick axes, indexing Sticks and the calibration table.
const (
	ProLX = iota
	ProRX
	ProLY
	ProRY
)

// proStickCalib holds the per-axis raw range of the 12-bit sticks.
// The values only feed Normalized; Decode stores raw counts.
var proStickCalib = [4]struct{ Min, Max uint16 }{
	{1024, 3072},
	{1024, 3072},
	{1024, 3072},
	{1024, 3072},
}

const proStickCenter = 2048

// WiiUPro decodes the 11-byte Wii U Pro Controller block: two 12-bit
// little-endian sticks per side and three active-low button bytes.
type WiiUPro struct {
	Sticks [4]uint16

	A bool
	B bool
	X bool
	Y bool

	Up    bool
	Down  bool
	Left  bool
	Right bool

	L  bool
	R  bool
	ZL bool
	ZR bool

	Plus  bool
	Minus bool
	Home  bool

	LStickClick bool
	RStickClick bool

	Charging     bool
	UsbConnected bool
}

func NewWiiUPro() *WiiUPro {
	return &WiiUPro{
		Sticks: [4]uint16{proStickCenter, proStickCenter, proStickCenter, proStickCenter},
	}
}

// Decode reads one extension block. A short payload recenters the
// sticks, releases every button, and reports failure.
func (w *WiiUPro) Decode(p []byte) bool {
	if len(p) < 11 {
		*w = *NewWiiUPro()
		return false
	}
	for axis := range w.Sticks {
		w.Sticks[axis] = (uint16(p[axis*2]) | uint16(p[axis*2+1])<<8) & 0x0FFF
	}

	w.R = p[8]&0x02 == 0
	w.Plus = p[8]&0x04 == 0
	w.Home = p[8]&0x08 == 0
	w.Minus = p[8]&0x10 == 0
	w.L = p[8]&0x20 == 0
	w.Down = p[8]&0x40 == 0
	w.Right = p[8]&0x80 == 0

	w.Up = p[9]&0x01 == 0
	w.Left = p[9]&0x02 == 0
	w.ZR = p[9]&0x04 == 0
	w.X = p[9]&0x08 == 0
	w.A = p[9]&0x10 == 0
	w.Y = p[9]&0x20 == 0
	w.B = p[9]&0x40 == 0
	w.ZL = p[9]&0x80 == 0

	w.LStickClick = p[10]&0x01 == 0
	w.RStickClick = p[10]&0x02 == 0
	w.Charging = p[10]&0x04 == 0
	w.UsbConnected = p[10]&0x08 == 0
	return true
}

// Normalized maps a stick axis into 0-1 using the per-axis
// calibration range, clamped at the ends.
func (w *WiiUPro) Normalized(axis int) float64 {
	cal := proStickCalib[axis]
	raw := w.Sticks[axis]
	if raw <= cal.Min {
		return 0
	}
	if raw >= cal.Max {
		return 1
	}
	return float64(raw-cal.Min) / float64(cal.Max-cal.Min)
}
