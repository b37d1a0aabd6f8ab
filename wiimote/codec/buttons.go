package codec

// Buttons holds the digital buttons of the base remote. Every data
// report that carries buttons packs them into its first two payload
// bytes, bit set meaning pressed.
type Buttons struct {
	Left  bool
	Right bool
	Down  bool
	Up    bool
	Plus  bool

	Two   bool
	One   bool
	B     bool
	A     bool
	Minus bool
	Home  bool
}

// Decode reads the two button bytes. A short payload resets every
// button to released and reports failure.
func (b *Buttons) Decode(p []byte) bool {
	if len(p) < 2 {
		*b = Buttons{}
		return false
	}
	b.Left = p[0]&0x01 != 0
	b.Right = p[0]&0x02 != 0
	b.Down = p[0]&0x04 != 0
	b.Up = p[0]&0x08 != 0
	b.Plus = p[0]&0x10 != 0

	b.Two = p[1]&0x01 != 0
	b.One = p[1]&0x02 != 0
	b.B = p[1]&0x04 != 0
	b.A = p[1]&0x08 != 0
	b.Minus = p[1]&0x10 != 0
	b.Home = p[1]&0x80 != 0
	return true
}
