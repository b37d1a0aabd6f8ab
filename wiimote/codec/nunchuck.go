package codec

// Nunchuck decodes the 6-byte nunchuk extension block: an 8-bit
// analog stick, a 10-bit 3-axis accelerometer whose low bits are
// packed into the final byte, and the active-low C and Z buttons.
type Nunchuck struct {
	Stick [2]uint8
	Accel Accel
	C     bool
	Z     bool
}

func NewNunchuck() *Nunchuck {
	return &Nunchuck{
		Stick: [2]uint8{128, 128},
		Accel: *NewAccel(),
	}
}

// Decode reads one extension block. A short payload resets the stick
// to center, the accelerometer to rest, both buttons to released, and
// reports failure.
func (n *Nunchuck) Decode(p []byte) bool {
	if len(p) < 6 {
		n.Stick = [2]uint8{128, 128}
		n.Accel.Raw = accelRest
		n.C = false
		n.Z = false
		return false
	}
	n.Stick[0] = p[0]
	n.Stick[1] = p[1]
	n.Accel.Raw[0] = uint16(p[2])<<2 | uint16(p[5]>>2)&0x03
	n.Accel.Raw[1] = uint16(p[3])<<2 | uint16(p[5]>>4)&0x03
	n.Accel.Raw[2] = uint16(p[4])<<2 | uint16(p[5]>>6)&0x03
	n.Z = p[5]&0x01 == 0
	n.C = p[5]&0x02 == 0
	return true
}
