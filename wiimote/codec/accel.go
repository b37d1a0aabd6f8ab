package codec

// accelRest is the mid-scale reading the decoder falls back to on a
// short payload, roughly a motionless remote lying flat.
var accelRest = [3]uint16{512, 512, 512}

// AccelCalib holds three raw samples, one per canonical orientation:
// row 0 taken with the Z axis against gravity, row 1 with the Y axis,
// row 2 with the X axis. The defaults are experimentally measured
// values for a stock remote and can be replaced with a per-device
// sample read from EEPROM.
type AccelCalib struct {
	Rows [3][3]int
}

func DefaultAccelCalib() AccelCalib {
	return AccelCalib{Rows: [3][3]int{
		{479, 478, 569},
		{472, 568, 476},
		{569, 469, 476},
	}}
}

// gravityRow maps each axis to the calibration row sampled with that
// axis pointing against gravity.
var gravityRow = [3]int{2, 1, 0}

// zeroRows maps each axis to the two rows whose gravity component does
// not dominate that axis; their average is the axis zero point.
var zeroRows = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// Zero returns the zero point of an axis.
func (c AccelCalib) Zero(axis int) float64 {
	r := zeroRows[axis]
	return float64(c.Rows[r[0]][axis]+c.Rows[r[1]][axis]) / 2
}

// Apply converts a raw axis reading to units of gravity, approximately
// -1..1 with +1 at the reading sampled for the gravity row.
func (c AccelCalib) Apply(axis int, raw uint16) float64 {
	zero := c.Zero(axis)
	g := float64(c.Rows[gravityRow[axis]][axis])
	return (float64(raw) - zero) / (g - zero)
}

// Accel decodes the remote's 3-axis accelerometer. Samples are 10 bit
// wide; the high 8 bits of each axis live in payload bytes 2-4 while
// the low bits are stolen from the spare bits of the two button bytes.
type Accel struct {
	Raw   [3]uint16
	Calib AccelCalib
}

func NewAccel() *Accel {
	return &Accel{Raw: accelRest, Calib: DefaultAccelCalib()}
}

// Decode reads a 5-byte buttons+accel block. A short payload resets
// the sample to rest and reports failure.
func (a *Accel) Decode(p []byte) bool {
	if len(p) < 5 {
		a.Raw = accelRest
		return false
	}
	a.Raw[0] = uint16(p[2])<<2 | uint16(p[0]>>5)&0x03
	a.Raw[1] = uint16(p[3])<<2 | uint16(p[1]>>4)&0x02
	a.Raw[2] = uint16(p[4])<<2 | uint16(p[1]>>5)&0x02
	return true
}

// DecodeInterleaved combines the two halves of an interleaved report
// pair. X arrives in the first half, Y in the second, both at 8-bit
// precision; Z is a 6-bit value spread over the spare button bits of
// all four button bytes.
func (a *Accel) DecodeInterleaved(first, second []byte) bool {
	if len(first) < 3 || len(second) < 3 {
		a.Raw = accelRest
		return false
	}
	a.Raw[0] = uint16(first[2]) << 2
	a.Raw[1] = uint16(second[2]) << 2
	z := uint16(first[0]&0x60)>>1 |
		uint16(first[1]&0x60)>>3 |
		uint16(second[0]&0x60)>>5
	a.Raw[2] = z << 4
	return true
}

// Calibrated returns the current sample in units of gravity.
func (a *Accel) Calibrated() [3]float64 {
	var out [3]float64
	for axis := range out {
		out[axis] = a.Calib.Apply(axis, a.Raw[axis])
	}
	return out
}
