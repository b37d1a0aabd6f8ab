package codec

// motionPlusRest is the raw reading of a motionless gyro, used as the
// factory zero baseline until Calibrate replaces it.
const motionPlusRest = 8063

// fastScale converts fast-mode counts to slow-mode units: fast mode
// trades resolution for a 2000 deg/s range against 440 deg/s.
const fastScale = 2000.0 / 440.0

// slowUnitsPerDegSec is the slow-mode sensitivity.
const slowUnitsPerDegSec = 20.0

// Motion Plus axes, indexing Raw, Slow and Zero.
const (
	MpYaw = iota
	MpRoll
	MpPitch
)

// MotionPlus decodes the 6-byte Motion Plus block: three 14-bit
// rotation rates split across two bytes each, plus a slow/fast
// precision bit per axis.
type MotionPlus struct {
	Raw  [3]uint16
	Slow [3]bool
	Zero [3]uint16

	// ExtensionPassthrough reports whether another extension is
	// plugged in behind the Motion Plus.
	ExtensionPassthrough bool
}

func NewMotionPlus() *MotionPlus {
	m := &MotionPlus{}
	for axis := range m.Raw {
		m.Raw[axis] = motionPlusRest
		m.Slow[axis] = true
		m.Zero[axis] = motionPlusRest
	}
	return m
}

// Decode reads one extension block. A short payload resets the rates
// to the zero baseline in slow mode and reports failure. The zero
// baseline itself is preserved so an in-progress calibration survives
// transient glitches.
func (m *MotionPlus) Decode(p []byte) bool {
	if len(p) < 6 {
		m.Raw = m.Zero
		m.Slow = [3]bool{true, true, true}
		return false
	}
	m.Raw[MpYaw] = uint16(p[0]) | uint16(p[3]&0xFC)<<6
	m.Raw[MpRoll] = uint16(p[1]) | uint16(p[4]&0xFC)<<6
	m.Raw[MpPitch] = uint16(p[2]) | uint16(p[5]&0xFC)<<6

	m.Slow[MpYaw] = p[3]&0x02 != 0
	m.Slow[MpPitch] = p[3]&0x01 != 0
	m.Slow[MpRoll] = p[4]&0x02 != 0
	m.ExtensionPassthrough = p[4]&0x01 != 0
	return true
}

// Calibrate adopts the current raw reading as the per-axis zero
// baseline. Call while the remote is stationary.
func (m *MotionPlus) Calibrate() {
	m.Zero = m.Raw
}

// Rates returns the rotation rates in degrees per second, positive
// counter-clockwise around each axis.
func (m *MotionPlus) Rates() [3]float64 {
	var out [3]float64
	for axis := range out {
		r := float64(int(m.Raw[axis]) - int(m.Zero[axis]))
		if !m.Slow[axis] {
			r *= fastScale
		}
		out[axis] = r / slowUnitsPerDegSec
	}
	return out
}
