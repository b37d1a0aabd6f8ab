package codec

import (
	"math"
	"testing"
)

func TestAccelCalibZeroPoint(t *testing.T) {
	calib := DefaultAccelCalib()

	// Axis 0 averages the two rows where gravity is on another axis.
	if got, want := calib.Zero(0), (479.0+472.0)/2; got != want {
		t.Errorf("Zero(0) = %v, want %v", got, want)
	}
}

func TestAccelCalibGravityReference(t *testing.T) {
	calib := DefaultAccelCalib()

	// Feeding back the raw value sampled with axis 0 against gravity
	// must read exactly one g.
	if got := calib.Apply(0, 569); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Apply(0, 569) = %v, want 1.0", got)
	}
	if got := calib.Apply(1, 568); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Apply(1, 568) = %v, want 1.0", got)
	}
}

func TestAccelDecode(t *testing.T) {
	a := NewAccel()

	// X high byte 0x80 with low bits 0b11 in the spare button bits.
	p := []byte{0x60, 0x00, 0x80, 0x40, 0x20}
	if !a.Decode(p) {
		t.Fatal("decode failed")
	}
	if a.Raw[0] != 0x80<<2|0x03 {
		t.Errorf("x = %d, want %d", a.Raw[0], 0x80<<2|0x03)
	}
	if a.Raw[1] != 0x40<<2 {
		t.Errorf("y = %d, want %d", a.Raw[1], 0x40<<2)
	}
	if a.Raw[2] != 0x20<<2 {
		t.Errorf("z = %d, want %d", a.Raw[2], 0x20<<2)
	}
}

func TestAccelDecodeShort(t *testing.T) {
	a := NewAccel()
	a.Raw = [3]uint16{1, 2, 3}

	if a.Decode([]byte{0x00, 0x00}) {
		t.Error("short payload decoded")
	}
	if a.Raw != accelRest {
		t.Errorf("raw = %v, want rest %v", a.Raw, accelRest)
	}
}

func TestAccelDecodeInterleaved(t *testing.T) {
	a := NewAccel()

	first := make([]byte, 21)
	second := make([]byte, 21)
	first[2] = 0x90  // X
	second[2] = 0x50 // Y
	// Z bits 5-4, 3-2, 1-0 in the spare button bits.
	first[0] = 0x60
	first[1] = 0x60
	second[0] = 0x60

	if !a.DecodeInterleaved(first, second) {
		t.Fatal("decode failed")
	}
	if a.Raw[0] != 0x90<<2 {
		t.Errorf("x = %d, want %d", a.Raw[0], 0x90<<2)
	}
	if a.Raw[1] != 0x50<<2 {
		t.Errorf("y = %d, want %d", a.Raw[1], 0x50<<2)
	}
	if a.Raw[2] != 0x3F<<4 {
		t.Errorf("z = %d, want %d", a.Raw[2], 0x3F<<4)
	}
}
