package codec

import (
	"math"
	"testing"
)

func TestMotionPlusDecode(t *testing.T) {
	m := NewMotionPlus()

	// Yaw = 0x2345 across byte 0 and the high 6 bits of byte 3, yaw
	// marked slow, pitch fast.
	p := []byte{0x45, 0x00, 0x00, 0x8C&0xFC | 0x02, 0x02, 0x00}
	if !m.Decode(p) {
		t.Fatal("decode failed")
	}
	if m.Raw[MpYaw] != 0x45|0x8C<<6 {
		t.Errorf("yaw = %#x, want %#x", m.Raw[MpYaw], 0x45|0x8C<<6)
	}
	if !m.Slow[MpYaw] || !m.Slow[MpRoll] || m.Slow[MpPitch] {
		t.Errorf("slow = %v, want [true true false]", m.Slow)
	}
}

func TestMotionPlusRates(t *testing.T) {
	m := NewMotionPlus()
	m.Zero = [3]uint16{8000, 8000, 8000}
	m.Raw = [3]uint16{8200, 8200, 8200}
	m.Slow = [3]bool{true, false, true}

	rates := m.Rates()
	if got, want := rates[MpYaw], 200.0/slowUnitsPerDegSec; got != want {
		t.Errorf("slow yaw = %v, want %v", got, want)
	}
	want := 200.0 * fastScale / slowUnitsPerDegSec
	if math.Abs(rates[MpRoll]-want) > 1e-9 {
		t.Errorf("fast roll = %v, want %v", rates[MpRoll], want)
	}
}

func TestMotionPlusCalibrateSurvivesShortPayload(t *testing.T) {
	m := NewMotionPlus()
	m.Raw = [3]uint16{8100, 8100, 8100}
	m.Calibrate()

	if m.Decode([]byte{1, 2}) {
		t.Error("short payload decoded")
	}
	if m.Zero != [3]uint16{8100, 8100, 8100} {
		t.Errorf("zero = %v, calibration lost", m.Zero)
	}
	if m.Raw != m.Zero {
		t.Errorf("raw = %v, want reset to zero baseline", m.Raw)
	}
	for axis, rate := range m.Rates() {
		if rate != 0 {
			t.Errorf("axis %d rate = %v after reset, want 0", axis, rate)
		}
	}
}
