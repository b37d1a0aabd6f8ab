package wiimote

import "testing"

func TestIdentifyExtension(t *testing.T) {
	cases := []struct {
		id   []byte
		want ExtensionVariant
	}{
		{[]byte{0x00, 0x00, 0xA4, 0x20, 0x00, 0x00}, ExtNunchuck},
		{[]byte{0xFF, 0x00, 0xA4, 0x20, 0x00, 0x00}, ExtNunchuck},
		{[]byte{0x00, 0x00, 0xA4, 0x20, 0x01, 0x01}, ExtClassic},
		{[]byte{0x01, 0x00, 0xA4, 0x20, 0x01, 0x01}, ExtClassicPro},
		{[]byte{0x00, 0x00, 0xA4, 0x20, 0x01, 0x20}, ExtWiiUPro},
		{[]byte{0x00, 0x00, 0xA4, 0x20, 0x01, 0x03}, ExtGuitar},
		{[]byte{0x00, 0x00, 0xA4, 0x20, 0x04, 0x05}, ExtMotionPlus},
		// Bytes 0 and 4 vary across Motion Plus revisions and states.
		{[]byte{0x17, 0x00, 0xA4, 0x20, 0x24, 0x05}, ExtMotionPlus},
		{[]byte{0x00, 0x00, 0xA4, 0x20, 0x05, 0x05}, ExtMotionPlusNunchuck},
		{[]byte{0x00, 0x00, 0xA4, 0x20, 0x07, 0x05}, ExtMotionPlusClassic},
		{[]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x00}, ExtNone},
		{[]byte{0x00, 0x00}, ExtNone},
	}
	for _, c := range cases {
		if got := IdentifyExtension(c.id); got != c.want {
			t.Errorf("IdentifyExtension(% X) = %s, want %s", c.id, got, c.want)
		}
	}
}

func TestIdentifyMotionPlus(t *testing.T) {
	if !IdentifyMotionPlus([]byte{0x00, 0x00, 0xA6, 0x20, 0x00, 0x05}) {
		t.Error("inactive signature not recognized")
	}
	// Masked positions 0 and 4 may carry anything.
	if !IdentifyMotionPlus([]byte{0xA6, 0x00, 0xA6, 0x20, 0x04, 0x05}) {
		t.Error("masked signature not recognized")
	}
	// An active Motion Plus answers on the ordinary extension register
	// instead; its identifier must not read as the inactive probe.
	if IdentifyMotionPlus([]byte{0x00, 0x00, 0xA4, 0x20, 0x04, 0x05}) {
		t.Error("active identifier recognized as inactive probe")
	}
	if IdentifyMotionPlus([]byte{0x00, 0x05}) {
		t.Error("short identifier recognized")
	}
}

func TestExtensionSetKeepsDecoderOnSameVariant(t *testing.T) {
	var e Extension
	e.set(ExtMotionPlus)
	mp := e.MotionPlus
	if mp == nil {
		t.Fatal("no decoder constructed")
	}
	mp.Zero = [3]uint16{1, 2, 3}

	// Re-identifying the same peripheral must not discard calibration.
	e.set(ExtMotionPlus)
	if e.MotionPlus != mp {
		t.Error("decoder replaced on same-variant identification")
	}

	e.set(ExtNunchuck)
	if e.MotionPlus != nil || e.Nunchuck == nil {
		t.Error("decoder not swapped on variant change")
	}
	if e.Variant != ExtNunchuck {
		t.Errorf("variant = %s", e.Variant)
	}
}

func TestExtensionDecodeWithoutDecoderKeepsRaw(t *testing.T) {
	var e Extension
	e.set(ExtClassicPro)
	if e.Classic != nil {
		t.Fatal("passthrough variant constructed a decoder")
	}
	p := []byte{1, 2, 3, 4, 5, 6}
	if !e.decode(p) {
		t.Error("raw-only decode failed")
	}
	if len(e.Raw) != 6 || e.Raw[0] != 1 {
		t.Errorf("raw = % X", e.Raw)
	}
}
