package codec

import "testing"

func TestIrDecodeBasic(t *testing.T) {
	ir := NewIr()

	p := make([]byte, 10)
	// First group: dot 0 at (0x1FF, 0x2FF), dot 1 invisible.
	p[0] = 0xFF
	p[1] = 0xFF
	p[2] = 0x01<<4 | 0x02<<6 | 0x0F // dot 0 high bits, dot 1 blanked
	p[3] = 0xFF
	p[4] = 0xFF
	// Second group entirely blank.
	for i := 5; i < 10; i++ {
		p[i] = 0xFF
	}

	if !ir.DecodeBasic(p) {
		t.Fatal("decode failed")
	}
	if ir.Mode != IrBasic {
		t.Errorf("mode = %v, want IrBasic", ir.Mode)
	}
	d := ir.Dots[0]
	if !d.Visible || d.X != 0x1FF || d.Y != 0x2FF {
		t.Errorf("dot 0 = %+v, want visible at (0x1FF, 0x2FF)", d)
	}
	for i := 1; i < 4; i++ {
		if ir.Dots[i].Visible {
			t.Errorf("dot %d visible, want blank", i)
		}
	}
}

func TestIrDecodeExtended(t *testing.T) {
	ir := NewIr()

	p := make([]byte, 12)
	for i := range p {
		p[i] = 0xFF
	}
	// Dot 2 at (0x123, 0x245) with size 7.
	p[6] = 0x23
	p[7] = 0x45
	p[8] = 0x10 | 0x80 | 0x07

	if !ir.DecodeExtended(p) {
		t.Fatal("decode failed")
	}
	d := ir.Dots[2]
	if !d.Visible || d.X != 0x123 || d.Y != 0x245 || d.Size != 7 {
		t.Errorf("dot 2 = %+v, want (0x123, 0x245) size 7", d)
	}
	if ir.Dots[0].Visible || ir.Dots[3].Visible {
		t.Error("blank dots decoded visible")
	}
}

func TestIrDecodeInterleaved(t *testing.T) {
	ir := NewIr()

	first := make([]byte, 21)
	second := make([]byte, 21)
	for i := 3; i < 21; i++ {
		first[i] = 0xFF
		second[i] = 0xFF
	}
	// Dot 0 lives in the first half: position, box, intensity.
	copy(first[3:12], []byte{0x10, 0x20, 0x05, 1, 2, 3, 4, 0, 0xAA})

	if !ir.DecodeInterleaved(first, second) {
		t.Fatal("decode failed")
	}
	if ir.Mode != IrFull {
		t.Errorf("mode = %v, want IrFull", ir.Mode)
	}
	d := ir.Dots[0]
	if !d.Visible || d.X != 0x10 || d.Y != 0x20 || d.Size != 5 {
		t.Errorf("dot 0 = %+v", d)
	}
	if d.XMin != 1 || d.YMin != 2 || d.XMax != 3 || d.YMax != 4 || d.Intensity != 0xAA {
		t.Errorf("dot 0 box = %+v", d)
	}
	if ir.Dots[1].Visible {
		t.Error("blank dot decoded visible")
	}
}

func TestIrDecodeShortResets(t *testing.T) {
	ir := NewIr()
	ir.Dots[0] = IrDot{Visible: true, X: 1, Y: 2}

	if ir.DecodeBasic(make([]byte, 4)) {
		t.Error("short payload decoded")
	}
	if ir.Dots[0].Visible {
		t.Error("dots not cleared")
	}
}
