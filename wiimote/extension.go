package wiimote

import (
	"dio.wtf/wiimote/wiimote/codec"
)

// ExtensionVariant tags the peripheral plugged into the expansion
// port. The Motion Plus passthrough variants are recognized but carry
// no decoder; only their raw bytes are kept.
type ExtensionVariant uint8

const (
	ExtNone ExtensionVariant = iota
	ExtNunchuck
	ExtClassic
	ExtClassicPro
	ExtWiiUPro
	ExtMotionPlus
	ExtMotionPlusNunchuck
	ExtMotionPlusClassic
	ExtGuitar
)

func (v ExtensionVariant) String() string {
	switch v {
	case ExtNone:
		return "None"
	case ExtNunchuck:
		return "Nunchuck"
	case ExtClassic:
		return "Classic"
	case ExtClassicPro:
		return "ClassicPro"
	case ExtWiiUPro:
		return "WiiUPro"
	case ExtMotionPlus:
		return "MotionPlus"
	case ExtMotionPlusNunchuck:
		return "MotionPlusNunchuck"
	case ExtMotionPlusClassic:
		return "MotionPlusClassic"
	case ExtGuitar:
		return "Guitar"
	default:
		return "UNKNOWN"
	}
}

// Extension identifiers: the 6 bytes at the identification register
// folded into a 48-bit big-endian value.
const (
	idNunchuck           uint64 = 0x0000A4200000
	idNunchuckAlt        uint64 = 0xFF00A4200000
	idClassic            uint64 = 0x0000A4200101
	idClassicPro         uint64 = 0x0100A4200101
	idWiiUPro            uint64 = 0x0000A4200120
	idGuitar             uint64 = 0x0000A4200103
	idMotionPlus         uint64 = 0x0000A4200405
	idMotionPlusNunchuck uint64 = 0x0000A4200505
	idMotionPlusClassic  uint64 = 0x0000A4200705
	idMotionPlusInactive uint64 = 0x0000A6200005

	// Byte 0 of a Motion Plus identifier differs between firmware
	// revisions and byte 4 tracks transient activation state; neither
	// identifies the peripheral, so both are masked before comparing.
	motionPlusIdMask uint64 = 0x00FFFFFF00FF
)

func extensionId(id6 []byte) uint64 {
	var id uint64
	for _, b := range id6 {
		id = id<<8 | uint64(b)
	}
	return id
}

// IdentifyExtension maps the 6-byte identification register value to
// a variant. Unrecognized identifiers come back as ExtNone; the raw
// extension bytes remain available on the Extension for debugging.
func IdentifyExtension(id6 []byte) ExtensionVariant {
	if len(id6) != 6 {
		return ExtNone
	}
	switch extensionId(id6) {
	case idNunchuck, idNunchuckAlt:
		return ExtNunchuck
	case idClassic:
		return ExtClassic
	case idClassicPro:
		return ExtClassicPro
	case idWiiUPro:
		return ExtWiiUPro
	case idGuitar:
		return ExtGuitar
	case idMotionPlusNunchuck:
		return ExtMotionPlusNunchuck
	case idMotionPlusClassic:
		return ExtMotionPlusClassic
	}
	if extensionId(id6)&motionPlusIdMask == idMotionPlus&motionPlusIdMask {
		return ExtMotionPlus
	}
	return ExtNone
}

// IdentifyMotionPlus reports whether the 6 bytes read from the Motion
// Plus probe register carry the inactive Motion Plus signature. This
// detects presence before activation and is independent of
// IdentifyExtension.
func IdentifyMotionPlus(id6 []byte) bool {
	if len(id6) != 6 {
		return false
	}
	return extensionId(id6)&motionPlusIdMask == idMotionPlusInactive&motionPlusIdMask
}

// Extension couples the active variant with its decoder. Exactly one
// decoder pointer is non-nil at a time, matching Variant; dispatch is
// a switch on the tag, never a type test.
type Extension struct {
	Variant ExtensionVariant

	Nunchuck   *codec.Nunchuck
	Classic    *codec.Classic
	WiiUPro    *codec.WiiUPro
	Guitar     *codec.Guitar
	MotionPlus *codec.MotionPlus

	// Raw keeps the latest undecoded extension payload, useful when
	// the peripheral is unrecognized or a passthrough variant.
	Raw []byte
}

// set swaps the decoder only when the variant actually changes.
// Re-identifying the same variant keeps the existing decoder so
// accumulated state such as an in-progress calibration survives.
func (e *Extension) set(v ExtensionVariant) {
	if v == e.Variant {
		return
	}
	*e = Extension{Variant: v}
	switch v {
	case ExtNunchuck:
		e.Nunchuck = codec.NewNunchuck()
	case ExtClassic:
		e.Classic = codec.NewClassic()
	case ExtWiiUPro:
		e.WiiUPro = codec.NewWiiUPro()
	case ExtGuitar:
		e.Guitar = codec.NewGuitar()
	case ExtMotionPlus:
		e.MotionPlus = codec.NewMotionPlus()
	}
}

// decode routes an extension sub-range to the active decoder. Variants
// without a decoder only record the raw bytes.
func (e *Extension) decode(p []byte) bool {
	e.Raw = append(e.Raw[:0], p...)
	switch e.Variant {
	case ExtNunchuck:
		return e.Nunchuck.Decode(p)
	case ExtClassic:
		return e.Classic.Decode(p)
	case ExtWiiUPro:
		return e.WiiUPro.Decode(p)
	case ExtGuitar:
		return e.Guitar.Decode(p)
	case ExtMotionPlus:
		return e.MotionPlus.Decode(p)
	default:
		return true
	}
}
