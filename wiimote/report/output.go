package report

import (
	"fmt"
	"strings"
)

const (
	// RumbleBit rides in payload byte 0 of every outbound report while
	// the vibration motor is on; the remote masks it off before
	// interpreting the byte.
	RumbleBit byte = 0x01

	// MaxRegisterBurst is the largest data block one register write
	// (and one read-reply chunk) can carry.
	MaxRegisterBurst = 16
)

// LedPayload builds the Leds report payload. LED 1 is the leftmost on
// the remote.
func LedPayload(l1, l2, l3, l4 bool) []byte {
	var b byte
	if l1 {
		b |= 0x10
	}
	if l2 {
		b |= 0x20
	}
	if l3 {
		b |= 0x40
	}
	if l4 {
		b |= 0x80
	}
	return []byte{b}
}

// DataReportModePayload builds the DataReportMode payload selecting
// which data report the remote streams.
func DataReportModePayload(mode InputReportId) []byte {
	return []byte{0x00, byte(mode)}
}

// IrEnablePayload serves both IrCameraEnable reports.
func IrEnablePayload(enable bool) []byte {
	if enable {
		return []byte{0x04}
	}
	return []byte{0x00}
}

// ReadRegistersPayload builds the ReadMemoryRegisters payload: address
// space, 3-byte big-endian offset, 2-byte big-endian size.
func ReadRegistersPayload(space byte, offset uint32, size uint16) []byte {
	return []byte{
		space,
		byte(offset >> 16), byte(offset >> 8), byte(offset),
		byte(size >> 8), byte(size),
	}
}

// WriteRegistersPayload builds the fixed 21-byte WriteMemoryRegisters
// payload. Data must not exceed MaxRegisterBurst; the block is
// zero-padded to 16 bytes on the wire.
func WriteRegistersPayload(space byte, offset uint32, data []byte) []byte {
	p := make([]byte, 21)
	p[0] = space
	p[1] = byte(offset >> 16)
	p[2] = byte(offset >> 8)
	p[3] = byte(offset)
	p[4] = byte(len(data))
	copy(p[5:], data)
	return p
}

// Dump renders a packet for debug logging.
func Dump(packet []byte) string {
	var builder strings.Builder
	for _, p := range packet {
		builder.WriteString(fmt.Sprintf("0x%02X ", p))
	}
	return strings.TrimSpace(builder.String())
}
