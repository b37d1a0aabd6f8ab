package wiimote

import (
	"errors"

	"dio.wtf/wiimote/wiimote/log"
	"dio.wtf/wiimote/wiimote/report"
)

// RegisterSpace selects which onboard memory region register commands
// address.
type RegisterSpace byte

const (
	SpaceEeprom  RegisterSpace = 0x00
	SpaceControl RegisterSpace = 0x04
)

// Device error code reported for reads of write-only registers.
const errCodeWriteOnly = 0x07

var (
	errReadPending  = errors.New("register read already pending")
	errWriteTooLong = errors.New("register write exceeds 16 bytes")
)

type registerState uint8

const (
	registerIdle registerState = iota
	registerAwaitingChunks
)

type registerRequest struct {
	offset   uint32
	size     uint16
	buf      []byte
	expected uint32
	done     func([]byte)
}

// registerChannel reassembles one multi-chunk register read at a time.
// The two states make an accidental second in-flight read
// unrepresentable: beginRead refuses anything outside registerIdle.
type registerChannel struct {
	state registerState
	req   registerRequest
}

func (rc *registerChannel) reset() {
	rc.state = registerIdle
	rc.req = registerRequest{}
}

// ReadRegisters issues a register read. The remote answers with one or
// more ReadMemoryData reports whose chunks are reassembled into a
// buffer of exactly size bytes; done is invoked once, with the full
// buffer, when the last chunk lands. A read of a write-only register
// is cancelled silently with no callback, so callers that need to
// detect that case must apply their own timeout. Fails if another read
// is still pending.
func (w *Wiimote) ReadRegisters(space RegisterSpace, offset uint32, size uint16, done func([]byte)) error {
	if w.registers.state != registerIdle {
		return errReadPending
	}
	if err := w.send(report.ReadMemoryRegisters, report.ReadRegistersPayload(byte(space), offset, size)); err != nil {
		return err
	}
	w.registers.state = registerAwaitingChunks
	w.registers.req = registerRequest{
		offset:   offset,
		size:     size,
		buf:      make([]byte, size),
		expected: offset,
		done:     done,
	}
	return nil
}

// WriteRegisters writes up to 16 bytes to an onboard register. The
// remote acknowledges with an Acknowledge report; write errors surface
// there, not here.
func (w *Wiimote) WriteRegisters(space RegisterSpace, offset uint32, data []byte) error {
	if len(data) > report.MaxRegisterBurst {
		return errWriteTooLong
	}
	return w.send(report.WriteMemoryRegisters, report.WriteRegistersPayload(byte(space), offset, data))
}

// handleReadData consumes one ReadMemoryData chunk: a nibble-encoded
// chunk size, a 4-bit error code, the low 16 bits of the chunk offset,
// and up to 16 data bytes.
func (w *Wiimote) handleReadData(p []byte) bool {
	if len(p) < 3 {
		return false
	}
	if w.registers.state != registerAwaitingChunks {
		log.Debug("register chunk with no pending read, dropped")
		return false
	}
	size := int(p[0]>>4) + 1
	errCode := p[0] & 0x0F
	if errCode == errCodeWriteOnly {
		// Write-only register: the device will never deliver data, so
		// the pending read dies quietly.
		w.registers.reset()
		return true
	}
	if errCode != 0 {
		log.DebugF("register read error 0x%02X, dropped chunk", errCode)
		return false
	}
	if len(p) < 3+size {
		return false
	}

	req := &w.registers.req
	wireOffset := uint16(p[1])<<8 | uint16(p[2])
	if wireOffset != uint16(req.expected) {
		log.DebugF("register chunk offset 0x%04X, expected 0x%04X", wireOffset, uint16(req.expected))
	}

	at := req.expected - req.offset
	if int(at)+size > len(req.buf) {
		// Oversized chunk would run past the request; refuse it
		// without touching what has already been assembled.
		log.DebugF("register chunk of %d bytes overflows %d-byte read, dropped", size, req.size)
		return false
	}
	copy(req.buf[at:], p[3:3+size])
	req.expected += uint32(size)

	if req.expected >= req.offset+uint32(req.size) {
		done, buf := req.done, req.buf
		w.registers.reset()
		if done != nil {
			done(buf)
		}
	}
	return true
}

// handleAck consumes an Acknowledge report: the output report id being
// acknowledged and a result code.
func (w *Wiimote) handleAck(p []byte) bool {
	if len(p) < 2 {
		return false
	}
	if p[1] != 0 {
		log.DebugF("%s rejected with error 0x%02X", report.OutputReportId(p[0]), p[1])
	}
	return true
}
