package wiihid

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// HID-over-L2CAP transaction headers.
const (
	inputHeader  byte = 0xA1
	outputHeader byte = 0xA2
)

// Largest inbound frame: header, report type tag, 21 payload bytes.
const maxInputFrame = 23

var errMalformedFrame = errors.New("receive malformed hid frame")

// Conn is an open HID connection to one remote, implementing
// wiimote.Transport. Reads strip the 0xA1 input header, writes prepend
// the 0xA2 output header; the packets exchanged with the protocol
// layer start at the report type byte.
type Conn struct {
	Addr string

	ctrl int
	intr int
	buf  [maxInputFrame]byte
}

// Dial opens the control and interrupt channels to a remote. The
// remote must be in sync mode or already paired.
func Dial(addr string) (*Conn, error) {
	ctrl, err := ConnectSocket(addr, ctrlPsm)
	if nil != err {
		return nil, fmt.Errorf("control channel: %w", err)
	}
	intr, err := ConnectSocket(addr, intrPsm)
	if nil != err {
		unix.Close(ctrl)
		return nil, fmt.Errorf("interrupt channel: %w", err)
	}
	return &Conn{Addr: addr, ctrl: ctrl, intr: intr}, nil
}

// Read blocks for the next inbound packet on the interrupt channel.
func (c *Conn) Read() ([]byte, error) {
	n, err := unix.Read(c.intr, c.buf[:])
	if nil != err {
		return nil, err
	}
	if n < 2 || c.buf[0] != inputHeader {
		return nil, errMalformedFrame
	}
	packet := make([]byte, n-1)
	copy(packet, c.buf[1:n])
	return packet, nil
}

// Write sends one outbound packet on the interrupt channel.
func (c *Conn) Write(p []byte) (int, error) {
	frame := make([]byte, len(p)+1)
	frame[0] = outputHeader
	copy(frame[1:], p)
	n, err := unix.Write(c.intr, frame)
	if n > 0 {
		n--
	}
	return n, err
}

// Close tears down both channels.
func (c *Conn) Close() error {
	intrErr := unix.Close(c.intr)
	ctrlErr := unix.Close(c.ctrl)
	if nil != intrErr {
		return intrErr
	}
	return ctrlErr
}
