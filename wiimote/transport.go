package wiimote

// Transport is the HID packet collaborator a Wiimote talks through.
// Read blocks until the next inbound packet, returned without any
// transport-level framing: byte 0 is the report type tag. Write sends
// one outbound packet in the same shape. Errors from either side are
// handed to the caller unmodified.
type Transport interface {
	Read() ([]byte, error)
	Write(p []byte) (int, error)
	Close() error
}
