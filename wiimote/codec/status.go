package codec

// Status mirrors the flag and battery bytes of a status report. The
// decoder receives the payload after the two button bytes: the flag
// byte first, the battery level last, with the two reserved bytes the
// remote pads in between tolerated but ignored.
type Status struct {
	BatteryLow         bool
	ExtensionConnected bool
	SpeakerEnabled     bool
	IrEnabled          bool
	Leds               [4]bool
	Battery            uint8
}

// Decode reads the flag byte and battery level. A short payload resets
// every field and reports failure.
func (s *Status) Decode(p []byte) bool {
	if len(p) < 2 {
		*s = Status{}
		return false
	}
	flags := p[0]
	s.BatteryLow = flags&0x01 != 0
	s.ExtensionConnected = flags&0x02 != 0
	s.SpeakerEnabled = flags&0x04 != 0
	s.IrEnabled = flags&0x08 != 0
	for i := range s.Leds {
		s.Leds[i] = flags&(0x10<<i) != 0
	}
	s.Battery = p[len(p)-1]
	return true
}
