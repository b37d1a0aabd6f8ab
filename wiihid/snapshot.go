package wiihid

import (
	"dio.wtf/wiimote/wiimote"
	"dio.wtf/wiimote/wiimote/codec"
)

// Snapshot is a consistent copy of one controller's state, safe to
// hold while the session's read loop keeps decoding. At most one of
// the extension decoder fields is non-nil, matching Extension.
type Snapshot struct {
	Session string
	Addr    string
	Device  wiimote.DeviceType

	Buttons  codec.Buttons
	AccelRaw [3]uint16
	Accel    [3]float64
	Battery  uint8

	Extension  wiimote.ExtensionVariant
	Nunchuck   *codec.Nunchuck
	Classic    *codec.Classic
	WiiUPro    *codec.WiiUPro
	Guitar     *codec.Guitar
	MotionPlus *codec.MotionPlus
}

// Snapshot copies the controller state under the session lock. The
// extension decoder copies are owned by the caller.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.controller
	snap := Snapshot{
		Session:   s.Id,
		Addr:      s.Addr,
		Device:    c.Device,
		Buttons:   c.Buttons,
		AccelRaw:  c.Accel.Raw,
		Accel:     c.Accel.Calibrated(),
		Battery:   c.Status.Battery,
		Extension: c.Ext.Variant,
	}
	switch c.Ext.Variant {
	case wiimote.ExtNunchuck:
		n := *c.Ext.Nunchuck
		snap.Nunchuck = &n
	case wiimote.ExtClassic:
		cc := *c.Ext.Classic
		snap.Classic = &cc
	case wiimote.ExtWiiUPro:
		p := *c.Ext.WiiUPro
		snap.WiiUPro = &p
	case wiimote.ExtGuitar:
		g := *c.Ext.Guitar
		snap.Guitar = &g
	case wiimote.ExtMotionPlus:
		m := *c.Ext.MotionPlus
		snap.MotionPlus = &m
	}
	return snap
}
