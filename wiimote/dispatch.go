package wiimote

import (
	"dio.wtf/wiimote/wiimote/log"
	"dio.wtf/wiimote/wiimote/report"
)

// interleavePairing buffers the first half of an interleaved report
// pair until its partner arrives. The two states make "both halves
// received but not consumed" unrepresentable.
type interleavePairing struct {
	state interleaveState
	first [21]byte
}

type interleaveState uint8

const (
	waitingFirstHalf interleaveState = iota
	waitingSecondHalf
)

func (ip *interleavePairing) reset() {
	ip.state = waitingFirstHalf
}

// Decode classifies one inbound packet by its leading type byte,
// slices the payload into the sub-ranges each codec expects, and
// updates the controller state. It reports whether a recognized packet
// was decoded in full.
//
// The remote emits transient garbage around mode transitions, so
// several conditions are deliberately dropped without signal: unknown
// type tags, duplicate or lone interleaved halves, and chunks for
// reads the device reported write-only. That keeps the read loop
// running through device quirks; callers that need stricter semantics
// must layer their own timeouts.
func (w *Wiimote) Decode(packet []byte) bool {
	if len(packet) == 0 {
		return false
	}
	id := report.InputReportId(packet[0])
	payload := packet[1:]

	if id.PayloadLength() < 0 {
		log.DebugF("unknown report type 0x%02X, dropped", packet[0])
		return false
	}

	switch id {
	case report.StatusInfo:
		return w.decodeStatus(payload)

	case report.ReadMemoryData:
		ok := w.Buttons.Decode(payload)
		return w.handleReadData(section(payload, 2, 21)) && ok

	case report.Acknowledge:
		ok := w.Buttons.Decode(payload)
		return w.handleAck(section(payload, 2, 4)) && ok

	case report.ReportButtons:
		return w.Buttons.Decode(payload)

	case report.ReportButtonsAccel:
		ok := w.Buttons.Decode(payload)
		return w.Accel.Decode(section(payload, 0, 5)) && ok

	case report.ReportButtonsExt8:
		ok := w.Buttons.Decode(payload)
		return w.Ext.decode(section(payload, 2, 10)) && ok

	case report.ReportButtonsAccelIr12:
		ok := w.Buttons.Decode(payload)
		ok = w.Accel.Decode(section(payload, 0, 5)) && ok
		return w.Ir.DecodeExtended(section(payload, 5, 17)) && ok

	case report.ReportButtonsExt19:
		ok := w.Buttons.Decode(payload)
		return w.Ext.decode(section(payload, 2, 21)) && ok

	case report.ReportButtonsAccelExt16:
		ok := w.Buttons.Decode(payload)
		ok = w.Accel.Decode(section(payload, 0, 5)) && ok
		return w.Ext.decode(section(payload, 5, 21)) && ok

	case report.ReportButtonsIr10Ext9:
		ok := w.Buttons.Decode(payload)
		ok = w.Ir.DecodeBasic(section(payload, 2, 12)) && ok
		return w.Ext.decode(section(payload, 12, 21)) && ok

	case report.ReportButtonsAccelIr10Ext6:
		ok := w.Buttons.Decode(payload)
		ok = w.Accel.Decode(section(payload, 0, 5)) && ok
		ok = w.Ir.DecodeBasic(section(payload, 5, 15)) && ok
		return w.Ext.decode(section(payload, 15, 21)) && ok

	case report.ReportExt21:
		return w.Ext.decode(section(payload, 0, 21))

	case report.ReportInterleaved:
		return w.decodeInterleavedFirst(payload)

	case report.ReportInterleavedAlt:
		return w.decodeInterleavedSecond(payload)
	}
	return false
}

// section carves a fixed sub-range out of the payload, or nil when the
// payload is too short, which the codecs answer by resetting to their
// neutral values.
func section(p []byte, lo, hi int) []byte {
	if len(p) < hi {
		return nil
	}
	return p[lo:hi]
}

// decodeStatus handles a status report: buttons, flag byte, battery.
// An unsolicited status means the remote just reset its report mode to
// the implicit default, so the last commanded mode is re-armed.
// Extension flag transitions drive plug and unplug handling.
func (w *Wiimote) decodeStatus(payload []byte) bool {
	ok := w.Buttons.Decode(payload)
	wasConnected := w.Status.ExtensionConnected
	ok = w.Status.Decode(section(payload, 2, 6)) && ok

	if w.statusRequested {
		w.statusRequested = false
	} else if err := w.sendReportMode(w.reportMode); err != nil {
		log.ErrorF("re-arm report mode: %s", err)
	}
	if !ok {
		return false
	}

	switch {
	case !wasConnected && w.Status.ExtensionConnected:
		if w.Ext.Variant != ExtMotionPlus {
			if err := w.activateExtension(); err != nil {
				log.ErrorF("activate extension: %s", err)
			} else if err := w.identifyExtension(); err != nil {
				log.ErrorF("identify extension: %s", err)
			}
		}
	case wasConnected && !w.Status.ExtensionConnected:
		if w.expectExtHotplug {
			// Transient unplug from a Motion Plus remap; the plug
			// half of the hotplug follows.
			w.expectExtHotplug = false
		} else {
			w.Ext.set(ExtNone)
		}
	}
	return true
}

// decodeInterleavedFirst buffers the first half of an interleaved
// pair. A half already waiting is stale and silently replaced.
func (w *Wiimote) decodeInterleavedFirst(payload []byte) bool {
	if len(payload) < 21 {
		w.interleave.reset()
		return false
	}
	if w.interleave.state == waitingSecondHalf {
		log.Debug("duplicate interleaved first half, stale half dropped")
	}
	copy(w.interleave.first[:], payload)
	w.interleave.state = waitingSecondHalf
	return true
}

// decodeInterleavedSecond combines a buffered first half with its
// partner into one accelerometer and one IR decode. A lone second half
// is dropped without failing.
func (w *Wiimote) decodeInterleavedSecond(payload []byte) bool {
	if w.interleave.state != waitingSecondHalf {
		log.Debug("interleaved second half with no first, dropped")
		return false
	}
	w.interleave.state = waitingFirstHalf
	if len(payload) < 21 {
		return false
	}
	first := w.interleave.first[:]
	ok := w.Buttons.Decode(payload)
	ok = w.Accel.DecodeInterleaved(first, payload) && ok
	return w.Ir.DecodeInterleaved(first, payload) && ok
}
