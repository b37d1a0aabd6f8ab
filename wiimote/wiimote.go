package wiimote

import (
	"errors"

	"golang.org/x/exp/slices"

	"dio.wtf/wiimote/wiimote/codec"
	"dio.wtf/wiimote/wiimote/report"
)

// DeviceType classifies the controller hardware behind a connection.
// A base remote is assumed until an extension identification proves
// otherwise.
type DeviceType uint8

const (
	DeviceRemote DeviceType = iota
	DeviceWiiUPro
)

func (d DeviceType) String() string {
	switch d {
	case DeviceRemote:
		return "Remote"
	case DeviceWiiUPro:
		return "WiiUPro"
	default:
		return "UNKNOWN"
	}
}

// Onboard control-register addresses.
const (
	regIrSensitivity1 uint32 = 0xB00000
	regIrSensitivity2 uint32 = 0xB0001A
	regIrEnable       uint32 = 0xB00030
	regIrMode         uint32 = 0xB00033

	regExtInit uint32 = 0xA400F0
	regExtId   uint32 = 0xA400FA
	regExtMode uint32 = 0xA400FB

	regMpInit uint32 = 0xA600F0
	regMpId   uint32 = 0xA600FA
	regMpMode uint32 = 0xA600FE
)

const (
	extInitValue byte = 0x55
	extModeValue byte = 0x00
	mpModeValue  byte = 0x04
)

// IR camera sensitivity, middle of the five ranges Nintendo ships.
var (
	irSensitivity1 = []byte{0x02, 0x00, 0x00, 0x71, 0x01, 0x00, 0xAA, 0x00, 0x64}
	irSensitivity2 = []byte{0x63, 0x03}
)

var errInvalidReportMode = errors.New("report id is not a data report mode")

// The control report ids a remote never streams as data reports.
var nonDataModes = []report.InputReportId{
	report.StatusInfo,
	report.ReadMemoryData,
	report.Acknowledge,
}

// Wiimote decodes the wire protocol of one connected controller. The
// exported codec fields always reflect the most recent decode.
//
// A Wiimote is not safe for concurrent use: Decode must only run from
// the single transport read loop, in arrival order, and outbound
// commands must be serialized onto one sequential path per device.
// That single-consumer discipline is what upholds the one-pending-
// register-read invariant; no lock below it enforces mutual exclusion.
type Wiimote struct {
	transport Transport

	Buttons codec.Buttons
	Accel   *codec.Accel
	Ir      *codec.Ir
	Status  codec.Status
	Ext     Extension

	Device DeviceType

	reportMode       report.InputReportId
	rumble           bool
	statusRequested  bool
	expectExtHotplug bool

	registers  registerChannel
	interleave interleavePairing
}

func NewWiimote(t Transport) *Wiimote {
	return &Wiimote{
		transport:  t,
		Accel:      codec.NewAccel(),
		Ir:         codec.NewIr(),
		reportMode: report.ReportButtons,
	}
}

// send frames and writes one outbound report. Payload byte 0 carries
// the rumble bit whenever the motor is on, regardless of report type;
// the remote masks it off.
func (w *Wiimote) send(id report.OutputReportId, payload []byte) error {
	packet := make([]byte, len(payload)+1)
	packet[0] = byte(id)
	copy(packet[1:], payload)
	if w.rumble && len(payload) > 0 {
		packet[1] |= report.RumbleBit
	}
	_, err := w.transport.Write(packet)
	return err
}

// SetLeds lights the four player LEDs.
func (w *Wiimote) SetLeds(l1, l2, l3, l4 bool) error {
	return w.send(report.Leds, report.LedPayload(l1, l2, l3, l4))
}

// SetRumble toggles the vibration motor. The new state also rides on
// every subsequent outbound report.
func (w *Wiimote) SetRumble(on bool) error {
	w.rumble = on
	return w.send(report.Rumble, []byte{0x00})
}

// SetReportMode selects which data report the remote streams. Control
// report ids are not valid modes and are refused without sending.
func (w *Wiimote) SetReportMode(mode report.InputReportId) error {
	if slices.Contains(nonDataModes, mode) {
		return errInvalidReportMode
	}
	return w.sendReportMode(mode)
}

func (w *Wiimote) sendReportMode(mode report.InputReportId) error {
	if err := w.send(report.DataReportMode, report.DataReportModePayload(mode)); err != nil {
		return err
	}
	w.reportMode = mode
	return nil
}

// ReportMode returns the last data report mode commanded.
func (w *Wiimote) ReportMode() report.InputReportId {
	return w.reportMode
}

// RequestStatus asks the remote for a status report. Marking the
// request keeps the dispatcher from treating the answer as the
// unsolicited kind that needs a report-mode re-arm.
func (w *Wiimote) RequestStatus() error {
	if err := w.send(report.RequestStatusInfo, []byte{0x00}); err != nil {
		return err
	}
	w.statusRequested = true
	return nil
}

// SetupIrCamera powers up the IR camera, programs its sensitivity and
// mode registers, and switches to the data report that fits the
// chosen mode's dot payload.
func (w *Wiimote) SetupIrCamera(mode codec.IrMode) error {
	if err := w.setIrCameraEnabled(true); err != nil {
		return err
	}
	steps := []struct {
		offset uint32
		data   []byte
	}{
		{regIrEnable, []byte{0x08}},
		{regIrSensitivity1, irSensitivity1},
		{regIrSensitivity2, irSensitivity2},
		{regIrMode, []byte{byte(mode)}},
		{regIrEnable, []byte{0x08}},
	}
	for _, step := range steps {
		if err := w.WriteRegisters(SpaceControl, step.offset, step.data); err != nil {
			return err
		}
	}
	switch mode {
	case codec.IrBasic:
		return w.sendReportMode(report.ReportButtonsAccelIr10Ext6)
	case codec.IrExtended:
		return w.sendReportMode(report.ReportButtonsAccelIr12)
	case codec.IrFull:
		return w.sendReportMode(report.ReportInterleaved)
	}
	return nil
}

// DisableIrCamera powers the camera back down.
func (w *Wiimote) DisableIrCamera() error {
	return w.setIrCameraEnabled(false)
}

// setIrCameraEnabled drives the two separate camera enable reports.
func (w *Wiimote) setIrCameraEnabled(enable bool) error {
	if err := w.send(report.IrCameraEnable, report.IrEnablePayload(enable)); err != nil {
		return err
	}
	return w.send(report.IrCameraEnable2, report.IrEnablePayload(enable))
}

// activateExtension initializes whatever peripheral just appeared on
// the expansion port.
func (w *Wiimote) activateExtension() error {
	if err := w.WriteRegisters(SpaceControl, regExtInit, []byte{extInitValue}); err != nil {
		return err
	}
	return w.WriteRegisters(SpaceControl, regExtMode, []byte{extModeValue})
}

// identifyExtension reads the identification register and swaps in the
// matching decoder.
func (w *Wiimote) identifyExtension() error {
	return w.ReadRegisters(SpaceControl, regExtId, 6, func(id []byte) {
		variant := IdentifyExtension(id)
		w.Ext.set(variant)
		if variant == ExtWiiUPro {
			w.Device = DeviceWiiUPro
		}
	})
}

// ProbeMotionPlus reads the Motion Plus identification register and
// reports whether an inactive Motion Plus is present. Fails if a
// register read is already pending.
func (w *Wiimote) ProbeMotionPlus(present func(bool)) error {
	return w.ReadRegisters(SpaceControl, regMpId, 6, func(id []byte) {
		present(IdentifyMotionPlus(id))
	})
}

// EnableMotionPlus activates the Motion Plus, remapping it onto the
// ordinary extension registers. The remote answers with an extension
// hotplug whose disconnect half must be suppressed.
func (w *Wiimote) EnableMotionPlus() error {
	w.expectExtHotplug = true
	if err := w.WriteRegisters(SpaceControl, regMpInit, []byte{extInitValue}); err != nil {
		return err
	}
	return w.WriteRegisters(SpaceControl, regMpMode, []byte{mpModeValue})
}

// DisableMotionPlus reverts reporting to the passthrough extension by
// re-initializing the ordinary extension registers.
func (w *Wiimote) DisableMotionPlus() error {
	return w.WriteRegisters(SpaceControl, regExtInit, []byte{extInitValue})
}

// Disconnected resets all transfer state that must not leak across
// connections: the pending register read and the interleaved pairing
// buffer. The transport is not touched; its owner closes it.
func (w *Wiimote) Disconnected() {
	w.registers.reset()
	w.interleave.reset()
	w.statusRequested = false
	w.expectExtHotplug = false
}
