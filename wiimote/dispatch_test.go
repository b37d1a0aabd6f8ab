package wiimote

import (
	"bytes"
	"testing"

	"dio.wtf/wiimote/wiimote/report"
)

// statusPacket builds an inbound StatusInfo packet.
func statusPacket(flags, battery byte) []byte {
	return []byte{byte(report.StatusInfo), 0, 0, flags, 0, 0, battery}
}

func TestDecodeUnknownTypeDropped(t *testing.T) {
	w := NewWiimote(&fakeTransport{})
	if w.Decode([]byte{0x99, 0x00, 0x00}) {
		t.Error("unknown type decoded")
	}
	if w.Decode(nil) {
		t.Error("empty packet decoded")
	}
}

func TestDecodeInterleavedPair(t *testing.T) {
	w := NewWiimote(&fakeTransport{})

	first := make([]byte, 22)
	first[0] = byte(report.ReportInterleaved)
	first[1] = 0x60 // Z bits 5-4
	first[3] = 0x90 // X high byte
	second := make([]byte, 22)
	second[0] = byte(report.ReportInterleavedAlt)
	second[3] = 0x50 // Y high byte

	if !w.Decode(first) {
		t.Fatal("first half dropped")
	}
	if !w.Decode(second) {
		t.Fatal("second half dropped")
	}
	if w.Accel.Raw[0] != 0x90<<2 {
		t.Errorf("X = %d", w.Accel.Raw[0])
	}
	if w.Accel.Raw[1] != 0x50<<2 {
		t.Errorf("Y = %d", w.Accel.Raw[1])
	}
	if w.Accel.Raw[2] != (0x60>>1)<<4 {
		t.Errorf("Z = %d", w.Accel.Raw[2])
	}
}

func TestDecodeInterleavedLoneSecondDropped(t *testing.T) {
	w := NewWiimote(&fakeTransport{})

	second := make([]byte, 22)
	second[0] = byte(report.ReportInterleavedAlt)
	if w.Decode(second) {
		t.Error("lone second half decoded")
	}
}

func TestDecodeInterleavedDuplicateFirstReplaces(t *testing.T) {
	w := NewWiimote(&fakeTransport{})

	stale := make([]byte, 22)
	stale[0] = byte(report.ReportInterleaved)
	stale[3] = 0x11
	fresh := make([]byte, 22)
	fresh[0] = byte(report.ReportInterleaved)
	fresh[3] = 0x90
	second := make([]byte, 22)
	second[0] = byte(report.ReportInterleavedAlt)

	if !w.Decode(stale) || !w.Decode(fresh) {
		t.Fatal("first half dropped")
	}
	if !w.Decode(second) {
		t.Fatal("second half dropped")
	}
	if w.Accel.Raw[0] != 0x90<<2 {
		t.Errorf("X = %d, paired with the stale half", w.Accel.Raw[0])
	}
}

func TestUnsolicitedStatusRearmsReportMode(t *testing.T) {
	ft := &fakeTransport{}
	w := NewWiimote(ft)
	if err := w.SetReportMode(report.ReportButtonsAccel); nil != err {
		t.Fatalf("set mode: %s", err)
	}

	if !w.Decode(statusPacket(0x00, 0xC8)) {
		t.Fatal("status dropped")
	}
	last := ft.sent[len(ft.sent)-1]
	if !bytes.Equal(last, []byte{0x12, 0x00, 0x31}) {
		t.Errorf("re-arm = % X", last)
	}
	if w.Status.Battery != 0xC8 {
		t.Errorf("battery = %#x", w.Status.Battery)
	}
}

func TestRequestedStatusDoesNotRearm(t *testing.T) {
	ft := &fakeTransport{}
	w := NewWiimote(ft)
	if err := w.RequestStatus(); nil != err {
		t.Fatalf("request: %s", err)
	}
	sent := len(ft.sent)

	if !w.Decode(statusPacket(0x00, 0xC8)) {
		t.Fatal("status dropped")
	}
	if len(ft.sent) != sent {
		t.Errorf("answer to explicit request re-armed: % X", ft.sent[sent])
	}

	// The flag is one-shot: the next status is unsolicited again.
	if !w.Decode(statusPacket(0x00, 0xC8)) {
		t.Fatal("status dropped")
	}
	if len(ft.sent) != sent+1 {
		t.Error("second status not re-armed")
	}
}

func TestExtensionHotplugIdentification(t *testing.T) {
	ft := &fakeTransport{}
	w := NewWiimote(ft)

	// Plug transition: the port is initialized and the identifier read.
	if !w.Decode(statusPacket(0x02, 0xC8)) {
		t.Fatal("status dropped")
	}
	var wantInit, wantMode [22]byte
	copy(wantInit[:], []byte{0x16, 0x04, 0xA4, 0x00, 0xF0, 0x01, 0x55})
	copy(wantMode[:], []byte{0x16, 0x04, 0xA4, 0x00, 0xFB, 0x01, 0x00})
	n := len(ft.sent)
	if !bytes.Equal(ft.sent[n-3], wantInit[:]) || !bytes.Equal(ft.sent[n-2], wantMode[:]) {
		t.Errorf("init sequence = % X, % X", ft.sent[n-3], ft.sent[n-2])
	}
	if !bytes.Equal(ft.sent[n-1], []byte{0x17, 0x04, 0xA4, 0x00, 0xFA, 0x00, 0x06}) {
		t.Errorf("id read = % X", ft.sent[n-1])
	}

	// The identifier answer selects the decoder.
	if !w.Decode(readDataPacket(6, 0, 0x00FA, []byte{0x00, 0x00, 0xA4, 0x20, 0x01, 0x01})) {
		t.Fatal("id chunk dropped")
	}
	if w.Ext.Variant != ExtClassic || w.Ext.Classic == nil {
		t.Errorf("variant = %s", w.Ext.Variant)
	}
	if w.Device != DeviceRemote {
		t.Errorf("device = %s", w.Device)
	}

	// Unplug transition clears the decoder.
	if !w.Decode(statusPacket(0x00, 0xC8)) {
		t.Fatal("status dropped")
	}
	if w.Ext.Variant != ExtNone || w.Ext.Classic != nil {
		t.Errorf("variant after unplug = %s", w.Ext.Variant)
	}
}

func TestWiiUProIdentificationSetsDeviceType(t *testing.T) {
	w := NewWiimote(&fakeTransport{})

	if !w.Decode(statusPacket(0x02, 0xC8)) {
		t.Fatal("status dropped")
	}
	if !w.Decode(readDataPacket(6, 0, 0x00FA, []byte{0x00, 0x00, 0xA4, 0x20, 0x01, 0x20})) {
		t.Fatal("id chunk dropped")
	}
	if w.Ext.Variant != ExtWiiUPro {
		t.Errorf("variant = %s", w.Ext.Variant)
	}
	if w.Device != DeviceWiiUPro {
		t.Errorf("device = %s", w.Device)
	}
}

func TestMotionPlusHotplugSuppression(t *testing.T) {
	ft := &fakeTransport{}
	w := NewWiimote(ft)

	// Plug a nunchuck first.
	if !w.Decode(statusPacket(0x02, 0xC8)) {
		t.Fatal("status dropped")
	}
	if !w.Decode(readDataPacket(6, 0, 0x00FA, []byte{0x00, 0x00, 0xA4, 0x20, 0x00, 0x00})) {
		t.Fatal("id chunk dropped")
	}
	if w.Ext.Variant != ExtNunchuck {
		t.Fatalf("variant = %s", w.Ext.Variant)
	}

	// Activating the Motion Plus detaches the port momentarily; the
	// unplug half of that hotplug must not clear the decoder.
	if err := w.EnableMotionPlus(); nil != err {
		t.Fatalf("enable: %s", err)
	}
	if !w.Decode(statusPacket(0x00, 0xC8)) {
		t.Fatal("status dropped")
	}
	if w.Ext.Variant != ExtNunchuck {
		t.Errorf("variant after suppressed unplug = %s", w.Ext.Variant)
	}

	// A real unplug afterwards still clears it.
	if !w.Decode(statusPacket(0x02, 0xC8)) {
		t.Fatal("status dropped")
	}
	if !w.Decode(readDataPacket(6, 0, 0x00FA, []byte{0x00, 0x00, 0xA4, 0x20, 0x04, 0x05})) {
		t.Fatal("id chunk dropped")
	}
	if w.Ext.Variant != ExtMotionPlus {
		t.Fatalf("variant = %s", w.Ext.Variant)
	}
	if !w.Decode(statusPacket(0x00, 0xC8)) {
		t.Fatal("status dropped")
	}
	if w.Ext.Variant != ExtNone {
		t.Errorf("variant after real unplug = %s", w.Ext.Variant)
	}
}

func TestDataReportRoutesExtensionRange(t *testing.T) {
	w := NewWiimote(&fakeTransport{})
	w.Ext.set(ExtNunchuck)

	p := make([]byte, 22)
	p[0] = byte(report.ReportButtonsAccelExt16)
	// Extension range starts at payload byte 5: stick, accel, buttons.
	copy(p[6:], []byte{0x80, 0x7F, 0x84, 0x88, 0x8C, 0x01})
	if !w.Decode(p) {
		t.Fatal("report dropped")
	}
	n := w.Ext.Nunchuck
	if n.Stick != [2]uint8{0x80, 0x7F} {
		t.Errorf("stick = %v", n.Stick)
	}
	if !n.C || n.Z {
		t.Errorf("C = %v, Z = %v", n.C, n.Z)
	}
}

func TestDisconnectedResetsTransferState(t *testing.T) {
	w := NewWiimote(&fakeTransport{})

	if err := w.ReadRegisters(SpaceControl, 0xA400FA, 6, nil); nil != err {
		t.Fatalf("read: %s", err)
	}
	first := make([]byte, 22)
	first[0] = byte(report.ReportInterleaved)
	if !w.Decode(first) {
		t.Fatal("first half dropped")
	}

	w.Disconnected()

	if err := w.ReadRegisters(SpaceControl, 0xA400FA, 6, nil); nil != err {
		t.Errorf("pending read survived disconnect: %s", err)
	}
	second := make([]byte, 22)
	second[0] = byte(report.ReportInterleavedAlt)
	if w.Decode(second) {
		t.Error("buffered half survived disconnect")
	}
}
