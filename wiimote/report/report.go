package report

// https://wiibrew.org/wiki/Wiimote

// InputReportId tags a report sent from the remote to the host. The
// leading byte of every inbound packet carries one of these values.
type InputReportId uint8

const (
	StatusInfo     InputReportId = 0x20
	ReadMemoryData InputReportId = 0x21
	Acknowledge    InputReportId = 0x22

	ReportButtons              InputReportId = 0x30
	ReportButtonsAccel         InputReportId = 0x31
	ReportButtonsExt8          InputReportId = 0x32
	ReportButtonsAccelIr12     InputReportId = 0x33
	ReportButtonsExt19         InputReportId = 0x34
	ReportButtonsAccelExt16    InputReportId = 0x35
	ReportButtonsIr10Ext9      InputReportId = 0x36
	ReportButtonsAccelIr10Ext6 InputReportId = 0x37
	ReportExt21                InputReportId = 0x3D
	ReportInterleaved          InputReportId = 0x3E
	ReportInterleavedAlt       InputReportId = 0x3F
)

// PayloadLength returns the fixed payload size the remote sends for the
// report type, excluding the leading type byte. Unknown types return -1.
func (i InputReportId) PayloadLength() int {
	switch i {
	case StatusInfo:
		return 6
	case ReadMemoryData:
		return 21
	case Acknowledge:
		return 4
	case ReportButtons:
		return 2
	case ReportButtonsAccel:
		return 5
	case ReportButtonsExt8:
		return 10
	case ReportButtonsAccelIr12:
		return 17
	case ReportButtonsExt19, ReportButtonsAccelExt16, ReportButtonsIr10Ext9,
		ReportButtonsAccelIr10Ext6, ReportExt21, ReportInterleaved, ReportInterleavedAlt:
		return 21
	default:
		return -1
	}
}

func (i InputReportId) String() string {
	switch i {
	case StatusInfo:
		return "StatusInfo"
	case ReadMemoryData:
		return "ReadMemoryData"
	case Acknowledge:
		return "Acknowledge"
	case ReportButtons:
		return "ReportButtons"
	case ReportButtonsAccel:
		return "ReportButtonsAccel"
	case ReportButtonsExt8:
		return "ReportButtonsExt8"
	case ReportButtonsAccelIr12:
		return "ReportButtonsAccelIr12"
	case ReportButtonsExt19:
		return "ReportButtonsExt19"
	case ReportButtonsAccelExt16:
		return "ReportButtonsAccelExt16"
	case ReportButtonsIr10Ext9:
		return "ReportButtonsIr10Ext9"
	case ReportButtonsAccelIr10Ext6:
		return "ReportButtonsAccelIr10Ext6"
	case ReportExt21:
		return "ReportExt21"
	case ReportInterleaved:
		return "ReportInterleaved"
	case ReportInterleavedAlt:
		return "ReportInterleavedAlt"
	default:
		return "UNKNOWN"
	}
}

// OutputReportId tags a command sent from the host to the remote.
type OutputReportId uint8

const (
	Rumble               OutputReportId = 0x10
	Leds                 OutputReportId = 0x11
	DataReportMode       OutputReportId = 0x12
	IrCameraEnable       OutputReportId = 0x13
	SpeakerEnable        OutputReportId = 0x14
	RequestStatusInfo    OutputReportId = 0x15
	WriteMemoryRegisters OutputReportId = 0x16
	ReadMemoryRegisters  OutputReportId = 0x17
	SpeakerData          OutputReportId = 0x18
	SpeakerMute          OutputReportId = 0x19
	IrCameraEnable2      OutputReportId = 0x1A
)

func (o OutputReportId) String() string {
	switch o {
	case Rumble:
		return "Rumble"
	case Leds:
		return "Leds"
	case DataReportMode:
		return "DataReportMode"
	case IrCameraEnable:
		return "IrCameraEnable"
	case SpeakerEnable:
		return "SpeakerEnable"
	case RequestStatusInfo:
		return "RequestStatusInfo"
	case WriteMemoryRegisters:
		return "WriteMemoryRegisters"
	case ReadMemoryRegisters:
		return "ReadMemoryRegisters"
	case SpeakerData:
		return "SpeakerData"
	case SpeakerMute:
		return "SpeakerMute"
	case IrCameraEnable2:
		return "IrCameraEnable2"
	default:
		return "UNKNOWN"
	}
}
