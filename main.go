package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dio.wtf/wiimote/wiihid"
	"dio.wtf/wiimote/wiimote"
	"dio.wtf/wiimote/wiimote/codec"
	"dio.wtf/wiimote/wiimote/log"
	"dio.wtf/wiimote/wiimote/report"
)

func main() {
	streamAddr := flag.String("stream", "", "serve state snapshots over websocket on this address")
	flag.Parse()

	device, err := wiihid.NewDevice()
	if nil != err {
		log.Fatal(err)
	}
	remotes, err := device.DiscoverRemotes()
	if nil != err {
		log.Fatal(err)
	}
	if len(remotes) == 0 {
		log.Fatal("no remote found; press 1+2 on the remote to sync and pair it first")
	}

	registry := wiihid.NewRegistry()
	defer registry.Close()

	session, err := registry.Connect(remotes[0].Address)
	if nil != err {
		log.Fatal(err)
	}
	session.SetLeds(true, false, false, false)
	session.SetReportMode(report.ReportButtonsAccelExt16)

	if *streamAddr != "" {
		streamer := &wiihid.Streamer{Registry: registry}
		go func() {
			if err := streamer.Serve(*streamAddr); nil != err {
				log.Error(err)
			}
		}()
	}

	p := tea.NewProgram(monitor{session: session})
	if _, err := p.Run(); nil != err {
		log.Fatal(err)
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type monitor struct {
	session *wiihid.Session
	gone    bool
}

func (m monitor) Init() tea.Cmd {
	return tick()
}

func (m monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			s := m.session
			s.SetRumble(true)
			time.AfterFunc(200*time.Millisecond, func() { s.SetRumble(false) })
		}
	case tickMsg:
		select {
		case <-m.session.Done():
			m.gone = true
			return m, tea.Quit
		default:
		}
		return m, tick()
	}
	return m, nil
}

func (m monitor) View() string {
	if m.gone {
		return "remote disconnected\n"
	}
	snap := m.session.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  battery %d\n\n", snap.Addr, snap.Device, snap.Battery)
	fmt.Fprintf(&b, "buttons: %s\n", buttonLine(snap.Buttons))
	fmt.Fprintf(&b, "accel:   %+.2f %+.2f %+.2f\n", snap.Accel[0], snap.Accel[1], snap.Accel[2])
	fmt.Fprintf(&b, "ext:     %s%s\n", snap.Extension, extensionLine(snap))
	b.WriteString("\npress r to rumble, q to quit\n")
	return b.String()
}

func buttonLine(buttons codec.Buttons) string {
	var pressed []string
	for _, b := range []struct {
		name string
		down bool
	}{
		{"Up", buttons.Up}, {"Down", buttons.Down},
		{"Left", buttons.Left}, {"Right", buttons.Right},
		{"A", buttons.A}, {"B", buttons.B},
		{"1", buttons.One}, {"2", buttons.Two},
		{"+", buttons.Plus}, {"-", buttons.Minus},
		{"Home", buttons.Home},
	} {
		if b.down {
			pressed = append(pressed, b.name)
		}
	}
	if len(pressed) == 0 {
		return "(none)"
	}
	return strings.Join(pressed, " ")
}

func extensionLine(snap wiihid.Snapshot) string {
	switch snap.Extension {
	case wiimote.ExtNunchuck:
		n := snap.Nunchuck
		return fmt.Sprintf("  stick %d,%d C=%v Z=%v", n.Stick[0], n.Stick[1], n.C, n.Z)
	case wiimote.ExtClassic:
		cc := snap.Classic
		return fmt.Sprintf("  L %d,%d R %d,%d", cc.LStick[0], cc.LStick[1], cc.RStick[0], cc.RStick[1])
	case wiimote.ExtWiiUPro:
		pro := snap.WiiUPro
		return fmt.Sprintf("  L %.2f,%.2f R %.2f,%.2f",
			pro.Normalized(codec.ProLX), pro.Normalized(codec.ProLY),
			pro.Normalized(codec.ProRX), pro.Normalized(codec.ProRY))
	case wiimote.ExtMotionPlus:
		rates := snap.MotionPlus.Rates()
		return fmt.Sprintf("  %.1f %.1f %.1f deg/s", rates[0], rates[1], rates[2])
	case wiimote.ExtGuitar:
		g := snap.Guitar
		return fmt.Sprintf("  whammy %d slider %.2f", g.Whammy, g.Slider())
	default:
		return ""
	}
}
