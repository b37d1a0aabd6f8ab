package wiihid

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"dio.wtf/wiimote/wiimote/codec"
	"dio.wtf/wiimote/wiimote/log"
)

// stateDoc is the state document pushed to each websocket client.
type stateDoc struct {
	Session   string        `json:"session"`
	Addr      string        `json:"addr"`
	Device    string        `json:"device"`
	Extension string        `json:"extension"`
	Buttons   codec.Buttons `json:"buttons"`
	AccelRaw  [3]uint16     `json:"accelRaw"`
	Accel     [3]float64    `json:"accel"`
	Battery   uint8         `json:"battery"`
}

// Streamer pushes periodic controller state snapshots to websocket
// clients, for browser dashboards.
type Streamer struct {
	Registry *Registry

	// Interval between pushes; 50ms when zero.
	Interval time.Duration

	upgrader websocket.Upgrader
}

// ServeHTTP upgrades the request and streams snapshots until the
// client goes away.
func (s *Streamer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if nil != err {
		log.ErrorF("websocket upgrade: %s", err)
		return
	}
	defer conn.Close()

	interval := s.Interval
	if interval == 0 {
		interval = 50 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		payload, err := json.Marshal(s.snapshots())
		if nil != err {
			log.ErrorF("snapshot marshal: %s", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); nil != err {
			return
		}
	}
}

// Serve runs a standalone snapshot server on addr.
func (s *Streamer) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	log.DebugF("state streamer listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Streamer) snapshots() []stateDoc {
	sessions := s.Registry.Sessions()
	out := make([]stateDoc, 0, len(sessions))
	for _, session := range sessions {
		snap := session.Snapshot()
		out = append(out, stateDoc{
			Session:   snap.Session,
			Addr:      snap.Addr,
			Device:    snap.Device.String(),
			Extension: snap.Extension.String(),
			Buttons:   snap.Buttons,
			AccelRaw:  snap.AccelRaw,
			Accel:     snap.Accel,
			Battery:   snap.Battery,
		})
	}
	return out
}
