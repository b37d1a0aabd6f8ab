package wiihid

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"dio.wtf/wiimote/wiimote"
	"dio.wtf/wiimote/wiimote/codec"
	"dio.wtf/wiimote/wiimote/log"
	"dio.wtf/wiimote/wiimote/report"
)

var errAlreadyConnected = errors.New("remote already connected")

// Session is one live controller connection: the transport, the
// protocol decoder, and the read loop pumping one into the other.
//
// The decoder itself is single-threaded; the session lock is what
// lets other goroutines look at its state (Snapshot) or issue
// commands while the read loop keeps decoding.
type Session struct {
	Id   string
	Addr string

	mu         sync.RWMutex
	controller *wiimote.Wiimote

	conn     wiimote.Transport
	registry *Registry
	done     chan struct{}
}

// Done is closed when the read loop exits.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// run is the sole writer of the controller state. Packets are decoded
// strictly in arrival order; on transport failure all pending transfer
// state is dropped and the session removed from its registry.
func (s *Session) run() {
	defer close(s.done)
	for {
		packet, err := s.conn.Read()
		if nil != err {
			log.DebugF("session %s: read loop stopped: %s", s.Id, err)
			s.mu.Lock()
			s.controller.Disconnected()
			s.mu.Unlock()
			s.registry.remove(s)
			return
		}
		s.mu.Lock()
		s.controller.Decode(packet)
		s.mu.Unlock()
	}
}

// SetLeds lights the four player LEDs.
func (s *Session) SetLeds(l1, l2, l3, l4 bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.SetLeds(l1, l2, l3, l4)
}

// SetRumble toggles the vibration motor.
func (s *Session) SetRumble(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.SetRumble(on)
}

// SetReportMode selects which data report the remote streams.
func (s *Session) SetReportMode(mode report.InputReportId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.SetReportMode(mode)
}

// RequestStatus asks the remote for a status report.
func (s *Session) RequestStatus() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.RequestStatus()
}

// SetupIrCamera powers up the IR camera in the given mode.
func (s *Session) SetupIrCamera(mode codec.IrMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.SetupIrCamera(mode)
}

// Close tears the transport down, which also stops the read loop.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Registry tracks the connected controllers. It has an explicit
// lifetime owned by the caller; nothing here is process-global.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	addrs    []string

	// dial opens the transport; swappable in tests.
	dial func(addr string) (wiimote.Transport, error)
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		dial: func(addr string) (wiimote.Transport, error) {
			return Dial(addr)
		},
	}
}

// Connect dials a remote, wires a protocol decoder to it, and starts
// the read loop. Each address holds at most one session: the address
// is reserved before dialing so concurrent calls cannot race past the
// duplicate check.
func (r *Registry) Connect(addr string) (*Session, error) {
	r.mu.Lock()
	if slices.Contains(r.addrs, addr) {
		r.mu.Unlock()
		return nil, errAlreadyConnected
	}
	r.addrs = append(r.addrs, addr)
	r.mu.Unlock()

	conn, err := r.dial(addr)
	if nil != err {
		r.release(addr)
		return nil, err
	}
	session := &Session{
		Id:         uuid.NewString(),
		Addr:       addr,
		controller: wiimote.NewWiimote(conn),
		conn:       conn,
		registry:   r,
		done:       make(chan struct{}),
	}

	r.mu.Lock()
	r.sessions[session.Id] = session
	r.mu.Unlock()

	go session.run()
	log.DebugF("session %s connected to %s", session.Id, addr)
	return session, nil
}

// Sessions snapshots the live sessions.
func (r *Registry) Sessions() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}

func (r *Registry) remove(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, s.Id)
	if i := slices.Index(r.addrs, s.Addr); i >= 0 {
		r.addrs = slices.Delete(r.addrs, i, i+1)
	}
}

// release frees a reserved address after a failed dial.
func (r *Registry) release(addr string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := slices.Index(r.addrs, addr); i >= 0 {
		r.addrs = slices.Delete(r.addrs, i, i+1)
	}
}

// Close disconnects every session.
func (r *Registry) Close() {
	for _, s := range r.Sessions() {
		s.Close()
		<-s.Done()
	}
}
