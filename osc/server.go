package osc

import (
	"errors"
	"net"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Handler is called for every message the server receives.
type Handler func(msg *Message, addr net.Addr)

// Server represents an OSC server. The server listens on Addr for incoming OSC messages.
type Server struct {
	Addr        string
	Handler     Handler
	ReadTimeout time.Duration
	// Logger receives malformed packet and handler panic reports. Defaults to
	// the logrus standard logger.
	Logger logrus.FieldLogger
}

// ListenAndServe retrieves incoming OSC messages and hands them to the handler.
func (s *Server) ListenAndServe() error {
	ln, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return s.Serve(ln)
}

// Serve retrieves incoming OSC messages from the given connection and hands
// them to the handler. Malformed packets are logged and skipped.
func (s *Server) Serve(c net.PacketConn) error {
	var tempDelay time.Duration
	for {
		msg, addr, err := s.readFromConnection(c)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			} else if !errors.As(err, &ne) && !errors.Is(err, net.ErrClosed) {
				s.logger().WithField("from", addr).Warnf("osc: dropping packet: %v", err)
				continue
			}
			return err
		}
		tempDelay = 0
		go s.serve(msg, addr)
	}
}

func (s *Server) serve(m *Message, a net.Addr) {
	defer func() {
		if err := recover(); err != nil {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			s.logger().WithField("from", a).Errorf("osc: panic handling message: %v\n%s", err, buf)
		}
	}()
	if s.Handler != nil {
		s.Handler(m, a)
	}
}

func (s *Server) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

// ReceivePacket listens for an incoming OSC message and returns it.
func (s *Server) ReceivePacket(c net.PacketConn) (*Message, net.Addr, error) {
	return s.readFromConnection(c)
}

// readFromConnection retrieves OSC messages.
func (s *Server) readFromConnection(c net.PacketConn) (*Message, net.Addr, error) {
	if s.ReadTimeout != 0 {
		if err := c.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return nil, nil, err
		}
	}

	b := make([]byte, MaxPacketSize)
	n, a, err := c.ReadFrom(b)
	if err != nil {
		return nil, a, err
	}

	p, err := ParsePacket(b[:n])
	if err != nil {
		return nil, a, err
	}
	return p.(*Message), a, nil
}
