// Package sender turns tracked positions and ad-hoc values into OSC messages
// and hands them to a Sink.
package sender

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chabad360/go-osc-tracker/log"
	"github.com/chabad360/go-osc-tracker/osc"
	"github.com/chabad360/go-osc-tracker/spatial"
)

// Sender sends single values and individual positions to a default address.
type Sender struct {
	// Address is used by the convenience methods.
	Address string
	// Self is the frame AED positions are relative to when no reference is given.
	Self spatial.Frame

	sink   Sink
	logger log.Logger
}

// New returns a Sender for address. A nil sink is a configuration error.
func New(address string, sink Sink, logger log.Logger) (*Sender, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if sink == nil {
		err := &ConfigurationError{Component: "Sender", Reason: "no sink"}
		logger.Errorf("%v", err)
		return nil, err
	}
	return &Sender{Address: address, sink: sink, logger: logger}, nil
}

// Send encodes arg and sends it to address. An empty FloatList sends nothing.
// Encoding errors are logged and returned; nothing is sent for them.
func (s *Sender) Send(address string, arg osc.Argument) error {
	tags, args, err := osc.Encode(arg)
	if err != nil {
		s.logger.Errorf("Send %s: %v", address, err)
		return fmt.Errorf("Send: %w", err)
	}
	if len(tags) == 0 {
		return nil
	}

	s.logger.Debugf("Sending OSC message to %s: %v", address, arg)
	if err := s.sink.Send(address, osc.JoinTypeTags(tags), args); err != nil {
		s.logger.Errorf("Send %s: %v", address, err)
		return err
	}
	return nil
}

// SendValue sends a plain Go value; see osc.ArgumentOf for the accepted types.
func (s *Sender) SendValue(address string, v interface{}) error {
	arg, err := osc.ArgumentOf(v)
	if err != nil {
		s.logger.Errorf("Send %s: %v", address, err)
		return fmt.Errorf("SendValue: %w", err)
	}
	return s.Send(address, arg)
}

func (s *Sender) SendInt(v int32) error { return s.Send(s.Address, osc.Int32(v)) }
func (s *Sender) SendLong(v int64) error { return s.Send(s.Address, osc.Int64(v)) }
func (s *Sender) SendDouble(v float64) error { return s.Send(s.Address, osc.Float64(v)) }
func (s *Sender) SendChar(v rune) error { return s.Send(s.Address, osc.Char(v)) }
func (s *Sender) SendFloat(v float32) error { return s.Send(s.Address, osc.Float32(v)) }
func (s *Sender) SendString(v string) error { return s.Send(s.Address, osc.String(v)) }
func (s *Sender) SendBool(v bool) error { return s.Send(s.Address, osc.Bool(v)) }
func (s *Sender) SendVector2(v osc.Vector2) error { return s.Send(s.Address, v) }
func (s *Sender) SendVector3(v osc.Vector3) error { return s.Send(s.Address, v) }
func (s *Sender) SendColor(v osc.Color) error { return s.Send(s.Address, v) }
func (s *Sender) SendBlob(v []byte) error { return s.Send(s.Address, osc.Blob(v)) }
func (s *Sender) SendMIDI(v osc.MIDIMessage) error { return s.Send(s.Address, osc.MIDI(v)) }
func (s *Sender) SendFloats(v ...float32) error { return s.Send(s.Address, osc.FloatList(v)) }

// SendFloatAsInt sends v truncated toward zero as an int32.
func (s *Sender) SendFloatAsInt(v float32) error {
	return s.Send(s.Address, osc.Int32(int32(v)))
}

// SendPositionAsXYZ sends p as an XYZ message.
func (s *Sender) SendPositionAsXYZ(p r3.Vec, index, group int) error {
	return s.sendPosition(XYZ, spatial.XYZTuple(p), index, group)
}

// SendPositionAsAED sends p as an AED message relative to ref, or to Self when
// ref is nil.
func (s *Sender) SendPositionAsAED(p r3.Vec, ref *spatial.Frame, index, group int) error {
	return s.sendPosition(AED, spatial.ToAED(p, ref, s.Self).Tuple(), index, group)
}

// SendXYZVectors sends each position as an XYZ message numbered from 1, all
// in group 0. Failures do not stop the remaining positions.
func (s *Sender) SendXYZVectors(positions []r3.Vec) error {
	b := Batch{Address: s.Address, Kind: XYZ, IndexBase: 1, Group: new(int)}
	msgs, errs := AssembleBatch(b, positions)
	for _, msg := range msgs {
		if err := s.sink.Send(msg.Address, PositionTypeTags, msg.Arguments); err != nil {
			errs = append(errs, &EntityError{Index: int(msg.Arguments[1].(int32)) - b.IndexBase, Err: err})
		}
	}
	for _, err := range errs {
		s.logger.Errorf("SendXYZVectors: %v", err)
	}
	return joinErrors(errs)
}

func (s *Sender) sendPosition(kind Kind, tuple [3]float64, index, group int) error {
	msg, err := Assemble(s.Address, kind, tuple, index, group)
	if err != nil {
		s.logger.Errorf("Send %s: %v", s.Address, err)
		return err
	}
	s.logger.Debugf("Sending OSC message to %s: %v", msg.Address, msg)
	if err := s.sink.Send(msg.Address, PositionTypeTags, msg.Arguments); err != nil {
		s.logger.Errorf("Send %s: %v", msg.Address, err)
		return err
	}
	return nil
}
