package sender

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Sink delivers one message to the listener. It owns packet construction and
// the network.
type Sink interface {
	Send(address, typeTags string, args []interface{}) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(address, typeTags string, args []interface{}) error

// Send calls f.
func (f SinkFunc) Send(address, typeTags string, args []interface{}) error {
	return f(address, typeTags, args)
}

// Source supplies the tracked positions for one tick. Order is significant:
// a position's index becomes its wire index.
type Source interface {
	Positions() []r3.Vec
}

// Positions is a fixed Source.
type Positions []r3.Vec

// Positions returns p.
func (p Positions) Positions() []r3.Vec {
	return p
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []r3.Vec

// Positions calls f.
func (f SourceFunc) Positions() []r3.Vec {
	return f()
}
