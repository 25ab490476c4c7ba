package osc

import (
	"encoding"
	"fmt"
)

const bundleTagString = "#bundle"

// Packet is the unit of transmission. Only messages are produced and accepted
// here; bundles are rejected on parse.
type Packet interface {
	encoding.BinaryMarshaler
}

// ParsePacket parses the given data into an OSC Packet.
func ParsePacket(data []byte) (Packet, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ParsePacket: empty packet")
	}

	switch data[0] {
	case '/':
		msg, err := NewMessageFromData(data)
		if err != nil {
			return nil, err
		}
		return msg, nil
	case '#':
		if len(data) >= len(bundleTagString) && string(data[:len(bundleTagString)]) == bundleTagString {
			return nil, fmt.Errorf("ParsePacket: bundles are not supported")
		}
	}

	return nil, fmt.Errorf("ParsePacket: invalid packet")
}
