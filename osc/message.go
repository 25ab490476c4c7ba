package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address and zero or more arguments.
type Message struct {
	Address   string
	Arguments []interface{}
}

// Verify that Messages implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...interface{}) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// Append appends the given arguments to the arguments list. Nothing is
// appended if any of the arguments has no OSC type tag.
func (m *Message) Append(args ...interface{}) error {
	for _, a := range args {
		if ToTypeTag(a) == TypeInvalid {
			return fmt.Errorf("Append: %w", &EncodingError{Shape: shapeOf(a)})
		}
	}
	m.Arguments = append(m.Arguments, args...)
	return nil
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() (string, error) {
	if m == nil {
		return "", fmt.Errorf("TypeTags: message is nil")
	}

	tags, err := GetTypeTag(m.Arguments)
	if err != nil {
		return "", fmt.Errorf("TypeTags: %w", err)
	}
	return tags, nil
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	tags, _ := m.TypeTags()

	var sb strings.Builder
	sb.WriteString(m.Address)
	if len(tags) == 0 {
		return sb.String()
	}

	sb.WriteByte(' ')
	sb.WriteString(tags)

	for _, arg := range m.Arguments {
		switch arg := arg.(type) {
		case bool, int32, int64, float32, float64, string:
			fmt.Fprintf(&sb, " %v", arg)

		case Char:
			fmt.Fprintf(&sb, " %q", rune(arg))

		case MIDIMessage:
			fmt.Fprintf(&sb, " midi(%d,%d,%d,%d)", arg[0], arg[1], arg[2], arg[3])

		case []byte:
			sb.WriteString(" blob")
		}
	}

	return sb.String()
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The byte
// buffer has the following format:
// 1. OSC Address
// 2. OSC Type Tag String
// 3. OSC Arguments
func (m *Message) MarshalBinary() ([]byte, error) {
	data := new(bytes.Buffer)
	if err := m.LightMarshalBinary(data); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

// LightMarshalBinary writes the encoded message to data.
func (m *Message) LightMarshalBinary(data *bytes.Buffer) error {
	if !strings.HasPrefix(m.Address, "/") {
		return fmt.Errorf("LightMarshalBinary: invalid address: %q", m.Address)
	}

	b := new(bytes.Buffer)
	var word [bit64Size]byte

	// Process the type tags and collect all arguments
	for _, arg := range m.Arguments {
		switch t := arg.(type) {
		default:
			return fmt.Errorf("LightMarshalBinary: %w", &EncodingError{Shape: shapeOf(t)})

		case bool:
			continue
		case int32:
			binary.BigEndian.PutUint32(word[:bit32Size], uint32(t))
			b.Write(word[:bit32Size])
		case Char:
			binary.BigEndian.PutUint32(word[:bit32Size], uint32(t))
			b.Write(word[:bit32Size])
		case float32:
			binary.BigEndian.PutUint32(word[:bit32Size], math.Float32bits(t))
			b.Write(word[:bit32Size])
		case MIDIMessage:
			b.Write(t[:])
		case int64:
			binary.BigEndian.PutUint64(word[:], uint64(t))
			b.Write(word[:])
		case float64:
			binary.BigEndian.PutUint64(word[:], math.Float64bits(t))
			b.Write(word[:])
		case string:
			writePaddedString(t, b)
		case []byte:
			if _, err := writeBlob(t, b); err != nil {
				return fmt.Errorf("LightMarshalBinary: %w", err)
			}
		}
	}

	if b.Len() >= MaxPacketSize {
		return fmt.Errorf("LightMarshalBinary: payload too large: %d", b.Len())
	}

	typetags, err := m.TypeTags()
	if err != nil {
		return fmt.Errorf("LightMarshalBinary: %w", err)
	}

	writePaddedString(m.Address, data)
	writePaddedString(typetags, data)

	// Write the payload (OSC arguments) to the data buffer
	data.Write(b.Bytes())

	if data.Len() >= MaxPacketSize {
		return fmt.Errorf("LightMarshalBinary: packet too large: %d", data.Len())
	}

	return nil
}

// NewMessageFromData returns a new OSC message parsed from data.
func NewMessageFromData(data []byte) (msg *Message, err error) {
	msg = &Message{}
	if err = msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler
func (m *Message) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || data[0] != '/' {
		return fmt.Errorf("UnmarshalBinary: data not a valid OSC message")
	}

	if (len(data) % bit32Size) != 0 {
		return fmt.Errorf("UnmarshalBinary: data isn't mod 4")
	}

	b := bytes.NewBuffer(append([]byte(nil), data...))

	// First, read the OSC address
	addr, _, err := readPaddedString(b)
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}

	m.Address = addr
	if err = m.readArguments(b); err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}

	return nil
}

// readArguments from `reader` and add them to the OSC message `msg`.
func (m *Message) readArguments(reader *bytes.Buffer) error {
	m.Arguments = nil
	if reader.Len() == 0 {
		return nil
	}

	// Read the type tag string
	typetags, _, err := readPaddedString(reader)
	if err != nil {
		return fmt.Errorf("readArguments: %w", err)
	}

	if len(typetags) == 0 {
		return nil
	}

	// If the typetag doesn't start with ',', it's not valid
	if typetags[0] != ',' {
		return fmt.Errorf("unsupported typetag string: %s", typetags)
	}

	m.Arguments = make([]interface{}, 0, len(typetags)-1)

	for _, c := range typetags[1:] {
		switch TypeTag(c) {
		case TypeTrue:
			m.Arguments = append(m.Arguments, true)
			continue
		case TypeFalse:
			m.Arguments = append(m.Arguments, false)
			continue
		}

		if reader.Len() < bit32Size {
			return fmt.Errorf("readArguments: not enough bits to read")
		}

		switch TypeTag(c) {
		default:
			return fmt.Errorf("unsupported typetag: %c", c)

		case TypeInt32:
			m.Arguments = append(m.Arguments, int32(binary.BigEndian.Uint32(reader.Next(bit32Size))))

		case TypeChar:
			m.Arguments = append(m.Arguments, Char(binary.BigEndian.Uint32(reader.Next(bit32Size))))

		case TypeFloat32:
			m.Arguments = append(m.Arguments, math.Float32frombits(binary.BigEndian.Uint32(reader.Next(bit32Size))))

		case TypeMIDI:
			var midi MIDIMessage
			copy(midi[:], reader.Next(bit32Size))
			m.Arguments = append(m.Arguments, midi)

		case TypeInt64:
			if reader.Len() < bit64Size {
				return fmt.Errorf("readArguments: not enough bits to read")
			}
			m.Arguments = append(m.Arguments, int64(binary.BigEndian.Uint64(reader.Next(bit64Size))))

		case TypeFloat64:
			if reader.Len() < bit64Size {
				return fmt.Errorf("readArguments: not enough bits to read")
			}
			m.Arguments = append(m.Arguments, math.Float64frombits(binary.BigEndian.Uint64(reader.Next(bit64Size))))

		case TypeString:
			str, _, err := readPaddedString(reader)
			if err != nil {
				return fmt.Errorf("readArguments: %w", err)
			}
			m.Arguments = append(m.Arguments, str)

		case TypeBlob:
			buf, _, err := readBlob(reader)
			if err != nil {
				return fmt.Errorf("readArguments: %w", err)
			}
			m.Arguments = append(m.Arguments, buf)
		}
	}

	return nil
}
