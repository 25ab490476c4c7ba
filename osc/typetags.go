package osc

type TypeTag rune

const (
	TypeString  TypeTag = 's'
	TypeInt32   TypeTag = 'i'
	TypeInt64   TypeTag = 'h'
	TypeFloat32 TypeTag = 'f'
	TypeFloat64 TypeTag = 'd'
	TypeBlob    TypeTag = 'b'
	TypeChar    TypeTag = 'c'
	TypeMIDI    TypeTag = 'm'
	TypeTrue    TypeTag = 'T'
	TypeFalse   TypeTag = 'F'
	TypeInvalid TypeTag = 0
)

// Char is a 32-bit ASCII character argument ('c').
type Char int32

// MIDIMessage is the 4 byte MIDI argument ('m'): port id, status byte, data1, data2.
type MIDIMessage [4]byte

// NewMIDIMessage returns a MIDIMessage from its parts.
func NewMIDIMessage(port, status, data1, data2 byte) MIDIMessage {
	return MIDIMessage{port, status, data1, data2}
}

func (m MIDIMessage) Port() byte { return m[0] }
func (m MIDIMessage) Status() byte { return m[1] }
func (m MIDIMessage) Data1() byte { return m[2] }
func (m MIDIMessage) Data2() byte { return m[3] }

// ToTypeTag returns the OSC TypeTag for the given wire value.
// Returns TypeInvalid if the argument type is unsupported.
func ToTypeTag(arg interface{}) TypeTag {
	switch t := arg.(type) {
	case bool:
		if t {
			return TypeTrue
		}
		return TypeFalse
	case int32:
		return TypeInt32
	case float32:
		return TypeFloat32
	case string:
		return TypeString
	case []byte:
		return TypeBlob
	case int64:
		return TypeInt64
	case float64:
		return TypeFloat64
	case Char:
		return TypeChar
	case MIDIMessage:
		return TypeMIDI
	default:
		return TypeInvalid
	}
}

// GetTypeTag returns the OSC type tag string (with the leading ',') for the given values.
func GetTypeTag(args []interface{}) (string, error) {
	tt := make([]byte, 0, len(args)+1)
	tt = append(tt, ',')
	for _, a := range args {
		s := ToTypeTag(a)
		if s == TypeInvalid {
			return "", &EncodingError{Shape: shapeOf(a)}
		}
		tt = append(tt, byte(s))
	}
	return string(tt), nil
}

// JoinTypeTags renders tags as an OSC type tag string.
func JoinTypeTags(tags []TypeTag) string {
	b := make([]byte, 0, len(tags)+1)
	b = append(b, ',')
	for _, t := range tags {
		b = append(b, byte(t))
	}
	return string(b)
}
