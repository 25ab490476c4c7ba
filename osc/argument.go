package osc

import (
	"fmt"
)

// Argument is a single value that can be sent as one OSC message. The set of
// implementations is closed; supporting a new shape means adding a type here
// and a case to Encode.
type Argument interface {
	argument()
}

type (
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	String  string
	Bool    bool
	// Blob is sent length-prefixed; the length always comes from the slice.
	Blob []byte
	// MIDI is the structured custom message shape.
	MIDI MIDIMessage
	// FloatList sends between one and four floats positionally. An empty
	// list sends nothing.
	FloatList []float32
)

type Vector2 struct{ X, Y float32 }

type Vector3 struct{ X, Y, Z float32 }

type Color struct{ R, G, B, A float32 }

func (Int32) argument() {}
func (Int64) argument() {}
func (Float32) argument() {}
func (Float64) argument() {}
func (Char) argument() {}
func (String) argument() {}
func (Bool) argument() {}
func (Blob) argument() {}
func (MIDI) argument() {}
func (FloatList) argument() {}
func (Vector2) argument() {}
func (Vector3) argument() {}
func (Color) argument() {}

// maxFloatList is the largest FloatList that can be sent.
const maxFloatList = 4

// Encode maps arg onto its type tags and wire values. Tags and values are
// positionally paired. A nil error with no tags means there is nothing to
// send.
func Encode(arg Argument) ([]TypeTag, []interface{}, error) {
	switch a := arg.(type) {
	case Int32:
		return one(TypeInt32, int32(a))
	case Int64:
		return one(TypeInt64, int64(a))
	case Float64:
		return one(TypeFloat64, float64(a))
	case Char:
		return one(TypeChar, a)
	case Float32:
		return one(TypeFloat32, float32(a))
	case String:
		return one(TypeString, string(a))
	case Bool:
		if a {
			return one(TypeTrue, true)
		}
		return one(TypeFalse, false)
	case Blob:
		if a == nil {
			a = Blob{}
		}
		return one(TypeBlob, []byte(a))
	case MIDI:
		return one(TypeMIDI, MIDIMessage(a))
	case Vector2:
		return floats(a.X, a.Y)
	case Vector3:
		return floats(a.X, a.Y, a.Z)
	case Color:
		return floats(a.R, a.G, a.B, a.A)
	case FloatList:
		if len(a) > maxFloatList {
			return nil, nil, &EncodingError{Shape: "float list", Length: len(a)}
		}
		return floats(a...)
	default:
		return nil, nil, &EncodingError{Shape: shapeOf(arg)}
	}
}

func one(tag TypeTag, v interface{}) ([]TypeTag, []interface{}, error) {
	return []TypeTag{tag}, []interface{}{v}, nil
}

func floats(fs ...float32) ([]TypeTag, []interface{}, error) {
	if len(fs) == 0 {
		return nil, nil, nil
	}
	tags := make([]TypeTag, len(fs))
	args := make([]interface{}, len(fs))
	for i, f := range fs {
		tags[i] = TypeFloat32
		args[i] = f
	}
	return tags, args, nil
}

// ArgumentOf lifts a plain Go value into an Argument.
func ArgumentOf(v interface{}) (Argument, error) {
	switch t := v.(type) {
	case Argument:
		return t, nil
	case int:
		if int(int32(t)) != t {
			return Int64(t), nil
		}
		return Int32(t), nil
	case int32:
		return Int32(t), nil
	case int64:
		return Int64(t), nil
	case float32:
		return Float32(t), nil
	case float64:
		return Float64(t), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case []byte:
		return Blob(t), nil
	case []float32:
		return FloatList(t), nil
	case MIDIMessage:
		return MIDI(t), nil
	default:
		return nil, fmt.Errorf("ArgumentOf: %w", &EncodingError{Shape: shapeOf(v)})
	}
}
