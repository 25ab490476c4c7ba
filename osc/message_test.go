package osc

import (
	"errors"
	"reflect"
	"testing"
)

func TestMessage_Append(t *testing.T) {
	oscAddress := "/address"
	message := NewMessage(oscAddress)

	if err := message.Append("string argument", int32(123456789), true); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if len(message.Arguments) != 3 {
		t.Errorf("Number of arguments should be %d and is %d", 3, len(message.Arguments))
	}

	var encErr *EncodingError
	if err := message.Append(int32(1), uint8(2)); !errors.As(err, &encErr) {
		t.Errorf("Append(uint8) error = %v, want EncodingError", err)
	}
	if len(message.Arguments) != 3 {
		t.Errorf("failed Append changed the arguments: %v", message.Arguments)
	}
}

func TestMessage_TypeTags(t *testing.T) {
	msg := NewMessage("/a", "xyz", int32(1), float32(1), float32(3), float32(2), int32(0))
	tags, err := msg.TypeTags()
	if err != nil {
		t.Fatal(err)
	}
	if tags != ",sifffi" {
		t.Errorf("TypeTags() = %q, want %q", tags, ",sifffi")
	}
	if len(tags)-1 != len(msg.Arguments) {
		t.Errorf("tag count %d != argument count %d", len(tags)-1, len(msg.Arguments))
	}

	var nilMsg *Message
	if _, err := nilMsg.TypeTags(); err == nil {
		t.Error("TypeTags() on nil message should fail")
	}
}

func TestMessage_String(t *testing.T) {
	msg := NewMessage("/a", "aed", int32(2), float32(1.5), true, []byte{1})
	if got, want := msg.String(), "/a ,sifTb aed 2 1.5 true blob"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMessage_MarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.obj.MarshalBinary()
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.raw) {
				t.Errorf("MarshalBinary() got = %v, want %v", got, tt.raw)
			}
		})
	}
}

func TestMessage_MarshalBinaryErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{"no_leading_slash", NewMessage("abc", int32(1))},
		{"unsupported_type", NewMessage("/abc", uint16(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.msg.MarshalBinary(); err == nil {
				t.Error("MarshalBinary() expected error")
			}
		})
	}
}

func TestMessage_UnmarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			if err := m.UnmarshalBinary(tt.raw); (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(m, tt.obj) {
				t.Errorf("UnmarshalBinary() got = %v, want %v", m, tt.obj)
			}
		})
	}
}

var result interface{}

var temp = &Message{Address: "/composition/layers/1/clips/1/transport/position", Arguments: []interface{}{0.123456789, "hello world"}}

func BenchmarkMessageMarshalBinary(b *testing.B) {
	var buf []byte
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		buf, _ = temp.MarshalBinary()
	}
	result = buf
}

func TestMessage_Clear(t *testing.T) {
	m := NewMessage("/address", int32(1), "two")
	m.Clear()
	if m.Address != "" || len(m.Arguments) != 0 {
		t.Errorf("Clear() left %q %v", m.Address, m.Arguments)
	}

	// A cleared message can be reused.
	m.Address = "/other"
	if err := m.Append(float32(3)); err != nil {
		t.Fatal(err)
	}
	if got, want := m.String(), "/other ,f 3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
