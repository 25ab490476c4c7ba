package osc

type testCase struct {
	name    string
	obj     Packet
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		name: "no_arguments",
		obj:  &Message{Address: "/a", Arguments: []interface{}{}},
		raw:  []byte{'/', 'a', 0, 0, ',', 0, 0, 0},
	},
	{
		name: "int32",
		obj:  &Message{Address: "/ab", Arguments: []interface{}{int32(7)}},
		raw:  []byte{'/', 'a', 'b', 0, ',', 'i', 0, 0, 0, 0, 0, 7},
	},
	{
		name: "string_and_bool",
		obj:  &Message{Address: "/abc", Arguments: []interface{}{"xyz", true, false}},
		raw: []byte{
			'/', 'a', 'b', 'c', 0, 0, 0, 0,
			',', 's', 'T', 'F', 0, 0, 0, 0,
			'x', 'y', 'z', 0,
		},
	},
	{
		name: "xyz_position",
		obj: &Message{Address: "/p", Arguments: []interface{}{
			"xyz", int32(1), float32(1), float32(3), float32(2), int32(0),
		}},
		raw: []byte{
			'/', 'p', 0, 0,
			',', 's', 'i', 'f', 'f', 'f', 'i', 0,
			'x', 'y', 'z', 0,
			0, 0, 0, 1,
			0x3f, 0x80, 0, 0,
			0x40, 0x40, 0, 0,
			0x40, 0, 0, 0,
			0, 0, 0, 0,
		},
	},
	{
		name: "int64_double",
		obj:  &Message{Address: "/w", Arguments: []interface{}{int64(-1), float64(2)}},
		raw: []byte{
			'/', 'w', 0, 0,
			',', 'h', 'd', 0,
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0x40, 0, 0, 0, 0, 0, 0, 0,
		},
	},
	{
		name: "blob_char_midi",
		obj: &Message{Address: "/b", Arguments: []interface{}{
			[]byte{1, 2, 3, 4, 5}, Char('A'), NewMIDIMessage(0, 0x90, 60, 127),
		}},
		raw: []byte{
			'/', 'b', 0, 0,
			',', 'b', 'c', 'm', 0, 0, 0, 0,
			0, 0, 0, 5, 1, 2, 3, 4, 5, 0, 0, 0,
			0, 0, 0, 'A',
			0, 0x90, 60, 127,
		},
	},
}
