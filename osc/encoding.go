package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	bit32Size = 4
	bit64Size = 8

	// MaxPacketSize is the largest datagram the client will send or the server will read.
	MaxPacketSize = 65535
)

////
// De/Encoding functions
////

// readBlob reads an OSC blob from the reader. Padding bytes are removed from
// the reader and not returned.
func readBlob(reader *bytes.Buffer) ([]byte, int, error) {
	if reader.Len() < bit32Size {
		return nil, 0, fmt.Errorf("readBlob: %w", io.ErrUnexpectedEOF)
	}
	blobLen := int(binary.BigEndian.Uint32(reader.Next(bit32Size)))
	n := bit32Size + blobLen

	if blobLen < 0 || blobLen > reader.Len() {
		return nil, 0, fmt.Errorf("readBlob: invalid blob length %d", blobLen)
	}

	blob := make([]byte, blobLen)
	copy(blob, reader.Next(blobLen))

	pad := padBytesNeeded(n)
	reader.Next(pad)

	return blob, n + pad, nil
}

// writeBlob writes the data byte array as an OSC blob into buff. If the length
// of data isn't 32-bit aligned, padding bytes will be added.
func writeBlob(data []byte, buf *bytes.Buffer) (int, error) {
	if len(data) > MaxPacketSize {
		return 0, fmt.Errorf("writeBlob: blob too large: %d", len(data))
	}

	// Add the size of the blob
	var size [bit32Size]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(data)))
	buf.Write(size[:])
	n := bit32Size

	// Write the data
	buf.Write(data)
	n += len(data)

	pad := padBytesNeeded(n)
	buf.Write(padding[:pad])

	return n + pad, nil
}

// readPaddedString reads a padded string from the given reader. The padding
// bytes are removed from the reader.
func readPaddedString(reader *bytes.Buffer) (string, int, error) {
	pos := bytes.IndexByte(reader.Bytes(), 0)
	if pos == -1 {
		return "", 0, io.EOF
	}

	str := string(reader.Next(pos))
	n := pos + 1 + padBytesNeeded(pos+1)
	reader.Next(n - pos)

	return str, n, nil
}

// writePaddedString writes a string with padding bytes to the buffer.
// Returns the number of written bytes.
func writePaddedString(str string, buf *bytes.Buffer) int {
	buf.WriteString(str)
	n := len(str) + 1

	pad := padBytesNeeded(n)
	buf.Write(padding[:pad+1])

	return n + pad
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

var padding = [bit32Size + 1]byte{}
