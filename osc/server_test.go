package osc

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dummyConn struct {
	net.PacketConn
	m []byte
}

func (d *dummyConn) ReadFrom(buf []byte) (n int, addr net.Addr, err error) {
	n = copy(buf, d.m)
	return
}

func (d *dummyConn) SetReadDeadline(_ time.Time) (err error) { return }

func TestClientServerRoundTrip(t *testing.T) {
	c, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer c.Close()

	client, err := Dial(c.LocalAddr().String())
	require.NoError(t, err)
	defer client.Close()

	args := []interface{}{"aed", int32(3), float32(10), float32(-5), float32(2.5), int32(3)}
	require.NoError(t, client.SendTagged("/source", ",sifffi", args))

	server := &Server{ReadTimeout: 2 * time.Second}
	got, _, err := server.ReceivePacket(c)
	require.NoError(t, err)
	assert.Equal(t, "/source", got.Address)
	assert.Equal(t, args, got.Arguments)
}

func TestClientSendTaggedMismatch(t *testing.T) {
	client, err := Dial("127.0.0.1:9")
	require.NoError(t, err)
	defer client.Close()

	err = client.SendTagged("/source", ",sif", []interface{}{"xyz", int32(1), float32(1), float32(2)})
	assert.Error(t, err)
}

func TestReadTimeout(t *testing.T) {
	c, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer c.Close()

	server := &Server{ReadTimeout: 50 * time.Millisecond}
	_, _, err = server.ReceivePacket(c)
	var ne net.Error
	require.ErrorAs(t, err, &ne)
	assert.True(t, ne.Timeout())
}

func TestServeHandlesMessages(t *testing.T) {
	c, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	received := make(chan *Message, 1)
	server := &Server{Handler: func(msg *Message, _ net.Addr) {
		received <- msg
	}}
	done := make(chan error, 1)
	go func() { done <- server.Serve(c) }()

	client, err := Dial(c.LocalAddr().String())
	require.NoError(t, err)
	defer client.Close()

	// A malformed datagram is dropped without stopping the server.
	_, err = client.conn.Write([]byte{'x', 0, 0, 0})
	require.NoError(t, err)
	require.NoError(t, client.Send(NewMessage("/address/test", int32(1122), int32(3344))))

	select {
	case msg := <-received:
		assert.Equal(t, "/address/test", msg.Address)
		assert.Equal(t, []interface{}{int32(1122), int32(3344)}, msg.Arguments)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	c.Close()
	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after close")
	}
}

func BenchmarkReceivePacket(b *testing.B) {
	d := &dummyConn{m: msg}
	s := &Server{}
	var p *Message
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		p, _, _ = s.ReceivePacket(d)
	}
	result = p
}
