package osc

import (
	"fmt"
	"net"
)

// Client enables you to send OSC Packets to a specified server.
type Client struct {
	conn *net.UDPConn
}

// Dial creates a new OSC Client with a connection to the specified server.
func Dial(addr string) (*Client, error) {
	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	conn, err := net.DialUDP("udp", nil, a)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send sends an OSC Packet to the server.
func (c *Client) Send(packet Packet) error {
	data, err := packet.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = c.conn.Write(data)
	return err
}

// SendTagged sends a message whose type tag string is given by the caller.
// The tags must describe args exactly.
func (c *Client) SendTagged(address, typeTags string, args []interface{}) error {
	msg := NewMessage(address, args...)
	tags, err := msg.TypeTags()
	if err != nil {
		return fmt.Errorf("SendTagged: %w", err)
	}
	if tags != typeTags {
		return fmt.Errorf("SendTagged: type tags %q do not match arguments %q", typeTags, tags)
	}
	return c.Send(msg)
}

// LocalAddr returns the local network address.
func (c *Client) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// Close closes the connection to the server.
func (c *Client) Close() error {
	return c.conn.Close()
}
