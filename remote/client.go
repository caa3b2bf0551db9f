// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"fmt"

	"cogentcore.org/cubes/base/errors"
	"github.com/gorilla/websocket"
)

// Client is a connection to a [Server]. Use [Dial] to create one.
type Client struct {

	// ID is the id the server assigned to this client.
	ID string

	// Replies receives the states and errors sent by the server.
	// It is closed when the connection is closed.
	Replies chan Reply

	conn *websocket.Conn
}

// Dial connects to the server websocket endpoint at url, as in
// "ws://localhost:8423/ws", and waits for its hello.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	var hello Reply
	if err := conn.ReadJSON(&hello); err != nil {
		conn.Close()
		return nil, err
	}
	if hello.Type != HelloReply || hello.Client == "" {
		conn.Close()
		return nil, fmt.Errorf("remote: expected hello, got %q", hello.Type)
	}
	c := &Client{ID: hello.Client, Replies: make(chan Reply, queueLength), conn: conn}
	go c.readLoop()
	return c, nil
}

func (c *Client) readLoop() {
	defer close(c.Replies)
	defer c.conn.Close()
	for {
		var r Reply
		if err := c.conn.ReadJSON(&r); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			return
		}
		c.Replies <- r
	}
}

// Send sends a message to the server.
func (c *Client) Send(m Message) error {
	return c.conn.WriteJSON(m)
}

// Close cleanly closes the connection. The server then closes its side,
// which closes [Client.Replies].
func (c *Client) Close() error {
	return c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
