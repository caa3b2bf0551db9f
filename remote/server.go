// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package remote provides a websocket control channel for the camera:
// clients send camera commands as JSON messages and receive the camera
// state after each frame.
//
// The server never touches the camera itself: requests are queued on
// [Server.Requests] for the frame loop to apply.
package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/cubes/base/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Path is the URL path of the websocket endpoint.
const Path = "/ws"

const (
	writeWait   = 5 * time.Second
	sendBuffer  = 8
	queueLength = 64
)

// Server is the websocket control server. It implements [http.Handler]
// for the websocket endpoint.
type Server struct {

	// Requests receives the valid messages of all clients, in order.
	Requests chan Request

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*conn
}

// conn is one connected client.
type conn struct {
	id   string
	ws   *websocket.Conn
	send chan Reply
}

// NewServer returns a new server with no clients.
func NewServer() *Server {
	return &Server{
		Requests: make(chan Request, queueLength),
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		clients:  map[string]*conn{},
	}
}

// ServeHTTP upgrades the request to a websocket and serves the client
// until it disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("remote: upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	c := &conn{id: uuid.NewString(), ws: ws, send: make(chan Reply, sendBuffer)}
	c.send <- Reply{Type: HelloReply, Client: c.id}
	s.add(c)
	slog.Info("remote: client connected", "client", c.id, "remote", r.RemoteAddr)
	go c.writeLoop()
	s.readLoop(c)
	s.remove(c)
	slog.Info("remote: client disconnected", "client", c.id)
}

func (s *Server) readLoop(c *conn) {
	defer c.ws.Close()
	for {
		var m Message
		if err := c.ws.ReadJSON(&m); err != nil {
			var se *json.SyntaxError
			var te *json.UnmarshalTypeError
			if errors.As(err, &se) || errors.As(err, &te) {
				s.reply(c, Reply{Type: ErrorReply, Error: "remote: invalid message: " + err.Error()})
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("remote: read failed", "client", c.id, "err", err)
			}
			return
		}
		if err := m.Validate(); err != nil {
			s.reply(c, Reply{Type: ErrorReply, Error: err.Error()})
			continue
		}
		select {
		case s.Requests <- Request{Client: c.id, Message: m}:
		default:
			s.reply(c, Reply{Type: ErrorReply, Error: "remote: request queue is full"})
		}
	}
}

func (c *conn) writeLoop() {
	for r := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.ws.WriteJSON(r); err != nil {
			slog.Debug("remote: write failed", "client", c.id, "err", err)
			c.ws.Close()
			for range c.send {
			}
			return
		}
	}
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.ws.Close()
}

func (s *Server) add(c *conn) {
	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
}

func (s *Server) remove(c *conn) {
	s.mu.Lock()
	if _, ok := s.clients[c.id]; ok {
		delete(s.clients, c.id)
		close(c.send)
	}
	s.mu.Unlock()
}

// reply queues r for c, dropping it if the client is gone or too slow.
func (s *Server) reply(c *conn, r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c.id]; !ok {
		return
	}
	select {
	case c.send <- r:
	default:
		slog.Debug("remote: dropped reply", "client", c.id, "type", r.Type)
	}
}

// Broadcast sends the state to every client. Clients that are not
// keeping up miss the state.
func (s *Server) Broadcast(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		select {
		case c.send <- Reply{Type: StateReply, State: &st}:
		default:
		}
	}
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// ListenAndServe serves the websocket endpoint at [Path] on addr until
// ctx is done, then shuts down and disconnects all clients.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(Path, s)
	hs := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() {
		slog.Info("remote: listening", "addr", addr, "path", Path)
		errc <- hs.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	err := hs.Shutdown(sctx)
	s.Close()
	return err
}

// Close disconnects all clients.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.clients {
		delete(s.clients, id)
		close(c.send)
	}
}
