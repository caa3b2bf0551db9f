// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cogentcore.org/cubes/base/tolassert"
	"cogentcore.org/cubes/camera"
	"cogentcore.org/cubes/math32"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeout = 5 * time.Second

func startServer(t *testing.T) (*Server, string) {
	t.Helper()
	srv := NewServer()
	hs := httptest.NewServer(srv)
	t.Cleanup(func() {
		srv.Close()
		hs.Close()
	})
	return srv, "ws" + strings.TrimPrefix(hs.URL, "http")
}

func nextReply(t *testing.T, c *Client) Reply {
	t.Helper()
	select {
	case r, ok := <-c.Replies:
		require.True(t, ok, "connection closed")
		return r
	case <-time.After(timeout):
		t.Fatal("no reply")
	}
	return Reply{}
}

func nextRequest(t *testing.T, srv *Server) Request {
	t.Helper()
	select {
	case r := <-srv.Requests:
		return r
	case <-time.After(timeout):
		t.Fatal("no request")
	}
	return Request{}
}

func TestMessageApply(t *testing.T) {
	cm := camera.New()
	m := Message{Command: "move_forward", Time: 0.5}
	require.NoError(t, m.Apply(cm))
	tolassert.EqualTol(t, -2, cm.Pos.Z, 1e-5)

	m = Message{Command: RotateCommand, DX: 1, DY: 0.5, Time: 0.5}
	require.NoError(t, m.Apply(cm))
	tolassert.EqualTol(t, math32.Pi+0.5, cm.Yaw, 1e-5)
	tolassert.EqualTol(t, 0.25, cm.Pitch, 1e-5)

	fov := cm.Projection.FOV
	m = Message{Command: ZoomCommand, Offset: 0.05}
	require.NoError(t, m.Apply(cm))
	tolassert.EqualTol(t, fov-0.05, cm.Projection.FOV, 1e-5)

	// a zero time is one frame
	cm.Reset()
	m = Message{Command: "ascend"}
	require.NoError(t, m.Apply(cm))
	tolassert.EqualTol(t, 4*camera.DefaultFrameTime, cm.Pos.Y, 1e-5)

	assert.Error(t, (&Message{Command: "jump"}).Apply(cm))
	assert.Error(t, (&Message{Command: "reset", Time: -1}).Apply(cm))
	tolassert.EqualTol(t, 4*camera.DefaultFrameTime, cm.Pos.Y, 1e-5)
}

func TestMessageJSON(t *testing.T) {
	var m Message
	require.NoError(t, json.Unmarshal([]byte(`{"command":"rotate","dx":1,"dy":0,"time":0.016}`), &m))
	assert.Equal(t, Message{Command: "rotate", DX: 1, Time: 0.016}, m)

	st := NewState(3, camera.New())
	b, err := json.Marshal(Reply{Type: StateReply, State: &st})
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"type":"state"`)
	assert.Contains(t, s, `"frame":3`)
	assert.Contains(t, s, `"view_projection":[`)
	assert.NotContains(t, s, `"error"`)
}

func TestNewState(t *testing.T) {
	cm := camera.New()
	cm.MoveForward(1)
	st := NewState(7, cm)
	assert.Equal(t, 7, st.Frame)
	assert.Equal(t, [3]float32{cm.Pos.X, cm.Pos.Y, cm.Pos.Z}, st.Position)
	assert.Equal(t, cm.Projection.FOV, st.FOV)
	vp := cm.ViewProjectionMatrix()
	assert.Equal(t, vp.Slice(), st.ViewProjection[:])
}

func TestServer(t *testing.T) {
	srv, url := startServer(t)
	c, err := Dial(url)
	require.NoError(t, err)
	defer c.Close()
	_, err = uuid.Parse(c.ID)
	assert.NoError(t, err)

	require.NoError(t, c.Send(Message{Command: "move_forward", Time: 0.016}))
	req := nextRequest(t, srv)
	assert.Equal(t, c.ID, req.Client)
	assert.Equal(t, "move_forward", req.Message.Command)

	cm := camera.New()
	require.NoError(t, req.Message.Apply(cm))
	srv.Broadcast(NewState(1, cm))
	r := nextReply(t, c)
	assert.Equal(t, StateReply, r.Type)
	require.NotNil(t, r.State)
	assert.Equal(t, 1, r.State.Frame)
	tolassert.EqualTol(t, -4*0.016, r.State.Position[2], 1e-5)

	// invalid messages are answered with an error and not queued
	require.NoError(t, c.Send(Message{Command: "jump"}))
	r = nextReply(t, c)
	assert.Equal(t, ErrorReply, r.Type)
	assert.Contains(t, r.Error, "jump")
	assert.Empty(t, srv.Requests)
}

func TestServerBadJSON(t *testing.T) {
	srv, url := startServer(t)
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	var hello Reply
	require.NoError(t, ws.ReadJSON(&hello))
	assert.Equal(t, HelloReply, hello.Type)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var r Reply
	require.NoError(t, ws.ReadJSON(&r))
	assert.Equal(t, ErrorReply, r.Type)

	// the connection survives a bad message
	require.NoError(t, ws.WriteJSON(Message{Command: "reset"}))
	assert.Equal(t, "reset", nextRequest(t, srv).Message.Command)
}

func TestServerClients(t *testing.T) {
	srv, url := startServer(t)
	a, err := Dial(url)
	require.NoError(t, err)
	b, err := Dial(url)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Eventually(t, func() bool { return srv.Clients() == 2 }, timeout, 10*time.Millisecond)

	srv.Broadcast(NewState(1, camera.New()))
	assert.Equal(t, StateReply, nextReply(t, a).Type)
	assert.Equal(t, StateReply, nextReply(t, b).Type)

	require.NoError(t, a.Close())
	assert.Eventually(t, func() bool { return srv.Clients() == 1 }, timeout, 10*time.Millisecond)

	srv.Close()
	select {
	case _, ok := <-b.Replies:
		assert.False(t, ok)
	case <-time.After(timeout):
		t.Fatal("client not disconnected")
	}
}

func TestListenAndServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	srv := NewServer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, addr) }()

	var c *Client
	require.Eventually(t, func() bool {
		c, err = Dial("ws://" + addr + Path)
		return err == nil
	}, timeout, 20*time.Millisecond)
	assert.NotEmpty(t, c.ID)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(timeout):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 0, srv.Clients())
}
