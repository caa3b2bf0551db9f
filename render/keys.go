// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"
	"sort"

	"cogentcore.org/cubes/camera"
	"github.com/hajimehoshi/ebiten/v2"
)

// binding is a key issuing a camera command while held.
type binding struct {
	key ebiten.Key
	cmd camera.Commands
}

// parseBindings returns the bindings of the named keys, in command order.
// Unknown key names are logged and skipped.
func parseBindings(keys map[string]camera.Commands) []binding {
	bs := make([]binding, 0, len(keys))
	for name, cmd := range keys {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			slog.Warn("render: unknown key name in bindings", "key", name, "command", cmd)
			continue
		}
		bs = append(bs, binding{key: k, cmd: cmd})
	}
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].cmd != bs[j].cmd {
			return bs[i].cmd < bs[j].cmd
		}
		return bs[i].key < bs[j].key
	})
	return bs
}
