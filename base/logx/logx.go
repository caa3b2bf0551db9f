// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default slog logger, with the level
// colored on terminals that support it, and a user-settable level.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] with the debug build tag
// and [slog.LevelWarn] with the release build tag.
var UserLevel = &slog.LevelVar{}

func init() {
	UserLevel.Set(defaultUserLevel)
	SetDefaultLogger(os.Stderr)
}

// NewHandler returns a text handler writing to w at [UserLevel],
// with the level key colored according to its severity when w is a
// terminal with color support.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, out.String(lvl.String()).Foreground(LevelColor(lvl)).String())
		},
	})
}

// SetDefaultLogger sets the default slog logger to one using [NewHandler].
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(lvl slog.Level) termenv.Color {
	switch {
	case lvl >= slog.LevelError:
		return termenv.ANSIRed
	case lvl >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lvl >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

// ParseLevel returns the [slog.Level] named by s, which is one of
// debug, info, warn or error (case insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(strings.ToUpper(s)))
	if err != nil {
		return lvl, fmt.Errorf("logx: unknown log level %q", s)
	}
	return lvl, nil
}

// PrintlnDebug prints the given arguments as a single line
// if [UserLevel] is at debug.
func PrintlnDebug(a ...any) {
	if UserLevel.Level() <= slog.LevelDebug {
		fmt.Println(a...)
	}
}
