// Package args parses a pflag.FlagSet carrying stock options and exposes the
// result as an explicit State.
package args

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/spf13/pflag"
)

// DefaultLogLevel is the State log level when loglevel was not requested.
const DefaultLogLevel = "WARNING"

// State holds the stock option values of the last processed command line.
type State struct {
	Quiet    int
	TestMode int
	Debug    int
	LogLevel string

	Args   *Record
	Parser *pflag.FlagSet
}

func newState() *State {
	return &State{LogLevel: DefaultLogLevel}
}

var current atomic.Pointer[State]

// Current returns the State stored by the most recent Load, or nil.
func Current() *State { return current.Load() }

type stateKey struct{}

// WithState returns a copy of ctx carrying s.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// FromContext returns the State carried by ctx.
func FromContext(ctx context.Context) (*State, bool) {
	s, ok := ctx.Value(stateKey{}).(*State)
	return s, ok && s != nil
}

// SlogLevel maps LogLevel onto a slog level. Unknown names map to Warn.
func (s *State) SlogLevel() slog.Level {
	switch strings.ToUpper(s.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	case "CRITICAL":
		return slog.LevelError + 4
	default:
		return slog.LevelWarn
	}
}

// Logger returns a text logger writing to w at SlogLevel.
func (s *State) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: s.SlogLevel()}))
}

// Namespace receives every parsed field by name.
type Namespace interface {
	Set(name string, value any)
}

// Vars is a map-backed Namespace.
type Vars map[string]any

// Set implements Namespace.
func (v Vars) Set(name string, value any) { v[name] = value }
