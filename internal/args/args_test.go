package args_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/genarg/internal/args"
	"github.com/go-ports/genarg/internal/printer"
	"github.com/go-ports/genarg/internal/stock"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("prog", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// ---------------------------------------------------------------------------
// Process
// ---------------------------------------------------------------------------

func TestProcess_RequestDefaultApplies(t *testing.T) {
	c := qt.New(t)

	vars := args.Vars{}
	st, err := args.Process(newFlagSet(), nil, []stock.Request{stock.WithDefault(stock.Quiet, 1)}, vars)
	c.Assert(err, qt.IsNil)
	c.Assert(st.Quiet, qt.Equals, 1)
	c.Assert(vars["quiet"], qt.Equals, 1)
}

func TestProcess_ParsedValueApplies(t *testing.T) {
	c := qt.New(t)

	st, err := args.Process(newFlagSet(), []string{"--debug=1"}, []stock.Request{stock.Option(stock.Debug)}, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(st.Debug, qt.Equals, 1)

	v, ok := st.Args.Get("debug")
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, 1)
}

func TestProcess_LogLevelStoredVerbatim(t *testing.T) {
	c := qt.New(t)

	st, err := args.Process(newFlagSet(), []string{"--loglevel=Debug"}, []stock.Request{stock.Option(stock.LogLevel)}, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(st.LogLevel, qt.Equals, "Debug")
	c.Assert(st.SlogLevel(), qt.Equals, slog.LevelDebug)
}

func TestProcess_StateDefaults(t *testing.T) {
	c := qt.New(t)

	c.Run("nothing requested", func(c *qt.C) {
		st, err := args.Process(newFlagSet(), nil, nil, nil)
		c.Assert(err, qt.IsNil)
		c.Assert(st.Quiet, qt.Equals, 0)
		c.Assert(st.TestMode, qt.Equals, 0)
		c.Assert(st.Debug, qt.Equals, 0)
		c.Assert(st.LogLevel, qt.Equals, args.DefaultLogLevel)
		c.Assert(st.Args.Len(), qt.Equals, 0)
	})

	c.Run("loglevel requested without value uses catalog default", func(c *qt.C) {
		st, err := args.Process(newFlagSet(), nil, []stock.Request{stock.Option(stock.LogLevel)}, nil)
		c.Assert(err, qt.IsNil)
		c.Assert(st.LogLevel, qt.Equals, "info")
	})

	c.Run("unrequested stock values stay at defaults", func(c *qt.C) {
		fs := newFlagSet()
		fs.Int("quiet_level", 3, "caller flag")
		st, err := args.Process(fs, []string{"--test_mode=1"}, []stock.Request{stock.Option(stock.TestMode)}, nil)
		c.Assert(err, qt.IsNil)
		c.Assert(st.TestMode, qt.Equals, 1)
		c.Assert(st.Quiet, qt.Equals, 0)
	})
}

func TestProcess_PublishesEveryField(t *testing.T) {
	c := qt.New(t)

	fs := newFlagSet()
	fs.String("last_name", "", "caller flag")
	fs.Bool("dry", false, "caller flag")
	fs.Duration("wait", time.Second, "caller flag")

	vars := args.Vars{}
	st, err := args.Process(fs, []string{"--last_name=Smith", "--dry", "--quiet=1"},
		[]stock.Request{stock.Option(stock.Quiet)}, vars)
	c.Assert(err, qt.IsNil)
	c.Assert(st.Parser, qt.Equals, fs)

	c.Assert(vars, qt.DeepEquals, args.Vars{
		"last_name": "Smith",
		"dry":       true,
		"wait":      time.Second,
		"quiet":     1,
	})
	c.Assert(st.Args.Len(), qt.Equals, 4)
}

func TestProcess_SecondCallReplacesState(t *testing.T) {
	c := qt.New(t)

	reqs := []stock.Request{stock.Option(stock.Quiet), stock.Option(stock.Debug)}

	first, err := args.Process(newFlagSet(), []string{"--quiet=1", "--debug=1"}, reqs, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(args.Current(), qt.Equals, first)

	second, err := args.Process(newFlagSet(), []string{"--debug=0"}, reqs, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(args.Current(), qt.Equals, second)
	c.Assert(second.Quiet, qt.Equals, 0)
	c.Assert(second.Debug, qt.Equals, 0)
	c.Assert(first.Quiet, qt.Equals, 1)
}

func TestProcess_FailurePath(t *testing.T) {
	c := qt.New(t)

	c.Run("rejected request leaves flags and state untouched", func(c *qt.C) {
		prev, err := args.Process(newFlagSet(), nil, nil, nil)
		c.Assert(err, qt.IsNil)

		fs := newFlagSet()
		vars := args.Vars{}
		st, err := args.Process(fs, []string{"--quiet=1"}, []stock.Request{stock.Option(stock.Quiet), {Name: "bogus"}}, vars)
		c.Assert(err, qt.ErrorIs, stock.ErrUnknownOption)
		c.Assert(st, qt.IsNil)
		c.Assert(fs.Lookup("quiet"), qt.IsNil)
		c.Assert(fs.Parsed(), qt.IsFalse)
		c.Assert(vars, qt.HasLen, 0)
		c.Assert(args.Current(), qt.Equals, prev)
	})

	c.Run("bad choice is a parse error", func(c *qt.C) {
		_, err := args.Process(newFlagSet(), []string{"--quiet=5"}, []stock.Request{stock.Option(stock.Quiet)}, nil)
		var perr *args.ParseError
		c.Assert(errors.As(err, &perr), qt.IsTrue)
		c.Assert(perr.Prog, qt.Equals, "prog")
		c.Assert(err, qt.ErrorMatches, `prog: .*"5".*--quiet.*invalid choice 5 \(choose from 1, 0\)`)
	})

	c.Run("help is returned unwrapped", func(c *qt.C) {
		_, err := args.Process(newFlagSet(), []string{"--help"}, []stock.Request{stock.Option(stock.Quiet)}, nil)
		c.Assert(err, qt.Equals, pflag.ErrHelp)
	})
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_FailurePath(t *testing.T) {
	c := qt.New(t)

	c.Run("unparsed flag set", func(c *qt.C) {
		_, err := args.Load(newFlagSet(), nil, nil)
		c.Assert(err, qt.ErrorMatches, `args.Load: prog has not been parsed`)
	})

	c.Run("requested option never registered", func(c *qt.C) {
		fs := newFlagSet()
		c.Assert(fs.Parse(nil), qt.IsNil)
		_, err := args.Load(fs, []stock.Request{stock.Option(stock.Debug)}, nil)
		c.Assert(err, qt.ErrorMatches, `args.Load: stock option --debug is not defined on prog`)
	})
}

func TestLoad_AfterExternalParse(t *testing.T) {
	c := qt.New(t)

	fs := newFlagSet()
	reqs := []stock.Request{stock.Option(stock.LogLevel)}
	c.Assert(stock.Register(fs, reqs), qt.IsNil)
	c.Assert(fs.Parse([]string{"--loglevel", "error"}), qt.IsNil)

	st, err := args.Load(fs, reqs, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(st.LogLevel, qt.Equals, "error")
	c.Assert(st.SlogLevel(), qt.Equals, slog.LevelError)
}

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

func TestState_SlogLevel(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "DEBUG", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "Warning", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "CRITICAL", want: slog.LevelError + 4},
		{level: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		c.Run(tt.level, func(c *qt.C) {
			st := &args.State{LogLevel: tt.level}
			c.Assert(st.SlogLevel(), qt.Equals, tt.want)
		})
	}
}

func TestState_Logger(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	logger := (&args.State{LogLevel: "ERROR"}).Logger(&buf)
	logger.Warn("dropped")
	logger.Error("kept")
	c.Assert(buf.String(), qt.Not(qt.Contains), "dropped")
	c.Assert(buf.String(), qt.Contains, "kept")
}

func TestState_Context(t *testing.T) {
	c := qt.New(t)

	_, ok := args.FromContext(context.Background())
	c.Assert(ok, qt.IsFalse)

	st := &args.State{LogLevel: "INFO"}
	got, ok := args.FromContext(args.WithState(context.Background(), st))
	c.Assert(ok, qt.IsTrue)
	c.Assert(got, qt.Equals, st)
}

// ---------------------------------------------------------------------------
// Record & Sprint
// ---------------------------------------------------------------------------

func TestRecord_Accessors(t *testing.T) {
	c := qt.New(t)

	rec := args.NewRecord(
		args.Field{Name: "quiet", Value: 1},
		args.Field{Name: "name", Value: "x"},
		args.Field{Name: "dry", Value: "true"},
		args.Field{Name: "quiet", Value: 0},
	)
	c.Assert(rec.Len(), qt.Equals, 3)
	c.Assert(rec.Fields()[0], qt.Equals, args.Field{Name: "quiet", Value: 0})

	n, err := rec.Int("quiet")
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 0)

	s, err := rec.Text("name")
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "x")

	b, err := rec.Bool("dry")
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.IsTrue)

	_, err = rec.Int("missing")
	c.Assert(err, qt.ErrorMatches, `record: no field "missing"`)
}

func TestSprint_AlignsValues(t *testing.T) {
	c := qt.New(t)

	rec := args.NewRecord(args.Field{Name: "a", Value: 1}, args.Field{Name: "b", Value: "x"})
	out := args.Sprint(rec, 2)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	c.Assert(lines, qt.HasLen, 2)
	width := printer.ColumnWidth + 2
	c.Assert(lines[0], qt.Equals, "  a:"+strings.Repeat(" ", width-4)+"1")
	c.Assert(lines[1], qt.Equals, "  b:"+strings.Repeat(" ", width-4)+"x")
}

func TestSprint_EmptyRecord(t *testing.T) {
	c := qt.New(t)
	c.Assert(args.Sprint(args.NewRecord(), 4), qt.Equals, "")
}

func TestRecord_MarshalYAMLKeepsOrder(t *testing.T) {
	c := qt.New(t)

	rec := args.NewRecord(
		args.Field{Name: "zeta", Value: 1},
		args.Field{Name: "alpha", Value: "x"},
		args.Field{Name: "tags", Value: []string{"a", "b"}},
	)
	out, err := yaml.Marshal(rec)
	c.Assert(err, qt.IsNil)
	c.Assert(string(out), qt.Equals, "zeta: 1\nalpha: x\ntags:\n    - a\n    - b\n")
}
