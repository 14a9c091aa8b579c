package args

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/go-ports/genarg/internal/printer"
	"github.com/go-ports/genarg/internal/stock"
)

// ParseError wraps an argv error reported by a ContinueOnError FlagSet.
type ParseError struct {
	Prog string
	Err  error
}

func (e *ParseError) Error() string { return e.Prog + ": " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Process attaches the requested stock options to fs, parses argv and loads
// the result (see Load). A rejected request returns before argv is looked at.
//
// Parse failures follow fs's error handling: ExitOnError exits the process
// with usage text, ContinueOnError yields a *ParseError. pflag.ErrHelp is
// returned unwrapped.
func Process(fs *pflag.FlagSet, argv []string, reqs []stock.Request, ns Namespace) (*State, error) {
	if err := stock.Register(fs, reqs); err != nil {
		return nil, err
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, &ParseError{Prog: fs.Name(), Err: err}
	}
	return Load(fs, reqs, ns)
}

// Load builds a State from an already parsed fs. Requested stock options are
// copied into the State, the full Record and fs are stored on it, and it
// replaces Current. When ns is non-nil every field is also set on ns.
func Load(fs *pflag.FlagSet, reqs []stock.Request, ns Namespace) (*State, error) {
	if !fs.Parsed() {
		return nil, fmt.Errorf("args.Load: %s has not been parsed", fs.Name())
	}

	rec := recordFromFlags(fs)
	st := newState()
	for _, req := range reqs {
		v, ok := rec.Get(req.Name)
		if !ok {
			return nil, fmt.Errorf("args.Load: stock option --%s is not defined on %s", req.Name, fs.Name())
		}
		switch stock.Name(req.Name) {
		case stock.Quiet:
			st.Quiet = cast.ToInt(v)
		case stock.TestMode:
			st.TestMode = cast.ToInt(v)
		case stock.Debug:
			st.Debug = cast.ToInt(v)
		case stock.LogLevel:
			st.LogLevel = cast.ToString(v)
		}
	}
	st.Args = rec
	st.Parser = fs
	current.Store(st)

	if ns != nil {
		for _, f := range rec.fields {
			ns.Set(f.Name, f.Value)
		}
	}
	slog.Debug("arguments loaded", "prog", fs.Name(), "fields", rec.Len())
	return st, nil
}

// Sprint renders rec one field per line. Lines are indented by indent spaces
// and values start at column printer.ColumnWidth+indent.
func Sprint(rec *Record, indent int) string {
	width := printer.ColumnWidth + indent
	var b []byte
	for _, f := range rec.fields {
		b = append(b, printer.SprintVarx(f.Name, f.Value, indent, width)...)
	}
	return string(b)
}
