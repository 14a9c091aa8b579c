package stock

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/go-ports/genarg/internal/printer"
)

// ListName is the name under which a request list appears in diagnostics.
const ListName = "stock_list"

var (
	// ErrUnknownOption is returned for a request naming no catalog option.
	ErrUnknownOption = errors.New("unknown stock option")
	// ErrMalformedRequest is returned for an empty, duplicate or otherwise
	// unusable request.
	ErrMalformedRequest = errors.New("malformed stock option request")
)

// diagOut receives the framed error report for rejected requests.
var diagOut io.Writer = os.Stderr

// Request asks for one stock option. A nil Default keeps the catalog default.
type Request struct {
	Name    string
	Default any
}

// Option requests name with its catalog default.
func Option(name Name) Request { return Request{Name: string(name)} }

// WithDefault requests name with def overriding the catalog default.
func WithDefault(name Name, def any) Request { return Request{Name: string(name), Default: def} }

func (r Request) String() string {
	if r.Default == nil {
		return r.Name
	}
	return fmt.Sprintf("(%s, %v)", r.Name, r.Default)
}

// ConfigError reports a request the registrar refused.
type ConfigError struct {
	List    string
	Index   int
	Request Request
	Catalog []string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s[%d] %q: %v", e.List, e.Index, e.Request.Name, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

type resolved struct {
	spec  Spec
	value Value
	usage string
}

// Register validates reqs against the catalog and attaches one flag per
// request to fs. Every request is validated before anything is attached, so
// on error fs is left untouched.
func Register(fs *pflag.FlagSet, reqs []Request) error {
	flags, err := resolve(fs, reqs)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			report(cerr)
		}
		return err
	}
	for _, r := range flags {
		fs.Var(r.value, string(r.spec.Name), r.usage)
	}
	return nil
}

func resolve(fs *pflag.FlagSet, reqs []Request) ([]resolved, error) {
	out := make([]resolved, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for ix, req := range reqs {
		fail := func(err error) error {
			return &ConfigError{List: ListName, Index: ix, Request: req, Catalog: Names(), Err: err}
		}
		if req.Name == "" {
			return nil, fail(fmt.Errorf("%w: missing option name", ErrMalformedRequest))
		}
		spec, ok := Lookup(req.Name)
		if !ok {
			return nil, fail(ErrUnknownOption)
		}
		if seen[req.Name] {
			return nil, fail(fmt.Errorf("%w: requested more than once", ErrMalformedRequest))
		}
		if fs.Lookup(req.Name) != nil {
			return nil, fail(fmt.Errorf("%w: --%s already defined on %s", ErrMalformedRequest, req.Name, fs.Name()))
		}
		seen[req.Name] = true

		def := spec.Default
		if req.Default != nil {
			def = req.Default
		}
		var (
			value Value
			err   error
		)
		switch spec.Kind {
		case KindInt:
			var n int
			n, err = cast.ToIntE(def)
			value = newIntChoice(n, spec.Choices)
			def = n
		default:
			var s string
			s, err = cast.ToStringE(def)
			value = newStringChoice(s, spec.Choices, spec.FoldCase)
			def = s
		}
		if err != nil {
			return nil, fail(fmt.Errorf("%w: default %v is not a valid %s", ErrMalformedRequest, req.Default, spec.Kind))
		}
		out = append(out, resolved{spec: spec, value: value, usage: spec.HelpText(fs.Name(), def)})
	}
	return out, nil
}

func report(e *ConfigError) {
	slog.Debug("stock option request rejected",
		"list", e.List, "index", e.Index, "request", e.Request.String(), "catalog", e.Catalog, "err", e.Err)

	var msg string
	if errors.Is(e.Err, ErrUnknownOption) {
		msg = fmt.Sprintf("Programmer error - %q not found in stock list:\n", e.Request.Name)
	} else {
		msg = fmt.Sprintf("Programmer error - %s[%d] must name one of the stock options (%v):\n",
			e.List, e.Index, e.Err)
	}
	printer.ErrorReport(diagOut, msg+printer.SprintList("catalog", e.Catalog, 0))
}
