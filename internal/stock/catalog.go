// Package stock defines the catalog of stock command-line options shared by
// genarg programs and attaches requested ones to a pflag.FlagSet.
package stock

import (
	"slices"
	"strings"

	"github.com/go-ports/genarg/internal/printer"
)

// Name identifies a stock option. The set is closed; see Catalog.
type Name string

const (
	Quiet    Name = "quiet"
	TestMode Name = "test_mode"
	Debug    Name = "debug"
	LogLevel Name = "loglevel"
)

// Kind is the value type of a stock option.
type Kind int

const (
	KindInt Kind = iota
	KindString
)

func (k Kind) String() string {
	if k == KindString {
		return "string"
	}
	return "int"
}

// Spec describes one stock option.
type Spec struct {
	Name    Name
	Default any
	Kind    Kind
	// Choices lists the allowed values in their textual form.
	Choices []string
	// FoldCase makes Choices match case-insensitively.
	FoldCase bool
	// Help may reference %(prog) and %(default).
	Help string
}

const defaultSentence = `  The default value is "%(default)".`

var switchChoices = []string{"1", "0"}

var catalog = []Spec{
	{
		Name:    Quiet,
		Default: 0,
		Kind:    KindInt,
		Choices: switchChoices,
		Help: `If this parameter is set to "1", %(prog) will print only essential information, ` +
			`i.e. it will not echo parameters, echo commands, print the total run time, etc.`,
	},
	{
		Name:    TestMode,
		Default: 0,
		Kind:    KindInt,
		Choices: switchChoices,
		Help: `This means that %(prog) should go through all the motions but not actually do ` +
			`anything substantial.  This is mainly to be used by the developer of %(prog).`,
	},
	{
		Name:    Debug,
		Default: 0,
		Kind:    KindInt,
		Choices: switchChoices,
		Help: `If this parameter is set to "1", %(prog) will print additional debug information.  ` +
			`This is mainly to be used by the developer of %(prog).`,
	},
	{
		Name:     LogLevel,
		Default:  "info",
		Kind:     KindString,
		Choices:  []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"},
		FoldCase: true,
		Help:     `The logging level %(prog) should use (case-insensitive).`,
	},
}

// Catalog returns a copy of every stock option spec in catalog order.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	for i, s := range catalog {
		s.Choices = slices.Clone(s.Choices)
		out[i] = s
	}
	return out
}

// Names returns the catalog's option names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = string(s.Name)
	}
	return names
}

// Lookup returns the spec for name.
func Lookup(name string) (Spec, bool) {
	i := slices.IndexFunc(catalog, func(s Spec) bool { return string(s.Name) == name })
	if i < 0 {
		return Spec{}, false
	}
	s := catalog[i]
	s.Choices = slices.Clone(s.Choices)
	return s, true
}

// HelpText renders the spec's help for program prog with default def.
func (s Spec) HelpText(prog string, def any) string {
	r := strings.NewReplacer("%(prog)", prog, "%(default)", printer.FormatValue(def))
	return r.Replace(s.Help + defaultSentence)
}
