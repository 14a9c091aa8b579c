package stock

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Value is a pflag.Value that exposes its typed value.
type Value interface {
	pflag.Value
	Get() any
}

type intChoice struct {
	value   int
	choices []string
}

func newIntChoice(def int, choices []string) *intChoice {
	return &intChoice{value: def, choices: choices}
}

func (v *intChoice) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid int value %q", s)
	}
	if len(v.choices) > 0 && !slices.Contains(v.choices, strconv.Itoa(n)) {
		return fmt.Errorf("invalid choice %d (choose from %s)", n, strings.Join(v.choices, ", "))
	}
	v.value = n
	return nil
}

func (v *intChoice) String() string { return strconv.Itoa(v.value) }
func (*intChoice) Type() string     { return "int" }
func (v *intChoice) Get() any       { return v.value }

type stringChoice struct {
	value    string
	choices  []string
	foldCase bool
}

func newStringChoice(def string, choices []string, foldCase bool) *stringChoice {
	return &stringChoice{value: def, choices: choices, foldCase: foldCase}
}

// Set stores s verbatim once it matches one of the choices.
func (v *stringChoice) Set(s string) error {
	if len(v.choices) > 0 {
		match := func(c string) bool {
			if v.foldCase {
				return strings.EqualFold(c, s)
			}
			return c == s
		}
		if !slices.ContainsFunc(v.choices, match) {
			return fmt.Errorf("invalid choice %q (choose from %s)", s, strings.Join(v.choices, ", "))
		}
	}
	v.value = s
	return nil
}

func (v *stringChoice) String() string { return v.value }
func (*stringChoice) Type() string     { return "string" }
func (v *stringChoice) Get() any       { return v.value }
