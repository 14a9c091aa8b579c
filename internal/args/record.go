package args

import (
	"fmt"
	"slices"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/genarg/internal/stock"
)

// Field is one parsed option.
type Field struct {
	Name  string
	Value any
}

// Record maps option names to parsed values, keeping the order in which the
// parser reported them. It is read-only once built.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a Record from fields. A repeated name keeps its first
// position and its last value.
func NewRecord(fields ...Field) *Record {
	r := &Record{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if i, ok := r.index[f.Name]; ok {
			r.fields[i].Value = f.Value
			continue
		}
		r.index[f.Name] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r
}

// Fields returns a copy of the record's fields in order.
func (r *Record) Fields() []Field { return slices.Clone(r.fields) }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Get returns the value stored under name.
func (r *Record) Get(name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Int returns the value under name converted to an int.
func (r *Record) Int(name string) (int, error) {
	v, ok := r.Get(name)
	if !ok {
		return 0, fmt.Errorf("record: no field %q", name)
	}
	return cast.ToIntE(v)
}

// Text returns the value under name converted to a string.
func (r *Record) Text(name string) (string, error) {
	v, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("record: no field %q", name)
	}
	return cast.ToStringE(v)
}

// Bool returns the value under name converted to a bool.
func (r *Record) Bool(name string) (bool, error) {
	v, ok := r.Get(name)
	if !ok {
		return false, fmt.Errorf("record: no field %q", name)
	}
	return cast.ToBoolE(v)
}

// MarshalYAML renders the record as a mapping in field order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r.fields {
		var val yaml.Node
		if err := val.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("record: encode %s: %w", f.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		node.Content = append(node.Content, key, &val)
	}
	return node, nil
}

// recordFromFlags collects every flag defined on fs except help.
func recordFromFlags(fs *pflag.FlagSet) *Record {
	var fields []Field
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		fields = append(fields, Field{Name: f.Name, Value: flagValue(fs, f)})
	})
	return NewRecord(fields...)
}

// flagValue returns the typed value of f, falling back to its text form for
// types it does not know.
func flagValue(fs *pflag.FlagSet, f *pflag.Flag) any {
	if v, ok := f.Value.(stock.Value); ok {
		return v.Get()
	}
	var (
		v   any
		err error
	)
	switch f.Value.Type() {
	case "bool":
		v, err = fs.GetBool(f.Name)
	case "int":
		v, err = fs.GetInt(f.Name)
	case "int64":
		v, err = fs.GetInt64(f.Name)
	case "uint":
		v, err = fs.GetUint(f.Name)
	case "float64":
		v, err = fs.GetFloat64(f.Name)
	case "duration":
		v, err = fs.GetDuration(f.Name)
	case "stringSlice":
		v, err = fs.GetStringSlice(f.Name)
	case "stringArray":
		v, err = fs.GetStringArray(f.Name)
	case "intSlice":
		v, err = fs.GetIntSlice(f.Name)
	default:
		return f.Value.String()
	}
	if err != nil {
		return f.Value.String()
	}
	return v
}
