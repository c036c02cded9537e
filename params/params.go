package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Set is an insertion-ordered mapping of parameter names to values.
//
// Iteration order is the order in which names were first added, so
// reporters render parameters deterministically.
type Set struct {
	names  []string
	values map[string]string
}

// NewSet creates an empty parameter set.
func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

// Put sets a parameter value, preserving first-insertion order.
func (s *Set) Put(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get returns the value for name and whether it is present.
func (s *Set) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// GetInt returns the value for name parsed as an int64, or def when the
// parameter is absent.
func (s *Set) GetInt(name string, def int64) (int64, error) {
	v, ok := s.values[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: %w", name, err)
	}
	return n, nil
}

// Len returns the number of parameters in the set.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the parameter names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// String renders the set as "name=value" pairs in insertion order.
func (s *Set) String() string {
	var sb strings.Builder
	for i, name := range s.names {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(name)
		sb.WriteString("=")
		sb.WriteString(s.values[name])
	}
	return sb.String()
}

// RunSpec describes one swept parameter: starting at Init, advance by
// Step under Op, Count times.
type RunSpec struct {
	Name  string `yaml:"name" json:"name"`
	Op    string `yaml:"op" json:"op"` // "+" or "*"
	Init  string `yaml:"init" json:"init"`
	Step  string `yaml:"step" json:"step"`
	Count int    `yaml:"count" json:"count"`

	// Current holds the most recently generated value per parameter
	// name. Populated as a side effect of sweep generation so later
	// stages can resolve the swept value outside an iteration.
	Current map[string]string `yaml:"-" json:"-"`
}

// Ops defines the stepping algebra for one parameter type: how a
// string-encoded value advances under "+" and "*".
type Ops struct {
	Add func(current, step string) (string, error)
	Mul func(current, step string) (string, error)
}

// Int64Ops returns stepping operations for base-10 integer parameters.
func Int64Ops() Ops {
	return Ops{
		Add: func(current, step string) (string, error) {
			a, b, err := parseInt64Pair(current, step)
			if err != nil {
				return "", err
			}
			return strconv.FormatInt(a+b, 10), nil
		},
		Mul: func(current, step string) (string, error) {
			a, b, err := parseInt64Pair(current, step)
			if err != nil {
				return "", err
			}
			return strconv.FormatInt(a*b, 10), nil
		},
	}
}

func parseInt64Pair(a, b string) (int64, int64, error) {
	x, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer value %q: %w", a, err)
	}
	y, err := strconv.ParseInt(b, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer step %q: %w", b, err)
	}
	return x, y, nil
}

// Registry maps parameter names to their stepping operations.
type Registry struct {
	names []string
	ops   map[string]Ops
}

// NewRegistry creates an empty parameter-type registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Ops)}
}

// Register binds a parameter name to its stepping operations. A second
// registration for the same name replaces the first.
func (r *Registry) Register(name string, ops Ops) {
	if _, ok := r.ops[name]; !ok {
		r.names = append(r.names, name)
	}
	r.ops[name] = ops
}

// Lookup returns the operations for a parameter name.
func (r *Registry) Lookup(name string) (Ops, bool) {
	ops, ok := r.ops[name]
	return ops, ok
}

// Names returns the registered parameter names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// UnknownParameterError indicates a sweep referenced a parameter name
// with no registered type.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q: no registered type", e.Name)
}
