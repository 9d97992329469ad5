// internal/formula/registry.go
package formula

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Args maps canonical parameter names to values.
type Args map[string]float64

// Param describes one input of a formula.
type Param struct {
	Name     string // canonical key, e.g. "delta_v"
	Symbol   string // display symbol, e.g. "ΔV"
	Unit     string
	Optional bool
}

// Formula is a named, evaluable entry of the propulsion formula set.
type Formula struct {
	Name   string // e.g. "propellant-mass"
	Symbol string // result symbol, e.g. "ΔM"
	Unit   string // result unit
	Params []Param
	Eval   func(Args) (float64, error)
}

// Param returns the parameter with canonical key name.
func (f Formula) Param(name string) (Param, bool) {
	for _, p := range f.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Check reports unknown keys, non-finite values and missing required
// parameters in a.
func (f Formula) Check(a Args) error {
	for k := range a {
		if _, ok := f.Param(k); !ok {
			return fmt.Errorf("%s: unknown argument %q", f.Name, k)
		}
	}
	for _, p := range f.Params {
		if v, ok := a[p.Name]; ok && (math.IsInf(v, 0) || math.IsNaN(v)) {
			return fmt.Errorf("%s: argument %s is not finite (%g)", f.Name, p.Name, v)
		}
	}
	var missing []string
	for _, p := range f.Params {
		if _, ok := a[p.Name]; !ok && !p.Optional {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing argument(s) %s", f.Name, strings.Join(missing, ", "))
	}
	return nil
}

// Evaluate checks a and then runs the formula.
func (f Formula) Evaluate(a Args) (float64, error) {
	if err := f.Check(a); err != nil {
		return 0, err
	}
	return f.Eval(a)
}

// Registry (name → formula). Builtins register in init() from builtin.go.
var registry = map[string]Formula{}

// nameAliases maps short or legacy names onto registry names.
var nameAliases = map[string]string{}

// Register adds f under its name plus any aliases (last wins).
func Register(f Formula, aliases ...string) {
	registry[f.Name] = f
	for _, a := range aliases {
		nameAliases[normalizeName(a)] = f.Name
	}
}

// Lookup resolves a formula by name or alias, case-insensitively.
func Lookup(name string) (Formula, error) {
	n := normalizeName(name)
	if canon, ok := nameAliases[n]; ok {
		n = canon
	}
	f, ok := registry[n]
	if !ok {
		return Formula{}, fmt.Errorf("unknown formula %q (have: %s)", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns registered formula names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// All returns registered formulas sorted by name.
func All() []Formula {
	names := Names()
	out := make([]Formula, 0, len(names))
	for _, n := range names {
		out = append(out, registry[n])
	}
	return out
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}

// Aliases returns the aliases registered for the formula name, sorted.
func Aliases(name string) []string {
	var out []string
	for a, canon := range nameAliases {
		if canon == name {
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}
