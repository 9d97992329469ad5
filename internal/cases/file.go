package cases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LanceryH/Space-propulsion/internal/formula"
)

// File is one YAML case file.
type File struct {
	// Name labels the file in reports; defaults to the path.
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// G0 is merged into every case whose formula takes g0 and that omits it.
	G0 *float64 `yaml:"g0,omitempty"`

	Cases []Case `yaml:"cases"`
}

// Case is a single evaluation request.
type Case struct {
	Name    string             `yaml:"name"`
	Formula string             `yaml:"formula"`
	Args    map[string]float64 `yaml:"args"`
	Expect  *Expect            `yaml:"expect,omitempty"`
}

// Expect is an optional check on a case's outcome: either a value within
// tolerance, or an error kind ("parameter" or "domain").
type Expect struct {
	Value     *float64 `yaml:"value,omitempty"`
	Tolerance float64  `yaml:"tolerance,omitempty"`
	Error     string   `yaml:"error,omitempty"`
}

// Prepared is a validated case ready to evaluate.
type Prepared struct {
	Name    string
	Formula formula.Formula
	Args    formula.Args
	Expect  *Expect
	Source  string
}

// LoadFile reads and prepares the case file at path ("-" reads stdin).
func LoadFile(path string, defaultG0 *float64) ([]Prepared, error) {
	if path == "-" {
		return Load(os.Stdin, "-", defaultG0)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Load(fh, path, defaultG0)
}

// Load decodes a case file from r. Unknown YAML fields are rejected.
func Load(r io.Reader, source string, defaultG0 *float64) ([]Prepared, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty case file", source)
		}
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%s: no cases", source)
	}
	if f.Name == "" {
		f.Name = source
	}

	g0 := defaultG0
	if f.G0 != nil {
		g0 = f.G0
	}

	out := make([]Prepared, 0, len(f.Cases))
	for i, c := range f.Cases {
		p, err := prepare(c, g0)
		if err != nil {
			return nil, fmt.Errorf("%s: case %d (%s): %w", source, i+1, caseLabel(c, i), err)
		}
		p.Source = f.Name
		if p.Name == "" {
			p.Name = caseLabel(c, i)
		}
		out = append(out, p)
	}
	return out, nil
}

func caseLabel(c Case, i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("C%d", i+1)
}

func prepare(c Case, g0 *float64) (Prepared, error) {
	f, err := formula.Lookup(c.Formula)
	if err != nil {
		return Prepared{}, err
	}
	args, err := formula.NormalizeArgs(c.Args)
	if err != nil {
		return Prepared{}, err
	}
	if _, takesG0 := f.Param("g0"); takesG0 && g0 != nil {
		if _, set := args["g0"]; !set {
			args["g0"] = *g0
		}
	}
	if err := f.Check(args); err != nil {
		return Prepared{}, err
	}
	if c.Expect != nil {
		if err := validateExpect(*c.Expect); err != nil {
			return Prepared{}, err
		}
	}
	return Prepared{Name: c.Name, Formula: f, Args: args, Expect: c.Expect}, nil
}

func validateExpect(e Expect) error {
	switch {
	case e.Value != nil && e.Error != "":
		return errors.New("expect: value and error are mutually exclusive")
	case e.Value == nil && e.Error == "":
		return errors.New("expect: need value or error")
	case e.Tolerance < 0:
		return errors.New("expect: tolerance must be ≥ 0")
	}
	switch e.Error {
	case "", KindParameter, KindDomain:
		return nil
	default:
		return fmt.Errorf("expect: unknown error kind %q (want %s or %s)", e.Error, KindParameter, KindDomain)
	}
}
