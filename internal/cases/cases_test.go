package cases

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceryH/Space-propulsion/core/propulsion"
	"github.com/LanceryH/Space-propulsion/internal/formula"
)

func g0Ptr() *float64 { v := propulsion.StandardGravity; return &v }

func TestLoadFile_Baseline(t *testing.T) {
	list, err := LoadFile("testdata/baseline.yaml", nil)
	require.NoError(t, err)
	require.Len(t, list, 10)

	// Keys are normalised and the file-level g0 is merged in.
	want := formula.Args{"m0": 1000, "delta_v": 0, "isp": 300, "g0": 9.80665}
	if diff := cmp.Diff(want, list[0].Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "no burn", list[0].Name)
	assert.Equal(t, "baseline", list[0].Source)
	assert.Equal(t, formula.PropellantMass, list[1].Formula.Name)

	want = formula.Args{"gamma": 1.2, "temperature": 3000, "molar_mass": 0.022}
	if diff := cmp.Diff(want, list[6].Args); diff != "" {
		t.Fatalf("c-star args mismatch (-want +got):\n%s", diff)
	}

	// Formulas without g0 are left alone.
	_, hasG0 := list[5].Args["g0"]
	assert.False(t, hasG0)
}

func TestBaselineAllPass(t *testing.T) {
	list, err := LoadFile("testdata/baseline.yaml", nil)
	require.NoError(t, err)

	var got []Result
	err = ForEach(context.Background(), list, func(r Result) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	for _, r := range got {
		assert.Equal(t, StatusPass, r.Status, "%s: %s", r.Case, r.Reason)
	}
	passed, failed := Tally(got)
	assert.Equal(t, 10, passed)
	assert.Equal(t, 0, failed)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty case file"},
		{"no cases", "name: x\ncases: []\n", "no cases"},
		{"unknown field", "cases:\n  - formula: mass\n    argz: {}\n", "argz"},
		{"unknown formula", "cases:\n  - formula: warp\n    args: {}\n", `case 1 (C1): unknown formula "warp"`},
		{"missing argument", "cases:\n  - name: m\n    formula: mass\n    args: {m0: 1, isp: 300, g0: 9.8}\n", "missing argument(s) delta_v"},
		{"unknown argument", "cases:\n  - formula: cf\n    args: {gamma: 1.2, ps: 1, pc: 2, as: 1, ac: 1, warp: 9}\n", `unknown argument "warp"`},
		{"bad expect kind", "cases:\n  - formula: isp\n    args: {}\n    expect: {error: boom}\n", `unknown error kind "boom"`},
		{"expect both", "cases:\n  - formula: isp\n    args: {}\n    expect: {error: domain, value: 1}\n", "mutually exclusive"},
		{"expect none", "cases:\n  - formula: isp\n    args: {}\n    expect: {tolerance: 1}\n", "need value or error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(c.doc), "mem.yaml", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "mem.yaml")
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestLoad_DefaultG0Precedence(t *testing.T) {
	doc := `
cases:
  - formula: mass
    args: {m0: 1000, delta_v: 100, isp: 300}
  - formula: mass
    args: {m0: 1000, delta_v: 100, isp: 300, g0: 3.71}
`
	def := 1.62
	list, err := Load(strings.NewReader(doc), "mem", &def)
	require.NoError(t, err)
	assert.Equal(t, 1.62, list[0].Args["g0"])
	assert.Equal(t, 3.71, list[1].Args["g0"])

	// File-level g0 beats the caller default.
	doc = "g0: 9.80665\n" + doc
	list, err = Load(strings.NewReader(doc), "mem", &def)
	require.NoError(t, err)
	assert.Equal(t, 9.80665, list[0].Args["g0"])
	assert.Equal(t, "C1", list[0].Name)
}

func TestEvaluate_Statuses(t *testing.T) {
	mass, err := formula.Lookup(formula.PropellantMass)
	require.NoError(t, err)
	args := formula.Args{"m0": 1000, "delta_v": 0, "isp": 300, "g0": 9.80665}

	r := Evaluate(Prepared{Name: "plain", Formula: mass, Args: args})
	assert.Equal(t, StatusOK, r.Status)
	assert.False(t, r.Failed())
	assert.Equal(t, "kg", r.Unit)

	bad := formula.Args{"m0": 1000, "delta_v": 1, "isp": 0, "g0": 9.80665}
	r = Evaluate(Prepared{Name: "plain-err", Formula: mass, Args: bad})
	assert.Equal(t, StatusError, r.Status)
	assert.True(t, r.Failed())
	assert.Equal(t, KindDomain, ErrorKind(r.Err))

	one := 1.0
	r = Evaluate(Prepared{Name: "wrong", Formula: mass, Args: args, Expect: &Expect{Value: &one}})
	assert.Equal(t, StatusFail, r.Status)
	assert.True(t, r.Failed())
	assert.Contains(t, r.Reason, "want 1 ± 0, got 0")

	r = Evaluate(Prepared{Name: "want-err", Formula: mass, Args: args, Expect: &Expect{Error: KindDomain}})
	assert.Equal(t, StatusFail, r.Status)
	assert.Contains(t, r.Reason, "want domain error, got value 0")

	r = Evaluate(Prepared{Name: "kind", Formula: mass, Args: bad, Expect: &Expect{Error: KindParameter}})
	assert.Equal(t, StatusFail, r.Status)
	assert.Contains(t, r.Reason, "got domain error")
}

func TestEvaluate_NonFiniteValues(t *testing.T) {
	thrust, err := formula.Lookup(formula.ChemicalThrust)
	require.NoError(t, err)

	// ṁ·Vs overflows to +Inf and As·(Ps−P∞) to −Inf; their sum is NaN.
	nan := formula.Args{"mdot": 1e308, "vs": 10, "as": 1e308, "ps": 0, "pinf": 10}
	want := 5000.0
	r := Evaluate(Prepared{Name: "nan", Formula: thrust, Args: nan, Expect: &Expect{Value: &want}})
	require.True(t, math.IsNaN(r.Value))
	assert.Equal(t, StatusFail, r.Status)
	assert.Contains(t, r.Reason, "got NaN")

	wide := 1e300
	r = Evaluate(Prepared{Name: "nan-wide", Formula: thrust, Args: nan, Expect: &Expect{Value: &want, Tolerance: wide}})
	assert.Equal(t, StatusFail, r.Status)

	inf := math.Inf(1)
	over := formula.Args{"mdot": 1e308, "vs": 10, "as": 0, "ps": 0, "pinf": 0}
	r = Evaluate(Prepared{Name: "inf", Formula: thrust, Args: over, Expect: &Expect{Value: &inf}})
	assert.Equal(t, StatusPass, r.Status, r.Reason)
}

func TestLoad_RejectsNonFiniteArgs(t *testing.T) {
	doc := "cases:\n  - {formula: thrust, args: {mdot: 1, vs: 1, as: 1, ps: .inf, pinf: .inf}}\n"
	_, err := Load(strings.NewReader(doc), "mem", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument ps is not finite (+Inf)")
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, KindParameter, ErrorKind(&propulsion.ParameterError{Op: "x"}))
	assert.Equal(t, KindDomain, ErrorKind(&propulsion.DomainError{Op: "x"}))
	assert.Equal(t, KindInput, ErrorKind(errors.New("plain")))
}

func TestForEach_StopsOnCancel(t *testing.T) {
	list, err := LoadFile("testdata/baseline.yaml", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err = ForEach(ctx, list, func(Result) error {
		n++
		if n == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, n)
}

func TestForEach_SendErrorStops(t *testing.T) {
	list, err := LoadFile("testdata/baseline.yaml", g0Ptr())
	require.NoError(t, err)
	boom := errors.New("boom")
	n := 0
	err = ForEach(context.Background(), list, func(Result) error { n++; return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestPreparedDiffIgnoresFormulaFuncs(t *testing.T) {
	list, err := Load(strings.NewReader("cases:\n  - name: t\n    formula: thrust\n    args: {mdot: 1, vs: 2, as: 0, ps: 0, pinf: 0}\n"), "mem", nil)
	require.NoError(t, err)
	want := []Prepared{{
		Name:   "t",
		Args:   formula.Args{"mdot": 1, "vs": 2, "as": 0, "ps": 0, "pinf": 0},
		Source: "mem",
	}}
	if diff := cmp.Diff(want, list, cmpopts.IgnoreFields(Prepared{}, "Formula")); diff != "" {
		t.Fatalf("prepared mismatch (-want +got):\n%s", diff)
	}
}
