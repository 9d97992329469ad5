package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/LanceryH/Space-propulsion/internal/cases"
	"github.com/LanceryH/Space-propulsion/internal/formula"
	"github.com/LanceryH/Space-propulsion/pkg/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func prep(t *testing.T, name, f string, args formula.Args, exp *cases.Expect) cases.Prepared {
	t.Helper()
	fm, err := formula.Lookup(f)
	require.NoError(t, err)
	return cases.Prepared{Name: name, Formula: fm, Args: args, Expect: exp}
}

func sampleResults(t *testing.T) []cases.Result {
	g0 := 9.80665
	minus4000 := -4000.0
	list := []cases.Prepared{
		prep(t, "orbit raise", formula.PropellantMass, formula.Args{"m0": 1000, "delta_v": 3000, "isp": 300, "g0": g0}, nil),
		prep(t, "over-expanded", formula.ChemicalThrust,
			formula.Args{"mdot": 2, "vs": 2500, "as": 0.1, "ps": 10000, "pinf": 101325},
			&cases.Expect{Value: &minus4000, Tolerance: 1}),
		prep(t, "c-star", formula.CharacteristicVelocity, formula.Args{"gamma": 1.2, "temperature": 3000, "molar_mass": 0.022}, nil),
		prep(t, "no molar mass", formula.CharacteristicVelocity, formula.Args{"gamma": 1.2, "temperature": 3000, "molar_mass": 0}, nil),
		prep(t, "no isp inputs", formula.SpecificImpulse, formula.Args{}, nil),
		prep(t, "nozzle", formula.ThrustCoefficient, formula.Args{"gamma": 1.2, "ps": 1e4, "pc": 5e6, "as": 0.1, "ac": 0.01}, nil),
	}
	out := make([]cases.Result, 0, len(list))
	for _, p := range list {
		out = append(out, cases.Evaluate(p))
	}
	return out
}

func run(t *testing.T, w io.Writer, format string, header bool, rs []cases.Result) error {
	t.Helper()
	in, done := StartResultWriter(w, format, header, "run-1", 2)
	for _, r := range rs {
		in <- r
	}
	close(in)
	return <-done
}

func TestTextWriter_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(t, &buf, "text", true, sampleResults(t)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "results_text", buf.Bytes())
}

func TestJSONLWriter_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	rs := sampleResults(t)
	require.NoError(t, run(t, &buf, "jsonl", false, rs))

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	var got []api.ResultV1
	for sc.Scan() {
		var v api.ResultV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v), sc.Text())
		got = append(got, v)
	}
	require.Len(t, got, len(rs))
	assert.Equal(t, "orbit raise", got[0].Case)
	assert.Equal(t, "fail", got[1].Status)
	assert.Equal(t, "parameter", got[4].Error.Kind)
}

func TestJSONWriter_Report(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(t, &buf, "json", false, sampleResults(t)))

	var rep api.ReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, "run-1", rep.RunID)
	assert.Equal(t, 3, rep.Passed)
	assert.Equal(t, 3, rep.Failed)
	assert.Len(t, rep.Results, 6)
}

func TestUnknownResultFormatError(t *testing.T) {
	var b bytes.Buffer
	err := run(t, &b, "nope-format", true, sampleResults(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown result format "nope-format"`)
	assert.Contains(t, err.Error(), "jsonl")
	assert.Zero(t, b.Len())
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestBrokenPipeIsSwallowed(t *testing.T) {
	for _, format := range []string{"text", "json", "jsonl"} {
		err := run(t, failWriter{io.ErrClosedPipe}, format, true, sampleResults(t))
		assert.NoError(t, err, format)
	}
}

func TestWriteErrorSurfaces(t *testing.T) {
	boom := errors.New("disk full")
	for _, format := range []string{"text", "json", "jsonl"} {
		err := run(t, failWriter{boom}, format, true, sampleResults(t))
		assert.ErrorIs(t, err, boom, format)
	}
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "text"}, Formats())
}
