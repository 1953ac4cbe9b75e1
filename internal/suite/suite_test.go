package suite

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: basics
cases:
  - name: add
    expression: "1+2"
    want: 3
  - expression: "1+"
    error: malformed
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "basics", s.Name)
		require.Len(t, s.Cases, 2)
		assert.Equal(t, int32(3), *s.Cases[0].Want)
		assert.Equal(t, "case-2", s.Cases[1].Name)
		assert.Equal(t, ErrorMalformed, s.Cases[1].Error)
	})

	t.Run("no cases", func(t *testing.T) {
		_, err := Parse([]byte("name: empty\ncases: []\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no cases")
	})

	t.Run("both want and error", func(t *testing.T) {
		yaml := `
cases:
  - name: x
    expression: "1+"
    want: 1
    error: malformed
`
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "both")
	})

	t.Run("neither want nor error", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - name: x\n    expression: \"1\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "neither")
	})

	t.Run("invalid error kind", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - name: x\n    expression: \"1\"\n    error: boom\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid error kind")
	})

	t.Run("duplicate names", func(t *testing.T) {
		yaml := `
cases:
  - name: a
    expression: "1"
    want: 1
  - name: a
    expression: "2"
    want: 2
`
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("want outside int32", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - name: x\n    expression: \"1\"\n    want: 3000000000\n"))
		assert.Error(t, err)
	})
}

func TestRun_SmokeSuite(t *testing.T) {
	s, err := LoadFromFile("testdata/smoke.yaml")
	require.NoError(t, err)

	report := Run(s)
	for _, r := range report.Results {
		assert.True(t, r.Passed, "case %q: expected %s, got %s", r.Case, r.Expected, r.Got)
	}
	assert.True(t, report.OK())
	assert.Equal(t, len(s.Cases), report.Passed)
	assert.Equal(t, 100.0, report.PassRate)
}

func TestRun_Strict(t *testing.T) {
	yaml := `
name: strict
strict: true
cases:
  - name: extra values rejected
    expression: "1 2 3 +"
    error: malformed
  - name: wrong expectation
    expression: "1+1"
    want: 3
`
	s, err := Parse([]byte(yaml))
	require.NoError(t, err)

	report := Run(s)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 50.0, report.PassRate)
	assert.Equal(t, "result: 2", report.Results[1].Got)
	assert.Equal(t, "result: 3", report.Results[1].Expected)
}

func TestWriteTable(t *testing.T) {
	report := &Report{
		Suite: "demo",
		Results: []Result{
			{Case: "add", Expr: "1+2", Expected: "result: 3", Got: "result: 3", Passed: true},
			{Case: "bad", Expr: "1+", Expected: "result: 1", Got: "error: malformed"},
		},
		Passed:   1,
		Failed:   1,
		PassRate: 50,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(report, &buf))

	out := buf.String()
	assert.Contains(t, out, "=== Suite: demo (strict=false) ===")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, `"1+"`)
	assert.Contains(t, out, "Pass rate: 50.00%")
}

func TestWriteJSON(t *testing.T) {
	report := &Report{Suite: "demo", Results: []Result{}, Passed: 0}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(report, &buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "demo", decoded["suite"])
}
