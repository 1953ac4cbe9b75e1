package suite

import (
	"errors"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/addsub/internal/apperr"
	"github.com/DjordjeVuckovic/addsub/internal/calc"
	"github.com/DjordjeVuckovic/addsub/internal/eval"
	"github.com/DjordjeVuckovic/addsub/pkg/utils"
)

type Result struct {
	Case     string        `json:"case"`
	Expr     string        `json:"expression"`
	Expected string        `json:"expected"`
	Got      string        `json:"got"`
	Passed   bool          `json:"passed"`
	Duration time.Duration `json:"duration_ns"`
}

type Report struct {
	Suite    string   `json:"suite"`
	Strict   bool     `json:"strict"`
	Results  []Result `json:"results"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	PassRate float64  `json:"pass_rate"`
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run evaluates every case of s and compares the outcome with its expectation.
func Run(s *Suite) *Report {
	var opts []eval.Option
	if s.Strict {
		opts = append(opts, eval.WithStrict())
	}
	c := calc.New(calc.WithEvaluator(eval.New(opts...)))

	report := &Report{
		Suite:   s.Name,
		Strict:  s.Strict,
		Results: make([]Result, 0, len(s.Cases)),
	}

	for _, tc := range s.Cases {
		start := time.Now()
		got, err := c.Evaluate(tc.Expression)
		elapsed := time.Since(start)

		res := Result{
			Case:     tc.Name,
			Expr:     tc.Expression,
			Expected: expected(tc),
			Got:      outcome(got, err),
			Duration: elapsed,
		}
		res.Passed = res.Expected == res.Got

		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
			slog.Debug("Suite case failed", "suite", s.Name, "case", tc.Name, "expected", res.Expected, "got", res.Got)
		}
		report.Results = append(report.Results, res)
	}

	if n := len(report.Results); n > 0 {
		report.PassRate = utils.RoundDecimal(float64(report.Passed)/float64(n)*100, 2)
	}
	return report
}

func expected(tc Case) string {
	if tc.Want != nil {
		return outcome(*tc.Want, nil)
	}
	return "error: " + string(tc.Error)
}

func outcome(v int32, err error) string {
	switch {
	case err == nil:
		return "result: " + itoa(v)
	case errors.Is(err, apperr.ErrOverflow):
		return "error: " + string(ErrorOverflow)
	case errors.Is(err, apperr.ErrMalformed):
		return "error: " + string(ErrorMalformed)
	default:
		return "error: " + err.Error()
	}
}
