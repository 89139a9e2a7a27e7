package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Summary aggregates a batch run.
type Summary struct {
	Trees     int           `json:"trees"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Summarize counts successes and failures and sums evaluation time.
func Summarize[T any](results []Result[T]) Summary {
	s := Summary{Trees: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Succeeded++
		} else {
			s.Failed++
		}
		s.Elapsed += r.Elapsed
	}
	return s
}

type jsonResult struct {
	Index int    `json:"index"`
	Tree  string `json:"tree"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// WriteText writes one line per result followed by the summary.
func WriteText[T any](w io.Writer, results []Result[T]) {
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(w, "%4d | %s = %v\n", r.Index, r.Tree, r.Value)
		} else {
			fmt.Fprintf(w, "%4d | %s | error: %v\n", r.Index, r.Tree, r.Err)
		}
	}
	s := Summarize(results)
	fmt.Fprintf(w, "%d trees, %d ok, %d failed\n", s.Trees, s.Succeeded, s.Failed)
}

// WriteJSON writes the results and summary as JSON.
func WriteJSON[T any](w io.Writer, results []Result[T]) error {
	out := struct {
		Results []jsonResult `json:"results"`
		Summary Summary      `json:"summary"`
	}{
		Results: make([]jsonResult, len(results)),
		Summary: Summarize(results),
	}
	for i, r := range results {
		jr := jsonResult{Index: r.Index, Tree: r.Tree}
		if r.OK() {
			jr.Value = jsonValue(r.Value)
		} else {
			jr.Error = r.Err.Error()
		}
		out.Results[i] = jr
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// jsonValue falls back to the fmt rendering for values encoding/json
// rejects, such as ±Inf, NaN and complex numbers.
func jsonValue(v any) any {
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprint(v)
	}
	return v
}
