// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package harness

import (
	"fmt"
	"io"
)

// Summary counts pair results by status.
type Summary struct {
	New    int `json:"new"`
	Better int `json:"better"`
	Same   int `json:"same"`
	Worse  int `json:"worse"`
	Failed int `json:"failed"`
}

// Summarize counts results by status.
func Summarize(results []PairResult) Summary {
	var s Summary
	for i := range results {
		if results[i].Err != nil {
			s.Failed++
			continue
		}

		switch results[i].Status {
		case StatusNew:
			s.New++
		case StatusBetter:
			s.Better++
		case StatusSame:
			s.Same++
		case StatusWorse:
			s.Worse++
		}
	}

	return s
}

// WriteReport writes a plain text report, one block per pair and a summary line.
//
// Each block shows the pair key with baseline length, the fresh pattern with
// its length and status, and the previous best when it differs.
func WriteReport(w io.Writer, results []PairResult) error {
	for i := range results {
		if err := writePair(w, results[i]); err != nil {
			return err
		}
	}

	s := Summarize(results)
	_, err := fmt.Fprintf(w, "pairs: %d new: %d better: %d same: %d worse: %d failed: %d\n",
		len(results), s.New, s.Better, s.Same, s.Worse, s.Failed)

	return err
}

// writePair writes one report block.
func writePair(w io.Writer, res PairResult) error {
	key := res.Pair.Key()
	if res.Err != nil {
		_, err := fmt.Fprintf(w, "%s error: %v\n", key, res.Err)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %d\n", key, len(res.Current.Default)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "  %s %d %s\n", res.Current.Small, len(res.Current.Small), res.Status); err != nil {
		return err
	}

	if res.Status != StatusNew && res.Best.Small != res.Current.Small {
		if _, err := fmt.Fprintf(w, "  best %s %d\n", res.Best.Small, len(res.Best.Small)); err != nil {
			return err
		}
	}

	return nil
}
