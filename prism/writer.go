package prism

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ragtimer/ragtimer/explicit"
)

// WriteSTA writes the .sta contents for c: a header listing the model's
// variable names, then one "INDEX: (v1,v2,...)" line per explicit state in
// index order, index 0 being the synthetic absorbing state.
func WriteSTA(w io.Writer, c *explicit.CTMC) error {
	names := make([]string, c.Model().NumVariables())
	for i, v := range c.Model().Variables {
		names[i] = v.Name
	}
	if _, err := fmt.Fprintf(w, "(%s)\n", strings.Join(names, ",")); err != nil {
		return err
	}
	for i, s := range c.States() {
		vals := make([]string, len(s.Vector))
		for j, x := range s.Vector {
			vals[j] = fmt.Sprintf("%d", x)
		}
		if _, err := fmt.Fprintf(w, "%d: (%s)\n", i, strings.Join(vals, ",")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTRA writes the .tra contents for c: a "NUM_STATES NUM_TRANSITIONS"
// header, then one "FROM TO RATE" line per explicit transition. An
// absorbing placeholder whose residual rate has dropped to zero is omitted.
func WriteTRA(w io.Writer, c *explicit.CTMC) error {
	emitted := c.EmittedTransitions()
	if _, err := fmt.Fprintf(w, "%d %d\n", len(c.States()), len(emitted)); err != nil {
		return err
	}
	for _, t := range emitted {
		if _, err := fmt.Fprintf(w, "%d %d %.9g\n", t.From, t.To, t.Rate); err != nil {
			return err
		}
	}
	return nil
}

// WriteLAB writes the .lab contents for c: the fixed "init"/"deadlock"
// label header, then one "INDEX: LABELID" line assigning label 0 ("init")
// to the initial state and label 1 ("deadlock") to the absorbing state.
func WriteLAB(w io.Writer, c *explicit.CTMC) error {
	if _, err := fmt.Fprintf(w, "0=%q 1=%q\n", "init", "deadlock"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d: %d\n", explicit.AbsorbingIndex, 1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d: %d\n", explicit.InitialIndex, 0); err != nil {
		return err
	}
	return nil
}

// WriteAll writes the .sta, .tra, and .lab files sharing the stem path
// (e.g. stem="out" produces out.sta, out.tra, out.lab).
func WriteAll(stem string, c *explicit.CTMC) error {
	writers := []struct {
		ext string
		fn  func(io.Writer, *explicit.CTMC) error
	}{
		{"sta", WriteSTA},
		{"tra", WriteTRA},
		{"lab", WriteLAB},
	}
	for _, w := range writers {
		f, err := os.Create(stem + "." + w.ext)
		if err != nil {
			return err
		}
		err = w.fn(f, c)
		closeErr := f.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return closeErr
		}
	}
	return nil
}
