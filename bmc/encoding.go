package bmc

import (
	"fmt"
	"strings"

	"github.com/ragtimer/ragtimer/model"
)

// Encoding holds the init, target, and transition formulae for a model at a
// fixed bit-width, plus the Unroller used to time-index them.
type Encoding struct {
	Width      uint
	Model      *model.Model
	Init       Formula
	Target     Formula
	Transition Formula
	Unroller   Unroller
}

// Encode builds the bit-vector encoding of m at the given width:
//
//   - the init formula asserts v = initial[v] for every variable;
//   - each transition asserts v ≥ enabled_bound for every variable with a
//     positive bound, v_next = v + update[v], and v_next = v for variables
//     with both zero update and zero bound; per-transition formulae combine
//     disjunctively into the transition formula;
//   - the target formula asserts v_target = target_value.
func Encode(m *model.Model, width uint) *Encoding {
	nvars := m.NumVariables()

	var initClauses And
	for i := 0; i < nvars; i++ {
		initClauses = append(initClauses, Eq{A: VarExpr{Index: i, Role: Cur}, B: Const{Value: m.Initial()[i]}})
	}

	var transitionClauses Or
	for ti := range m.Transitions {
		t := &m.Transitions[ti]
		var clause And
		for i := 0; i < nvars; i++ {
			if t.EnabledBound[i] > 0 {
				clause = append(clause, Uge{A: VarExpr{Index: i, Role: Cur}, B: Const{Value: t.EnabledBound[i]}})
			}
			switch {
			case t.Update[i] > 0:
				clause = append(clause, Eq{
					A: VarExpr{Index: i, Role: Next},
					B: Add{A: VarExpr{Index: i, Role: Cur}, B: Const{Value: t.Update[i]}},
				})
			case t.Update[i] < 0:
				clause = append(clause, Eq{
					A: VarExpr{Index: i, Role: Next},
					B: Sub{A: VarExpr{Index: i, Role: Cur}, B: Const{Value: -t.Update[i]}},
				})
			default:
				if t.EnabledBound[i] == 0 {
					clause = append(clause, Eq{A: VarExpr{Index: i, Role: Next}, B: VarExpr{Index: i, Role: Cur}})
				}
			}
		}
		transitionClauses = append(transitionClauses, clause)
	}

	target := Eq{A: VarExpr{Index: m.Target.Variable, Role: Cur}, B: Const{Value: m.Target.Value}}

	return &Encoding{
		Width:      width,
		Model:      m,
		Init:       initClauses,
		Target:     target,
		Transition: transitionClauses,
	}
}

// WriteSMTLIB renders an SMT-LIB2 script asserting the unrolled initial,
// transition×k, and target formulae. This is an optional auxiliary output:
// the package's own decision procedure (decide.go) does not consume it.
func (e *Encoding) WriteSMTLIB(steps int) string {
	var b strings.Builder
	b.WriteString("(set-logic QF_BV)\n")
	for t := 0; t <= steps; t++ {
		for i := 0; i < e.Model.NumVariables(); i++ {
			fmt.Fprintf(&b, "(declare-const v%d@%d (_ BitVec %d))\n", i, t, e.Width)
		}
	}
	fmt.Fprintf(&b, "(assert %s)\n", e.Unroller.AtTime(e.Init, 0).render(e.Width))
	for t := 0; t < steps; t++ {
		fmt.Fprintf(&b, "(assert %s)\n", e.Unroller.AtTime(e.Transition, t).render(e.Width))
	}
	fmt.Fprintf(&b, "(assert %s)\n", e.Unroller.AtTime(e.Target, steps).render(e.Width))
	b.WriteString("(check-sat)\n")
	return b.String()
}
