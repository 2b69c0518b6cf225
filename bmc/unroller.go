package bmc

import "fmt"

// TimedVarExpr is a variable reference pinned to an absolute time step,
// produced by Unroller.AtTime.
type TimedVarExpr struct {
	Index int
	Time  int
}

func (v TimedVarExpr) render(width uint) string {
	return fmt.Sprintf("v%d@%d", v.Index, v.Time)
}

// Unroller time-indexes a relative formula (one built from VarExpr's Cur/Next
// roles) into an absolute-time formula. It has no mutable state: shifting a
// formula is a pure tree rewrite, so no cache of time-indexed symbol
// replicas is needed.
type Unroller struct{}

// AtTime substitutes every current-time symbol with v@k and every next-time
// symbol with v@(k+1).
func (Unroller) AtTime(f Formula, k int) Formula {
	return shiftFormula(f, k)
}

// AtAllTimesAnd conjoins AtTime(f, t) for t in 0..=k.
func (u Unroller) AtAllTimesAnd(f Formula, k int) Formula {
	out := make(And, 0, k+1)
	for t := 0; t <= k; t++ {
		out = append(out, u.AtTime(f, t))
	}
	return out
}

// AtAllTimesOr disjoins AtTime(f, t) for t in 0..=k.
func (u Unroller) AtAllTimesOr(f Formula, k int) Formula {
	out := make(Or, 0, k+1)
	for t := 0; t <= k; t++ {
		out = append(out, u.AtTime(f, t))
	}
	return out
}

func shiftExpr(e Expr, k int) Expr {
	switch v := e.(type) {
	case Const:
		return v
	case VarExpr:
		t := k
		if v.Role == Next {
			t = k + 1
		}
		return TimedVarExpr{Index: v.Index, Time: t}
	case TimedVarExpr:
		return v
	case Add:
		return Add{A: shiftExpr(v.A, k), B: shiftExpr(v.B, k)}
	case Sub:
		return Sub{A: shiftExpr(v.A, k), B: shiftExpr(v.B, k)}
	default:
		return e
	}
}

func shiftFormula(f Formula, k int) Formula {
	switch v := f.(type) {
	case Eq:
		return Eq{A: shiftExpr(v.A, k), B: shiftExpr(v.B, k)}
	case Uge:
		return Uge{A: shiftExpr(v.A, k), B: shiftExpr(v.B, k)}
	case Ule:
		return Ule{A: shiftExpr(v.A, k), B: shiftExpr(v.B, k)}
	case Not:
		return Not{F: shiftFormula(v.F, k)}
	case Const, VarExpr, TimedVarExpr, Add, Sub:
		return shiftExpr(v, k)
	case And:
		out := make(And, len(v))
		for i, sub := range v {
			out[i] = shiftFormula(sub, k)
		}
		return out
	case Or:
		out := make(Or, len(v))
		for i, sub := range v {
			out[i] = shiftFormula(sub, k)
		}
		return out
	default:
		return f
	}
}
