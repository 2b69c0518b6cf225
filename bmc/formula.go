package bmc

import "fmt"

// Role distinguishes a current-time symbol (v) from its next-time
// counterpart (v_next) in an unrolled formula.
type Role int

const (
	Cur Role = iota
	Next
)

// Expr is a bit-vector-valued expression over model variables.
type Expr interface {
	render(width uint) string
}

// Const is a literal bit-vector constant.
type Const struct{ Value int64 }

func (c Const) render(width uint) string {
	return fmt.Sprintf("(_ bv%d %d)", uint64(c.Value)&uint64(maskFor(width)), width)
}

// VarExpr references variable Index at the given time role.
type VarExpr struct {
	Index int
	Role  Role
}

func (v VarExpr) render(width uint) string {
	suffix := "cur"
	if v.Role == Next {
		suffix = "next"
	}
	return fmt.Sprintf("v%d_%s", v.Index, suffix)
}

// Add and Sub are bvadd/bvsub over two Exprs.
type Add struct{ A, B Expr }

func (e Add) render(width uint) string {
	return fmt.Sprintf("(bvadd %s %s)", e.A.render(width), e.B.render(width))
}

type Sub struct{ A, B Expr }

func (e Sub) render(width uint) string {
	return fmt.Sprintf("(bvsub %s %s)", e.A.render(width), e.B.render(width))
}

// Formula is a bit-vector-valued boolean formula.
type Formula interface {
	render(width uint) string
}

// Eq, Uge, Ule are the atomic comparisons used by the encoding.
type Eq struct{ A, B Expr }

func (f Eq) render(width uint) string {
	return fmt.Sprintf("(= %s %s)", f.A.render(width), f.B.render(width))
}

type Uge struct{ A, B Expr }

func (f Uge) render(width uint) string {
	return fmt.Sprintf("(bvuge %s %s)", f.A.render(width), f.B.render(width))
}

type Ule struct{ A, B Expr }

func (f Ule) render(width uint) string {
	return fmt.Sprintf("(bvule %s %s)", f.A.render(width), f.B.render(width))
}

// And and Or combine formulae conjunctively/disjunctively.
type And []Formula

func (f And) render(width uint) string {
	return joinRendered("and", f, width)
}

type Or []Formula

func (f Or) render(width uint) string {
	return joinRendered("or", f, width)
}

func joinRendered(op string, fs []Formula, width uint) string {
	if len(fs) == 0 {
		if op == "and" {
			return "true"
		}
		return "false"
	}
	out := "(" + op
	for _, f := range fs {
		out += " " + f.render(width)
	}
	return out + ")"
}

// Not negates a formula.
type Not struct{ F Formula }

func (f Not) render(width uint) string {
	return fmt.Sprintf("(not %s)", f.F.render(width))
}

func maskFor(width uint) int64 {
	return (int64(1) << width) - 1
}
