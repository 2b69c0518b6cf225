package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Keyword term tables: each maps every accepted spelling of a keyword.
var (
	variableTerms   = map[string]bool{"species": true, "variable": true, "var": true}
	transitionTerms = map[string]bool{"reaction": true, "transition": true}
	decreaseTerms   = map[string]bool{"consume": true, "decrease": true, "decrement": true}
	increaseTerms   = map[string]bool{"produce": true, "increase": true, "increment": true}
	rateTerms       = map[string]bool{"rate": true, "const": true}
	targetTerms     = map[string]bool{"target": true, "goal": true, "prop": true, "check": true}
)

var operatorNames = map[string]Operator{
	"=":  OpEqual,
	"==": OpEqual,
	"<":  OpLess,
	">":  OpGreater,
	"<=": OpLessEqual,
	">=": OpGreaterEqual,
	"!=": OpNotEqual,
}

// parseError carries the line number and offending token. Parse errors are
// always fatal: a malformed model file never produces a partial model.
type parseError struct {
	line int
	msg  string
	err  error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("model: parse: line %d: %s", e.line, e.msg)
}

func (e *parseError) Unwrap() error { return e.err }

func newParseError(line int, err error, format string, args ...interface{}) error {
	return &parseError{line: line, err: err, msg: fmt.Sprintf(format, args...)}
}

type builderTransition struct {
	name         string
	update       map[string]int64
	enabledBound map[string]int64
	rate         float64
	rateSet      bool
}

// Parse reads a keyword-driven, line-oriented VAS model file and returns
// a fully constructed, validated Model.
//
// Grammar:
//
//	species|variable|var NAME [init INT]
//	reaction|transition NAME
//	consume|decrease|decrement VAR [COUNT]
//	produce|increase|increment VAR [COUNT]
//	rate|const FLOAT
//	target|goal|prop|check VAR OP INT
//
// Complexity: O(#lines · #words-per-line).
func Parse(r io.Reader) (*Model, error) {
	varIndex := map[string]int{}
	var variables []Variable
	initial := map[string]int64{}

	transitionOrder := []string{}
	transitions := map[string]*builderTransition{}
	var current *builderTransition

	var targetVar string
	var targetOp Operator
	var targetOpSet bool
	var targetVal int64

	declareVariable := func(line int, name string, init int64) error {
		if _, exists := varIndex[name]; exists {
			return newParseError(line, ErrDuplicateVariable, "duplicate variable declaration <%s>", name)
		}
		varIndex[name] = len(variables)
		variables = append(variables, Variable{Name: name, Index: len(variables)})
		initial[name] = init
		return nil
	}

	ensureVariable := func(line int, name string) error {
		if _, ok := varIndex[name]; !ok {
			return newParseError(line, ErrUnknownVariable, "unknown variable reference <%s>", name)
		}
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words := strings.Fields(line)
		keyword := words[0]
		rest := words[1:]

		switch {
		case variableTerms[keyword]:
			switch len(rest) {
			case 1:
				if err := declareVariable(lineNo, rest[0], 0); err != nil {
					return nil, err
				}
			case 3:
				if strings.ToLower(rest[1]) != "init" {
					return nil, newParseError(lineNo, nil, "expected 'init' keyword in variable term <%s>", line)
				}
				n, err := strconv.ParseInt(rest[2], 10, 64)
				if err != nil {
					return nil, newParseError(lineNo, err, "malformed initial-value integer in variable term <%s>", line)
				}
				if err := declareVariable(lineNo, rest[0], n); err != nil {
					return nil, err
				}
			default:
				return nil, newParseError(lineNo, nil,
					"unexpected number of words for variable term: %d words in term <%s>", len(rest), line)
			}

		case transitionTerms[keyword]:
			if len(rest) != 1 {
				return nil, newParseError(lineNo, nil,
					"unexpected number of words for transition term: %d words in term <%s>", len(rest), line)
			}
			name := rest[0]
			if _, exists := transitions[name]; exists {
				return nil, newParseError(lineNo, ErrDuplicateTransition, "duplicate transition name <%s>", name)
			}
			bt := &builderTransition{name: name, update: map[string]int64{}, enabledBound: map[string]int64{}}
			transitions[name] = bt
			transitionOrder = append(transitionOrder, name)
			current = bt

		case decreaseTerms[keyword]:
			if current == nil {
				return nil, newParseError(lineNo, ErrNoActiveTransition, "consume/decrease term with no active transition <%s>", line)
			}
			if len(rest) < 1 || len(rest) > 2 {
				return nil, newParseError(lineNo, nil,
					"unexpected number of words for consume term: %d words in term <%s>", len(rest), line)
			}
			if err := ensureVariable(lineNo, rest[0]); err != nil {
				return nil, err
			}
			count := int64(1)
			if len(rest) == 2 {
				n, err := strconv.ParseInt(rest[1], 10, 64)
				if err != nil {
					return nil, newParseError(lineNo, err, "malformed count in consume term <%s>", line)
				}
				count = n
			}
			current.enabledBound[rest[0]] += count
			current.update[rest[0]] -= count

		case increaseTerms[keyword]:
			if current == nil {
				return nil, newParseError(lineNo, ErrNoActiveTransition, "produce/increase term with no active transition <%s>", line)
			}
			if len(rest) < 1 || len(rest) > 2 {
				return nil, newParseError(lineNo, nil,
					"unexpected number of words for produce term: %d words in term <%s>", len(rest), line)
			}
			if err := ensureVariable(lineNo, rest[0]); err != nil {
				return nil, err
			}
			count := int64(1)
			if len(rest) == 2 {
				n, err := strconv.ParseInt(rest[1], 10, 64)
				if err != nil {
					return nil, newParseError(lineNo, err, "malformed count in produce term <%s>", line)
				}
				count = n
			}
			current.update[rest[0]] += count

		case rateTerms[keyword]:
			if current == nil {
				return nil, newParseError(lineNo, ErrNoActiveTransition, "rate term with no active transition <%s>", line)
			}
			if len(rest) != 1 {
				return nil, newParseError(lineNo, nil,
					"unexpected number of words for rate term: %d words in term <%s>", len(rest), line)
			}
			f, err := strconv.ParseFloat(rest[0], 64)
			if err != nil {
				return nil, newParseError(lineNo, err, "malformed rate constant in term <%s>", line)
			}
			current.rate = f
			current.rateSet = true

		case targetTerms[keyword]:
			if len(rest) != 3 {
				return nil, newParseError(lineNo, nil,
					"unexpected number of words for target term: %d words in term <%s>", len(rest), line)
			}
			if err := ensureVariable(lineNo, rest[0]); err != nil {
				return nil, err
			}
			op, ok := operatorNames[rest[1]]
			if !ok {
				return nil, newParseError(lineNo, nil, "unknown relational operator <%s>", rest[1])
			}
			n, err := strconv.ParseInt(rest[2], 10, 64)
			if err != nil {
				return nil, newParseError(lineNo, err, "malformed target value in term <%s>", line)
			}
			targetVar, targetOp, targetOpSet, targetVal = rest[0], op, true, n

		default:
			return nil, newParseError(lineNo, nil, "unrecognised keyword <%s>", keyword)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("model: parse: read error: %w", err)
	}

	if !targetOpSet {
		return nil, ErrTargetUnset
	}
	if targetOp != OpEqual {
		return nil, fmt.Errorf("model: parse: operator on target variable <%s>: %w", targetVar, ErrUnsupportedOperator)
	}

	nvars := len(variables)
	initVec := make(Vector, nvars)
	for name, idx := range varIndex {
		initVec[idx] = initial[name]
	}

	out := make([]Transition, 0, len(transitionOrder))
	for id, name := range transitionOrder {
		bt := transitions[name]
		if !bt.rateSet {
			return nil, fmt.Errorf("model: semantic: transition <%s> has no rate declared", name)
		}
		if bt.rate <= 0 {
			return nil, fmt.Errorf("model: semantic: transition <%s>: %w", name, ErrNonPositiveRate)
		}
		update := make(Vector, nvars)
		bound := make(Vector, nvars)
		for vname, idx := range varIndex {
			update[idx] = bt.update[vname]
			bound[idx] = bt.enabledBound[vname]
		}
		out = append(out, Transition{ID: id, Name: name, Update: update, EnabledBound: bound, Rate: bt.rate})
	}

	m := &Model{
		Variables:     variables,
		InitialStates: []Vector{initVec},
		Transitions:   out,
		Target:        Target{Variable: varIndex[targetVar], Operator: targetOp, Value: targetVal},
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.SatisfiesTarget()(m.Initial()) {
		return nil, ErrInitialSatisfiesTarget
	}
	return m, nil
}
