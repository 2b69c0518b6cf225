package dependency

import "github.com/ragtimer/ragtimer/model"

// Trim returns a copy of m reduced to the transitions that appear in g and
// the variables those transitions touch (nonzero update or enabled bound).
// The target variable is always retained, and the target property is
// re-indexed into the trimmed variable ordering. Trimming is a pre-analysis
// reduction: every downstream component sees a smaller state vector, while
// the kept transitions' semantics are unchanged.
//
// Trim never modifies m.
func Trim(m *model.Model, g *Graph) *model.Model {
	usedTransition := map[string]bool{}
	for _, name := range g.Transitions() {
		usedTransition[name] = true
	}

	usedVariable := make([]bool, m.NumVariables())
	usedVariable[m.Target.Variable] = true
	for i := range m.Transitions {
		t := &m.Transitions[i]
		if !usedTransition[t.Name] {
			continue
		}
		for v := 0; v < m.NumVariables(); v++ {
			if t.Update[v] != 0 || t.EnabledBound[v] != 0 {
				usedVariable[v] = true
			}
		}
	}

	// Old variable index -> new index, for re-indexing vectors and the
	// target property.
	newIndex := make([]int, m.NumVariables())
	var variables []model.Variable
	for v := 0; v < m.NumVariables(); v++ {
		if !usedVariable[v] {
			newIndex[v] = -1
			continue
		}
		newIndex[v] = len(variables)
		variables = append(variables, model.Variable{Name: m.Variables[v].Name, Index: len(variables)})
	}

	project := func(full model.Vector) model.Vector {
		out := make(model.Vector, 0, len(variables))
		for v, x := range full {
			if usedVariable[v] {
				out = append(out, x)
			}
		}
		return out
	}

	initials := make([]model.Vector, len(m.InitialStates))
	for i, init := range m.InitialStates {
		initials[i] = project(init)
	}

	var transitions []model.Transition
	for i := range m.Transitions {
		t := &m.Transitions[i]
		if !usedTransition[t.Name] {
			continue
		}
		transitions = append(transitions, model.Transition{
			ID:           len(transitions),
			Name:         t.Name,
			Update:       project(t.Update),
			EnabledBound: project(t.EnabledBound),
			Rate:         t.Rate,
		})
	}

	return &model.Model{
		Variables:     variables,
		InitialStates: initials,
		Transitions:   transitions,
		Target: model.Target{
			Variable: newIndex[m.Target.Variable],
			Operator: m.Target.Operator,
			Value:    m.Target.Value,
		},
	}
}
