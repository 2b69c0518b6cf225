package bmc

import "github.com/ragtimer/ragtimer/model"

// reversibleChainModel builds a two-variable reversible-chain system: A
// climbs from 0 via "up" (unbounded) and descends via "dn" (bounded at
// A>=1), B mirrors A's increments so both variables matter to the
// encoding. The target is A == 5.
func reversibleChainModel() *model.Model {
	return &model.Model{
		Variables: []model.Variable{
			{Name: "A", Index: 0},
			{Name: "B", Index: 1},
		},
		InitialStates: []model.Vector{{0, 0}},
		Transitions: []model.Transition{
			{ID: 0, Name: "up", Update: model.Vector{1, 1}, EnabledBound: model.Vector{0, 0}, Rate: 1},
			{ID: 1, Name: "dn", Update: model.Vector{-1, 0}, EnabledBound: model.Vector{1, 0}, Rate: 1},
		},
		Target: model.Target{Variable: 0, Operator: model.OpEqual, Value: 5},
	}
}

// twoVariableProducerModel is a system where A is consumed one-for-one to
// produce B, target B == 3.
func twoVariableProducerModel() *model.Model {
	return &model.Model{
		Variables: []model.Variable{
			{Name: "A", Index: 0},
			{Name: "B", Index: 1},
		},
		InitialStates: []model.Vector{{5, 0}},
		Transitions: []model.Transition{
			{ID: 0, Name: "r", Update: model.Vector{-1, 1}, EnabledBound: model.Vector{1, 0}, Rate: 2},
		},
		Target: model.Target{Variable: 1, Operator: model.OpEqual, Value: 3},
	}
}
