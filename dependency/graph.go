package dependency

import (
	"fmt"
	"io"
	"strings"

	"github.com/ragtimer/ragtimer/model"
)

// maxDepth bounds recursion during construction. It is a safety bound, not
// a semantic limit.
const maxDepth = 500

// sentinelTransitionID marks the artificial root node; it never collides
// with a real transition id.
const sentinelTransitionID = -1

// sentinelTransitionName is the artificial root's display name.
const sentinelTransitionName = "ARTIFICIAL"

// residual is an outstanding demand on one variable: either "increase it by
// amount" (Decrement == false) or "decrease it by amount" (Decrement ==
// true).
type residual struct {
	Variable  int
	Amount    int64
	Decrement bool
}

// Node is one dependency-graph node.
type Node struct {
	ID             int
	TransitionID   int
	TransitionName string
	Executions     int64
	Init           model.Vector
	Targets        []residual
	Enabled        bool
	Children       []int
	Decrement      bool
}

// Graph is the arena-backed dependency graph returned by Build.
type Graph struct {
	nodes []Node
	m     *model.Model
}

// Build constructs the dependency graph for m, rooted at an artificial node
// whose execution count is the distance between the initial and target value
// of the target variable.
//
// Build returns the tree regardless of whether the root ends enabled;
// callers use Transitions to learn which transitions actually appear.
//
// Complexity: bounded by maxDepth × #transitions × #variables per level.
func Build(m *model.Model) (*Graph, error) {
	if m.SatisfiesTarget()(m.Initial()) {
		return nil, model.ErrInitialSatisfiesTarget
	}

	tv := m.Target.Variable
	initVal := m.Initial()[tv]
	diff := m.Target.Value - initVal
	root := Node{
		ID:             0,
		TransitionID:   sentinelTransitionID,
		TransitionName: sentinelTransitionName,
		Init:           m.Initial(),
		Decrement:      diff < 0,
	}
	if diff != 0 {
		amount := diff
		if amount < 0 {
			amount = -amount
		}
		root.Executions = amount
		root.Targets = []residual{{Variable: tv, Amount: amount, Decrement: diff < 0}}
	}

	g := &Graph{nodes: []Node{root}, m: m}
	g.recBuild(0, nil, 0)
	return g, nil
}

// recBuild expands node index nodeID in place, given the set of transition
// names already used on the root-to-node path (ancestors, for the no-repeat
// invariant) and the current recursion depth.
func (g *Graph) recBuild(nodeID int, ancestors map[string]bool, depth int) {
	if depth > maxDepth {
		return
	}
	node := &g.nodes[nodeID]
	if len(node.Targets) == 0 {
		node.Enabled = true
		return
	}

	childAncestors := make(map[string]bool, len(ancestors)+1)
	for k := range ancestors {
		childAncestors[k] = true
	}
	if node.TransitionName != sentinelTransitionName {
		childAncestors[node.TransitionName] = true
	}

	bestBySourceName := make(map[string]int) // transition name -> node index into g.nodes, for sibling dedup
	for _, target := range node.Targets {
		for ti := range g.m.Transitions {
			t := &g.m.Transitions[ti]
			if childAncestors[t.Name] {
				continue
			}
			delta := t.Update[target.Variable]
			if target.Decrement && delta >= 0 {
				continue
			}
			if !target.Decrement && delta <= 0 {
				continue
			}
			if !respectsUpstream(t, childAncestors, node.Targets) {
				continue
			}

			executions := ceilDiv(target.Amount, absInt64(delta))
			childInit := applyExecutions(node.Init, t.Update, executions)
			childTargets := residualsFor(childInit, target, t)

			if existing, ok := bestBySourceName[t.Name]; ok {
				if g.nodes[existing].Executions >= executions {
					continue
				}
				g.nodes[existing] = Node{
					ID: existing, TransitionID: t.ID, TransitionName: t.Name,
					Executions: executions, Init: childInit, Targets: childTargets,
					Decrement: target.Decrement,
				}
				continue
			}

			childID := len(g.nodes)
			g.nodes = append(g.nodes, Node{
				ID: childID, TransitionID: t.ID, TransitionName: t.Name,
				Executions: executions, Init: childInit, Targets: childTargets,
				Decrement: target.Decrement,
			})
			bestBySourceName[t.Name] = childID
			// The append above may move the arena, so index it afresh rather
			// than writing through node.
			g.nodes[nodeID].Children = append(g.nodes[nodeID].Children, childID)
		}
	}

	for _, childID := range g.nodes[nodeID].Children {
		g.recBuild(childID, childAncestors, depth+1)
	}

	node = &g.nodes[nodeID]
	kept := node.Children[:0]
	for _, childID := range node.Children {
		if g.nodes[childID].Enabled {
			kept = append(kept, childID)
		}
	}
	node.Children = kept

	// A node is enabled iff every residual target is covered by some
	// enabled child: candidates for the same target are alternatives, so a
	// disabled sibling never disables the node as long as another enabled
	// child moves that target in the right direction.
	covered := true
	for _, target := range node.Targets {
		satisfied := false
		for _, childID := range node.Children {
			delta := g.m.Transitions[g.nodes[childID].TransitionID].Update[target.Variable]
			if target.Decrement && delta < 0 {
				satisfied = true
				break
			}
			if !target.Decrement && delta > 0 {
				satisfied = true
				break
			}
		}
		if !satisfied {
			covered = false
			break
		}
	}
	node.Enabled = len(node.Children) > 0 && covered
}

// respectsUpstream implements the "does not undo parent progress" cut: a
// candidate transition must not decrease any variable that one of the
// current node's residual targets asks to increase. Targets asking for a
// decrease are not checked.
func respectsUpstream(t *model.Transition, ancestors map[string]bool, targets []residual) bool {
	for _, target := range targets {
		if t.Update[target.Variable] < 0 && !target.Decrement {
			return false
		}
	}
	return true
}

func residualsFor(childInit model.Vector, parentTarget residual, t *model.Transition) []residual {
	var out []residual
	for i, v := range childInit {
		if v < 0 {
			out = append(out, residual{Variable: i, Amount: -v, Decrement: false})
		}
	}
	return out
}

func applyExecutions(init, update model.Vector, executions int64) model.Vector {
	out := make(model.Vector, len(init))
	for i := range init {
		out[i] = init[i] + executions*update[i]
	}
	return out
}

func ceilDiv(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	if a%b == 0 {
		return a / b
	}
	return a/b + 1
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Transitions lists, in pre-order, every non-sentinel transition name that
// appears in the tree. Only nodes still reachable from the root count:
// children pruned as disabled stay in the arena but are not part of the
// tree.
func (g *Graph) Transitions() []string {
	var out []string
	seen := map[string]bool{}
	var walk func(nodeID int)
	walk = func(nodeID int) {
		n := &g.nodes[nodeID]
		if n.TransitionID != sentinelTransitionID && !seen[n.TransitionName] {
			seen[n.TransitionName] = true
			out = append(out, n.TransitionName)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(0)
	return out
}

// TransitionDepths maps every non-sentinel transition name to the shallowest
// depth at which it appears, the root's direct children being at depth 0.
// It is computed eagerly here since the arena has no parent pointers to walk
// on demand.
func (g *Graph) TransitionDepths() map[string]int {
	depths := map[string]int{}
	var walk func(nodeID, depth int)
	walk = func(nodeID, depth int) {
		n := &g.nodes[nodeID]
		if n.TransitionID != sentinelTransitionID {
			if d, ok := depths[n.TransitionName]; !ok || depth < d {
				depths[n.TransitionName] = depth
			}
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(0, -1)
	return depths
}

// DistanceToRoot returns the shallowest depth of a node bearing the given
// transition name, or (0, false) if it never appears.
func (g *Graph) DistanceToRoot(name string) (int, bool) {
	d, ok := g.TransitionDepths()[name]
	return d, ok
}

// Enabled reports whether the root ended enabled.
func (g *Graph) Enabled() bool {
	return g.nodes[0].Enabled
}

// WriteTree writes the String rendering of the tree to w.
func (g *Graph) WriteTree(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// String renders the tree pre-order, one line per node, in the
// "N-pipes NAME EXECUTIONS times to (produce|consume) [(VAR,COUNT),...]"
// output format, where the trailing list is the node's outstanding residual
// targets by variable name.
func (g *Graph) String() string {
	var b strings.Builder
	var walk func(nodeID, depth int)
	walk = func(nodeID, depth int) {
		n := &g.nodes[nodeID]
		verb := "produce"
		if n.Decrement {
			verb = "consume"
		}
		targets := make([]string, len(n.Targets))
		for i, r := range n.Targets {
			targets[i] = fmt.Sprintf("(%s,%d)", g.m.Variables[r.Variable].Name, r.Amount)
		}
		fmt.Fprintf(&b, "%s%s %d times to %s [%s]\n",
			strings.Repeat("|", depth), n.TransitionName, n.Executions, verb, strings.Join(targets, ","))
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(0, 0)
	return b.String()
}
