// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package align

import "math"

// The lattice is a DAG over consumption states: state (i, j) means that i
// before-lines and j after-lines have been consumed. From any state there
// are up to three moves, each consuming one more line on one or both sides:
//
//   - delete lands at (i+1, j) and costs the gap cost of before[i]
//   - insert lands at (i, j+1) and costs the gap cost of after[j]
//   - substitute lands at (i+1, j+1) and costs the substitution cost of
//     before[i] and after[j]
//
// A node is a move identified by its landing state and Op. Nodes are stored
// in a flat arena of (m+1)×(n+1)×3 entries plus one origin node for (0, 0);
// border entries that no move can land on (e.g. a delete landing at i == 0)
// are never assigned a weight and stay unreached. The alignment is the
// cheapest path from the origin to full consumption (m, n).

type node struct {
	weight int   // intrinsic cost of this move, fixed at construction
	dist   int   // minimum total cost from the origin, unreached initially
	pred   int32 // arena index of the node achieving dist
}

const (
	origin    = 0 // arena index of the origin node
	nops      = 3
	unreached = math.MaxInt
)

type lattice struct {
	before, after []string
	m, n          int
	nodes         []node
}

func newLattice(before, after []string) *lattice {
	m, n := len(before), len(after)
	l := &lattice{
		before: before,
		after:  after,
		m:      m,
		n:      n,
		nodes:  make([]node, 1+(m+1)*(n+1)*nops),
	}
	for i := range l.nodes {
		l.nodes[i].dist = unreached
	}
	l.nodes[origin].dist = 0

	gapB := make([]int, m)
	for i, line := range before {
		gapB[i] = gapCost(line)
	}
	gapA := make([]int, n)
	for j, line := range after {
		gapA[j] = gapCost(line)
	}
	for i := 0; i <= m; i++ {
		for j := 0; j <= n; j++ {
			if i > 0 {
				l.nodes[l.index(i, j, Delete)].weight = gapB[i-1]
			}
			if j > 0 {
				l.nodes[l.index(i, j, Insert)].weight = gapA[j-1]
			}
			if i > 0 && j > 0 {
				l.nodes[l.index(i, j, Substitute)].weight = substitutionCost(before[i-1], after[j-1])
			}
		}
	}
	return l
}

func (l *lattice) index(i, j int, op Op) int {
	return 1 + (i*(l.n+1)+j)*nops + int(op)
}

func (l *lattice) state(idx int) (i, j int, op Op) {
	idx--
	op = Op(idx % nops)
	cell := idx / nops
	return cell / (l.n + 1), cell % (l.n + 1), op
}

// relax updates the node landing at (i, j) via op if reaching it through
// pred is cheaper. Ties keep the earlier predecessor.
func (l *lattice) relax(i, j int, op Op, pred, dist int) {
	idx := l.index(i, j, op)
	if cand := dist + l.nodes[idx].weight; cand < l.nodes[idx].dist {
		l.nodes[idx].dist = cand
		l.nodes[idx].pred = int32(pred)
	}
}

// relaxFrom relaxes the up-to-three moves leaving state (i, j) using the
// node at idx as the predecessor.
func (l *lattice) relaxFrom(i, j, idx int) {
	dist := l.nodes[idx].dist
	if i < l.m {
		l.relax(i+1, j, Delete, idx, dist)
	}
	if j < l.n {
		l.relax(i, j+1, Insert, idx, dist)
	}
	if i < l.m && j < l.n {
		l.relax(i+1, j+1, Substitute, idx, dist)
	}
}

// solve computes the single-source shortest path from the origin to every
// node in one pass.
//
// Every move strictly increases i, j, or both, so the lattice is a DAG and
// row-major order over consumption states is a topological order: by the
// time a node is used as a source, all paths into it have been relaxed. This
// replaces a general priority-queue search with a single cache-friendly
// sweep that visits 3·m·n + m + n nodes and relaxes at most three edges
// from each, i.e. O(m·n) time and space.
func (l *lattice) solve() {
	l.relaxFrom(0, 0, origin)
	for i := 0; i <= l.m; i++ {
		for j := 0; j <= l.n; j++ {
			for op := Delete; op <= Substitute; op++ {
				idx := l.index(i, j, op)
				if l.nodes[idx].dist == unreached {
					continue // no move lands here
				}
				l.relaxFrom(i, j, idx)
			}
		}
	}
}

// decode selects the cheapest of the three terminal moves landing at full
// consumption (m, n) and walks predecessor links back to the origin.
//
// The terminal tie-break is a fixed policy: delete-last wins only when
// strictly cheaper than both alternatives, insert-last only when strictly
// cheaper than substitute-last, and substitute-last takes all remaining
// ties. Pairing lines renders better than leaving them unpaired, so ties go
// to substitution.
func (l *lattice) decode() []Pair {
	dist := func(op Op) int { return l.nodes[l.index(l.m, l.n, op)].dist }

	var exit Op
	switch {
	case dist(Delete) < dist(Insert) && dist(Delete) < dist(Substitute):
		exit = Delete
	case dist(Insert) < dist(Substitute):
		exit = Insert
	default:
		exit = Substitute
	}

	var path []int
	for idx := l.index(l.m, l.n, exit); idx != origin; idx = int(l.nodes[idx].pred) {
		path = append(path, idx)
	}

	pairs := make([]Pair, len(path))
	for k, idx := range path {
		i, j, op := l.state(idx)
		p := Pair{Op: op}
		switch op {
		case Delete:
			p.Before = l.before[i-1]
		case Insert:
			p.After = l.after[j-1]
		case Substitute:
			p.Before = l.before[i-1]
			p.After = l.after[j-1]
		}
		pairs[len(pairs)-1-k] = p
	}
	return pairs
}
