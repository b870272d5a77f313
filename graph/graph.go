// Package graph implements a typed, pull-based dataflow graph: ports with
// per-frame memoised evaluation, a node base with a factory registry, and
// JSON serialisation.
//
// A graph is mutated and evaluated on one logical thread; the frame tick is
// the only point at which cached output values become stale.
package graph

import (
	"fmt"
	"sort"
)

// Graph owns a set of named operator nodes, allocates their ids, and drives
// the frame clock.
type Graph struct {
	nodes  map[string]Operator
	nextID uint64
	frame  uint64
}

// New creates an empty graph. The frame counter starts at 1 so that fresh
// output caches (frame 0) are stale.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]Operator),
		frame: 1,
	}
}

// Add inserts the operator under its node name, allocating the next id and
// wiring the graph back-reference. Ids are monotonic and are not reused
// after Remove; only Clear resets the counter to 0. Fails with
// ErrDuplicateName on collision.
func (g *Graph) Add(op Operator) error {
	base := op.Base()
	if _, exists := g.nodes[base.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, base.name)
	}

	base.graph = g
	base.id = g.nextID
	g.nextID++
	g.nodes[base.name] = op

	return nil
}

// Node returns the named operator.
func (g *Graph) Node(name string) (Operator, bool) {
	op, ok := g.nodes[name]
	return op, ok
}

// Nodes returns all operators ordered by id.
func (g *Graph) Nodes() []Operator {
	out := make([]Operator, 0, len(g.nodes))
	for _, op := range g.nodes {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Base().id < out[j].Base().id
	})
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Remove disconnects every port the named node owns and drops the node, so
// no surviving port references any of its ports. Fails with ErrNotFound.
func (g *Graph) Remove(name string) error {
	op, ok := g.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	op.Base().DisconnectAll()
	op.Base().graph = nil
	delete(g.nodes, name)

	return nil
}

// Clear removes all nodes and resets the id counter to 0.
func (g *Graph) Clear() {
	for name := range g.nodes {
		_ = g.Remove(name)
	}
	g.nextID = 0
}

// Connect links an output and an input port, in either argument order. The
// operation always routes through the input-side handler.
func (g *Graph) Connect(a, b Port) error {
	if a.IsInput() {
		return a.Connect(b)
	}
	return b.Connect(a)
}

// Disconnect removes the link between the given input and output.
func (g *Graph) Disconnect(in, out Port) error {
	type disconnecter interface {
		Disconnect(Port) error
	}

	if d, ok := in.(disconnecter); ok && in.IsInput() {
		return d.Disconnect(out)
	}
	if d, ok := out.(disconnecter); ok && out.IsInput() {
		return d.Disconnect(in)
	}

	return fmt.Errorf("%w: disconnect needs an input port", ErrNotConnected)
}

// Frame returns the current frame index.
func (g *Graph) Frame() uint64 { return g.frame }

// Tick advances the frame clock. This is the only way cached output values
// become stale; the host calls it exactly once per frame.
func (g *Graph) Tick() { g.frame++ }

// Render invokes every operator's Render hook once, ordered by id.
func (g *Graph) Render(ctx RenderContext) {
	for _, op := range g.Nodes() {
		op.Render(ctx)
	}
}
