package graph

import "fmt"

// Node is the common core every operator embeds: identity, port maps, and
// the back-reference to the owning graph. The graph assigns both the id and
// the back-reference when the operator is added.
type Node struct {
	id    uint64
	name  string
	label string
	graph *Graph

	inputs      map[string]Port
	outputs     map[string]Port
	inputOrder  []string
	outputOrder []string
}

// NewNode creates an unattached node core with the given unique name and
// display label.
func NewNode(name, label string) *Node {
	return &Node{
		name:    name,
		label:   label,
		inputs:  make(map[string]Port),
		outputs: make(map[string]Port),
	}
}

// ID returns the graph-assigned node id (0 until added).
func (n *Node) ID() uint64 { return n.id }

// Name returns the node's unique name.
func (n *Node) Name() string { return n.name }

// Label returns the human-facing display label.
func (n *Node) Label() string { return n.label }

// Graph returns the owning graph, or nil while unattached.
func (n *Node) Graph() *Graph { return n.graph }

// Input returns the named input port, or nil.
func (n *Node) Input(name string) Port { return n.inputs[name] }

// Output returns the named output port, or nil.
func (n *Node) Output(name string) Port { return n.outputs[name] }

// InputNames returns the input port names in declaration order.
func (n *Node) InputNames() []string {
	return append([]string(nil), n.inputOrder...)
}

// OutputNames returns the output port names in declaration order.
func (n *Node) OutputNames() []string {
	return append([]string(nil), n.outputOrder...)
}

// DisconnectAll disconnects every port the node owns.
func (n *Node) DisconnectAll() {
	for _, name := range n.inputOrder {
		n.inputs[name].DisconnectAll()
	}
	for _, name := range n.outputOrder {
		n.outputs[name].DisconnectAll()
	}
}

// AddInput declares a typed input port with a default value on n.
// Panics on a duplicate port name: port sets are fixed per operator type,
// so a collision is a programming error.
func AddInput[T any](n *Node, name string, def T) *In[T] {
	if _, exists := n.inputs[name]; exists {
		panic(fmt.Sprintf("graph: duplicate input port %q on node %q", name, n.name))
	}

	port := &In[T]{name: name, def: def}
	port.setOwner(n)
	n.inputs[name] = port
	n.inputOrder = append(n.inputOrder, name)
	return port
}

// AddOutput declares a typed output port with a producer closure on n.
func AddOutput[T any](n *Node, name string, producer func() (T, error)) *Out[T] {
	if _, exists := n.outputs[name]; exists {
		panic(fmt.Sprintf("graph: duplicate output port %q on node %q", name, n.name))
	}

	port := &Out[T]{name: name, producer: producer}
	port.setOwner(n)
	n.outputs[name] = port
	n.outputOrder = append(n.outputOrder, name)
	return port
}

// InputValue pulls the typed value of the named input port.
func InputValue[T any](n *Node, name string) (T, error) {
	var zero T

	port, ok := n.inputs[name].(*In[T])
	if !ok {
		return zero, fmt.Errorf("%w: input %q of node %q", ErrNotFound, name, n.name)
	}
	return port.Value()
}

// OutputValue pulls the typed value of the named output port.
func OutputValue[T any](n *Node, name string) (T, error) {
	var zero T

	port, ok := n.outputs[name].(*Out[T])
	if !ok {
		return zero, fmt.Errorf("%w: output %q of node %q", ErrNotFound, name, n.name)
	}
	return port.Value()
}

// RenderContext is the collaborator surface the host hands to operators
// once per frame. Implementations draw plots and text; operators may also
// mutate their parameters during Render.
type RenderContext interface {
	// Plot displays a named data series.
	Plot(label string, series []float64)

	// Text displays a status or error line.
	Text(msg string)
}

// Operator is a concrete node: the embedded core plus the per-type hooks
// the graph shell and the serializer consume.
type Operator interface {
	// Base returns the embedded node core.
	Base() *Node

	// Type returns the registry type tag, e.g. "SineNode".
	Type() string

	// Parameters returns the serialisable parameter bundle.
	Parameters() map[string]any

	// Render draws the operator and lets the host edit parameters. Called
	// at most once per frame; must not mutate graph structure.
	Render(ctx RenderContext)
}
