package graph

import (
	"encoding/json"
	"errors"
	"fmt"
)

type connectionJSON struct {
	Node string `json:"node"`
	Port string `json:"port"`
}

type inputJSON struct {
	Name       string          `json:"name"`
	Connection *connectionJSON `json:"connection,omitempty"`
}

type outputJSON struct {
	Name        string           `json:"name"`
	Connections []connectionJSON `json:"connections"`
}

type nodeJSON struct {
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	ID         uint64          `json:"id"`
	Label      string          `json:"label"`
	Parameters json.RawMessage `json:"parameters"`
	Inputs     []inputJSON     `json:"inputs"`
	Outputs    []outputJSON    `json:"outputs"`
}

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
}

type upstreamer interface {
	Upstream() Port
}

type sinker interface {
	Sinks() []Port
}

// Serialize emits the whole graph as JSON: every node with its parameters
// and port connection lists, ordered by node id. The outputs' connection
// lists alone are sufficient to rebuild the topology; the inputs' upstream
// references are emitted for symmetry and ignored by Load.
func (g *Graph) Serialize() ([]byte, error) {
	doc := graphJSON{Nodes: make([]nodeJSON, 0, len(g.nodes))}

	for _, op := range g.Nodes() {
		base := op.Base()

		params, err := json.Marshal(op.Parameters())
		if err != nil {
			return nil, fmt.Errorf("graph: serialize parameters of %q: %w", base.name, err)
		}

		nj := nodeJSON{
			Type:       op.Type(),
			Name:       base.name,
			ID:         base.id,
			Label:      base.label,
			Parameters: params,
			Inputs:     []inputJSON{},
			Outputs:    []outputJSON{},
		}

		for _, name := range base.inputOrder {
			ij := inputJSON{Name: name}
			if up, ok := base.inputs[name].(upstreamer); ok {
				if upstream := up.Upstream(); upstream != nil {
					ij.Connection = &connectionJSON{
						Node: upstream.Owner().name,
						Port: upstream.Name(),
					}
				}
			}
			nj.Inputs = append(nj.Inputs, ij)
		}

		for _, name := range base.outputOrder {
			oj := outputJSON{Name: name, Connections: []connectionJSON{}}
			if s, ok := base.outputs[name].(sinker); ok {
				for _, sink := range s.Sinks() {
					oj.Connections = append(oj.Connections, connectionJSON{
						Node: sink.Owner().name,
						Port: sink.Name(),
					})
				}
			}
			nj.Outputs = append(nj.Outputs, oj)
		}

		doc.Nodes = append(doc.Nodes, nj)
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Load replaces the graph contents with the serialised document in two
// passes: first every node is reinstantiated through the registry, then the
// outputs' connection lists are replayed. First-pass failures abort with
// the offending node not inserted; second-pass failures leave the
// partially connected nodes in place, and callers typically Clear the graph
// on error. Unknown JSON fields are ignored; unknown type tags are not.
func (g *Graph) Load(registry *Registry, data []byte) error {
	var doc graphJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("graph: invalid document: %w", err)
	}

	g.Clear()

	for _, nj := range doc.Nodes {
		if nj.Type == "" {
			return fmt.Errorf("%w: node type", ErrMissingField)
		}
		if nj.Name == "" {
			return fmt.Errorf("%w: node name", ErrMissingField)
		}

		factory := registry.Lookup(nj.Type)
		if factory == nil {
			return fmt.Errorf("%w: %q", ErrUnknownType, nj.Type)
		}

		op, err := factory(nj.Name, nj.Parameters)
		if err != nil {
			if errors.Is(err, ErrInvalidParameter) || errors.Is(err, ErrMissingField) {
				return err
			}
			return fmt.Errorf("%w: node %q: %v", ErrInvalidParameter, nj.Name, err)
		}

		if err := g.Add(op); err != nil {
			return err
		}
	}

	for _, nj := range doc.Nodes {
		src, ok := g.nodes[nj.Name]
		if !ok {
			return fmt.Errorf("%w: node %q", ErrDanglingRef, nj.Name)
		}

		for _, oj := range nj.Outputs {
			outPort := src.Base().Output(oj.Name)
			if outPort == nil {
				return fmt.Errorf("%w: output %q of node %q", ErrDanglingRef, oj.Name, nj.Name)
			}

			for _, conn := range oj.Connections {
				dst, ok := g.nodes[conn.Node]
				if !ok {
					return fmt.Errorf("%w: node %q", ErrDanglingRef, conn.Node)
				}

				inPort := dst.Base().Input(conn.Port)
				if inPort == nil {
					return fmt.Errorf("%w: input %q of node %q", ErrDanglingRef, conn.Port, conn.Node)
				}

				if err := g.Connect(outPort, inPort); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
