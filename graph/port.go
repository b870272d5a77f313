package graph

import (
	"fmt"
	"reflect"
)

// Port is the erased view of a typed input or output port, as consumed by
// the graph shell and the serializer. Concrete ports are the generic
// [In] and [Out] types; compatibility between them is a concrete-type
// check, which over the closed element-type set is exactly tag equality.
type Port interface {
	Name() string
	Owner() *Node
	IsInput() bool

	// ValueKind names the element type, for error messages.
	ValueKind() string

	// Connect links an input and an output port. Whichever side it is
	// called on, the operation routes through the input-side handler so
	// the symmetric references update atomically.
	Connect(other Port) error

	// DisconnectAll removes every connection this port takes part in.
	DisconnectAll()

	setOwner(n *Node)
}

// In is a typed input port: at most one upstream output, and a default
// value used while unconnected.
type In[T any] struct {
	name     string
	owner    *Node
	def      T
	upstream *Out[T]
}

// Name returns the port name, unique among the owner's inputs.
func (in *In[T]) Name() string { return in.name }

// Owner returns the owning node.
func (in *In[T]) Owner() *Node { return in.owner }

// IsInput reports true.
func (in *In[T]) IsInput() bool { return true }

// ValueKind names the element type.
func (in *In[T]) ValueKind() string { return typeName[T]() }

func (in *In[T]) setOwner(n *Node) { in.owner = n }

// Value returns the upstream's value for the current frame, or the default
// while unconnected.
func (in *In[T]) Value() (T, error) {
	if in.upstream == nil {
		return in.def, nil
	}
	return in.upstream.Value()
}

// Upstream returns the connected output port, or nil.
func (in *In[T]) Upstream() Port {
	if in.upstream == nil {
		return nil
	}
	return in.upstream
}

// Connect links this input to the given output. Connecting to the current
// upstream is a no-op; a different upstream is cleanly disconnected first.
func (in *In[T]) Connect(other Port) error {
	out, ok := other.(*Out[T])
	if !ok {
		return fmt.Errorf("%w: cannot connect input %q (%s) to %q (%s)",
			ErrTypeMismatch, in.name, in.ValueKind(), other.Name(), other.ValueKind())
	}

	if in.upstream == out {
		return nil
	}
	if in.upstream != nil {
		if err := in.Disconnect(in.upstream); err != nil {
			return err
		}
	}

	in.upstream = out
	out.addSink(in)
	return nil
}

// Disconnect removes the link to the given output. Fails with
// ErrNotConnected if it is not the current upstream.
func (in *In[T]) Disconnect(other Port) error {
	out, ok := other.(*Out[T])
	if !ok || in.upstream != out {
		return fmt.Errorf("%w: %q is not the upstream of %q", ErrNotConnected, other.Name(), in.name)
	}

	in.upstream = nil
	out.removeSink(in)
	return nil
}

// DisconnectAll drops the upstream link, if any.
func (in *In[T]) DisconnectAll() {
	if in.upstream != nil {
		in.upstream.removeSink(in)
		in.upstream = nil
	}
}

// Out is a typed output port: a producer closure, the per-frame memo cache,
// and the set of downstream inputs.
type Out[T any] struct {
	name      string
	owner     *Node
	producer  func() (T, error)
	value     T
	lastFrame uint64
	computing bool
	sinks     []*In[T]
}

// Name returns the port name, unique among the owner's outputs.
func (out *Out[T]) Name() string { return out.name }

// Owner returns the owning node.
func (out *Out[T]) Owner() *Node { return out.owner }

// IsInput reports false.
func (out *Out[T]) IsInput() bool { return false }

// ValueKind names the element type.
func (out *Out[T]) ValueKind() string { return typeName[T]() }

func (out *Out[T]) setOwner(n *Node) { out.owner = n }

// Value returns the port's value for the current frame. The producer runs
// at most once per frame; later pulls in the same frame hit the cache. A
// producer error is surfaced to the puller with the zero value and caches
// nothing, so the next pull runs the producer again. Re-entrant pulls
// report ErrCycle.
func (out *Out[T]) Value() (T, error) {
	var zero T

	if out.owner == nil || out.owner.graph == nil {
		return zero, fmt.Errorf("%w: output %q", ErrNoGraph, out.name)
	}

	if out.computing {
		return zero, fmt.Errorf("%w: output %q of node %q", ErrCycle, out.name, out.owner.name)
	}

	frame := out.owner.graph.Frame()
	if out.lastFrame == frame {
		return out.value, nil
	}

	out.computing = true
	defer func() { out.computing = false }()

	value, err := out.producer()
	if err != nil {
		return zero, err
	}

	out.value = value
	out.lastFrame = frame
	return out.value, nil
}

// Connect routes to the input-side handler of the other port.
func (out *Out[T]) Connect(other Port) error {
	if !other.IsInput() {
		return fmt.Errorf("%w: cannot connect output %q to output %q",
			ErrTypeMismatch, out.name, other.Name())
	}
	return other.Connect(out)
}

// Sinks returns the downstream input ports.
func (out *Out[T]) Sinks() []Port {
	ports := make([]Port, len(out.sinks))
	for i, s := range out.sinks {
		ports[i] = s
	}
	return ports
}

// DisconnectAll removes the upstream link of every downstream input and
// clears the sink set.
func (out *Out[T]) DisconnectAll() {
	for _, sink := range out.sinks {
		sink.upstream = nil
	}
	out.sinks = nil
}

func (out *Out[T]) addSink(in *In[T]) {
	out.sinks = append(out.sinks, in)
}

func (out *Out[T]) removeSink(in *In[T]) {
	for i, s := range out.sinks {
		if s == in {
			out.sinks = append(out.sinks[:i], out.sinks[i+1:]...)
			return
		}
	}
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
