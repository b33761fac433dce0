// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// dot.go - Graphviz DOT export of a precedence graph.
//
// The drawing itself is left to external tooling (dot -Tpng ...); this file
// only builds the graph and encodes it. Node IDs are switch numbers, layout is
// top-to-bottom so predecessor-free switches end up on the first rank.

package precedence

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// switchNode is a DOT node labelled by its switch number.
type switchNode struct {
	id    int64
	label string
}

func (n switchNode) ID() int64 { return n.id }
func (n switchNode) DOTID() string { return strconv.FormatInt(n.id, 10) }
func (n switchNode) Attributes() []encoding.Attribute {
	if n.label == "" {
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: n.label}}
}

// attrs adapts a fixed attribute list to encoding.Attributer.
type attrs []encoding.Attribute

func (a attrs) Attributes() []encoding.Attribute { return a }

// dotGraph adds graph-wide DOT attributes to a simple directed graph.
type dotGraph struct {
	*simple.DirectedGraph
}

func (dotGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return attrs{{Key: "rankdir", Value: "TB"}},
		attrs{{Key: "shape", Value: "circle"}},
		attrs{}
}

// WriteDOT encodes the precedence graph over switches 1..n as a DOT digraph
// named name. label, if non-nil, supplies a node label per switch (for
// example "7 (R)"); otherwise nodes show their number.
//
// Errors: ErrArcOutOfRange for invalid endpoints, or the encoder/writer error.
func WriteDOT(w io.Writer, name string, n int, arcs []Arc, label func(i int) string) error {
	g := dotGraph{DirectedGraph: simple.NewDirectedGraph()}
	nodes := make([]switchNode, n+1)
	for i := 1; i <= n; i++ {
		nodes[i] = switchNode{id: int64(i)}
		if label != nil {
			nodes[i].label = label(i)
		}
		g.AddNode(nodes[i])
	}
	for _, a := range arcs {
		if err := checkArc(n, a); err != nil {
			return fmt.Errorf("WriteDOT: %w", err)
		}
		if a.From == a.To {
			return fmt.Errorf("WriteDOT: self-loop on %d: %w", a.From, ErrCycle)
		}
		g.SetEdge(g.NewEdge(nodes[a.From], nodes[a.To]))
	}

	b, err := dot.Marshal(g, name, "", "\t")
	if err != nil {
		return fmt.Errorf("WriteDOT: marshal: %w", err)
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("WriteDOT: write: %w", err)
	}
	return nil
}
