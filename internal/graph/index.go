package graph

import "cognigraph/internal/util"

// Edge is one adjacency entry: the relation label plus the node on the far
// side, which is the object for forward edges and the subject for reverse
// ones.
type Edge struct {
	Relation Relation `json:"relation"`
	Node     Node     `json:"node"`
	Triple   Triple   `json:"-"`
}

// Index is the immutable bidirectional adjacency over a validated triple set.
// It is rebuilt wholesale on every ingestion; nothing mutates it afterwards,
// so any number of readers may share one instance.
type Index struct {
	triples []Triple
	forward map[string][]Edge
	reverse map[string][]Edge
	nodes   map[string]Node
	byType  map[NodeType][]Node
}

func NewIndex(triples []Triple) *Index {
	ix := &Index{
		triples: triples,
		forward: make(map[string][]Edge),
		reverse: make(map[string][]Edge),
		nodes:   make(map[string]Node),
		byType:  make(map[NodeType][]Node),
	}
	for _, t := range triples {
		subj, obj := t.Subject(), t.Object()
		ix.addNode(subj)
		ix.addNode(obj)
		ix.forward[subj.Key()] = append(ix.forward[subj.Key()], Edge{Relation: t.Relation, Node: obj, Triple: t})
		ix.reverse[obj.Key()] = append(ix.reverse[obj.Key()], Edge{Relation: t.Relation, Node: subj, Triple: t})
	}
	return ix
}

func (ix *Index) addNode(n Node) {
	if _, seen := ix.nodes[n.Key()]; seen {
		return
	}
	ix.nodes[n.Key()] = n
	ix.byType[n.Type] = append(ix.byType[n.Type], n)
}

// Neighbors returns outgoing edges in triple insertion order, optionally
// restricted to one relation (empty relation means all). Unknown nodes yield
// an empty slice; an empty node name is a malformed query and errors.
func (ix *Index) Neighbors(n Node, rel Relation) ([]Edge, error) {
	if n.Name == "" {
		return nil, util.ErrInvalidQuery
	}
	return filterEdges(ix.forward[n.Key()], rel), nil
}

// ReverseNeighbors is Neighbors for incoming edges.
func (ix *Index) ReverseNeighbors(n Node, rel Relation) ([]Edge, error) {
	if n.Name == "" {
		return nil, util.ErrInvalidQuery
	}
	return filterEdges(ix.reverse[n.Key()], rel), nil
}

func filterEdges(edges []Edge, rel Relation) []Edge {
	if rel == "" {
		out := make([]Edge, len(edges))
		copy(out, edges)
		return out
	}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Relation == rel {
			out = append(out, e)
		}
	}
	return out
}

// NodesOfType returns the distinct nodes of one type, in first-appearance
// order. An unrecognized type is valid and simply has no nodes.
func (ix *Index) NodesOfType(t NodeType) []Node {
	src := ix.byType[t]
	out := make([]Node, len(src))
	copy(out, src)
	return out
}

func (ix *Index) HasNode(n Node) bool {
	_, ok := ix.nodes[n.Key()]
	return ok
}

// Triples exposes the deduplicated record set in insertion order.
func (ix *Index) Triples() []Triple {
	out := make([]Triple, len(ix.triples))
	copy(out, ix.triples)
	return out
}

func (ix *Index) TripleCount() int { return len(ix.triples) }

func (ix *Index) NodeCount() int { return len(ix.nodes) }
