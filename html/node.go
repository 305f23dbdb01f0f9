package html

import (
	ftml "github.com/FlexiFormal/ftml-sub001"
)

// nodeID is a stable index into the sink's node arena. All mutable
// bookkeeping (offsets, stored close markers, links) lives in the arena
// keyed by index; no shared mutable node handles exist.
type nodeID int

const noNode nodeID = -1

type nodeKind uint8

const (
	nodeElement nodeKind = iota
	nodeText
	nodeComment
	nodeDoctype
)

// node is one node of the adapter's own tree over the re-serialized output.
// start/end span the node's full serialized bytes; contentStart/contentEnd
// span the bytes between its tags.
type node struct {
	kind     nodeKind
	parent   nodeID
	children []nodeID

	tag   string
	attrs []ftml.Attribute
	text  string

	start, end               int
	contentStart, contentEnd int

	closes     []ftml.CloseElement
	selfClosed bool
	removed    bool
}

// arena owns every node of one extraction run.
type arena struct {
	nodes []node
	roots []nodeID
}

func (a *arena) newNode(n node) nodeID {
	a.nodes = append(a.nodes, n)
	return nodeID(len(a.nodes) - 1)
}

func (a *arena) at(id nodeID) *node {
	if id < 0 || int(id) >= len(a.nodes) {
		return nil
	}
	return &a.nodes[id]
}

// attach links a node under its parent (or the root list).
func (a *arena) attach(id, parent nodeID) {
	a.nodes[id].parent = parent
	if parent == noNode {
		a.roots = append(a.roots, id)
		return
	}
	p := a.at(parent)
	p.children = append(p.children, id)
}

// detach unlinks a node from its parent and marks it removed. The subtree
// stays in the arena so previously issued node IDs remain valid.
func (a *arena) detach(id nodeID) {
	n := a.at(id)
	if n == nil {
		return
	}
	n.removed = true
	siblings := &a.roots
	if n.parent != noNode {
		siblings = &a.at(n.parent).children
	}
	for i, c := range *siblings {
		if c == id {
			*siblings = append((*siblings)[:i], (*siblings)[i+1:]...)
			break
		}
	}
}

// inHead reports whether any ancestor of the node is a head element.
func (a *arena) inHead(id nodeID) bool {
	for p := a.at(id).parent; p != noNode; p = a.at(p).parent {
		if a.at(p).kind == nodeElement && a.at(p).tag == "head" {
			return true
		}
	}
	return false
}

// shift applies a length delta to every offset at or beyond from, across the
// whole arena. Used when a node is removed from the serialized output so
// that every surviving range stays exact.
func (a *arena) shift(from, delta int) {
	if delta == 0 {
		return
	}
	for i := range a.nodes {
		n := &a.nodes[i]
		if n.start >= from {
			n.start += delta
		}
		if n.end >= from {
			n.end += delta
		}
		if n.contentStart >= from {
			n.contentStart += delta
		}
		if n.contentEnd >= from {
			n.contentEnd += delta
		}
	}
}
