package lgf

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/preflow/core"
)

// labelColumn is the @nodes column that names nodes for @arcs and @attributes.
const labelColumn = "label"

// Document is the parsed content of an LGF file. Columns are kept as raw
// text; parse them with ArcMap and NodeMap.
type Document struct {
	// Graph holds one node per @nodes row and one arc per @arcs row, in
	// file order.
	Graph *core.Graph

	// NodeMaps holds every @nodes column, indexed by node ID.
	NodeMaps map[string][]string

	// ArcMaps holds every @arcs column, indexed by arc ID.
	ArcMaps map[string][]string

	// Attributes holds the @attributes section.
	Attributes map[string]string

	labels    []string
	nodeIndex map[string]core.Node
}

// NewDocument wraps g in a Document whose node labels are the decimal node
// IDs, ready for SetArcMap, SetNodeMap, SetNode and Write.
func NewDocument(g *core.Graph) *Document {
	doc := newDocument()
	doc.Graph = g
	for i := 0; i < g.NodeCount(); i++ {
		doc.addLabel(strconv.Itoa(i))
	}
	doc.NodeMaps[labelColumn] = doc.labels

	return doc
}

func newDocument() *Document {
	return &Document{
		Graph:      core.NewGraph(),
		NodeMaps:   make(map[string][]string),
		ArcMaps:    make(map[string][]string),
		Attributes: make(map[string]string),
		nodeIndex:  make(map[string]core.Node),
	}
}

// addLabel records the label of the next node; it reports false on a
// duplicate.
func (d *Document) addLabel(label string) bool {
	if _, dup := d.nodeIndex[label]; dup {
		return false
	}
	d.nodeIndex[label] = core.Node(len(d.labels))
	d.labels = append(d.labels, label)

	return true
}

// Label returns the label of n.
func (d *Document) Label(n core.Node) string {
	if n < 0 || int(n) >= len(d.labels) {
		return ""
	}

	return d.labels[n]
}

// NodeByLabel resolves a node label.
func (d *Document) NodeByLabel(label string) (core.Node, error) {
	n, ok := d.nodeIndex[label]
	if !ok {
		return core.InvalidNode, fmt.Errorf("%w: %q", ErrUnknownNode, label)
	}

	return n, nil
}

// Node resolves the node named by the attribute attr, e.g. "source".
func (d *Document) Node(attr string) (core.Node, error) {
	label, ok := d.Attributes[attr]
	if !ok {
		return core.InvalidNode, fmt.Errorf("%w: %q", ErrMissingAttribute, attr)
	}

	return d.NodeByLabel(label)
}

// SetNode stores n under the attribute attr.
func (d *Document) SetNode(attr string, n core.Node) error {
	if !d.Graph.HasNode(n) {
		return fmt.Errorf("%w: %d", core.ErrNodeNotFound, n)
	}
	d.Attributes[attr] = d.labels[n]

	return nil
}

// SetNodeMap stores a node column. values must have one entry per node.
// The label column cannot be replaced.
func (d *Document) SetNodeMap(name string, values []string) error {
	if name == labelColumn {
		return fmt.Errorf("lgf: column %q is reserved", labelColumn)
	}
	if len(values) != d.Graph.NodeCount() {
		return fmt.Errorf("lgf: node map %q has %d values for %d nodes", name, len(values), d.Graph.NodeCount())
	}
	d.NodeMaps[name] = values

	return nil
}

// SetArcColumn stores an arc column. values must have one entry per arc.
func (d *Document) SetArcColumn(name string, values []string) error {
	if len(values) != d.Graph.ArcCount() {
		return fmt.Errorf("lgf: arc map %q has %d values for %d arcs", name, len(values), d.Graph.ArcCount())
	}
	d.ArcMaps[name] = values

	return nil
}
