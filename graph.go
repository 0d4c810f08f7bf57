package woods

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pkg/errors"
)

// recurrentDraw walks the flattened splits/routes pair rooted at
// nodeIndex and builds the matching cgraph node/edge. It mirrors the
// teacher's pointer-linked recurrentDraw, but descends through
// tr.routes instead of TreeNode.LeftIndex/RightIndex, and a "child" is
// a side of the current split rather than a separate node when that
// side has no further children.
func recurrentDraw(g *cgraph.Graph, tr *flatTree, nodeIndex int, parent *cgraph.Node) error {
	sp := tr.splits[nodeIndex]

	current, err := g.CreateNode(strconv.Itoa(nodeIndex))
	if err != nil {
		return errors.Wrapf(err, "create node %d", nodeIndex)
	}
	if rc := current.Set("label", fmt.Sprintf("f_%d <= %6.5f\nimpurity %6.3f", sp.Feature, sp.Threshold, sp.Impurity)); rc != 0 {
		return errors.Errorf("label node %d: set returned %d", nodeIndex, rc)
	}

	if parent != nil {
		if _, err := g.CreateEdge("", parent, current); err != nil {
			return errors.Wrapf(err, "create edge to node %d", nodeIndex)
		}
	}

	for side := 0; side < 2; side++ {
		childIndex := tr.routes[nodeIndex][side]
		if childIndex > nodeIndex {
			if err := recurrentDraw(g, tr, childIndex, current); err != nil {
				return err
			}
			continue
		}

		leafLabel := fmt.Sprintf("leaf\n%6.3f", sp.Values[side])
		leafName := fmt.Sprintf("%d_leaf_%d", nodeIndex, side)
		leaf, err := g.CreateNode(leafName)
		if err != nil {
			return errors.Wrapf(err, "create leaf for node %d side %d", nodeIndex, side)
		}
		if rc := leaf.Set("label", leafLabel); rc != 0 {
			return errors.Errorf("label leaf for node %d side %d: set returned %d", nodeIndex, side, rc)
		}
		if rc := leaf.Set("shape", "box"); rc != 0 {
			return errors.Errorf("shape leaf for node %d side %d: set returned %d", nodeIndex, side, rc)
		}
		if _, err := g.CreateEdge("", current, leaf); err != nil {
			return errors.Wrapf(err, "create leaf edge for node %d side %d", nodeIndex, side)
		}
	}

	return nil
}

// DrawGraph renders tr as a *cgraph.Graph, one node per used split
// index plus one box-shaped leaf node per terminal side, grounded on
// the teacher's OneTree.DrawGraph/recurrentDraw but driven off the
// flat pre-order arrays instead of a TreeNode/LeafNode pair.
func (tr *flatTree) DrawGraph() (*graphviz.Graphviz, *cgraph.Graph, error) {
	gv := graphviz.New()
	graph, err := gv.Graph()
	if err != nil {
		return nil, nil, errors.Wrap(err, "allocate graph")
	}
	if len(tr.splits) == 0 {
		return gv, graph, nil
	}
	if err := recurrentDraw(graph, tr, 0, nil); err != nil {
		return nil, nil, err
	}
	return gv, graph, nil
}
