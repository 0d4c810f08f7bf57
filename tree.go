package woods

import "math/rand"

// flatTree is the flattened pre-order form of a built tree (spec §3,
// §4.5): splits and routes are parallel arrays of equal length, node
// 0 is the root, and routes[i][s] is either -1 (that side is a leaf;
// use splits[i].Values[s]) or the index, strictly greater than i, of
// the child that continues the walk.
//
// The built (pointer-linked) tree named in spec §3 is never
// materialized: buildTreeNode writes directly into these arena slices
// using the parent-passes-its-own-index protocol from spec §9, so
// there is nothing to discard after flattening.
type flatTree struct {
	depth    int
	strategy Strategy
	splitIts int
	splits   []Split
	routes   [][2]int
}

// newFlatTree allocates an empty tree shaped for a single fit call.
func newFlatTree(depth int, strategy Strategy, splitIterations int) *flatTree {
	return &flatTree{depth: depth, strategy: strategy, splitIts: splitIterations}
}

// fit implements spec §4.5: grow a binary tree of rules to depth
// tr.depth over the full row range, deriving child seeds left-then-
// right from an RNG seeded fresh from the parent node's own seed, and
// flatten directly into tr.splits/tr.routes.
func (tr *flatTree) fit(columns Columns, target []float64, seed uint32) {
	// 2^depth - 1 is the upper bound on nodes in a full binary tree of
	// this depth; used only as a capacity hint to avoid reallocation.
	capacity := (1 << uint(tr.depth)) - 1
	tr.splits = make([]Split, 0, capacity)
	tr.routes = make([][2]int, 0, capacity)

	root := newRootView(len(target))
	buildTreeNode(columns, target, root, tr.strategy, tr.splitIts, tr.depth, seed, &tr.splits, &tr.routes)
}

// buildTreeNode grows one node of the built tree and everything below
// it, appending to splits/routes in pre-order as it goes, and returns
// the arena index this node took — the index the caller writes into
// its own routes slot. remainingDepth == 1 means this node's children
// would have depth 0 and are therefore never grown: spec §4.5 treats
// a zero-depth or empty-subset child as "null, not a node".
func buildTreeNode(
	columns Columns, target []float64, view indexView,
	strategy Strategy, splitIterations int, remainingDepth int, seed uint32,
	splits *[]Split, routes *[][2]int,
) int {
	nodeIndex := len(*splits)
	split := fitRule(columns, target, view, strategy, splitIterations, seed)
	*splits = append(*splits, split)
	*routes = append(*routes, [2]int{-1, -1})

	if remainingDepth <= 1 {
		return nodeIndex
	}

	left, right := split.Partition(view, columns)

	// Child seeds are drawn left-then-right from an RNG seeded fresh
	// from this node's own seed — a separate instance from the one
	// fitRule constructs (also fresh from the same seed) to search
	// for the split itself. Sharing one *rand.Rand between the two
	// would break determinism under parameter changes.
	childRNG := rand.New(rand.NewSource(int64(seed)))
	leftSeed := childRNG.Uint32()
	rightSeed := childRNG.Uint32()

	if left.Len() > 0 {
		leftIndex := buildTreeNode(columns, target, left, strategy, splitIterations, remainingDepth-1, leftSeed, splits, routes)
		(*routes)[nodeIndex][0] = leftIndex
	}
	if right.Len() > 0 {
		rightIndex := buildTreeNode(columns, target, right, strategy, splitIterations, remainingDepth-1, rightSeed, splits, routes)
		(*routes)[nodeIndex][1] = rightIndex
	}

	return nodeIndex
}

// predictRow walks the flattened tree for one row, per spec §4.5's
// loop: cur <= 0 terminates (node 0 can only be the root, so a
// non-root child index is never 0, per the pre-order invariant).
func (tr *flatTree) predictRow(columns Columns, row int) float64 {
	cur := 0
	for {
		sp := tr.splits[cur]
		side := 0
		if columns[sp.Feature][row] > sp.Threshold {
			side = 1
		}
		val := sp.Values[side]
		next := tr.routes[cur][side]
		if next <= 0 {
			return val
		}
		cur = next
	}
}

// predict evaluates the tree over every row of columns.
func (tr *flatTree) predict(columns Columns, nSamples int) []float64 {
	out := make([]float64, nSamples)
	for r := 0; r < nSamples; r++ {
		out[r] = tr.predictRow(columns, r)
	}
	return out
}
