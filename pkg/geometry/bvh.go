package geometry

import (
	"math"
	"sort"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// SplitStrategy selects how the BVH builder partitions primitives
type SplitStrategy int

const (
	// SplitMedian partitions around the median centroid along the
	// chosen axis using selection, not a full sort
	SplitMedian SplitStrategy = iota
	// SplitSpatial partitions by whether a primitive centroid lies
	// above or below the node center, falling back to a sorted median
	// split when the partition is degenerate
	SplitSpatial
	// SplitSAH performs a full-sweep surface-area-heuristic search
	// over all three axes and every split position
	SplitSAH
)

// Leaves hold at most this many shapes
const maxLeafShapes = 2

// Centroid spreads below this threshold force a leaf rather than
// recursing on an unsplittable range
const minCentroidSpread = 1e-12

// bvhNode is a tagged variant stored in a contiguous array: a leaf
// spans shapes[first:first+count]; an interior node (count == 0) has
// children at left and left+1.
type bvhNode struct {
	bounds core.AABB
	first  int
	count  int
	left   int
}

// BVH is a bounding volume hierarchy over analytic primitives. Shapes
// are physically reordered at build time so that every leaf covers a
// contiguous range. Immutable after construction.
type BVH struct {
	shapes []Shape
	nodes  []bvhNode
}

// BVHStats summarizes the structure of a built BVH
type BVHStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
	Shapes   int
}

// NewBVH constructs a BVH from a slice of shapes using the given split
// strategy. The input slice is not modified.
func NewBVH(shapes []Shape, strategy SplitStrategy) *BVH {
	bvh := &BVH{}
	if len(shapes) == 0 {
		return bvh
	}

	b := &bvhBuilder{
		shapes:    make([]Shape, len(shapes)),
		bounds:    make([]core.AABB, len(shapes)),
		centroids: make([]core.Vec3, len(shapes)),
		strategy:  strategy,
	}
	copy(b.shapes, shapes)
	for i, shape := range b.shapes {
		b.bounds[i] = shape.BoundingBox()
		b.centroids[i] = b.bounds[i].Center()
	}

	// Start with a single leaf spanning everything, then subdivide
	b.nodes = append(b.nodes, bvhNode{
		bounds: b.rangeBounds(0, len(shapes)),
		first:  0,
		count:  len(shapes),
	})
	b.subdivide(0)

	bvh.shapes = b.shapes
	bvh.nodes = b.nodes
	return bvh
}

// Hit returns the nearest intersection within the ray's interval, or
// false if nothing is hit. Equivalent to exhaustively testing every
// shape; interior nodes are pruned by their AABB entry distance.
func (bvh *BVH) Hit(ray core.Ray) (*HitRecord, bool) {
	if len(bvh.nodes) == 0 {
		return nil, false
	}
	if _, ok := bvh.nodes[0].bounds.Hit(ray); !ok {
		return nil, false
	}
	return bvh.hitNode(0, ray)
}

// hitNode recursively tests the ray against a node, narrowing the
// ray's TMax as closer hits are found
func (bvh *BVH) hitNode(idx int, ray core.Ray) (*HitRecord, bool) {
	node := &bvh.nodes[idx]

	if node.count > 0 {
		var closest *HitRecord
		for i := node.first; i < node.first+node.count; i++ {
			if hit, ok := bvh.shapes[i].Hit(ray); ok {
				ray.TMax = hit.T
				closest = hit
			}
		}
		return closest, closest != nil
	}

	left := node.left
	right := node.left + 1
	entryLeft, okLeft := bvh.nodes[left].bounds.Hit(ray)
	entryRight, okRight := bvh.nodes[right].bounds.Hit(ray)

	if okLeft && okRight {
		near, far := left, right
		entryFar := entryRight
		if entryRight < entryLeft {
			near, far = right, left
			entryFar = entryLeft
		}

		var closest *HitRecord
		if hit, ok := bvh.hitNode(near, ray); ok {
			closest = hit
			ray.TMax = hit.T
		}
		// Only descend into the farther child if its entry distance can
		// still beat the current closest hit
		if entryFar < ray.TMax {
			if hit, ok := bvh.hitNode(far, ray); ok {
				closest = hit
			}
		}
		return closest, closest != nil
	}
	if okLeft {
		return bvh.hitNode(left, ray)
	}
	if okRight {
		return bvh.hitNode(right, ray)
	}
	return nil, false
}

// BoundingBox returns the bounds of the root node
func (bvh *BVH) BoundingBox() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB()
	}
	return bvh.nodes[0].bounds
}

// NumShapes returns the number of shapes in the hierarchy
func (bvh *BVH) NumShapes() int {
	return len(bvh.shapes)
}

// Stats walks the tree and summarizes its structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{Shapes: len(bvh.shapes)}
	if len(bvh.nodes) == 0 {
		return stats
	}
	bvh.collectStats(0, 0, &stats)
	return stats
}

func (bvh *BVH) collectStats(idx, depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	node := &bvh.nodes[idx]
	if node.count > 0 {
		stats.Leaves++
		return
	}
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.left+1, depth+1, stats)
}

// leafRanges returns the [first, first+count) range of every leaf, used
// by tests to verify the partition invariant
func (bvh *BVH) leafRanges() [][2]int {
	var ranges [][2]int
	for _, node := range bvh.nodes {
		if node.count > 0 {
			ranges = append(ranges, [2]int{node.first, node.first + node.count})
		}
	}
	return ranges
}

// bvhBuilder holds the mutable build state: shapes, cached bounds and
// centroids are reordered together
type bvhBuilder struct {
	shapes    []Shape
	bounds    []core.AABB
	centroids []core.Vec3
	nodes     []bvhNode
	strategy  SplitStrategy
}

// subdivide splits the leaf at nodeIdx until every leaf holds at most
// maxLeafShapes primitives. Parents are rewritten from leaf to interior
// as their two children are appended.
func (b *bvhBuilder) subdivide(nodeIdx int) {
	node := b.nodes[nodeIdx]
	if node.count <= maxLeafShapes {
		return
	}

	mid, ok := b.splitRange(node.first, node.count, node.bounds)
	if !ok {
		// Collapsed centroids: keep the oversized leaf rather than
		// recursing forever
		return
	}

	left := len(b.nodes)
	b.nodes = append(b.nodes, bvhNode{
		bounds: b.rangeBounds(node.first, mid-node.first),
		first:  node.first,
		count:  mid - node.first,
	})
	b.nodes = append(b.nodes, bvhNode{
		bounds: b.rangeBounds(mid, node.first+node.count-mid),
		first:  mid,
		count:  node.first + node.count - mid,
	})

	b.nodes[nodeIdx].count = 0
	b.nodes[nodeIdx].left = left

	b.subdivide(left)
	b.subdivide(left + 1)
}

// splitRange picks a split position for [first, first+count) and
// reorders the range so the two halves are contiguous. Returns the
// absolute mid index, or false to force a leaf.
func (b *bvhBuilder) splitRange(first, count int, nodeBounds core.AABB) (int, bool) {
	axis := nodeBounds.LongestAxis()
	if b.centroidSpread(first, count, axis) < minCentroidSpread {
		return 0, false
	}

	switch b.strategy {
	case SplitSpatial:
		return b.splitSpatial(first, count, axis, nodeBounds), true
	case SplitSAH:
		return b.splitSAH(first, count), true
	default:
		return b.splitMedian(first, count, axis), true
	}
}

// splitMedian partitions the range around its median centroid using
// selection (quickselect), not a full sort
func (b *bvhBuilder) splitMedian(first, count, axis int) int {
	mid := first + count/2
	b.nthElement(first, first+count, mid, axis)
	return mid
}

// splitSpatial partitions by centroid position relative to the node
// center; degenerate all-on-one-side partitions fall back to a sorted
// median split
func (b *bvhBuilder) splitSpatial(first, count, axis int, nodeBounds core.AABB) int {
	pivot := nodeBounds.Center().Axis(axis)

	store := first
	for i := first; i < first+count; i++ {
		if b.centroids[i].Axis(axis) < pivot {
			b.swapItems(i, store)
			store++
		}
	}

	if store == first || store == first+count {
		b.sortRange(first, count, axis)
		return first + count/2
	}
	return store
}

// splitSAH sweeps every candidate split position on all three axes and
// keeps the one with the minimum cost area(left)*k + area(right)*(n-k)
func (b *bvhBuilder) splitSAH(first, count int) int {
	bestCost := math.Inf(1)
	bestAxis := -1
	bestK := 0

	leftArea := make([]float64, count)
	rightArea := make([]float64, count+1)

	for axis := 0; axis < 3; axis++ {
		b.sortRange(first, count, axis)

		// Prefix areas: leftArea[k-1] covers the first k shapes
		running := core.EmptyAABB()
		for i := 0; i < count; i++ {
			running = running.Union(b.bounds[first+i])
			leftArea[i] = running.SurfaceArea()
		}
		// Suffix areas: rightArea[k] covers shapes k..count-1
		running = core.EmptyAABB()
		for i := count - 1; i >= 0; i-- {
			running = running.Union(b.bounds[first+i])
			rightArea[i] = running.SurfaceArea()
		}

		for k := 1; k < count; k++ {
			cost := leftArea[k-1]*float64(k) + rightArea[k]*float64(count-k)
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestK = k
			}
		}
	}

	if bestAxis < 0 {
		// Non-finite areas defeat the cost model: even split on the
		// last sorted axis
		return first + count/2
	}

	// The range is currently sorted along the z axis from the sweep;
	// restore the winning axis order before cutting
	if bestAxis != 2 {
		b.sortRange(first, count, bestAxis)
	}
	return first + bestK
}

// rangeBounds unions the cached shape bounds over [first, first+count)
func (b *bvhBuilder) rangeBounds(first, count int) core.AABB {
	box := core.EmptyAABB()
	for i := first; i < first+count; i++ {
		box = box.Union(b.bounds[i])
	}
	return box
}

// centroidSpread returns the centroid extent of the range along an axis
func (b *bvhBuilder) centroidSpread(first, count, axis int) float64 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for i := first; i < first+count; i++ {
		c := b.centroids[i].Axis(axis)
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	return hi - lo
}

// swapItems swaps shapes and their cached bounds/centroids together
func (b *bvhBuilder) swapItems(i, j int) {
	b.shapes[i], b.shapes[j] = b.shapes[j], b.shapes[i]
	b.bounds[i], b.bounds[j] = b.bounds[j], b.bounds[i]
	b.centroids[i], b.centroids[j] = b.centroids[j], b.centroids[i]
}

// nthElement partially orders [first, last) so that the element at nth
// is in its sorted position by centroid along axis
func (b *bvhBuilder) nthElement(first, last, nth, axis int) {
	for last-first > 1 {
		pivotIdx := b.partitionRange(first, last, axis)
		switch {
		case nth < pivotIdx:
			last = pivotIdx
		case nth > pivotIdx:
			first = pivotIdx + 1
		default:
			return
		}
	}
}

// partitionRange performs a Lomuto partition around the middle element
func (b *bvhBuilder) partitionRange(first, last, axis int) int {
	b.swapItems((first+last)/2, last-1)
	pivot := b.centroids[last-1].Axis(axis)

	store := first
	for i := first; i < last-1; i++ {
		if b.centroids[i].Axis(axis) < pivot {
			b.swapItems(i, store)
			store++
		}
	}
	b.swapItems(store, last-1)
	return store
}

// rangeSorter sorts a centroid range, swapping the parallel slices in step
type rangeSorter struct {
	b     *bvhBuilder
	first int
	count int
	axis  int
}

func (r rangeSorter) Len() int { return r.count }
func (r rangeSorter) Less(i, j int) bool {
	return r.b.centroids[r.first+i].Axis(r.axis) < r.b.centroids[r.first+j].Axis(r.axis)
}
func (r rangeSorter) Swap(i, j int) { r.b.swapItems(r.first+i, r.first+j) }

// sortRange sorts [first, first+count) by centroid along axis
func (b *bvhBuilder) sortRange(first, count, axis int) {
	sort.Sort(rangeSorter{b: b, first: first, count: count, axis: axis})
}
