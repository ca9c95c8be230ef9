package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 4

// BVHNode is a node of a bounding volume hierarchy. Leaves hold a short list
// of objects searched linearly; internal nodes hold two children.
// A BVH is never sampled as a light.
type BVHNode struct {
	core.NotALight
	bbox    core.AABB
	left    core.Hittable
	right   core.Hittable
	objects []core.Hittable // Leaf members (nil for internal nodes)
}

// NewBVH builds a hierarchy over objects. The input slice is not modified.
func NewBVH(objects []core.Hittable) *BVHNode {
	// Copy so sorting never reorders the caller's slice
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// NewBVHFromList builds a hierarchy over the members of list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects)
}

// buildBVH recursively splits at the median along the longest axis of the node's box
func buildBVH(objects []core.Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = core.NewAABBUnion(bbox, object.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &BVHNode{bbox: bbox, objects: objects}
	}

	axis := bbox.LongestAxis()
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})

	mid := len(objects) / 2
	return &BVHNode{
		bbox:  bbox,
		left:  buildBVH(objects[:mid]),
		right: buildBVH(objects[mid:]),
	}
}

// Hit tests the node's box first and descends only on a box hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	if n.objects != nil || n.left == nil {
		var closestHit *core.HitRecord
		closestSoFar := rayT.Max
		for _, object := range n.objects {
			if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit, closestHit != nil
	}

	leftHit, hitLeft := n.left.Hit(ray, rayT)
	if hitLeft {
		rayT.Max = leftHit.T
	}
	rightHit, hitRight := n.right.Hit(ray, rayT)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the union of all members' boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Depth returns the number of levels below and including this node
func (n *BVHNode) Depth() int {
	if n.left == nil {
		return 1
	}
	left, right := 1, 1
	if node, ok := n.left.(*BVHNode); ok {
		left = node.Depth()
	}
	if node, ok := n.right.(*BVHNode); ok {
		right = node.Depth()
	}
	return 1 + max(left, right)
}
