package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

func randomSpheres(n int, rng *rand.Rand) []core.Hitable {
	spheres := make([]core.Hitable, n)
	for i := range spheres {
		center := core.NewVec3(
			20*rng.Float64()-10,
			20*rng.Float64()-10,
			20*rng.Float64()-10)
		spheres[i] = NewSphere(center, 0.5+rng.Float64(), testMaterial{})
	}
	return spheres
}

func TestBVHNode_BoxIsUnionOfChildren(t *testing.T) {
	rng := testRNG()
	node := NewBVHNode(randomSpheres(20, rng), 0, 1, rng)

	var check func(n *BVHNode)
	check = func(n *BVHNode) {
		leftBox, _ := n.Left.BoundingBox(0, 1)
		rightBox, _ := n.Right.BoundingBox(0, 1)
		want := leftBox.Union(rightBox)
		if !n.Box.Min.Equals(want.Min) || !n.Box.Max.Equals(want.Max) {
			t.Fatalf("node box %v %v is not the union of its children", n.Box.Min, n.Box.Max)
		}
		if child, ok := n.Left.(*BVHNode); ok {
			check(child)
		}
		if child, ok := n.Right.(*BVHNode); ok && n.Right != n.Left {
			check(child)
		}
	}
	check(node)
}

func TestBVHNode_MatchesLinearSearch(t *testing.T) {
	rng := testRNG()
	spheres := randomSpheres(50, rng)

	// The constructor reorders the slice, so give the list its own copy
	listCopy := make([]core.Hitable, len(spheres))
	copy(listCopy, spheres)
	list := NewHitableList(listCopy)
	node := NewBVHNode(spheres, 0, 1, rng)

	for i := 0; i < 200; i++ {
		origin := core.NewVec3(30*rng.Float64()-15, 30*rng.Float64()-15, 30*rng.Float64()-15)
		direction := core.NewVec3(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
		if direction.IsZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		listRec, listHit := list.Hit(ray, 0.001, math.MaxFloat64, rng)
		bvhRec, bvhHit := node.Hit(ray, 0.001, math.MaxFloat64, rng)

		if listHit != bvhHit {
			t.Fatalf("ray %d: list hit=%t, bvh hit=%t", i, listHit, bvhHit)
		}
		if listHit && math.Abs(listRec.T-bvhRec.T) > 1e-9 {
			t.Fatalf("ray %d: list t=%f, bvh t=%f", i, listRec.T, bvhRec.T)
		}
	}
}

func TestBVHNode_SingleChildAliases(t *testing.T) {
	rng := testRNG()
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial{})
	node := NewBVHNode([]core.Hitable{sphere}, 0, 1, rng)

	if node.Left != node.Right {
		t.Error("single-element node should alias left and right")
	}

	rec, ok := node.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 1000, rng)
	if !ok || math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("expected hit at t=4 through aliased leaf, got ok=%t", ok)
	}
}

func TestBVHNode_SecondSubtreeInFront(t *testing.T) {
	// Regression: tMax must not shrink between subtree descents, because
	// the nearer geometry can live entirely in the second subtree
	rng := testRNG()
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -40), 0.5, testMaterial{})

	for i := 0; i < 10; i++ {
		node := NewBVHNode([]core.Hitable{near, far}, 0, 1, rand.New(rand.NewSource(int64(i))))
		rec, ok := node.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.MaxFloat64, rng)
		if !ok {
			t.Fatal("expected hit")
		}
		if math.Abs(rec.T-1.5) > 1e-9 {
			t.Fatalf("expected the near sphere at t=1.5, got %f", rec.T)
		}
	}
}
