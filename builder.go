package continuum

import "math"

// pointsPerFullWeightMember fixes how many hash quads a fully-weighted
// member contributes in a unit-sized group. Changing it changes ring
// contents and breaks compatibility with peers built against the same
// routing group.
const pointsPerFullWeightMember = 64

// doubleEpsilon is the machine epsilon for float64, used to reject routing
// groups whose total weight is not meaningfully positive.
const doubleEpsilon = 2.220446049250313e-16

// memberDiag carries the per-member build-time figures logged alongside
// ring construction: how many steps a member got, its weight share, and
// the step budget it was measured against.
type memberDiag struct {
	name    string
	steps   uint64
	percent float64
	budget  uint64
}

// buildResult is everything the Builder hands off to the Continuum:
// the sorted ring elements, whether all points are pairwise distinct, and
// the per-member figures to log.
type buildResult struct {
	elements []element
	distinct bool
	members  []memberDiag
}

// build computes each member's proportional share of ring points, hashes
// (name, step) pairs into quads, and returns the resulting elements sorted
// into a ring, along with whether every point on the ring is unique.
func build(group RoutingGroup) (*buildResult, error) {
	members := sortedMembers(group)
	length := len(members)
	weight := totalWeight(members)

	if length == 0 || weight < doubleEpsilon {
		return nil, &InvalidGroupError{Reason: "the total weight of the routing group must be positive"}
	}

	budget := uint64(pointsPerFullWeightMember * length)

	var elements []element
	diags := make([]memberDiag, 0, length)
	for _, m := range members {
		slice := m.weight / weight
		steps := lround(slice * float64(budget))

		for step := uint64(0); step < steps; step++ {
			quad := digest([]byte(m.name), stepBytes(step))
			for _, point := range quad {
				elements = append(elements, element{point: point, name: m.name})
			}
		}

		diags = append(diags, memberDiag{
			name:    m.name,
			steps:   steps,
			percent: slice * 100.0,
			budget:  budget,
		})
	}

	r := newRing(elements)
	return &buildResult{
		elements: r.elements,
		distinct: r.allDistinct(),
		members:  diags,
	}, nil
}

// lround rounds half-away-from-zero, matching the C lround semantics this
// package relies on. math.Round already rounds half-away-from-zero, which
// is exactly lround's behavior for the non-negative slice*budget products
// this function is always called with.
func lround(x float64) uint64 {
	if x <= 0 {
		return 0
	}
	return uint64(math.Round(x))
}
