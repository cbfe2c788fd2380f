// Package graph: shared undirectedness validation for record-backed backends.

package graph

import "fmt"

// validateMirrored checks that every stored directed record in es has its
// reverse record present with an identical weight. A self-loop is its own
// mirror. Used by the edge-list and adjacency-list backends; the matrix
// backend compares its grid against the transpose instead.
//
// Complexity: O(E) time, O(E) space.
func validateMirrored(es []Edge) error {
	weights := make(map[pairKey]float64, len(es))
	for _, e := range es {
		weights[pairKey{from: e.From, to: e.To}] = e.Weight
	}

	for k, w := range weights {
		mirror, ok := weights[pairKey{from: k.to, to: k.from}]
		if !ok {
			return fmt.Errorf("%w: edge %d->%d stored without its mirror", ErrUndirectedViolation, k.from, k.to)
		}
		if mirror != w {
			return fmt.Errorf("%w: edge %d->%d weight %v but mirror weight %v",
				ErrUndirectedViolation, k.from, k.to, w, mirror)
		}
	}

	return nil
}
