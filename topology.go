package push

// Neighbors enumerates the linear indices adjacent to index in a
// dimensions-dimensional grid of the given size. The address space is the
// smallest hypercube whose volume covers size, with a per-axis extent of
// the ceiled dimensions-th root of size; index maps to hypercube
// coordinates, every coordinate offset within Euclidean distance radius is
// applied, and results that leave the hypercube or the valid index range
// [0, size-1] are dropped. Inputs are clamped: size to >= 0, dimensions to
// [0, size], index to [0, size-1], radius to >= 0.
//
// The result is ordered ascending, so that a caller pushing it in order
// leaves the largest index on top. It is a pure function of its inputs.
func Neighbors(size, dimensions, index int, radius float64) []int {
	if size <= 0 {
		return nil
	}
	dimensions = clampInt(dimensions, 0, size)
	if dimensions == 0 {
		return nil
	}
	index = clampInt(index, 0, size-1)
	if radius < 0 {
		radius = 0
	}

	// Per-axis extent: smallest e with e^dimensions >= size.
	extent := 1
	for ipow(extent, dimensions) < size {
		extent++
	}

	coords := make([]int, dimensions)
	for d, rem := 0, index; d < dimensions; d++ {
		coords[d] = rem % extent
		rem /= extent
	}

	// Walk every offset combination in mixed-radix order, axis 0 varying
	// fastest, so valid results come out in ascending linear order.
	reach := int(radius)
	width := 2*reach + 1
	offsets := make([]int, dimensions)
	var neighbors []int
combos:
	for n := 0; n < ipow(width, dimensions); n++ {
		dist2 := 0
		for d, rem := 0, n; d < dimensions; d++ {
			offsets[d] = rem%width - reach
			rem /= width
			dist2 += offsets[d] * offsets[d]
		}
		if float64(dist2) > radius*radius {
			continue
		}
		linear := 0
		for d := dimensions - 1; d >= 0; d-- {
			c := coords[d] + offsets[d]
			if c < 0 || c >= extent {
				continue combos
			}
			linear = linear*extent + c
		}
		if linear < size {
			neighbors = append(neighbors, linear)
		}
	}
	return neighbors
}

func ipow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
