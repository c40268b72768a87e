package sculpt

// stripIndices stitches two vertex ranges of a single vertex buffer into a
// ladder of triangles, two per step across leftLen-1 steps. Each left index
// maps to a right index by proportional scaling, so ranges of different
// lengths still pair up; the mapping is clamped into the right range, which
// collapses any excess onto the nearest valid right vertex instead of
// indexing out of bounds.
//
// With reverseRight the right range is traversed back to front, for ranges
// stored in reverse winding order.
func stripIndices(leftStart, leftLen, rightStart, rightLen int, reverseRight bool) []uint32 {
	if leftLen < 2 || rightLen < 1 {
		return nil
	}

	indices := make([]uint32, 0, (leftLen-1)*6)
	for i := 0; i < leftLen-1; i++ {
		j0 := clampIndex(i*rightLen/leftLen, rightLen)
		j1 := clampIndex((i+1)*rightLen/leftLen, rightLen)
		if reverseRight {
			j0 = rightLen - 1 - j0
			j1 = rightLen - 1 - j1
		}

		l0 := uint32(leftStart + i)
		l1 := uint32(leftStart + i + 1)
		r0 := uint32(rightStart + j0)
		r1 := uint32(rightStart + j1)
		indices = append(indices, l0, r0, l1, l1, r0, r1)
	}
	return indices
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
