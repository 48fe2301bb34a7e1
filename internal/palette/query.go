package palette

// InitialBestDiff seeds a nearest-color search that hasn't found any
// candidate yet: larger than any real L1 RGB distance (which maxes out at
// 3*255 = 765).
const InitialBestDiff = 1000000

// GetClosestColor walks the k-d tree from the root, returning the best
// palette index found for (r,g,b) and its L1 distance. Callers seed
// bestInd/bestDiff: the threshold quantizer starts at (1, InitialBestDiff)
// and the dither quantizer starts at (0, InitialBestDiff) (see
// internal/quant) -- the two differ because threshold quantization never
// wants to fall back to the transparency index, while dithering may.
//
// The search exploits an L1 distance lower bound: the perpendicular
// distance from the query point to a k-d split plane lower-bounds the best
// possible match in the subtree on the far side of that plane, which is
// what justifies pruning it. L1 (not Euclidean) distance is used
// throughout to match the reference encoder's output byte-for-byte.
func (p *Palette) GetClosestColor(r, g, b, bestInd, bestDiff int) (int, int) {
	return p.closest(r, g, b, bestInd, bestDiff, 1)
}

func (p *Palette) closest(r, g, b, bestInd, bestDiff, treeRoot int) (int, int) {
	if treeRoot > (1<<p.BitDepth)-1 {
		ind := treeRoot - (1 << p.BitDepth)
		if ind == 0 {
			return bestInd, bestDiff
		}

		rErr := r - int(p.R[ind])
		gErr := g - int(p.G[ind])
		bErr := b - int(p.B[ind])
		diff := abs(rErr) + abs(gErr) + abs(bErr)

		if diff < bestDiff {
			return ind, diff
		}
		return bestInd, bestDiff
	}

	comps := [3]int{r, g, b}
	splitComp := comps[p.SplitAxis[treeRoot]]
	splitPos := int(p.SplitValue[treeRoot])

	if splitPos > splitComp {
		bestInd, bestDiff = p.closest(r, g, b, bestInd, bestDiff, treeRoot*2)
		if bestDiff > splitPos-splitComp {
			bestInd, bestDiff = p.closest(r, g, b, bestInd, bestDiff, treeRoot*2+1)
		}
	} else {
		bestInd, bestDiff = p.closest(r, g, b, bestInd, bestDiff, treeRoot*2+1)
		if bestDiff > splitComp-splitPos {
			bestInd, bestDiff = p.closest(r, g, b, bestInd, bestDiff, treeRoot*2)
		}
	}
	return bestInd, bestDiff
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
