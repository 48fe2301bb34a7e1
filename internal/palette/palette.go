// Package palette builds an adaptive, heap-indexed k-d tree color palette
// over RGB space using the modified-median-split algorithm, and answers
// nearest-palette-color queries against it.
package palette

// Palette is a heap-indexed binary tree over RGB space: internal node n
// has children 2n and 2n+1, and leaves live at heap indices >= 1<<BitDepth,
// with the leaf color for heap index k stored at R/G/B[k-1<<BitDepth].
// Entry 0 is always the fixed transparent-black slot.
type Palette struct {
	BitDepth int

	R, G, B [256]uint8

	// SplitAxis[n] in {axisRed, axisGreen, axisBlue} and SplitValue[n] is
	// the median pivot used to descend the k-d tree at internal node n.
	SplitAxis  [256]uint8
	SplitValue [256]uint8
}

const (
	axisRed = iota
	axisGreen
	axisBlue
)

// Build constructs a palette from frame pixels using the modified-median-
// split technique: pixels are recursively partitioned into a balanced
// binary tree along whichever RGB axis has the largest range, and each
// leaf's color is the rounded mean (or, for dithering, a sentinel extreme)
// of the pixels assigned to it.
//
// prev may be nil, meaning "train on the whole image" -- used for the
// first frame, and always when dither is true, since dithering needs the
// full range of source colors (including extremes) to avoid runaway error
// accumulation at saturation boundaries. cur is never mutated; Build works
// on its own destructible copy, since the split algorithm reorders pixels
// in place.
func Build(prev, cur []byte, width, height, bitDepth int, dither bool) *Palette {
	numPixels := width * height
	work := make([]byte, len(cur))
	copy(work, cur)

	if prev != nil && !dither {
		numPixels = PickChangedPixels(prev, work, numPixels)
	}

	p := &Palette{BitDepth: bitDepth}

	lastElt := 1 << bitDepth
	splitElt := lastElt / 2
	splitDist := splitElt / 2

	p.split(work, numPixels, 1, lastElt, splitElt, splitDist, 1, dither)

	// Re-route the transparency slot: any query descending into the root
	// of the left half is forced toward valid-color leaves, so nearest-
	// neighbor search never returns index 0.
	p.SplitAxis[1<<(bitDepth-1)] = axisRed
	p.SplitValue[1<<(bitDepth-1)] = 0

	p.R[0], p.G[0], p.B[0] = 0, 0, 0

	return p
}

// split recursively partitions work[0:numPixels] into the subtree rooted
// at treeNode, covering the leaf range [firstElt, lastElt).
func (p *Palette) split(work []byte, numPixels, firstElt, lastElt, splitElt, splitDist, treeNode int, dither bool) {
	if lastElt <= firstElt || numPixels == 0 {
		return
	}

	if lastElt == firstElt+1 {
		p.setLeaf(work, numPixels, firstElt, dither)
		return
	}

	rRange, gRange, bRange := findLargestRange(work, numPixels)

	// Tie-break is asymmetric by design: green is the default axis, blue
	// overrides it on a strictly greater range, and red overrides both
	// only when it strictly exceeds each of the other two. This matches
	// the reference encoder byte-for-byte; "pick whichever range is
	// largest" is a different (and incompatible) tie-break.
	axis := axisGreen
	if bRange > gRange {
		axis = axisBlue
	}
	if rRange > bRange && rRange > gRange {
		axis = axisRed
	}

	subPixelsA := numPixels * (splitElt - firstElt) / (lastElt - firstElt)
	subPixelsB := numPixels - subPixelsA

	partitionByMedian(work, 0, numPixels, axis, subPixelsA)

	p.SplitAxis[treeNode] = uint8(axis)
	p.SplitValue[treeNode] = work[subPixelsA*4+axis]

	p.split(work, subPixelsA, firstElt, splitElt, splitElt-splitDist, splitDist/2, treeNode*2, dither)
	p.split(work[subPixelsA*4:], subPixelsB, splitElt, lastElt, splitElt+splitDist, splitDist/2, treeNode*2+1, dither)
}

// setLeaf assigns the color for leaf index idx. Dithering needs at least
// one color as dark, and one as light, as anything in the source -- plain
// averaging at the two end leaves would otherwise build up quantization
// error and produce artifacts at saturation boundaries.
func (p *Palette) setLeaf(work []byte, numPixels, idx int, dither bool) {
	if dither {
		if idx == 1 {
			p.R[idx], p.G[idx], p.B[idx] = findDarkestColor(work, numPixels)
			return
		}
		if idx == (1<<p.BitDepth)-1 {
			p.R[idx], p.G[idx], p.B[idx] = findLightestColor(work, numPixels)
			return
		}
	}
	p.R[idx], p.G[idx], p.B[idx] = findSubcubeAverage(work, numPixels)
}
