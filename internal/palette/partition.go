package palette

// swapPixels exchanges two whole RGBA quads within buf.
func swapPixels(buf []byte, a, b int) {
	ai, bi := a*4, b*4
	var tmp [4]byte
	copy(tmp[:], buf[ai:ai+4])
	copy(buf[ai:ai+4], buf[bi:bi+4])
	copy(buf[bi:bi+4], tmp[:])
}

// partition is a three-way, Dutch-national-flag-style partition on a
// single byte axis: values strictly less than the pivot go left; values
// equal to the pivot alternate left/right via a one-bit toggle, so that
// low-entropy images (many pixels sitting exactly at the pivot) still make
// progress toward a balanced median instead of degenerating into one huge
// equal-valued run. Pixel swaps always move whole RGBA quads.
func partition(buf []byte, left, right, axis, pivotIndex int) int {
	pivotValue := buf[pivotIndex*4+axis]
	swapPixels(buf, pivotIndex, right-1)

	storeIndex := left
	split := false
	for i := left; i < right-1; i++ {
		val := buf[i*4+axis]
		if val < pivotValue {
			swapPixels(buf, i, storeIndex)
			storeIndex++
		} else if val == pivotValue {
			if split {
				swapPixels(buf, i, storeIndex)
				storeIndex++
			}
			split = !split
		}
	}

	swapPixels(buf, storeIndex, right-1)
	return storeIndex
}

// partitionByMedian is quickselect, not quicksort: it recurses only into
// the half of buf[left:right] containing neededCenter, leaving the other
// half in arbitrary order.
func partitionByMedian(buf []byte, left, right, axis, neededCenter int) {
	if left >= right-1 {
		return
	}
	pivotIndex := left + (right-left)/2
	pivotIndex = partition(buf, left, right, axis, pivotIndex)

	if pivotIndex > neededCenter {
		partitionByMedian(buf, left, pivotIndex, axis, neededCenter)
	}
	if pivotIndex < neededCenter {
		partitionByMedian(buf, pivotIndex+1, right, axis, neededCenter)
	}
}
