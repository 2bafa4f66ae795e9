package utils

func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)

	return sliceCopy
}

func ReversedSlice[T any](s []T) []T {
	reversed := make([]T, len(s))
	copy(reversed, s)

	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed
}

// ShrinkSliceIfWastedCapacity reallocates the slice with a capacity of
// cap(slice)/shrinkDivider if at least minShrinkableLength elements are
// present and the current capacity is >= shrinkDivider * len(slice).
func ShrinkSliceIfWastedCapacity[T any](slice []T, minShrinkableLength int, shrinkDivider int) []T {
	if len(slice) >= minShrinkableLength && cap(slice) >= shrinkDivider*len(slice) {
		shrunk := make([]T, len(slice), cap(slice)/shrinkDivider)
		copy(shrunk, slice)
		return shrunk
	}
	return slice
}
