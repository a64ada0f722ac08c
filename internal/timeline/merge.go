package timeline

import "time"

// Merge combines two ascending slices into a single ascending slice containing
// every element of both. When elements compare equal the one from ys is taken
// first. Runs in linear time. Both inputs must already be sorted by less;
// the result is unspecified otherwise.
func Merge[T any](xs, ys []T, less func(a, b T) bool) []T {
	res := make([]T, 0, len(xs)+len(ys))
	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		if less(xs[i], ys[j]) {
			res = append(res, xs[i])
			i++
		} else {
			res = append(res, ys[j])
			j++
		}
	}
	res = append(res, xs[i:]...)
	res = append(res, ys[j:]...)
	return res
}

// MergeTimes merges two ascending timestamp slices.
func MergeTimes(xs, ys []time.Time) []time.Time {
	return Merge(xs, ys, func(a, b time.Time) bool { return a.Before(b) })
}
