package generic

// Filter returns a new slice with the elements of s for which f returns true,
// in their original order. The result never shares memory with s and is never
// nil, so an empty result encodes as [] rather than null.
func Filter[T any](s []T, f func(T) bool) []T {
	res := make([]T, 0)

	for _, v := range s {
		if f(v) {
			res = append(res, v)
		}
	}

	return res
}

func Map[T, R any](s []T, f func(T) R) []R {
	res := make([]R, len(s))
	for i, v := range s {
		res[i] = f(v)
	}

	return res
}
