package common

// UnknownStr is the fallback string for out-of-range enum values.
const UnknownStr = "unknown"

// Without returns the elements of s that are not in drop, keeping order.
func Without[S ~[]E, E comparable](s S, drop *OrderedSet[E]) S {
	out := make(S, 0, len(s))
	for _, e := range s {
		if !drop.Has(e) {
			out = append(out, e)
		}
	}

	return out
}
