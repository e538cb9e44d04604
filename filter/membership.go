// SPDX-License-Identifier: MIT

package filter

// ExactMembership keeps the tuples whose three elements all belong to
// allowed. Order is preserved; an empty allowed set keeps nothing.
func ExactMembership[T comparable](tuples [][3]T, allowed []T) [][3]T {
	set := make(map[T]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}

	var out [][3]T
	for _, tup := range tuples {
		if contains(set, tup[0]) && contains(set, tup[1]) && contains(set, tup[2]) {
			out = append(out, tup)
		}
	}

	return out
}

func contains[T comparable](set map[T]struct{}, v T) bool {
	_, ok := set[v]
	return ok
}
