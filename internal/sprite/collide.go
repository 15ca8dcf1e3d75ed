package sprite

import "image"

// Pair is one resolved collision between a member of each group.
type Pair[A, B Sprite] struct {
	A A
	B B
}

// Collide matches overlapping members of as and bs. Each member takes part
// in at most one pair: members of as are visited in order and matched with
// the first unmatched member of bs they overlap. Matched members are removed
// from their group when killA or killB is set.
func Collide[A, B Sprite](as *Group[A], bs *Group[B], killA, killB bool) []Pair[A, B] {
	var pairs []Pair[A, B]
	taken := make(map[B]bool)

	for _, a := range as.items {
		ar := a.Rect()
		for _, b := range bs.items {
			if taken[b] {
				continue
			}
			if ar.Overlaps(b.Rect()) {
				taken[b] = true
				pairs = append(pairs, Pair[A, B]{A: a, B: b})
				break
			}
		}
	}

	for _, p := range pairs {
		if killA {
			as.Remove(p.A)
		}
		if killB {
			bs.Remove(p.B)
		}
	}
	return pairs
}

// CollideAny returns the first member of g overlapping s, if any.
func CollideAny[T Sprite, S interface{ Rect() image.Rectangle }](s S, g *Group[T]) (T, bool) {
	r := s.Rect()
	for _, item := range g.items {
		if r.Overlaps(item.Rect()) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
