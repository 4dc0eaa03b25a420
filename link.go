package glimmer

// phaseLink ties a firefly to one linked peer, storing the fixed phase
// offset (peer phase minus own phase) captured when the group was built.
type phaseLink struct {
	index  int
	offset float64
}

// buildLinks expands declared index groups into per-firefly link lists:
// every member of a group gets every other member with its offset.
// Consulted only by manual phase edits, never by autonomous motion.
func buildLinks(groups [][]int, fireflies []Firefly) [][]phaseLink {
	links := make([][]phaseLink, len(fireflies))
	for _, group := range groups {
		for _, self := range group {
			base := fireflies[self].Phase
			for _, other := range group {
				if other == self {
					continue
				}
				links[self] = append(links[self], phaseLink{
					index:  other,
					offset: fireflies[other].Phase - base,
				})
			}
		}
	}
	return links
}

// propagate applies a manual phase edit of firefly self to its linked
// peers. Offsets are applied as-is; the result is deliberately left
// unwrapped even when it falls outside [0, length).
func propagate(links [][]phaseLink, fireflies []Firefly, self int) {
	for _, l := range links[self] {
		fireflies[l.index].Phase = fireflies[self].Phase + l.offset
	}
}
