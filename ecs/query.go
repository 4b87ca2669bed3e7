package ecs

func hasAll(sets []*SparseSet, e Entity) bool {
	for _, s := range sets {
		if !s.Has(e) {
			return false
		}
	}
	return true
}
