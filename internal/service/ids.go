package service

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// removeID deletes exactly one matching element, preserving order. The list
// is left untouched when the id is absent.
func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}
	return ids
}
