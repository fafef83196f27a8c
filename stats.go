package treediff

// Stats holds statistical metadata about a diff
type Stats struct {
	LeftNodes  int `json:"leftNodes"`  // count of nodes in the left tree
	RightNodes int `json:"rightNodes"` // count of nodes in the right tree

	Changes   int `json:"changes,omitempty"`   // paths present in both trees with differing values
	Additions int `json:"additions,omitempty"` // paths present only in the right tree
	Removals  int `json:"removals,omitempty"`  // paths present only in the left tree
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.RightNodes - s.LeftNodes
}

// Total returns the number of differences the diff produced
func (s Stats) Total() int {
	return s.Changes + s.Additions + s.Removals
}
