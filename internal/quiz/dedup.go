package quiz

// SeenSet records the question texts already shown in a session.
// It only grows; there is no eviction.
type SeenSet struct {
	index map[string]struct{}
	order []string
}

// NewSeenSet returns an empty SeenSet.
func NewSeenSet() *SeenSet {
	return &SeenSet{index: make(map[string]struct{})}
}

// Has reports whether question was added before. Matching is exact.
func (s *SeenSet) Has(question string) bool {
	_, ok := s.index[question]
	return ok
}

// Add records question. It returns false for the empty string and for
// questions already present.
func (s *SeenSet) Add(question string) bool {
	if question == "" || s.Has(question) {
		return false
	}
	s.index[question] = struct{}{}
	s.order = append(s.order, question)
	return true
}

// Len returns the number of distinct questions seen.
func (s *SeenSet) Len() int {
	return len(s.order)
}

// Recent returns up to n of the most recently added questions, oldest first.
// A non-positive n returns all of them.
func (s *SeenSet) Recent(n int) []string {
	items := s.order
	if n > 0 && len(items) > n {
		items = items[len(items)-n:]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
