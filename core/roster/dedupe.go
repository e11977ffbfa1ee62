package roster

import "github.com/gaurav-prasanna/rosterpipe/core"

// nameSet tracks names already kept in the roster.
type nameSet struct {
	seen map[string]bool
}

func newNameSet() *nameSet {
	return &nameSet{seen: make(map[string]bool)}
}

// Add records name and reports whether it was new.
func (s *nameSet) Add(name string) bool {
	if s.seen[name] {
		return false
	}
	s.seen[name] = true
	return true
}

// Dedupe drops records whose name was already seen. The first occurrence
// wins and order is preserved. The result is never nil.
func Dedupe(records []core.Legislator) []core.Legislator {
	names := newNameSet()
	unique := make([]core.Legislator, 0, len(records))
	for _, r := range records {
		if names.Add(r.Name) {
			unique = append(unique, r)
		}
	}
	return unique
}
