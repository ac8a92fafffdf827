package feed

// Deduplicator removes duplicate entries within a single batch. Identity is
// the exact (title, url) pair; scope is one batch only, with no state
// carried across runs.
type Deduplicator struct{}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Run drops entries whose identity key was already seen, preserving
// first-seen order. Duplicates are normal (reposts) and dropped silently.
func (d *Deduplicator) Run(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		key := entry.Title + "_" + entry.URL
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, entry)
	}

	return unique
}
