package graphbuild

// IDMap maps character labels to compact internal graph ids.
// Ids are assigned in input order starting at 0, so they are stable for
// a given nodes file.
type IDMap struct {
	byLabel map[string]int64
	labels  []string
}

// NewIDMap builds an id map over the given labels.
func NewIDMap(labels []string) *IDMap {
	m := &IDMap{
		byLabel: make(map[string]int64, len(labels)),
		labels:  make([]string, 0, len(labels)),
	}
	for _, label := range labels {
		if _, ok := m.byLabel[label]; ok {
			continue
		}
		m.byLabel[label] = int64(len(m.labels))
		m.labels = append(m.labels, label)
	}
	return m
}

// Len returns the number of mapped labels.
func (m *IDMap) Len() int {
	return len(m.labels)
}

// ID resolves a label to its internal id.
func (m *IDMap) ID(label string) (int64, bool) {
	id, ok := m.byLabel[label]
	return id, ok
}

// Label returns the label for an internal id.
func (m *IDMap) Label(id int64) (string, bool) {
	if id < 0 || id >= int64(len(m.labels)) {
		return "", false
	}
	return m.labels[id], true
}

// Labels returns all labels in id order.
func (m *IDMap) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Contains reports whether an id belongs to the mapped id space.
func (m *IDMap) Contains(id int64) bool {
	return id >= 0 && id < int64(len(m.labels))
}
