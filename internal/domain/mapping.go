package domain

type MappingStatus string

const (
	MappingResolved   MappingStatus = "RESOLVED"
	MappingUnresolved MappingStatus = "UNRESOLVED"
	MappingAmbiguous  MappingStatus = "AMBIGUOUS"
)

// IdentifierEntry liga um target (BVT) ao seu placement (BVP) e às datas do placement
type IdentifierEntry struct {
	TargetID    string        `json:"target_id"`
	PlacementID string        `json:"placement_id"`
	Dates       *DateRange    `json:"dates,omitempty"`
	Status      MappingStatus `json:"status"`
	Target      TargetRecord  `json:"target"`
}

// IdentifierMap mantém uma entrada por TargetRecord, na ordem do brief.
// A busca por target_id usa a última linha quando o id se repete.
type IdentifierMap struct {
	entries []IdentifierEntry
	index   map[string]int
}

func NewIdentifierMap(entries []IdentifierEntry) *IdentifierMap {
	m := &IdentifierMap{
		entries: make([]IdentifierEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(m.entries, entries)
	for i, e := range m.entries {
		m.index[e.TargetID] = i
	}
	return m
}

// Len retorna o número de entradas, sempre igual ao número de TargetRecords
func (m *IdentifierMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries retorna uma cópia das entradas em ordem
func (m *IdentifierMap) Entries() []IdentifierEntry {
	if m == nil {
		return nil
	}
	out := make([]IdentifierEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *IdentifierMap) Lookup(targetID string) (IdentifierEntry, bool) {
	if m == nil {
		return IdentifierEntry{}, false
	}
	i, ok := m.index[targetID]
	if !ok {
		return IdentifierEntry{}, false
	}
	return m.entries[i], true
}

// ResolvedCount conta as entradas com placement e datas resolvidos
func (m *IdentifierMap) ResolvedCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, e := range m.entries {
		if e.Status == MappingResolved {
			n++
		}
	}
	return n
}
