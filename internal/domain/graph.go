package domain

// EntityGraph é a visão unificada e somente leitura entregue aos validadores
type EntityGraph struct {
	entities []ReconciledEntity
	byID     map[string]int
	children map[string][]int
	mapping  *IdentifierMap
}

// NewEntityGraph indexa as entidades reconciliadas pelo id canônico, mantendo a ordem de entrada.
// Se o mesmo id canônico aparece mais de uma vez, o índice aponta para a primeira ocorrência.
func NewEntityGraph(entities []ReconciledEntity, mapping *IdentifierMap) *EntityGraph {
	g := &EntityGraph{
		entities: make([]ReconciledEntity, len(entities)),
		byID:     make(map[string]int, len(entities)),
		children: make(map[string][]int),
		mapping:  mapping,
	}
	copy(g.entities, entities)

	for i, e := range g.entities {
		if _, exists := g.byID[e.CanonicalID()]; !exists {
			g.byID[e.CanonicalID()] = i
		}
	}

	for i, e := range g.entities {
		parent := parentType(e.Entity.Type)
		if parent == "" || e.Entity.ParentID == "" {
			continue
		}
		key := CanonicalID(parent, e.Entity.ParentID)
		g.children[key] = append(g.children[key], i)
	}

	return g
}

func parentType(t EntityType) EntityType {
	switch t {
	case EntityLineItem:
		return EntityCampaign
	case EntityCreative:
		return EntityLineItem
	}
	return ""
}

func (g *EntityGraph) Len() int {
	return len(g.entities)
}

// Entities retorna as entidades na ordem de reconciliação
func (g *EntityGraph) Entities() []ReconciledEntity {
	out := make([]ReconciledEntity, len(g.entities))
	copy(out, g.entities)
	return out
}

func (g *EntityGraph) Get(canonicalID string) (ReconciledEntity, bool) {
	i, ok := g.byID[canonicalID]
	if !ok {
		return ReconciledEntity{}, false
	}
	return g.entities[i], true
}

// Parent retorna a campanha de um line item ou o line item de um creative
func (g *EntityGraph) Parent(e ReconciledEntity) (ReconciledEntity, bool) {
	parent := parentType(e.Entity.Type)
	if parent == "" || e.Entity.ParentID == "" {
		return ReconciledEntity{}, false
	}
	return g.Get(CanonicalID(parent, e.Entity.ParentID))
}

func (g *EntityGraph) Children(e ReconciledEntity) []ReconciledEntity {
	idx := g.children[e.CanonicalID()]
	out := make([]ReconciledEntity, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.entities[i])
	}
	return out
}

// OfType filtra as entidades por tipo, preservando a ordem
func (g *EntityGraph) OfType(t EntityType) []ReconciledEntity {
	out := make([]ReconciledEntity, 0)
	for _, e := range g.entities {
		if e.Entity.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (g *EntityGraph) Mapping() *IdentifierMap {
	return g.mapping
}

// StatusCounts conta entidades por tipo e status de mapeamento
func (g *EntityGraph) StatusCounts() map[EntityType]map[MappingStatus]int {
	counts := make(map[EntityType]map[MappingStatus]int)
	for _, e := range g.entities {
		if counts[e.Entity.Type] == nil {
			counts[e.Entity.Type] = map[MappingStatus]int{
				MappingResolved:   0,
				MappingUnresolved: 0,
				MappingAmbiguous:  0,
			}
		}
		counts[e.Entity.Type][e.Status]++
	}
	return counts
}
