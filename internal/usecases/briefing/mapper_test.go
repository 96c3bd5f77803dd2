package briefing

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMap_ScenarioA(t *testing.T) {
	grid := scenarioA()
	layout := Locate(grid, DefaultConfig())
	targets, _ := ExtractTargets(grid, layout.Target)
	placements, _, err := ExtractPlacements(grid, layout.Placement, DefaultPlacementSpec())
	require.NoError(t, err)

	idmap, findings := Map(targets, placements)

	assert.Empty(t, findings)
	require.Equal(t, 1, idmap.Len())
	entry, ok := idmap.Lookup("T1")
	require.True(t, ok)
	assert.Equal(t, domain.MappingResolved, entry.Status)
	assert.Equal(t, "P5", entry.PlacementID)
	assert.Equal(t, &domain.DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 31)}, entry.Dates)
}

func TestMap_EveryTargetGetsAnEntry(t *testing.T) {
	targets := make([]domain.TargetRecord, 0)
	for i := 0; i < 25; i++ {
		targets = append(targets, domain.TargetRecord{
			TargetID:    fmt.Sprintf("T%d", i),
			PlacementID: fmt.Sprintf("P%d", i%7),
			Row:         i,
		})
	}
	placements := []domain.PlacementRecord{
		{PlacementID: "P0", StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 31)},
		{PlacementID: "P3", StartDate: day(2024, 2, 1), EndDate: day(2024, 2, 28)},
	}

	idmap, _ := Map(targets, placements)

	require.Equal(t, len(targets), idmap.Len())
	for i, e := range idmap.Entries() {
		assert.Equal(t, targets[i].TargetID, e.TargetID)
		if e.PlacementID == "P0" || e.PlacementID == "P3" {
			assert.Equal(t, domain.MappingResolved, e.Status)
			assert.NotNil(t, e.Dates)
		} else {
			assert.Equal(t, domain.MappingUnresolved, e.Status)
			assert.Nil(t, e.Dates)
		}
	}
}

func TestMap_DuplicatePlacementLastWins(t *testing.T) {
	targets := []domain.TargetRecord{{TargetID: "T1", PlacementID: "P1"}}
	placements := []domain.PlacementRecord{
		{PlacementID: "P1", StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 31), Row: 3},
		{PlacementID: "P1", StartDate: day(2024, 2, 1), EndDate: day(2024, 2, 29), Row: 4},
	}

	idmap, findings := Map(targets, placements)

	entry, ok := idmap.Lookup("T1")
	require.True(t, ok)
	assert.Equal(t, day(2024, 2, 1), entry.Dates.Start)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.FindingDuplicateKey, findings[0].Kind)
	assert.Equal(t, "P1", findings[0].EntityID)
}

func TestMap_DuplicateTarget(t *testing.T) {
	targets := []domain.TargetRecord{
		{TargetID: "T1", PlacementID: "P1", Row: 1},
		{TargetID: "T1", PlacementID: "P2", Row: 2},
	}
	placements := []domain.PlacementRecord{
		{PlacementID: "P1", StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 31)},
		{PlacementID: "P2", StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 31)},
	}

	idmap, findings := Map(targets, placements)

	assert.Equal(t, 2, idmap.Len())
	entry, _ := idmap.Lookup("T1")
	assert.Equal(t, "P2", entry.PlacementID)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.FindingDuplicateKey, findings[0].Kind)
}

func TestMap_Unmatched(t *testing.T) {
	targets := []domain.TargetRecord{
		{TargetID: "T1", PlacementID: "P404"},
		{TargetID: "T2"},
	}

	idmap, findings := Map(targets, nil)

	assert.Equal(t, 2, idmap.Len())
	assert.Equal(t, 0, idmap.ResolvedCount())
	assert.Len(t, findings, 2)
}

func TestMap_StripsTimeOfDay(t *testing.T) {
	targets := []domain.TargetRecord{{TargetID: "T1", PlacementID: "P1"}}
	placements := []domain.PlacementRecord{{
		PlacementID: "P1",
		StartDate:   time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC),
	}}

	idmap, _ := Map(targets, placements)

	entry, _ := idmap.Lookup("T1")
	assert.Equal(t, day(2024, 5, 1), entry.Dates.Start)
	assert.Equal(t, day(2024, 5, 2), entry.Dates.End)
}

func TestMap_EntradasAleatorias(t *testing.T) {
	rng := rand.New(rand.NewSource(20240301))

	for round := 0; round < 200; round++ {
		nTargets := rng.Intn(12)
		nPlacements := rng.Intn(8)

		placements := make([]domain.PlacementRecord, 0, nPlacements)
		latest := make(map[string]domain.PlacementRecord)
		for i := 0; i < nPlacements; i++ {
			// poucos ids para forçar placements repetidos
			p := domain.PlacementRecord{
				PlacementID: fmt.Sprintf("P%d", rng.Intn(4)),
				StartDate:   day(2024, time.Month(1+rng.Intn(12)), 1+rng.Intn(28)),
				EndDate:     day(2025, time.Month(1+rng.Intn(12)), 1+rng.Intn(28)),
				Row:         30 + i,
			}
			placements = append(placements, p)
			latest[p.PlacementID] = p
		}

		targets := make([]domain.TargetRecord, 0, nTargets)
		for i := 0; i < nTargets; i++ {
			placementID := ""
			if rng.Intn(4) > 0 {
				placementID = fmt.Sprintf("P%d", rng.Intn(6))
			}
			targets = append(targets, domain.TargetRecord{
				TargetID:    fmt.Sprintf("T%d", rng.Intn(10)),
				PlacementID: placementID,
				Row:         5 + i,
			})
		}

		idmap, _ := Map(targets, placements)

		require.Equal(t, len(targets), idmap.Len(), "rodada %d", round)
		for i, entry := range idmap.Entries() {
			assert.Equal(t, targets[i].TargetID, entry.TargetID, "rodada %d", round)
			assert.Equal(t, entry.Status == domain.MappingResolved, entry.Dates != nil, "rodada %d: %s", round, entry.TargetID)

			p, ok := latest[entry.PlacementID]
			if entry.PlacementID == "" || !ok {
				assert.Equal(t, domain.MappingUnresolved, entry.Status, "rodada %d: %s", round, entry.TargetID)
				continue
			}
			assert.Equal(t, domain.MappingResolved, entry.Status, "rodada %d: %s", round, entry.TargetID)
			assert.Equal(t, p.StartDate, entry.Dates.Start, "placement repetido usa a última linha")
			assert.Equal(t, p.EndDate, entry.Dates.End)
		}
	}
}
