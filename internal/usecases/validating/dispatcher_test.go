package validating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating/mocks"
	"go.uber.org/mock/gomock"
)

func lineItem(id string) domain.ReconciledEntity {
	return domain.ReconciledEntity{
		Entity: domain.PlatformEntity{ID: id, AltID: "T" + id, Type: domain.EntityLineItem},
		Status: domain.MappingUnresolved,
	}
}

func testGraph() *domain.EntityGraph {
	return domain.NewEntityGraph([]domain.ReconciledEntity{lineItem("1"), lineItem("2"), lineItem("3")}, nil)
}

func passed(checker, entityID string) domain.Finding {
	return domain.Finding{EntityID: entityID, Checker: checker, Kind: domain.FindingRulePassed, Severity: domain.SeverityInfo}
}

// panicky entra em pânico para a entidade informada
type panicky struct {
	entityID string
}

func (p panicky) Name() string { return "panicky" }

func (p panicky) CheckEntity(_ *domain.EntityGraph, e domain.ReconciledEntity) ([]domain.Finding, error) {
	if e.CanonicalID() == p.entityID {
		var m map[string]int
		m["boom"]++
	}
	return []domain.Finding{passed(p.Name(), e.CanonicalID())}, nil
}

func TestDispatch_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	graph := testGraph()

	failing := mocks.NewMockChecker(ctrl)
	failing.EXPECT().Name().Return("failing").AnyTimes()
	failing.EXPECT().CheckEntity(graph, gomock.Any()).DoAndReturn(
		func(_ *domain.EntityGraph, e domain.ReconciledEntity) ([]domain.Finding, error) {
			if e.Entity.ID == "2" {
				return nil, errors.New("sem dados")
			}
			return []domain.Finding{passed("failing", e.CanonicalID())}, nil
		}).Times(3)

	summary := mocks.NewMockSummaryChecker(ctrl)
	summary.EXPECT().Name().Return("summary").AnyTimes()
	summary.EXPECT().CheckEntity(graph, gomock.Any()).Return(nil, nil).Times(3)
	summary.EXPECT().CheckAll(graph).Return([]domain.Finding{passed("summary", "")}, nil)

	dispatcher := NewDispatcher(failing, panicky{entityID: "LINE_ITEM:1"}, summary)

	findings, err := dispatcher.Dispatch(context.Background(), graph)

	require.NoError(t, err)
	require.Len(t, findings, 7)

	assert.Equal(t, passed("failing", "LINE_ITEM:1"), findings[0])
	assert.Equal(t, domain.FindingCheckerFailure, findings[1].Kind)
	assert.Equal(t, "failing", findings[1].Checker)
	assert.Equal(t, "LINE_ITEM:2", findings[1].EntityID)
	assert.Equal(t, domain.SeverityError, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "sem dados")
	assert.Equal(t, passed("failing", "LINE_ITEM:3"), findings[2])

	assert.Equal(t, domain.FindingCheckerFailure, findings[3].Kind)
	assert.Equal(t, "panicky", findings[3].Checker)
	assert.Equal(t, "LINE_ITEM:1", findings[3].EntityID)
	assert.Contains(t, findings[3].Message, "panic")
	assert.Equal(t, passed("panicky", "LINE_ITEM:2"), findings[4])
	assert.Equal(t, passed("panicky", "LINE_ITEM:3"), findings[5])

	assert.Equal(t, passed("summary", ""), findings[6])
}

func TestDispatch_SummaryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	graph := domain.NewEntityGraph(nil, nil)

	summary := mocks.NewMockSummaryChecker(ctrl)
	summary.EXPECT().Name().Return("summary").AnyTimes()
	summary.EXPECT().CheckAll(graph).Return(nil, errors.New("falhou"))

	findings, err := NewDispatcher(summary).Dispatch(context.Background(), graph)

	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.FindingCheckerFailure, findings[0].Kind)
	assert.Empty(t, findings[0].EntityID)
}

func TestDispatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	findings, err := NewDispatcher(panicky{}).Dispatch(ctx, testGraph())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, findings)
}

func TestDispatcher_Checkers(t *testing.T) {
	assert.Equal(t, []string{"panicky"}, NewDispatcher(panicky{}).Checkers())
}
