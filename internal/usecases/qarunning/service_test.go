package qarunning_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/campaign-qa-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/briefing"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning/mocks"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating/checkers"
	"go.uber.org/mock/gomock"
)

func sheet(size int, rows map[int][]string) domain.Grid {
	grid := make([][]string, size)
	for i, r := range rows {
		grid[i] = r
	}
	return domain.NewGrid("Brief", grid)
}

func at(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func briefWithPlacements() domain.Grid {
	return sheet(40, map[int][]string{
		0:  {"Campaign Brief", "", "BVI0000012345"},
		9:  {"BV ID", "BVT", "BVP", "Platform", "Media Type"},
		10: {"BV1", "T1", "P5", "Mobile", "Banner"},
		26: {"BVP", "Flight", "Start Date", "End Date"},
		27: {"P5", "Always on", "2024-03-01", "2024-03-31"},
	})
}

func briefWithoutPlacements() domain.Grid {
	return sheet(20, map[int][]string{
		0:  {"Campaign Brief", "", "BVI0000012345"},
		9:  {"BV ID", "BVT", "BVP", "Platform", "Media Type"},
		10: {"BV1", "T1", "P5", "Mobile", "Banner"},
	})
}

func platformEntities() []domain.PlatformEntity {
	return []domain.PlatformEntity{
		{ID: "10", AltID: "BVI0000012345", Name: "Campanha", Type: domain.EntityCampaign, FlightStart: at(2024, 3, 1), FlightEnd: at(2024, 3, 31)},
		{ID: "20", AltID: "T1", Name: "MO_BAN_Campanha", Type: domain.EntityLineItem, ParentID: "10", FlightStart: at(2024, 3, 1), FlightEnd: at(2024, 3, 31)},
	}
}

func newService(fetcher qarunning.PlatformFetcher) *qarunning.Service {
	s := qarunning.NewService(fetcher, validating.NewDispatcher(checkers.Default()...))
	qarunning.SetClock(s, func() time.Time { return time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC) })
	return s
}

func TestRun_ResolvesLineItemAgainstBrief(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	fetcher.EXPECT().
		FetchEntities(gomock.Any(), []string{"BVI0000012345"}).
		Return(platformEntities(), nil)

	result, err := newService(fetcher).Run(context.Background(), qarunning.Input{
		BriefName: "brief.xlsx",
		Grid:      briefWithPlacements(),
		Config:    briefing.DefaultConfig(),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"BVI0000012345"}, result.CampaignAltIDs)
	require.Len(t, result.Entities, 2)
	assert.Equal(t, domain.MappingUnresolved, result.Entities[0].Status)
	assert.Equal(t, domain.MappingResolved, result.Entities[1].Status)
	require.NotNil(t, result.Entities[1].BriefDates)
	assert.Equal(t, *at(2024, 3, 1), result.Entities[1].BriefDates.Start)

	for _, f := range result.Findings {
		assert.NotEqual(t, domain.FindingRegionNotFound, f.Kind)
	}
	assert.Equal(t, []string{
		checkers.FlightCheckerName,
		checkers.NamingCheckerName,
		checkers.CreativeCheckerName,
		checkers.TargetingCheckerName,
		checkers.CompletenessCheckerName,
	}, result.Checkers)
}

func TestRun_BriefTermsReachTargetingRules(t *testing.T) {
	grid := briefWithPlacements()
	grid.Rows[2] = []string{"LDA or Age Compliant", "", "Yes"}
	grid.Rows[3] = []string{"Viewability Goal: 70%"}

	entities := platformEntities()
	entities[1].Name = "MOA_BAN_Campanha"
	entities[1].Targeting = &domain.TargetingSpec{
		Countries:             []string{"usa"},
		ExcludeAppBundleLists: []string{"174"},
	}

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	fetcher.EXPECT().FetchEntities(gomock.Any(), gomock.Any()).Return(entities, nil)

	result, err := newService(fetcher).Run(context.Background(), qarunning.Input{
		BriefName: "brief.xlsx",
		Grid:      grid,
		Config:    briefing.DefaultConfig(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BriefTerms{LDACompliant: "Yes", ViewabilityGoal: "70%"}, result.Terms)
	require.NotNil(t, result.Entities[1].BriefTarget)
	assert.Equal(t, "Yes", result.Entities[1].BriefTarget.LDACompliant)

	var messages []string
	for _, f := range result.Findings {
		if f.Checker == checkers.TargetingCheckerName && f.Kind == domain.FindingRuleViolation {
			messages = append(messages, f.Message)
		}
	}
	assert.Contains(t, messages, "app bundle list: excluded app bundle lists 174, expected 353")
}

func TestRun_PlacementRegionMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	fetcher.EXPECT().
		FetchEntities(gomock.Any(), gomock.Any()).
		Return(platformEntities(), nil)

	result, err := newService(fetcher).Run(context.Background(), qarunning.Input{
		BriefName: "brief.xlsx",
		Grid:      briefWithoutPlacements(),
		Config:    briefing.DefaultConfig(),
	})

	require.NoError(t, err)
	assert.False(t, result.Layout.Placement.Found)

	var regionFindings []domain.Finding
	for _, f := range result.Findings {
		if f.Kind == domain.FindingRegionNotFound {
			regionFindings = append(regionFindings, f)
		}
	}
	require.Len(t, regionFindings, 1)
	assert.Equal(t, domain.CheckerRegionLocator, regionFindings[0].Checker)
	assert.Equal(t, domain.SeverityWarning, regionFindings[0].Severity)

	for _, e := range result.Entities {
		assert.Equal(t, domain.MappingUnresolved, e.Status)
		assert.Nil(t, e.BriefDates)
	}
}

func TestRun_ExplicitCampaignIDsSkipScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	fetcher.EXPECT().
		FetchEntities(gomock.Any(), []string{"BVI9999999999"}).
		Return([]domain.PlatformEntity{}, nil)

	result, err := newService(fetcher).Run(context.Background(), qarunning.Input{
		Grid:           briefWithPlacements(),
		CampaignAltIDs: []string{"BVI9999999999"},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Entities)
}

func TestRun_NoCampaignIDsDoesNotFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)

	grid := sheet(12, map[int][]string{
		9:  {"BV ID", "BVT", "BVP"},
		10: {"BV1", "T1", "P5"},
	})

	result, err := newService(fetcher).Run(context.Background(), qarunning.Input{Grid: grid})

	require.NoError(t, err)
	assert.Empty(t, result.CampaignAltIDs)
	assert.Empty(t, result.Entities)
}

func TestRun_Errors(t *testing.T) {
	fetchErr := errors.New("beeswax indisponível")

	tests := []struct {
		name      string
		grid      domain.Grid
		entities  []domain.PlatformEntity
		fetchErr  error
		wantFatal bool
	}{
		{
			name: "placement sem colunas de data",
			grid: sheet(30, map[int][]string{
				0:  {"BVI0000012345"},
				9:  {"BVT", "BVP"},
				10: {"T1", "P5"},
				20: {"BV Placement Name", "BVP"},
				21: {"Display", "P5"},
			}),
			wantFatal: true,
		},
		{
			name: "entidade da plataforma sem id",
			grid: briefWithPlacements(),
			entities: []domain.PlatformEntity{
				{AltID: "T1", Type: domain.EntityLineItem},
			},
			wantFatal: true,
		},
		{
			name:     "falha ao buscar na plataforma",
			grid:     briefWithPlacements(),
			fetchErr: fetchErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockPlatformFetcher(ctrl)
			fetcher.EXPECT().
				FetchEntities(gomock.Any(), gomock.Any()).
				Return(tt.entities, tt.fetchErr).
				AnyTimes()

			result, err := newService(fetcher).Run(context.Background(), qarunning.Input{Grid: tt.grid})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantFatal, domain.IsFatal(err))
			if tt.fetchErr != nil {
				assert.ErrorIs(t, err, tt.fetchErr)
			}
		})
	}
}

func TestRunAndStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	reporter := mocks.NewMockReportWriter(ctrl)
	repo := repomocks.NewMockQARunRepository(ctrl)

	fetcher.EXPECT().FetchEntities(gomock.Any(), gomock.Any()).Return(platformEntities(), nil)
	reporter.EXPECT().
		WriteFile(gomock.Any(), "reports").
		Return("reports/QA_Report.xlsx", nil)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *domain.QARun, findings []domain.Finding) error {
			assert.Equal(t, domain.QARunStatusCompleted, run.Status)
			assert.Equal(t, 2, run.Entities)
			assert.Equal(t, 1, run.Resolved)
			assert.NotEmpty(t, findings)
			return nil
		})

	s := newService(fetcher).WithReport(reporter, "reports").WithRepository(repo)

	run, result, err := s.RunAndStore(context.Background(), qarunning.Input{BriefName: "brief.xlsx", Grid: briefWithPlacements()})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, run.ID)
	require.NotNil(t, run.ReportPath)
	assert.Equal(t, "reports/QA_Report.xlsx", *run.ReportPath)
}

func TestRunAndStore_PersistsFailedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockPlatformFetcher(ctrl)
	repo := repomocks.NewMockQARunRepository(ctrl)

	fetcher.EXPECT().FetchEntities(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, run *domain.QARun, _ []domain.Finding) error {
			assert.Equal(t, domain.QARunStatusFailed, run.Status)
			require.NotNil(t, run.Error)
			assert.Contains(t, *run.Error, "timeout")
			return nil
		})

	s := newService(fetcher).WithRepository(repo)

	run, result, err := s.RunAndStore(context.Background(), qarunning.Input{Grid: briefWithPlacements()})

	require.Error(t, err)
	assert.Nil(t, run)
	assert.Nil(t, result)
}

func TestGetRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockQARunRepository(ctrl)
	s := newService(nil).WithRepository(repo)

	repo.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)
	detail, err := s.GetRun(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, detail)

	repo.EXPECT().GetByID(gomock.Any(), "abc").Return(&domain.QARun{ID: "abc"}, nil)
	repo.EXPECT().GetFindings(gomock.Any(), "abc").Return([]domain.Finding{{Checker: "naming"}}, nil)
	detail, err = s.GetRun(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", detail.Run.ID)
	assert.Len(t, detail.Findings, 1)
}

func TestStorageDisabled(t *testing.T) {
	s := newService(nil)

	_, err := s.GetRun(context.Background(), "abc")
	assert.ErrorIs(t, err, qarunning.ErrStorageDisabled)

	_, err = s.ListRuns(context.Background(), 10)
	assert.ErrorIs(t, err, qarunning.ErrStorageDisabled)
}
