package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func sampleResult(strategy model.AcquisitionStrategy, offer float64) *model.ListingFull {
	return &model.ListingFull{
		ListingRawData: model.ListingRawData{
			PropAddress:   "123 Main St",
			ListingStatus: "Active",
			ListingPrice:  300000,
			Loan1Balance:  150000,
		},
		ListingCalculatedData: model.ListingCalculatedData{
			EstPropertyValue:    300000,
			OfferPrice:          offer,
			AcquisitionStrategy: strategy,
		},
		Tags: []model.Tag{model.NewBasicTag("red", string(strategy))},
	}
}

func TestSQLiteRunLifecycle(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "leads.csv")
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	summary := &model.RunSummary{
		Listings: 2,
		Failed:   0,
		Strategies: map[model.AcquisitionStrategy]int{
			model.StrategyHybrid:    1,
			model.StrategySubjectTo: 1,
		},
	}
	require.NoError(t, s.CompleteRun(ctx, run.ID, summary))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	assert.Equal(t, "leads.csv", got.Source)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 2, got.Summary.Listings)
	assert.Equal(t, 1, got.Summary.Strategies[model.StrategyHybrid])
}

func TestSQLiteFailRun(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "leads.csv")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, run.ID))

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Nil(t, got.Summary)
}

func TestSQLiteRunNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := s.GetRun(ctx, "missing")
	assert.Error(t, err)
	assert.Error(t, s.CompleteRun(ctx, "missing", &model.RunSummary{}))
	assert.Error(t, s.FailRun(ctx, "missing"))
}

func TestSQLiteListRuns(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	first, err := s.CreateRun(ctx, "a.csv")
	require.NoError(t, err)
	_, err = s.CreateRun(ctx, "b.csv")
	require.NoError(t, err)
	require.NoError(t, s.FailRun(ctx, first.ID))

	all, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	failed, err := s.ListRuns(ctx, RunFilter{Status: model.RunStatusFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, first.ID, failed[0].ID)

	limited, err := s.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteSaveAndListResults(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateRun(ctx, "leads.csv")
	require.NoError(t, err)

	results := []*model.ListingFull{
		sampleResult(model.StrategyHybrid, 276000),
		nil, // failed slot from a batch
		sampleResult(model.StrategySubjectTo, 120500),
	}
	require.NoError(t, s.SaveResults(ctx, run.ID, results))

	got, err := s.ListResults(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "123 Main St", got[0].PropAddress)
	assert.Equal(t, model.StrategyHybrid, got[0].AcquisitionStrategy)
	assert.Equal(t, 276000.0, got[0].OfferPrice)
	require.Len(t, got[0].Tags, 1)
	assert.Equal(t, string(model.StrategyHybrid), got[0].Tags[0].Value)
}

func TestSQLiteListResultsEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	got, err := s.ListResults(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, got)
}
