package report

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/backend/internal/application/adapter"
	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

type countingStore struct {
	mu      sync.Mutex
	records []*entity.ActivityRecord
	calls   int
}

func (s *countingStore) FetchRecordsForUser(context.Context, uuid.UUID) ([]*entity.ActivityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.records, nil
}

type memoryCache struct {
	mu         sync.Mutex
	entries    map[string][]byte
	generation int64
	getErr     error
	setErr     error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, userID uuid.UUID, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	payload, ok := c.entries[userID.String()+"/"+key]
	return payload, ok, nil
}

func (c *memoryCache) Generation(context.Context, uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation, nil
}

func (c *memoryCache) Set(_ context.Context, userID uuid.UUID, key string, payload []byte, generation int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	if generation != c.generation {
		return nil
	}
	c.entries[userID.String()+"/"+key] = payload
	return nil
}

func (c *memoryCache) Invalidate(context.Context, uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.entries = make(map[string][]byte)
	return nil
}

func sampleRecords(userID uuid.UUID) []*entity.ActivityRecord {
	transport := entity.NewCategory("Transporte", 0.2, "km", "")
	energy := entity.NewCategory("Energía", 0.25, "kWh", "")
	driving := entity.NewActivity("Conducir coche", transport)
	bus := entity.NewActivity("Viajar en autobús", transport)
	power := entity.NewActivity("Consumo eléctrico", energy)

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	return []*entity.ActivityRecord{
		entity.NewActivityRecord(userID, driving, 100, "km", jan), // 20
		entity.NewActivityRecord(userID, bus, 50, "km", feb),      // 10
		entity.NewActivityRecord(userID, power, 40, "kWh", feb),   // 10
		{ID: uuid.New(), UserID: userID, Quantity: 99, OccurredOn: feb},
	}
}

func TestGetImpactReport(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := &countingStore{records: sampleRecords(userID)}
	cache := newMemoryCache()
	uc := NewGetImpactReportUseCase(store, cache, DefaultOptions())

	out, err := uc.Execute(ctx, GetImpactReportInput{UserID: userID})
	require.NoError(t, err)
	assert.False(t, out.Cached)
	assert.InDelta(t, 40.0, out.Total, 1e-9)
	assert.InDelta(t, 10.0, out.Average, 1e-9, "unresolved record counts in the denominator")
	assert.Equal(t, 4, out.RecordCount)
	assert.Equal(t, 3, out.TopN)

	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "Transporte", out.ByCategory[0].Category)
	assert.InDelta(t, 30.0, out.ByCategory[0].Value, 1e-9)
	assert.Equal(t, 75.0, out.ByCategory[0].Percentage)
	assert.Equal(t, 25.0, out.ByCategory[1].Percentage)

	require.Len(t, out.MonthlyTrend, 2)
	assert.Equal(t, "Jan 2024", out.MonthlyTrend[0].Label)
	assert.Equal(t, "Feb 2024", out.MonthlyTrend[1].Label)
	assert.InDelta(t, 20.0, out.MonthlyTrend[1].Value, 1e-9)

	require.Len(t, out.TopContributors, 3)
	assert.Equal(t, "Conducir coche", out.TopContributors[0].Label)

	again, err := uc.Execute(ctx, GetImpactReportInput{UserID: userID})
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, 1, store.calls)
	assert.InDelta(t, out.Total, again.Total, 1e-9)
	assert.Equal(t, out.MonthlyTrend, again.MonthlyTrend)
}

func TestGetImpactReportTopN(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	uc := NewGetImpactReportUseCase(&countingStore{records: sampleRecords(userID)}, newMemoryCache(), Options{MaxTopN: 2})

	one := 1
	out, err := uc.Execute(ctx, GetImpactReportInput{UserID: userID, TopN: &one})
	require.NoError(t, err)
	assert.Len(t, out.TopContributors, 1)

	zero := 0
	out, err = uc.Execute(ctx, GetImpactReportInput{UserID: userID, TopN: &zero})
	require.NoError(t, err)
	assert.NotNil(t, out.TopContributors)
	assert.Empty(t, out.TopContributors)

	many := 100
	out, err = uc.Execute(ctx, GetImpactReportInput{UserID: userID, TopN: &many})
	require.NoError(t, err)
	assert.Equal(t, 2, out.TopN)
	assert.Len(t, out.TopContributors, 2)

	negative := -1
	_, err = uc.Execute(ctx, GetImpactReportInput{UserID: userID, TopN: &negative})
	var reportErr *domainerror.ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, domainerror.ErrCodeInvalidTopN, reportErr.Code)
}

func TestGetImpactReportIgnoresCacheFailures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store := &countingStore{records: sampleRecords(userID)}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	uc := NewGetImpactReportUseCase(store, cache, DefaultOptions())

	for i := 0; i < 2; i++ {
		out, err := uc.Execute(ctx, GetImpactReportInput{UserID: userID})
		require.NoError(t, err)
		assert.False(t, out.Cached)
	}
	assert.Equal(t, 2, store.calls)
}

// writeDuringFetchStore returns a snapshot and then commits a new record,
// invalidating the cache, before the report reaches the cache.
type writeDuringFetchStore struct {
	countingStore
	cache *memoryCache
	extra *entity.ActivityRecord
}

func (s *writeDuringFetchStore) FetchRecordsForUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivityRecord, error) {
	s.mu.Lock()
	snapshot := append([]*entity.ActivityRecord(nil), s.records...)
	s.calls++
	if s.extra != nil {
		s.records = append(s.records, s.extra)
		s.extra = nil
		s.mu.Unlock()
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			return nil, err
		}
		return snapshot, nil
	}
	s.mu.Unlock()
	return snapshot, nil
}

func TestGetImpactReportDropsReportComputedBeforeInvalidation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	records := sampleRecords(userID)
	cache := newMemoryCache()
	store := &writeDuringFetchStore{
		countingStore: countingStore{records: records},
		cache:         cache,
		extra:         entity.NewActivityRecord(userID, records[0].Activity, 100, "km", records[0].OccurredOn),
	}
	uc := NewGetImpactReportUseCase(store, cache, DefaultOptions())

	stale, err := uc.Execute(ctx, GetImpactReportInput{UserID: userID})
	require.NoError(t, err)
	assert.InDelta(t, 40.0, stale.Total, 1e-9)

	fresh, err := uc.Execute(ctx, GetImpactReportInput{UserID: userID})
	require.NoError(t, err)
	assert.False(t, fresh.Cached)
	assert.InDelta(t, 60.0, fresh.Total, 1e-9)
	assert.Equal(t, 5, fresh.RecordCount)

	cached, err := uc.Execute(ctx, GetImpactReportInput{UserID: userID})
	require.NoError(t, err)
	assert.True(t, cached.Cached)
	assert.InDelta(t, 60.0, cached.Total, 1e-9)
	assert.Equal(t, 2, store.calls)
}

func TestGetImpactReportEmpty(t *testing.T) {
	uc := NewGetImpactReportUseCase(&countingStore{}, newMemoryCache(), DefaultOptions())
	out, err := uc.Execute(context.Background(), GetImpactReportInput{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Zero(t, out.Average)
	assert.Empty(t, out.ByCategory)
	assert.Empty(t, out.MonthlyTrend)
	assert.Empty(t, out.TopContributors)
}

type summaryRepo struct {
	adapter.FootprintRepository
	mu      sync.Mutex
	totals  *adapter.ImpactTotals
	records []*entity.ActivityRecord
	filters []adapter.FootprintFilter
}

func (r *summaryRepo) ImpactTotals(context.Context, uuid.UUID) (*adapter.ImpactTotals, error) {
	return r.totals, nil
}

func (r *summaryRepo) FindByUser(_ context.Context, _ uuid.UUID, filter adapter.FootprintFilter) ([]*entity.ActivityRecord, error) {
	r.mu.Lock()
	r.filters = append(r.filters, filter)
	r.mu.Unlock()

	var out []*entity.ActivityRecord
	for _, rec := range r.records {
		if filter.From != nil && rec.OccurredOn.Before(*filter.From) {
			continue
		}
		out = append(out, rec)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	food := entity.NewCategory("Alimentación", 2.5, "kg", "")
	meat := entity.NewActivity("Comer carne roja", food)

	var records []*entity.ActivityRecord
	for i := 0; i < 6; i++ {
		records = append(records, entity.NewActivityRecord(userID, meat, 2, "kg", today().AddDate(0, 0, -i)))
	}
	records = append(records, entity.NewActivityRecord(userID, meat, 40, "kg", today().AddDate(0, 0, -60)))

	repo := &summaryRepo{
		totals:  &adapter.ImpactTotals{Total: 130, Count: 7},
		records: records,
	}
	uc := NewGetSummaryUseCase(repo, Options{DailyWindow: 30, RecentCount: 4})

	out, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, 130.0, out.Total)
	assert.Equal(t, int64(7), out.RecordCount)
	assert.InDelta(t, 130.0/7, out.Average, 1e-9)
	assert.InDelta(t, 30.0/30, out.DailyAverage, 1e-9, "only the six records in the window count")
	assert.Equal(t, 30, out.WindowDays)
	assert.Len(t, out.Recent, 4)

	require.Len(t, repo.filters, 2)
	var windowStart *time.Time
	for _, f := range repo.filters {
		if f.From != nil {
			windowStart = f.From
		}
	}
	require.NotNil(t, windowStart)
	assert.Equal(t, today().AddDate(0, 0, -29), *windowStart)
}

func TestGetSummaryPropagatesStoreFailure(t *testing.T) {
	repo := &failingSummaryRepo{summaryRepo: summaryRepo{totals: &adapter.ImpactTotals{}}}
	_, err := NewGetSummaryUseCase(repo, DefaultOptions()).Execute(context.Background(), GetSummaryInput{UserID: uuid.New()})
	assert.ErrorContains(t, err, "failed to sum impact")
}

type failingSummaryRepo struct {
	summaryRepo
}

func (r *failingSummaryRepo) ImpactTotals(context.Context, uuid.UUID) (*adapter.ImpactTotals, error) {
	return nil, errors.New("connection reset")
}

func TestGetSummaryWithoutRecords(t *testing.T) {
	repo := &summaryRepo{totals: &adapter.ImpactTotals{}}
	out, err := NewGetSummaryUseCase(repo, DefaultOptions()).Execute(context.Background(), GetSummaryInput{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Zero(t, out.Average)
	assert.Zero(t, out.DailyAverage)
	assert.Empty(t, out.Recent)
}
