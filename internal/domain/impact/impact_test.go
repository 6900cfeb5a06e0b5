package impact

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/backend/internal/domain/entity"
)

var (
	transport = &entity.Category{ID: uuid.New(), Name: "Transporte", EmissionFactor: 0.2, Unit: "km"}
	energy    = &entity.Category{ID: uuid.New(), Name: "Energía", EmissionFactor: 0.5, Unit: "kWh"}
)

func activity(name string, category *entity.Category) *entity.Activity {
	a := &entity.Activity{ID: uuid.New(), Name: name, Category: category}
	if category != nil {
		a.CategoryID = category.ID
	}
	return a
}

func record(a *entity.Activity, quantity float64, occurredOn time.Time) *entity.ActivityRecord {
	r := &entity.ActivityRecord{
		ID:         uuid.New(),
		Activity:   a,
		Quantity:   quantity,
		OccurredOn: occurredOn,
	}
	if a != nil {
		r.ActivityID = a.ID
	}
	return r
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestTotal(t *testing.T) {
	car := activity("Conducir coche", transport)

	t.Run("empty input is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Total(nil))
		assert.Equal(t, 0.0, Total([]*entity.ActivityRecord{}))
	})

	t.Run("sums quantity times factor", func(t *testing.T) {
		records := []*entity.ActivityRecord{
			record(car, 100, day(2024, time.January, 15)),
			record(car, 50, day(2024, time.February, 10)),
		}
		assert.InDelta(t, 30.0, Total(records), 1e-9)
	})

	t.Run("unresolved records contribute nothing", func(t *testing.T) {
		records := []*entity.ActivityRecord{
			record(car, 100, day(2024, time.January, 15)),
			record(nil, 500, day(2024, time.January, 16)),
			record(activity("Sin categoría", nil), 500, day(2024, time.January, 17)),
			nil,
		}
		assert.InDelta(t, 20.0, Total(records), 1e-9)
	})
}

func TestAverage(t *testing.T) {
	car := activity("Conducir coche", transport)

	assert.Equal(t, 0.0, Average(nil))

	records := []*entity.ActivityRecord{
		record(car, 100, day(2024, time.January, 15)),
		record(car, 50, day(2024, time.February, 10)),
		record(nil, 10, day(2024, time.February, 11)),
	}
	assert.InDelta(t, Total(records)/3, Average(records), 1e-9)
	assert.InDelta(t, 10.0, Average(records), 1e-9)
}

func TestDailyAverage(t *testing.T) {
	car := activity("Conducir coche", transport)
	records := []*entity.ActivityRecord{record(car, 150, day(2024, time.March, 1))}

	assert.InDelta(t, 1.0, DailyAverage(records, 30), 1e-9)
	assert.Equal(t, 0.0, DailyAverage(records, 0))
	assert.Equal(t, 0.0, DailyAverage(records, -5))
	assert.Equal(t, 0.0, DailyAverage(nil, 30))
}

func TestByCategory(t *testing.T) {
	car := activity("Conducir coche", transport)
	bus := activity("Autobús", transport)
	light := activity("Consumo eléctrico", energy)
	orphan := activity("Huérfana", nil)

	records := []*entity.ActivityRecord{
		record(car, 100, day(2024, time.January, 1)),
		record(bus, 10, day(2024, time.January, 2)),
		record(light, 20, day(2024, time.January, 3)),
		record(orphan, 1000, day(2024, time.January, 4)),
		record(nil, 1000, day(2024, time.January, 5)),
	}

	totals := ByCategory(records)
	require.Len(t, totals, 2)
	assert.InDelta(t, 22.0, totals["Transporte"], 1e-9)
	assert.InDelta(t, 10.0, totals["Energía"], 1e-9)

	var sum float64
	for _, v := range totals {
		sum += v
	}
	assert.LessOrEqual(t, sum, Total(records)+1e-9)
	assert.InDelta(t, Total(records), sum, 1e-9)
}

func TestByCategoryIsCaseSensitive(t *testing.T) {
	upper := &entity.Category{ID: uuid.New(), Name: "Transporte", EmissionFactor: 1}
	lower := &entity.Category{ID: uuid.New(), Name: "transporte", EmissionFactor: 1}

	totals := ByCategory([]*entity.ActivityRecord{
		record(activity("a", upper), 1, day(2024, time.January, 1)),
		record(activity("b", lower), 2, day(2024, time.January, 1)),
	})

	assert.Equal(t, map[string]float64{"Transporte": 1, "transporte": 2}, totals)
}

func TestMonthlyTrend(t *testing.T) {
	car := activity("Conducir coche", transport)

	t.Run("empty input yields empty sequence", func(t *testing.T) {
		trend := MonthlyTrend(nil)
		assert.NotNil(t, trend)
		assert.Empty(t, trend)
	})

	t.Run("scenario from two months", func(t *testing.T) {
		trend := MonthlyTrend([]*entity.ActivityRecord{
			record(car, 100, day(2024, time.January, 15)),
			record(car, 50, day(2024, time.February, 10)),
		})
		require.Len(t, trend, 2)
		assert.Equal(t, "Jan 2024", trend[0].Label)
		assert.InDelta(t, 20.0, trend[0].Value, 1e-9)
		assert.Equal(t, "Feb 2024", trend[1].Label)
		assert.InDelta(t, 10.0, trend[1].Value, 1e-9)
	})

	t.Run("chronological regardless of input order and label", func(t *testing.T) {
		trend := MonthlyTrend([]*entity.ActivityRecord{
			record(car, 10, day(2024, time.January, 5)),
			record(car, 10, day(2023, time.December, 20)),
			record(car, 10, day(2023, time.April, 1)),
			record(car, 10, day(2024, time.January, 28)),
			record(car, 10, day(2022, time.December, 31)),
		})

		labels := make([]string, 0, len(trend))
		for _, p := range trend {
			labels = append(labels, p.Label)
		}
		assert.Equal(t, []string{"Dec 2022", "Apr 2023", "Dec 2023", "Jan 2024"}, labels)
		assert.InDelta(t, 4.0, trend[3].Value, 1e-9)

		for i := 1; i < len(trend); i++ {
			prev, cur := trend[i-1], trend[i]
			assert.True(t, prev.Year < cur.Year || (prev.Year == cur.Year && prev.Month < cur.Month))
		}
	})

	t.Run("same month in different years are distinct buckets", func(t *testing.T) {
		trend := MonthlyTrend([]*entity.ActivityRecord{
			record(car, 10, day(2023, time.March, 1)),
			record(car, 10, day(2024, time.March, 1)),
		})
		require.Len(t, trend, 2)
		assert.Equal(t, 2023, trend[0].Year)
		assert.Equal(t, 2024, trend[1].Year)
	})

	t.Run("unresolved records are skipped", func(t *testing.T) {
		trend := MonthlyTrend([]*entity.ActivityRecord{record(nil, 10, day(2024, time.May, 1))})
		assert.Empty(t, trend)
	})
}

func TestTopContributors(t *testing.T) {
	car := activity("Conducir coche", transport)
	bus := activity("Autobús", transport)
	light := activity("Consumo eléctrico", energy)
	records := []*entity.ActivityRecord{
		record(bus, 10, day(2024, time.January, 1)),   // 2
		record(car, 100, day(2024, time.January, 2)),  // 20
		record(light, 20, day(2024, time.January, 3)), // 10
		record(car, 50, day(2024, time.January, 4)),   // 10
		record(nil, 999, day(2024, time.January, 5)),
	}

	t.Run("descending by summed impact", func(t *testing.T) {
		top := TopContributors(records, 3)
		require.Len(t, top, 3)
		assert.Equal(t, "Conducir coche", top[0].Label)
		assert.InDelta(t, 30.0, top[0].Value, 1e-9)
		assert.Equal(t, "Consumo eléctrico", top[1].Label)
		assert.Equal(t, "Autobús", top[2].Label)
	})

	t.Run("length is min of n and distinct activities", func(t *testing.T) {
		assert.Len(t, TopContributors(records, 2), 2)
		assert.Len(t, TopContributors(records, 10), 3)
	})

	t.Run("zero and negative n yield empty", func(t *testing.T) {
		assert.Equal(t, []Point{}, TopContributors(records, 0))
		assert.Equal(t, []Point{}, TopContributors(records, -1))
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		walk := activity("Caminar", transport)
		bike := activity("Bicicleta", transport)
		tied := []*entity.ActivityRecord{
			record(walk, 5, day(2024, time.January, 1)),
			record(bike, 5, day(2024, time.January, 2)),
		}
		top := TopContributors(tied, 2)
		require.Len(t, top, 2)
		assert.Equal(t, "Caminar", top[0].Label)
		assert.Equal(t, "Bicicleta", top[1].Label)
	})
}

func TestMalformedQuantitiesAreAccepted(t *testing.T) {
	car := activity("Conducir coche", transport)
	records := []*entity.ActivityRecord{
		record(car, -10, day(2024, time.January, 1)),
		record(car, math.NaN(), day(2024, time.January, 2)),
	}

	assert.True(t, math.IsNaN(Total(records)))
	assert.Len(t, TopContributors(records, 5), 1)
}

func TestInputIsNotMutated(t *testing.T) {
	car := activity("Conducir coche", transport)
	records := []*entity.ActivityRecord{
		record(car, 50, day(2024, time.February, 10)),
		record(car, 100, day(2024, time.January, 15)),
	}
	first := records[0]

	_ = MonthlyTrend(records)
	_ = TopContributors(records, 1)

	assert.Same(t, first, records[0])
	assert.Equal(t, 50.0, records[0].Quantity)
}

func TestConcurrentReads(t *testing.T) {
	car := activity("Conducir coche", transport)
	records := make([]*entity.ActivityRecord, 0, 500)
	for i := 0; i < 500; i++ {
		records = append(records, record(car, float64(i), day(2024, time.Month(i%12+1), 1)))
	}
	want := Total(records)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.InDelta(t, want, Total(records), 1e-6)
			assert.Len(t, MonthlyTrend(records), 12)
		}()
	}
	wg.Wait()
}

func TestSortedByValue(t *testing.T) {
	points := SortedByValue(map[string]float64{"b": 1, "a": 1, "c": 5})
	assert.Equal(t, []Point{{Label: "c", Value: 5}, {Label: "a", Value: 1}, {Label: "b", Value: 1}}, points)
}
