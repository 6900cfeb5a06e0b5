package recommendation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

type fakeRecommendationRepo struct {
	recommendations []*entity.Recommendation
	requested       []uuid.UUID
}

func (r *fakeRecommendationRepo) FindAll(_ context.Context, categoryID *uuid.UUID) ([]*entity.Recommendation, error) {
	var out []*entity.Recommendation
	for _, rec := range r.recommendations {
		if categoryID == nil || rec.CategoryID == *categoryID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecommendationRepo) FindByCategories(_ context.Context, ids []uuid.UUID) ([]*entity.Recommendation, error) {
	r.requested = ids
	wanted := make(map[uuid.UUID]bool)
	for _, id := range ids {
		wanted[id] = true
	}
	out := []*entity.Recommendation{}
	for _, rec := range r.recommendations {
		if wanted[rec.CategoryID] {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) FindAll(context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

type fakeHabitRepo struct {
	habits []*entity.Habit
}

func (r *fakeHabitRepo) Create(context.Context, *entity.Habit) error { return nil }
func (r *fakeHabitRepo) FindByID(context.Context, uuid.UUID) (*entity.Habit, error) {
	return nil, domainerror.ErrHabitNotFound
}
func (r *fakeHabitRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return r.habits, nil
}
func (r *fakeHabitRepo) Update(context.Context, *entity.Habit) error { return nil }
func (r *fakeHabitRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (r *fakeHabitRepo) ExistsByUserAndActivity(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

type fakeRecordStore struct {
	records []*entity.ActivityRecord
	err     error
}

func (s *fakeRecordStore) FetchRecordsForUser(context.Context, uuid.UUID) ([]*entity.ActivityRecord, error) {
	return s.records, s.err
}

type catalog struct {
	transport, energy, food *entity.Category
	driving, power, meat    *entity.Activity
	recommendations         *fakeRecommendationRepo
}

func newCatalog() *catalog {
	c := &catalog{
		transport: entity.NewCategory("Transporte", 0.21, "km", ""),
		energy:    entity.NewCategory("Energía", 0.25, "kWh", ""),
		food:      entity.NewCategory("Alimentación", 2.5, "kg", ""),
	}
	c.driving = entity.NewActivity("Conducir coche", c.transport)
	c.power = entity.NewActivity("Consumo eléctrico", c.energy)
	c.meat = entity.NewActivity("Comer carne roja", c.food)
	c.recommendations = &fakeRecommendationRepo{recommendations: []*entity.Recommendation{
		{ID: uuid.New(), CategoryID: c.transport.ID, Title: "Usa la bicicleta", EstimatedSavingKg: 30},
		{ID: uuid.New(), CategoryID: c.energy.ID, Title: "Cambia a bombillas LED", EstimatedSavingKg: 15},
		{ID: uuid.New(), CategoryID: c.food.ID, Title: "Reduce el consumo de carne", EstimatedSavingKg: 50},
	}}
	return c
}

func TestListRecommendations(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	uc := NewListRecommendationsUseCase(c.recommendations, &fakeCategoryRepo{categories: []*entity.Category{c.transport, c.energy, c.food}})

	out, err := uc.Execute(ctx, ListRecommendationsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Recommendations, 3)

	out, err = uc.Execute(ctx, ListRecommendationsInput{CategoryID: &c.energy.ID})
	require.NoError(t, err)
	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, "Cambia a bombillas LED", out.Recommendations[0].Title)

	unknown := uuid.New()
	_, err = uc.Execute(ctx, ListRecommendationsInput{CategoryID: &unknown})
	var catalogErr *domainerror.CatalogError
	require.True(t, errors.As(err, &catalogErr))
	assert.Equal(t, domainerror.ErrCodeCategoryNotFound, catalogErr.Code)
}

func TestSuggestFromHabits(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	userID := uuid.New()

	drive := entity.NewHabit(userID, c.driving.ID, 5, entity.HabitTypeWeekly, time.Now())
	drive.Activity = c.driving
	commute := entity.NewHabit(userID, c.driving.ID, 2, entity.HabitTypeDaily, time.Now())
	commute.Activity = c.driving

	store := &fakeRecordStore{err: errors.New("must not be called")}
	uc := NewSuggestRecommendationsUseCase(c.recommendations, &fakeHabitRepo{habits: []*entity.Habit{drive, commute}}, store)

	out, err := uc.Execute(ctx, SuggestRecommendationsInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, SourceHabits, out.Source)
	assert.Equal(t, []uuid.UUID{c.transport.ID}, c.recommendations.requested)
	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, c.transport.ID, out.Recommendations[0].CategoryID)
}

func TestSuggestFallsBackToImpact(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	userID := uuid.New()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	store := &fakeRecordStore{records: []*entity.ActivityRecord{
		entity.NewActivityRecord(userID, c.driving, 100, "km", day), // 21
		entity.NewActivityRecord(userID, c.meat, 20, "kg", day),     // 50
		entity.NewActivityRecord(userID, c.power, 0, "kWh", day),    // 0
	}}
	uc := NewSuggestRecommendationsUseCase(c.recommendations, &fakeHabitRepo{}, store)

	out, err := uc.Execute(ctx, SuggestRecommendationsInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, SourceImpact, out.Source)
	assert.Equal(t, []uuid.UUID{c.food.ID, c.transport.ID}, c.recommendations.requested)
	assert.Len(t, out.Recommendations, 2)
}

func TestSuggestWithoutData(t *testing.T) {
	c := newCatalog()
	uc := NewSuggestRecommendationsUseCase(c.recommendations, &fakeHabitRepo{}, &fakeRecordStore{})

	out, err := uc.Execute(context.Background(), SuggestRecommendationsInput{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, SourceNothing, out.Source)
	assert.NotNil(t, out.Recommendations)
	assert.Empty(t, out.Recommendations)
	assert.Nil(t, c.recommendations.requested)
}
