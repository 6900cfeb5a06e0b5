package habit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/backend/internal/domain/entity"
	domainerror "github.com/ecotrack/backend/internal/domain/error"
)

type fakeHabitRepo struct {
	mu     sync.Mutex
	habits map[uuid.UUID]*entity.Habit
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: make(map[uuid.UUID]*entity.Habit)}
}

func (r *fakeHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.habits[h.ID] = h
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.habits[id]; ok {
		copied := *h
		return &copied, nil
	}
	return nil, domainerror.ErrHabitNotFound
}

func (r *fakeHabitRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, h *entity.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.habits[h.ID] = h
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.habits, id)
	return nil
}

func (r *fakeHabitRepo) ExistsByUserAndActivity(_ context.Context, userID, activityID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.habits {
		if h.UserID == userID && h.ActivityID == activityID {
			return true, nil
		}
	}
	return false, nil
}

type fakeActivityRepo struct {
	activities map[uuid.UUID]*entity.Activity
}

func (r *fakeActivityRepo) FindAll(context.Context, *uuid.UUID) ([]*entity.Activity, error) {
	return nil, nil
}

func (r *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	if a, ok := r.activities[id]; ok {
		return a, nil
	}
	return nil, domainerror.ErrActivityNotFound
}

func habitCode(t *testing.T, err error) domainerror.HabitErrorCode {
	t.Helper()
	var habitErr *domainerror.HabitError
	require.True(t, errors.As(err, &habitErr), "expected HabitError, got %v", err)
	return habitErr.Code
}

func newActivities() (*fakeActivityRepo, *entity.Activity, *entity.Activity) {
	transport := entity.NewCategory("Transporte", 0.21, "km", "")
	food := entity.NewCategory("Alimentación", 2.5, "kg", "")
	driving := entity.NewActivity("Conducir coche", transport)
	meat := entity.NewActivity("Comer carne roja", food)
	return &fakeActivityRepo{activities: map[uuid.UUID]*entity.Activity{
		driving.ID: driving,
		meat.ID:    meat,
	}}, driving, meat
}

func TestCreateHabit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	activities, driving, _ := newActivities()

	t.Run("defaults last date to today", func(t *testing.T) {
		uc := NewCreateHabitUseCase(newFakeHabitRepo(), activities)
		out, err := uc.Execute(ctx, CreateHabitInput{
			UserID: userID, ActivityID: driving.ID, Frequency: 5, Type: entity.HabitTypeWeekly,
		})
		require.NoError(t, err)
		assert.Equal(t, toDay(time.Now()), out.Habit.LastDate)
		assert.Equal(t, "Conducir coche", out.Habit.Activity.Name)
	})

	t.Run("one habit per activity", func(t *testing.T) {
		repo := newFakeHabitRepo()
		uc := NewCreateHabitUseCase(repo, activities)
		input := CreateHabitInput{UserID: userID, ActivityID: driving.ID, Frequency: 1, Type: entity.HabitTypeDaily}
		_, err := uc.Execute(ctx, input)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, input)
		assert.Equal(t, domainerror.ErrCodeHabitAlreadyExists, habitCode(t, err))

		input.UserID = uuid.New()
		_, err = uc.Execute(ctx, input)
		assert.NoError(t, err, "another user may track the same activity")
	})

	tests := []struct {
		name  string
		input CreateHabitInput
		code  domainerror.HabitErrorCode
	}{
		{"zero frequency", CreateHabitInput{UserID: userID, ActivityID: driving.ID, Frequency: 0, Type: entity.HabitTypeDaily}, domainerror.ErrCodeInvalidFrequency},
		{"bad type", CreateHabitInput{UserID: userID, ActivityID: driving.ID, Frequency: 1, Type: "yearly"}, domainerror.ErrCodeInvalidHabitType},
		{"missing type", CreateHabitInput{UserID: userID, ActivityID: driving.ID, Frequency: 1}, domainerror.ErrCodeMissingHabitFields},
		{"unknown activity", CreateHabitInput{UserID: userID, ActivityID: uuid.New(), Frequency: 1, Type: entity.HabitTypeDaily}, domainerror.ErrCodeHabitActivity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateHabitUseCase(newFakeHabitRepo(), activities)
			_, err := uc.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, habitCode(t, err))
		})
	}
}

func TestListHabitsEstimatesImpact(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	_, driving, meat := newActivities()
	repo := newFakeHabitRepo()

	drive := entity.NewHabit(userID, driving.ID, 10, entity.HabitTypeWeekly, time.Now())
	drive.Activity = driving
	eat := entity.NewHabit(userID, meat.ID, 2, entity.HabitTypeWeekly, time.Now())
	eat.Activity = meat
	orphan := entity.NewHabit(userID, uuid.New(), 3, entity.HabitTypeDaily, time.Now())
	for _, h := range []*entity.Habit{drive, eat, orphan} {
		require.NoError(t, repo.Create(ctx, h))
	}

	out, err := NewListHabitsUseCase(repo).Execute(ctx, ListHabitsInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, out.Habits, 3)
	assert.InDelta(t, 10*0.21+2*2.5, out.TotalEstimatedImpact, 1e-9)
	assert.Zero(t, EstimatedImpact(orphan))

	empty, err := NewListHabitsUseCase(repo).Execute(ctx, ListHabitsInput{UserID: uuid.New()})
	require.NoError(t, err)
	assert.NotNil(t, empty.Habits)
	assert.Empty(t, empty.Habits)
}

func TestUpdateAndDeleteHabit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeHabitRepo()
	h := entity.NewHabit(userID, uuid.New(), 1, entity.HabitTypeDaily, time.Now())
	require.NoError(t, repo.Create(ctx, h))

	update := NewUpdateHabitUseCase(repo)
	frequency := 4
	monthly := entity.HabitTypeMonthly
	out, err := update.Execute(ctx, UpdateHabitInput{HabitID: h.ID, UserID: userID, Frequency: &frequency, Type: &monthly})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Habit.Frequency)
	assert.Equal(t, entity.HabitTypeMonthly, out.Habit.Type)

	negative := -1
	_, err = update.Execute(ctx, UpdateHabitInput{HabitID: h.ID, UserID: userID, Frequency: &negative})
	assert.Equal(t, domainerror.ErrCodeInvalidFrequency, habitCode(t, err))

	_, err = update.Execute(ctx, UpdateHabitInput{HabitID: h.ID, UserID: uuid.New(), Frequency: &frequency})
	assert.Equal(t, domainerror.ErrCodeHabitNotFound, habitCode(t, err))

	del := NewDeleteHabitUseCase(repo)
	err = del.Execute(ctx, DeleteHabitInput{HabitID: h.ID, UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeHabitNotFound, habitCode(t, err))
	assert.Len(t, repo.habits, 1)

	require.NoError(t, del.Execute(ctx, DeleteHabitInput{HabitID: h.ID, UserID: userID}))
	assert.Empty(t, repo.habits)
}
