package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salary-predictor-service/internal/core/domain"
	"salary-predictor-service/internal/testutil"
)

func newSalaryService(t *testing.T, predictor *testutil.MockPredictor) *SalaryService {
	t.Helper()
	predictor.On("NumFeatures").Return(len(testutil.FullColumns)).Maybe()
	svc, err := NewSalaryService(mustManifest(t, testutil.FullColumns), predictor)
	require.NoError(t, err)
	return svc
}

func TestNewSalaryService_WidthMismatch(t *testing.T) {
	predictor := new(testutil.MockPredictor)
	predictor.On("NumFeatures").Return(7)

	svc, err := NewSalaryService(mustManifest(t, testutil.FullColumns), predictor)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domain.ErrManifestMismatch)
}

func TestNewSalaryService_UnknownWidth(t *testing.T) {
	predictor := new(testutil.MockPredictor)
	predictor.On("NumFeatures").Return(0)

	svc, err := NewSalaryService(mustManifest(t, testutil.FullColumns), predictor)
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestSalaryService_Estimate_Example(t *testing.T) {
	predictor := new(testutil.MockPredictor)
	svc := newSalaryService(t, predictor)

	want := []float64{30, 2, 3, 5, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	predictor.On("Predict", mock.Anything, want).Return(612345.6, nil).Once()

	estimate, err := svc.Estimate(context.Background(), domain.EmployeeQuery{
		Age:               30,
		Education:         domain.EducationBachelors,
		JobRole:           domain.JobRoleAnalyst,
		PriorExperience:   2,
		CurrentExperience: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 612345.6, estimate.Raw)
	assert.Equal(t, int64(612346), estimate.Amount)
	assert.Equal(t, 5, estimate.Query.TotalExperience())
	assert.Equal(t, domain.FeatureVector(want), estimate.Features)
	predictor.AssertExpectations(t)
}

func TestSalaryService_Estimate_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		raw  float64
		want int64
	}{
		{500000.5, 500000},
		{500001.5, 500002},
		{499999.49, 499999},
		{-0.4, 0},
	}

	for _, tt := range tests {
		predictor := new(testutil.MockPredictor)
		svc := newSalaryService(t, predictor)
		predictor.On("Predict", mock.Anything, mock.Anything).Return(tt.raw, nil)

		estimate, err := svc.Estimate(context.Background(), domain.DefaultEmployeeQuery())
		require.NoError(t, err)
		assert.Equal(t, tt.want, estimate.Amount, "raw %v", tt.raw)
	}
}

func TestSalaryService_Estimate_Idempotent(t *testing.T) {
	predictor := new(testutil.MockPredictor)
	svc := newSalaryService(t, predictor)
	predictor.On("Predict", mock.Anything, mock.Anything).Return(420000.0, nil)

	q := domain.DefaultEmployeeQuery()
	first, err := svc.Estimate(context.Background(), q)
	require.NoError(t, err)
	second, err := svc.Estimate(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSalaryService_Estimate_InvalidQuery(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(q *domain.EmployeeQuery)
		expected error
	}{
		{"age too low", func(q *domain.EmployeeQuery) { q.Age = 17 }, domain.ErrInvalidAge},
		{"age too high", func(q *domain.EmployeeQuery) { q.Age = 66 }, domain.ErrInvalidAge},
		{"prior negative", func(q *domain.EmployeeQuery) { q.PriorExperience = -1 }, domain.ErrInvalidExperience},
		{"current too high", func(q *domain.EmployeeQuery) { q.CurrentExperience = 21 }, domain.ErrInvalidExperience},
		{"unknown education", func(q *domain.EmployeeQuery) { q.Education = "Diploma" }, domain.ErrInvalidEducation},
		{"unknown job role", func(q *domain.EmployeeQuery) { q.JobRole = "Astronaut" }, domain.ErrInvalidJobRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictor := new(testutil.MockPredictor)
			svc := newSalaryService(t, predictor)

			q := domain.DefaultEmployeeQuery()
			tt.mutate(&q)

			estimate, err := svc.Estimate(context.Background(), q)
			assert.Nil(t, estimate)
			assert.ErrorIs(t, err, tt.expected)
			predictor.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
		})
	}
}

func TestSalaryService_Estimate_PredictorError(t *testing.T) {
	predictor := new(testutil.MockPredictor)
	svc := newSalaryService(t, predictor)
	predictor.On("Predict", mock.Anything, mock.Anything).
		Return(0.0, domain.ErrModelUnavailable)

	_, err := svc.Estimate(context.Background(), domain.DefaultEmployeeQuery())
	assert.ErrorIs(t, err, domain.ErrPredictionFailed)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestSalaryService_Estimate_UnrepresentableOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"above int64", 1e20},
		{"below int64", -1e20},
		{"two to the 63", math.Pow(2, 63)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictor := new(testutil.MockPredictor)
			svc := newSalaryService(t, predictor)
			predictor.On("Predict", mock.Anything, mock.Anything).Return(tt.raw, nil)

			estimate, err := svc.Estimate(context.Background(), domain.DefaultEmployeeQuery())
			assert.Nil(t, estimate)
			assert.ErrorIs(t, err, domain.ErrPredictionFailed)
			assert.False(t, errors.Is(err, domain.ErrModelUnavailable))
		})
	}
}

func TestSalaryService_Estimate_LargestRepresentableOutput(t *testing.T) {
	predictor := new(testutil.MockPredictor)
	svc := newSalaryService(t, predictor)
	// largest float64 below 2^63
	raw := math.Nextafter(math.Pow(2, 63), 0)
	predictor.On("Predict", mock.Anything, mock.Anything).Return(raw, nil)

	estimate, err := svc.Estimate(context.Background(), domain.DefaultEmployeeQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(raw), estimate.Amount)
	assert.Greater(t, estimate.Amount, int64(0))
}

func TestSalaryService_OptionsAndModel(t *testing.T) {
	predictor := new(testutil.MockPredictor)
	svc := newSalaryService(t, predictor)
	predictor.On("Describe").Return("Random Forest Regressor (3 trees)")

	opts := svc.Options()
	assert.Len(t, opts.Education, 3)
	assert.Len(t, opts.JobRoles, 11)
	assert.Equal(t, domain.JobRoleAnalyst, opts.JobRoles[0])

	info := svc.Model()
	assert.Equal(t, "Random Forest Regressor (3 trees)", info.Description)
	assert.Equal(t, len(testutil.FullColumns), info.Features)
	assert.Equal(t, testutil.FullColumns, info.Columns)
}

type namedPredictor struct {
	*testutil.MockPredictor
	names []string
}

func (p namedPredictor) FeatureNames() []string { return p.names }

func TestNewSalaryService_TrainedColumnOrder(t *testing.T) {
	swapped := append([]string(nil), testutil.FullColumns...)
	swapped[0], swapped[1] = swapped[1], swapped[0]

	tests := []struct {
		name    string
		trained []string
		wantErr bool
	}{
		{"same order", testutil.FullColumns, false},
		{"no names recorded", nil, false},
		{"swapped columns", swapped, true},
		{"different width", testutil.DropFirstColumns, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp := new(testutil.MockPredictor)
			mp.On("NumFeatures").Return(0)

			_, err := NewSalaryService(mustManifest(t, testutil.FullColumns), namedPredictor{mp, tt.trained})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrManifestMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
