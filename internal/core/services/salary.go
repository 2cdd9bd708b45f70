package services

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"salary-predictor-service/internal/core/domain"
	ports "salary-predictor-service/internal/core/ports/output"
)

// SalaryService turns an employee query into a salary estimate
type SalaryService struct {
	manifest  *domain.ColumnManifest
	predictor ports.Predictor
}

// NewSalaryService checks that the manifest and the model agree on the
// input width before any request is served.
func NewSalaryService(manifest *domain.ColumnManifest, predictor ports.Predictor) (*SalaryService, error) {
	if n := predictor.NumFeatures(); n > 0 && n != manifest.Len() {
		return nil, fmt.Errorf("%w: manifest has %d columns, model expects %d",
			domain.ErrManifestMismatch, manifest.Len(), n)
	}
	if namer, ok := predictor.(ports.FeatureNamer); ok {
		if err := checkColumnOrder(manifest, namer.FeatureNames()); err != nil {
			return nil, err
		}
	}
	return &SalaryService{manifest: manifest, predictor: predictor}, nil
}

func checkColumnOrder(manifest *domain.ColumnManifest, trained []string) error {
	if len(trained) == 0 {
		return nil
	}
	names := manifest.Names()
	if len(trained) != len(names) {
		return fmt.Errorf("%w: manifest has %d columns, model was trained on %d",
			domain.ErrManifestMismatch, len(names), len(trained))
	}
	for i := range names {
		if names[i] != trained[i] {
			return fmt.Errorf("%w: column %d is %q in the manifest but %q in the model",
				domain.ErrManifestMismatch, i, names[i], trained[i])
		}
	}
	return nil
}

// FormOptions are the choices offered by the form's select widgets
type FormOptions struct {
	Education []domain.EducationLevel `json:"education"`
	JobRoles  []domain.JobRole        `json:"job_roles"`
}

func (s *SalaryService) Options() FormOptions {
	return FormOptions{
		Education: append([]domain.EducationLevel(nil), domain.EducationLevels...),
		JobRoles:  append([]domain.JobRole(nil), domain.JobRoles...),
	}
}

func (s *SalaryService) Model() domain.ModelInfo {
	return domain.ModelInfo{
		Description: s.predictor.Describe(),
		Features:    s.manifest.Len(),
		Columns:     s.manifest.Names(),
	}
}

// Estimate validates the query, builds its feature vector and asks the
// model for a salary. The displayed amount is rounded half to even.
func (s *SalaryService) Estimate(ctx context.Context, q domain.EmployeeQuery) (*domain.SalaryEstimate, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	features := BuildFeatureVector(s.manifest, q)

	raw, err := s.predictor.Predict(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPredictionFailed, err)
	}
	amount, err := roundAmount(raw)
	if err != nil {
		return nil, err
	}

	estimate := &domain.SalaryEstimate{
		Query:    q,
		Features: features,
		Raw:      raw,
		Amount:   amount,
	}

	log.WithFields(log.Fields{
		"age":              q.Age,
		"education":        q.Education,
		"job_role":         q.JobRole,
		"total_experience": q.TotalExperience(),
		"salary":           estimate.Amount,
	}).Debug("salary estimated")

	return estimate, nil
}

// roundAmount rounds half to even. Outputs that are not finite or do not
// fit in an int64 after rounding are rejected.
func roundAmount(raw float64) (int64, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, fmt.Errorf("%w: model returned %v", domain.ErrPredictionFailed, raw)
	}
	rounded := math.RoundToEven(raw)
	// float64(math.MaxInt64) is 2^63, one past the largest int64
	if rounded >= math.MaxInt64 || rounded < math.MinInt64 {
		return 0, fmt.Errorf("%w: model returned %v, out of range", domain.ErrPredictionFailed, raw)
	}
	return int64(rounded), nil
}

// Ready reports whether a remote model backend can currently serve requests.
// In-process models are always ready.
func (s *SalaryService) Ready(ctx context.Context) error {
	if checker, ok := s.predictor.(ports.ReadyChecker); ok {
		return checker.Ready(ctx)
	}
	return nil
}
