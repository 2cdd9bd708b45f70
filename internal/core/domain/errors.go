package domain

import "errors"

// ============================================================================
// Query Validation Errors
// ============================================================================

var (
	ErrInvalidAge        = errors.New("age must be between 18 and 65")
	ErrInvalidExperience = errors.New("experience must be between 0 and 20 years")
	ErrInvalidEducation  = errors.New("unknown education level")
	ErrInvalidJobRole    = errors.New("unknown job role")
)

// ============================================================================
// Model Errors
// ============================================================================

var (
	ErrEmptyManifest      = errors.New("column manifest is empty")
	ErrInvalidManifest    = errors.New("column manifest is malformed")
	ErrManifestMismatch   = errors.New("column manifest does not match the model")
	ErrInvalidModel       = errors.New("model artifact is malformed")
	ErrFeatureCount       = errors.New("feature vector length does not match the model")
	ErrModelUnavailable   = errors.New("model server is not available")
	ErrPredictionFailed   = errors.New("prediction failed")
	ErrUnsupportedBackend = errors.New("unsupported model format")
)
