package ports

import "context"

// Predictor defines the contract for a loaded regression model
type Predictor interface {
	// Predict returns the model's scalar output for a single feature row
	Predict(ctx context.Context, features []float64) (float64, error)

	// Describe returns a short human-readable model description
	Describe() string

	// NumFeatures returns the expected input width, or 0 when unknown
	NumFeatures() int

	// Close releases backend resources
	Close() error
}

// FeatureNamer is implemented by predictors whose artifact records the
// column names it was trained on
type FeatureNamer interface {
	FeatureNames() []string
}

// ReadyChecker is implemented by predictors that depend on a remote server
type ReadyChecker interface {
	Ready(ctx context.Context) error
}
