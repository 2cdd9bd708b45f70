package ports

import "context"

// InferenceServiceStatus represents the observed state of a KServe InferenceService
type InferenceServiceStatus struct {
	URL string
	// NotReady is nil once the Ready condition is True
	NotReady error
}

func (s *InferenceServiceStatus) Ready() bool {
	return s.NotReady == nil
}

// InferenceServiceResolver looks up where a remotely served model is reachable
type InferenceServiceResolver interface {
	GetStatus(ctx context.Context, namespace, name string) (*InferenceServiceStatus, error)
}
