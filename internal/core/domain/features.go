package domain

import (
	"fmt"
	"strings"
)

// Column names the model was trained against.
const (
	ColumnAge               = "Age"
	ColumnPriorExperience   = "Prior_Exp"
	ColumnCurrentExperience = "Current_Exp"
	ColumnTotalExperience   = "Total_Exp"

	EducationColumnPrefix = "Education_"
	JobRoleColumnPrefix   = "Job_Role_"
)

// ColumnManifest is the ordered list of feature names a model expects.
// It is immutable once built and safe for concurrent use.
type ColumnManifest struct {
	names []string
	index map[string]int
}

func NewColumnManifest(names []string) (*ColumnManifest, error) {
	if len(names) == 0 {
		return nil, ErrEmptyManifest
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: blank name at position %d", ErrInvalidManifest, i)
		}
		if prev, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrInvalidManifest, name, prev, i)
		}
		index[name] = i
	}

	return &ColumnManifest{
		names: append([]string(nil), names...),
		index: index,
	}, nil
}

func (m *ColumnManifest) Len() int {
	return len(m.names)
}

// Names returns a copy of the column names in order.
func (m *ColumnManifest) Names() []string {
	return append([]string(nil), m.names...)
}

func (m *ColumnManifest) Index(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

func (m *ColumnManifest) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// FeatureVector is one row of model input laid out by a ColumnManifest.
type FeatureVector []float64

func EducationColumn(e EducationLevel) string {
	return EducationColumnPrefix + string(e)
}

func JobRoleColumn(r JobRole) string {
	return JobRoleColumnPrefix + string(r)
}
