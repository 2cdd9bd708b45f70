// Package forest evaluates tree-ensemble regressors exported as JSON.
//
// The export mirrors scikit-learn's tree_ arrays: for every node the left
// and right child index (-1 on leaves), the split feature, the threshold
// and the node value. A sample goes left when x[feature] <= threshold.
package forest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"

	"salary-predictor-service/internal/core/domain"
	ports "salary-predictor-service/internal/core/ports/output"
)

const leaf = -1

type Aggregation string

const (
	// AggregationMean averages the trees, as a random forest does.
	AggregationMean Aggregation = "mean"
	// AggregationSum adds learning_rate * tree to base_score, as gradient boosting does.
	AggregationSum Aggregation = "sum"
)

type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

type Document struct {
	ModelType    string      `json:"model_type"`
	NumFeatures  int         `json:"n_features"`
	FeatureNames []string    `json:"feature_names,omitempty"`
	Aggregation  Aggregation `json:"aggregation,omitempty"`
	BaseScore    float64     `json:"base_score,omitempty"`
	LearningRate float64     `json:"learning_rate,omitempty"`
	Trees        []Tree      `json:"trees"`
}

// Model is an immutable, concurrency-safe tree ensemble.
type Model struct {
	doc Document
}

func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read forest model: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidModel, err)
	}
	return New(doc)
}

// New validates doc so that every walk from a root ends on a leaf.
func New(doc Document) (*Model, error) {
	if doc.NumFeatures == 0 {
		doc.NumFeatures = len(doc.FeatureNames)
	}
	if doc.NumFeatures <= 0 {
		return nil, fmt.Errorf("%w: n_features is required", domain.ErrInvalidModel)
	}
	if len(doc.FeatureNames) > 0 && len(doc.FeatureNames) != doc.NumFeatures {
		return nil, fmt.Errorf("%w: %d feature names for %d features",
			domain.ErrInvalidModel, len(doc.FeatureNames), doc.NumFeatures)
	}

	switch doc.Aggregation {
	case "":
		doc.Aggregation = AggregationMean
	case AggregationMean:
	case AggregationSum:
		if doc.LearningRate == 0 {
			doc.LearningRate = 1
		}
	default:
		return nil, fmt.Errorf("%w: unknown aggregation %q", domain.ErrInvalidModel, doc.Aggregation)
	}

	if len(doc.Trees) == 0 {
		return nil, fmt.Errorf("%w: no trees", domain.ErrInvalidModel)
	}
	for i, t := range doc.Trees {
		if err := t.validate(doc.NumFeatures); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", domain.ErrInvalidModel, i, err)
		}
	}

	return &Model{doc: doc}, nil
}

func (t Tree) validate(numFeatures int) error {
	n := len(t.Value)
	if n == 0 {
		return fmt.Errorf("no nodes")
	}
	if len(t.ChildrenLeft) != n || len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n {
		return fmt.Errorf("node arrays differ in length")
	}

	for node := 0; node < n; node++ {
		l, r := t.ChildrenLeft[node], t.ChildrenRight[node]
		if l == leaf && r == leaf {
			continue
		}
		// children always come after their parent, which rules out cycles
		if l <= node || l >= n || r <= node || r >= n {
			return fmt.Errorf("node %d has invalid children %d/%d", node, l, r)
		}
		if f := t.Feature[node]; f < 0 || f >= numFeatures {
			return fmt.Errorf("node %d splits on feature %d", node, f)
		}
	}
	return nil
}

func (t Tree) predict(x []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

func (m *Model) Predict(_ context.Context, features []float64) (float64, error) {
	if len(features) != m.doc.NumFeatures {
		return 0, fmt.Errorf("%w: got %d, want %d", domain.ErrFeatureCount, len(features), m.doc.NumFeatures)
	}

	var sum float64
	for _, t := range m.doc.Trees {
		sum += t.predict(features)
	}

	if m.doc.Aggregation == AggregationSum {
		return m.doc.BaseScore + m.doc.LearningRate*sum, nil
	}
	return sum / float64(len(m.doc.Trees)), nil
}

func (m *Model) Describe() string {
	name := humanize(m.doc.ModelType)
	if name == "" {
		name = "Tree Ensemble"
	}
	if len(m.doc.Trees) == 1 {
		return name + " (1 tree)"
	}
	return fmt.Sprintf("%s (%d trees)", name, len(m.doc.Trees))
}

func (m *Model) NumFeatures() int {
	return m.doc.NumFeatures
}

func (m *Model) FeatureNames() []string {
	return append([]string(nil), m.doc.FeatureNames...)
}

func (m *Model) Close() error {
	return nil
}

// humanize splits "RandomForestRegressor" into "Random Forest Regressor".
func humanize(s string) string {
	var b strings.Builder
	runes := []rune(strings.TrimSpace(s))
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	_ ports.Predictor    = (*Model)(nil)
	_ ports.FeatureNamer = (*Model)(nil)
)
