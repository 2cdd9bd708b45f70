package manifest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"salary-predictor-service/internal/core/domain"
)

// Load reads the ordered column names a model was trained against.
//
// A .json file holds either a plain array of names or an object with a
// "columns" (or "feature_names") array. Any other file is read as one name
// per line; blank lines and lines starting with '#' are skipped and
// surrounding whitespace is trimmed, while spaces inside a name are kept.
func Load(path string) (*domain.ColumnManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read column manifest: %w", err)
	}

	var names []string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		names, err = parseJSON(data)
	} else {
		names, err = parseLines(data)
	}
	if err != nil {
		return nil, err
	}

	return domain.NewColumnManifest(names)
}

type manifestDocument struct {
	Columns      []string `json:"columns"`
	FeatureNames []string `json:"feature_names"`
}

func parseJSON(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var names []string
		if err := json.Unmarshal(trimmed, &names); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
		}
		return names, nil
	}

	var doc manifestDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}
	if len(doc.Columns) > 0 {
		return doc.Columns, nil
	}
	return doc.FeatureNames, nil
}

func parseLines(data []byte) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}
	return names, nil
}
