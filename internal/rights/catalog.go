package rights

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a catalog file (JSON or YAML, picked by extension) and
// returns the decoded snapshot. The file may hold either a bare list of
// records or an object with a "rights" key. Records that cannot be decoded
// are skipped with a warning so one malformed entry cannot abort the load.
func LoadCatalog(path string, logger *zap.Logger) (*Rights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var raw []map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = decodeRawCatalog(data, yaml.Unmarshal)
	default:
		raw, err = decodeRawCatalog(data, json.Unmarshal)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %q: %w", path, err)
	}

	return DecodeRecords(raw, logger), nil
}

// DecodeRecords converts generic catalog records into typed Rights,
// tolerating per-record shape problems.
func DecodeRecords(records []map[string]any, logger *zap.Logger) *Rights {
	catalog := &Rights{Items: make([]*Right, 0, len(records))}

	for i, record := range records {
		right, err := decodeRecord(record)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping malformed catalog record",
					zap.Int("index", i),
					zap.Error(err),
				)
			}
			continue
		}
		if right.ID == "" && right.Name == "" {
			if logger != nil {
				logger.Warn("skipping catalog record without id or name", zap.Int("index", i))
			}
			continue
		}
		catalog.Items = append(catalog.Items, right)
	}

	return catalog
}

func decodeRecord(record map[string]any) (*Right, error) {
	var right Right

	cfg := &mapstructure.DecoderConfig{
		Result: &right,
		// Catalog data is hand-curated: numbers arrive as floats or digit
		// strings, booleans occasionally as 0/1.
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(record); err != nil {
		return nil, err
	}

	return &right, nil
}

func decodeRawCatalog(data []byte, unmarshal func([]byte, any) error) ([]map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	var list []map[string]any
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Rights []map[string]any `json:"rights" yaml:"rights"`
	}
	if err := unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Rights, nil
}
