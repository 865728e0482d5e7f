package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// envFile is the shape shared by JSON and YAML config files: a top-level
// "env" object holding string key-value pairs.
//
//	env:
//	  NATSORT_VIEW: ascii
//	  NATSORT_REVERSE: "true"
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

// LoadEnvFile loads environment variables from a .json, .yml or .yaml file
// and returns them as a map. Pair it with WithFallbacks so that the real
// environment still takes precedence.
func LoadEnvFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(bts, out)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(bts, out)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return out.Env, nil
}
