package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config supplies defaults for flags left unset. Explicit flags always win.
type Config struct {
	KeyName        string `json:"keyName"`
	OldColumn      string `json:"oldColumn"`
	NewColumn      string `json:"newColumn"`
	SkipMissingKey bool   `json:"skipMissingKey"`
}

func Default() Config {
	return Config{}
}

// Load searches upwards from startDir for .sastremap.json and returns the
// parsed config plus the path it was found at, if any.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return cfg, "", err
	}
	for {
		candidate := filepath.Join(dir, ".sastremap.json")
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			_ = json.Unmarshal(b, &cfg)
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}
