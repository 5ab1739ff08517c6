package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON field names. It exists so the file
// format can use human-friendly duration strings ("30s", "1m") where the
// merged config carries time.Duration.
type JSONConfig struct {
	Vault struct {
		Path    string `json:"path"`
		KeyFile string `json:"key_file"`
	} `json:"vault,omitempty"`

	Storage struct {
		AuditDSN string `json:"audit_dsn"`
	} `json:"storage,omitempty"`

	Logging struct {
		File string `json:"file"`
	} `json:"logging,omitempty"`

	Workers struct {
		SaveInterval Duration `json:"save_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Vault: Vault{
			Path:    jsonCfg.Vault.Path,
			KeyFile: jsonCfg.Vault.KeyFile,
		},
		Storage: Storage{
			AuditDSN: jsonCfg.Storage.AuditDSN,
		},
		Logging: Logging{
			File: jsonCfg.Logging.File,
		},
		Workers: Workers{
			SaveInterval: time.Duration(jsonCfg.Workers.SaveInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
