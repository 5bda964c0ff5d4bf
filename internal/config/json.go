package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding. Durations
// accept both Go duration strings ("30s") and integer nanoseconds.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Auth struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"auth,omitempty"`

	Harness struct {
		Cases          int    `json:"cases"`
		Seed           uint64 `json:"seed"`
		SkipAuthChecks bool   `json:"skip_auth_checks"`
	} `json:"harness,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ReapInterval  Duration `json:"reap_interval"`
		ReapBatchSize int      `json:"reap_batch_size"`
	} `json:"workers,omitempty"`

	Stub struct {
		HTTPAddress   string   `json:"http_address"`
		Username      string   `json:"username"`
		Password      string   `json:"password"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"stub,omitempty"`

	Metrics struct {
		HTTPAddress string `json:"http_address"`
	} `json:"metrics,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Auth: Auth{
			Username: jsonCfg.Auth.Username,
			Password: jsonCfg.Auth.Password,
		},
		Harness: Harness{
			Cases:          jsonCfg.Harness.Cases,
			Seed:           jsonCfg.Harness.Seed,
			SkipAuthChecks: jsonCfg.Harness.SkipAuthChecks,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			ReapInterval:  time.Duration(jsonCfg.Workers.ReapInterval),
			ReapBatchSize: jsonCfg.Workers.ReapBatchSize,
		},
		Stub: Stub{
			HTTPAddress:   jsonCfg.Stub.HTTPAddress,
			Username:      jsonCfg.Stub.Username,
			Password:      jsonCfg.Stub.Password,
			TokenSignKey:  jsonCfg.Stub.TokenSignKey,
			TokenIssuer:   jsonCfg.Stub.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Stub.TokenDuration),
		},
		Metrics: Metrics{HTTPAddress: jsonCfg.Metrics.HTTPAddress},
		Log:     Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
