package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Env     string `json:"env"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Host           string   `json:"host"`
			Port           int      `json:"port"`
			User           string   `json:"user"`
			Password       string   `json:"password"`
			Name           string   `json:"name"`
			SSLMode        string   `json:"ssl_mode"`
			MaxOpenConns   int      `json:"max_open_conns"`
			ConnectTimeout Duration `json:"connect_timeout"`
			StatsInterval  Duration `json:"stats_interval"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Port            int      `json:"port"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		CORSOrigins     []string `json:"cors_origins"`
	} `json:"server,omitempty"`
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
		App: App{
			Env:     jsonCfg.App.Env,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Host:           jsonCfg.Storage.DB.Host,
				Port:           jsonCfg.Storage.DB.Port,
				User:           jsonCfg.Storage.DB.User,
				Password:       jsonCfg.Storage.DB.Password,
				Name:           jsonCfg.Storage.DB.Name,
				SSLMode:        jsonCfg.Storage.DB.SSLMode,
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
				StatsInterval:  time.Duration(jsonCfg.Storage.DB.StatsInterval),
			},
		},
		Server: Server{
			Port:            jsonCfg.Server.Port,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSOrigins:     jsonCfg.Server.CORSOrigins,
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
