package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name            string
		envVars         map[string]string
		expectedPort    string
		expectedTimeout int
	}{
		{
			name:            "defaults when nothing set",
			envVars:         map[string]string{},
			expectedPort:    "8000",
			expectedTimeout: 10,
		},
		{
			name:            "uses PORT env var when set",
			envVars:         map[string]string{"PORT": "3000"},
			expectedPort:    "3000",
			expectedTimeout: 10,
		},
		{
			name:            "uses ANALYSIS_CALL_TIMEOUT env var when set",
			envVars:         map[string]string{"ANALYSIS_CALL_TIMEOUT": "30"},
			expectedPort:    "8000",
			expectedTimeout: 30,
		},
		{
			name:            "ignores non-numeric timeout",
			envVars:         map[string]string{"ANALYSIS_CALL_TIMEOUT": "soon"},
			expectedPort:    "8000",
			expectedTimeout: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}

			if cfg.Analysis.CallTimeout != tt.expectedTimeout {
				t.Errorf("CallTimeout = %v, want %v", cfg.Analysis.CallTimeout, tt.expectedTimeout)
			}
		})
	}
}

func TestLoadFromEnv_CredentialsAbsentByDefault(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Analysis.Classifier.APIKey != "" {
		t.Error("classifier API key should default to empty")
	}
	if cfg.Analysis.Search.APIKey != "" {
		t.Error("search API key should default to empty")
	}
	if cfg.Analysis.Classifier.Endpoint == "" {
		t.Error("classifier endpoint should have a default")
	}
	if cfg.Analysis.Search.Endpoint == "" {
		t.Error("search endpoint should have a default")
	}
	if cfg.Analysis.Classifier.Model == "" {
		t.Error("classifier model should have a default")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() returned error for default config: %v", err)
	}
}

func TestValidate_EmptyPort(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Server.Port = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should return error for empty port")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should return error for unknown log level")
	}
}

func TestValidate_ZeroTimeout(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Analysis.CallTimeout = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should return error for zero call timeout")
	}
}

func TestValidate_KeyWithoutEndpoint(t *testing.T) {
	os.Clearenv()
	cfg, _ := LoadFromEnv()
	cfg.Analysis.Search.APIKey = "sk-test"
	cfg.Analysis.Search.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should return error when a key is set without an endpoint")
	}
}
