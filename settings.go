package gemcore

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-pro-preview"

// ConfigFileEnv names the environment variable that points at an alternate
// YAML config file. When unset, ./gemcore.yaml is tried.
const ConfigFileEnv = "GEMCORE_CONFIG"

const defaultConfigFile = "gemcore.yaml"

// Settings holds the resolved client configuration. A Settings value is
// built once by LoadSettings (or by New via client options) and is not
// modified afterwards.
type Settings struct {
	// APIKey authenticates against the Gemini API. Required unless both
	// Project and Location are set, in which case the Vertex AI backend is
	// used with application default credentials.
	APIKey string

	// Model is the default model identifier for all operations.
	Model string

	// Project and Location select the Vertex AI backend when both are set.
	Project  string
	Location string
}

// UsesVertex reports whether the settings select the Vertex AI backend.
func (s Settings) UsesVertex() bool {
	return s.APIKey == "" && s.Project != "" && s.Location != ""
}

// Validate checks that the settings can authenticate a client.
func (s Settings) Validate() error {
	if s.APIKey == "" && !s.UsesVertex() {
		return fmt.Errorf("GOOGLE_API_KEY is not set (or set GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION for Vertex AI)")
	}
	return nil
}

// fileSettings is the YAML config file shape.
type fileSettings struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Project  string `yaml:"project"`
	Location string `yaml:"location"`
}

// LoadSettings resolves settings from the environment.
//
// Precedence, highest first: process environment, .env file (loaded via
// godotenv without overriding existing variables), YAML config file
// ($GEMCORE_CONFIG or ./gemcore.yaml), built-in defaults. Explicit client
// options are applied on top by New.
func LoadSettings() (Settings, error) {
	godotenv.Load() // .env file if present

	s := Settings{Model: DefaultModel}

	if fs, ok := loadConfigFile(); ok {
		if fs.APIKey != "" {
			s.APIKey = fs.APIKey
		}
		if fs.Model != "" {
			s.Model = fs.Model
		}
		if fs.Project != "" {
			s.Project = fs.Project
		}
		if fs.Location != "" {
			s.Location = fs.Location
		}
	}

	s.APIKey = getEnvOrDefault("GOOGLE_API_KEY", s.APIKey)
	s.Model = getEnvOrDefault("GEMINI_MODEL", s.Model)
	s.Project = getEnvOrDefault("GOOGLE_CLOUD_PROJECT", s.Project)
	s.Location = getEnvOrDefault("GOOGLE_CLOUD_LOCATION", s.Location)

	return s, nil
}

func loadConfigFile() (fileSettings, bool) {
	path := os.Getenv(ConfigFileEnv)
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileSettings{}, false
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return fileSettings{}, false
	}
	return fs, true
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
