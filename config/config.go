package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "hrmanager.yaml"

type Config struct {
	DataDir string `yaml:"data_dir"`
	// Document paths. Relative paths are resolved against DataDir.
	CandidatesFile string `yaml:"candidates_file"`
	PositionsFile  string `yaml:"positions_file"`
	InterviewsFile string `yaml:"interviews_file"`
	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"` // empty means stderr
	// Audit trail of model changes
	AuditEnabled bool   `yaml:"audit_enabled"`
	AuditFile    string `yaml:"audit_file"`
}

// LoadConfig reads .env, then the environment, then the YAML file named by
// HR_CONFIG_FILE (or configFile when non-empty). Later sources win.
func LoadConfig(configFile string) (*Config, error) {
	// .env is optional; only used when running from a checkout
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:        getEnv("HR_DATA_DIR", "data"),
		CandidatesFile: getEnv("HR_CANDIDATES_FILE", "candidates.json"),
		PositionsFile:  getEnv("HR_POSITIONS_FILE", "positions.json"),
		InterviewsFile: getEnv("HR_INTERVIEWS_FILE", "interviews.json"),
		LogLevel:       getEnv("HR_LOG_LEVEL", "warn"),
		LogFile:        getEnv("HR_LOG_FILE", ""),
		AuditEnabled:   getEnvBool("HR_AUDIT_ENABLED", true),
		AuditFile:      getEnv("HR_AUDIT_FILE", "audit.log"),
	}

	if configFile == "" {
		configFile = getEnv("HR_CONFIG_FILE", DefaultConfigFile)
	}
	if err := cfg.overlay(configFile); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		log.Println("WARNING: HR_DATA_DIR is empty. Data files will be written to the working directory.")
	}
	return cfg, nil
}

// overlay applies the keys present in the YAML file at path. A missing file
// is not an error.
func (c *Config) overlay(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) CandidatesPath() string { return c.resolve(c.CandidatesFile) }
func (c *Config) PositionsPath() string  { return c.resolve(c.PositionsFile) }
func (c *Config) InterviewsPath() string { return c.resolve(c.InterviewsFile) }
func (c *Config) AuditPath() string      { return c.resolve(c.AuditFile) }

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
