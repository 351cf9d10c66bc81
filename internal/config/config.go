package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FileName = ".envlinks.yml"

	defaultServerAddr = "127.0.0.1:3647"
	defaultLogMode    = "development"
	defaultLogLevel   = "warn"
)

type (
	Config struct {
		// DatabasePath is the sqlite file backing the local key-value store.
		DatabasePath string `yaml:"databasePath"`

		// DefaultConfigPath replaces the bundled urls.json when set.
		DefaultConfigPath string `yaml:"defaultConfigPath"`

		// ObjectStorage replaces the bundled urls.json with a bucket object when an endpoint is set.
		ObjectStorage ObjectStorage `yaml:"objectStorage"`

		ServerAddr string `yaml:"serverAddr"`
		LogMode    string `yaml:"logMode"`
		LogLevel   string `yaml:"logLevel"`
	}

	ObjectStorage struct {
		Endpoint    string `yaml:"endpoint"`
		AccessKeyID string `yaml:"accessKeyID"`
		SecretKey   string `yaml:"secretKey"`
		Region      string `yaml:"region"`
		Secure      bool   `yaml:"secure"`
		Bucket      string `yaml:"bucket"`
		Object      string `yaml:"object"`
	}
)

// New builds the configuration from defaults, then the yaml file (if any),
// then ENVLINKS_* environment variables.
func New() (Config, error) {
	c := Default()

	path := os.Getenv("ENVLINKS_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, FileName)
		}
	}

	if path != "" {
		fromFile, err := Parse(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return c, err
		}
		if err == nil {
			c = merge(c, fromFile)
		}
	}

	return applyEnv(c), nil
}

func Default() Config {
	dbPath := filepath.Join(".envlinks", "envlinks.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".envlinks", "envlinks.db")
	}

	return Config{
		DatabasePath: dbPath,
		ServerAddr:   defaultServerAddr,
		LogMode:      defaultLogMode,
		LogLevel:     defaultLogLevel,
	}
}

func Parse(path string) (Config, error) {
	c := Config{}
	value, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}

	if err = yaml.Unmarshal(value, &c); err != nil {
		return c, errors.Wrap(err, "failed to parse "+path)
	}

	return c, nil
}

func (c Config) HasObjectStorage() bool {
	return c.ObjectStorage.Endpoint != ""
}

func merge(base, override Config) Config {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&base.DatabasePath, override.DatabasePath)
	set(&base.DefaultConfigPath, override.DefaultConfigPath)
	set(&base.ServerAddr, override.ServerAddr)
	set(&base.LogMode, override.LogMode)
	set(&base.LogLevel, override.LogLevel)
	if override.ObjectStorage.Endpoint != "" {
		base.ObjectStorage = override.ObjectStorage
	}
	return base
}

func applyEnv(c Config) Config {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.DatabasePath, "ENVLINKS_DATABASE_PATH")
	set(&c.DefaultConfigPath, "ENVLINKS_DEFAULT_CONFIG")
	set(&c.ServerAddr, "ENVLINKS_ADDR")
	set(&c.LogMode, "ENVLINKS_LOG_MODE")
	set(&c.LogLevel, "ENVLINKS_LOG_LEVEL")
	set(&c.ObjectStorage.Endpoint, "ENVLINKS_S3_ENDPOINT")
	set(&c.ObjectStorage.AccessKeyID, "ENVLINKS_S3_ACCESS_KEY_ID")
	set(&c.ObjectStorage.SecretKey, "ENVLINKS_S3_SECRET_KEY")
	set(&c.ObjectStorage.Region, "ENVLINKS_S3_REGION")
	set(&c.ObjectStorage.Bucket, "ENVLINKS_S3_BUCKET")
	set(&c.ObjectStorage.Object, "ENVLINKS_S3_OBJECT")
	if v, err := strconv.ParseBool(os.Getenv("ENVLINKS_S3_SECURE")); err == nil {
		c.ObjectStorage.Secure = v
	}
	return c
}
