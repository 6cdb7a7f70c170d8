package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Source kinds understood by the driver factory.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourceMemgraph = "memgraph"
	SourceMinio    = "minio"
)

type SourceConfig struct {
	Kind  string `toml:"kind"`
	Path  string `toml:"path"`
	URL   string `toml:"url"`
	Delay string `toml:"delay"` // artificial latency, e.g. "300ms"
}

type ServerConfig struct {
	Port string `toml:"port"`
	Mode string `toml:"mode"` // gin mode: debug, release or test
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	Object    string `toml:"object"`
	UseSSL    bool   `toml:"use_ssl"`
	Region    string `toml:"region"`
}

type Config struct {
	Source   SourceConfig   `toml:"source"`
	Server   ServerConfig   `toml:"server"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Minio    MinioConfig    `toml:"minio"`
}

func Default() *Config {
	return &Config{
		Source: SourceConfig{Kind: SourceEmbedded},
		Server: ServerConfig{Port: "8080", Mode: "release"},
		Memgraph: MemgraphConfig{
			URI: "bolt://localhost:7687",
		},
		Minio: MinioConfig{
			Object: "classmem.json",
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but treats a missing file as an empty one.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides file values with environment variables when they are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Source.Kind, "CLASSMEM_SOURCE")
	set(&c.Source.Path, "CLASSMEM_PATH")
	set(&c.Source.URL, "CLASSMEM_URL")
	set(&c.Source.Delay, "CLASSMEM_DELAY")
	set(&c.Server.Port, "PORT")
	set(&c.Server.Mode, "GIN_MODE")
	set(&c.Memgraph.URI, "MEMGRAPH_URI")
	set(&c.Memgraph.User, "MEMGRAPH_USER")
	set(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")
	set(&c.Minio.Endpoint, "MINIO_ENDPOINT")
	set(&c.Minio.AccessKey, "MINIO_ACCESS_KEY")
	set(&c.Minio.SecretKey, "MINIO_SECRET_KEY")
	set(&c.Minio.Bucket, "MINIO_BUCKET")
	set(&c.Minio.Object, "MINIO_OBJECT")
	set(&c.Minio.Region, "MINIO_REGION")
	if v := getenv("MINIO_USE_SSL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Minio.UseSSL = b
		}
	}
}

// DelayDuration parses Source.Delay. An empty value means no delay.
func (s SourceConfig) DelayDuration() (time.Duration, error) {
	if strings.TrimSpace(s.Delay) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Delay)
	if err != nil {
		return 0, fmt.Errorf("invalid source delay %q: %w", s.Delay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid source delay %q: negative", s.Delay)
	}
	return d, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Source.Kind) {
	case SourceEmbedded:
	case SourceFile:
		if c.Source.Path == "" {
			return errors.New("source kind 'file' requires source.path")
		}
	case SourceHTTP:
		if c.Source.URL == "" {
			return errors.New("source kind 'http' requires source.url")
		}
	case SourceMemgraph:
		if c.Memgraph.URI == "" {
			return errors.New("source kind 'memgraph' requires memgraph.uri")
		}
	case SourceMinio:
		if c.Minio.Endpoint == "" || c.Minio.Bucket == "" || c.Minio.Object == "" {
			return errors.New("source kind 'minio' requires minio.endpoint, minio.bucket and minio.object")
		}
	default:
		return fmt.Errorf("unsupported source kind: %q", c.Source.Kind)
	}

	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode: %q", c.Server.Mode)
	}

	if _, err := c.Source.DelayDuration(); err != nil {
		return err
	}
	return nil
}
