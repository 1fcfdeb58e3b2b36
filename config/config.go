package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultQueryTimeout        = 30 * time.Second
	defaultLatestWindow        = 90 * 24 * time.Hour
	defaultFreshnessWindow     = 30 * 24 * time.Hour
	defaultPriceHistoryPreload = 14 * 24 * time.Hour
	defaultPriceSource         = "bcl"
	defaultFeedPath            = "data/products.json"
	defaultCSVPath             = "data/products.csv"
	defaultFeedTimeout         = 5 * time.Minute
	defaultMaxRequestBodySize  = "1M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Feed configures where the raw product feed is fetched from
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// Refresh configures the daily download → ingest → persist task
	Refresh *RefreshConfig `json:"refresh" yaml:"refresh"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines the single backing-store connection.
type DatabaseConfig struct {
	// Dialect is one of mysql, postgresql (alias postgres) or sqlite
	Dialect string `json:"dialect" yaml:"dialect"`

	// LegacyDialectInference allows an empty dialect to be guessed from the host name
	LegacyDialectInference bool `json:"legacyDialectInference" yaml:"legacyDialectInference"`

	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	// Path is the database file for the sqlite dialect (":memory:" allowed)
	Path string `json:"path" yaml:"path"`

	// QueryTimeout bounds every statement sent through the gateway
	QueryTimeout time.Duration `json:"queryTimeout" yaml:"queryTimeout"`
}

// CatalogConfig holds the store thresholds.
type CatalogConfig struct {
	// LatestWindow bounds the search for a product's latest price observation
	LatestWindow time.Duration `json:"latestWindow" yaml:"latestWindow"`

	// FreshnessWindow decides whether a product is active and therefore loaded
	FreshnessWindow time.Duration `json:"freshnessWindow" yaml:"freshnessWindow"`

	// IncludeInactive also loads products whose latest observation is older than FreshnessWindow
	IncludeInactive bool `json:"includeInactive" yaml:"includeInactive"`

	// PriceHistoryPreload is how far back price observations are cached at startup
	PriceHistoryPreload time.Duration `json:"priceHistoryPreload" yaml:"priceHistoryPreload"`

	// PriceSource is written to price_history.source
	PriceSource string `json:"priceSource" yaml:"priceSource"`
}

// FeedConfig defines the feed location.
type FeedConfig struct {
	// URL is an http(s) endpoint serving the feed. It takes precedence over BucketURL.
	URL string `json:"url" yaml:"url"`

	// Timeout bounds one download
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// BucketURL is a gocloud blob URL (file:///srv/feed, s3://bucket?region=..., gs://bucket).
	// Empty means the feed is already present at LocalPath.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Key is the object key of the feed within the bucket
	Key string `json:"key" yaml:"key"`

	// LocalPath is where the feed is stored before ingestion
	LocalPath string `json:"localPath" yaml:"localPath"`

	// CSVPath is where the ranked list is exported
	CSVPath string `json:"csvPath" yaml:"csvPath"`
}

// RefreshConfig defines the supervised refresh task.
type RefreshConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Hour of day (local time) at which the daily refresh runs
	Hour int `json:"hour" yaml:"hour"`

	// RunOnStart triggers one refresh right after startup
	RunOnStart bool `json:"runOnStart" yaml:"runOnStart"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: DATABASE_QUERYTIMEOUT -> database.queryTimeout
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every unset section and threshold.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.QueryTimeout <= 0 {
		cfg.Database.QueryTimeout = defaultQueryTimeout
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.LatestWindow <= 0 {
		cfg.Catalog.LatestWindow = defaultLatestWindow
	}
	if cfg.Catalog.FreshnessWindow <= 0 {
		cfg.Catalog.FreshnessWindow = defaultFreshnessWindow
	}
	if cfg.Catalog.PriceHistoryPreload <= 0 {
		cfg.Catalog.PriceHistoryPreload = defaultPriceHistoryPreload
	}
	if strings.TrimSpace(cfg.Catalog.PriceSource) == "" {
		cfg.Catalog.PriceSource = defaultPriceSource
	}

	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	if cfg.Feed.LocalPath == "" {
		cfg.Feed.LocalPath = defaultFeedPath
	}
	if cfg.Feed.CSVPath == "" {
		cfg.Feed.CSVPath = defaultCSVPath
	}
	if cfg.Feed.Timeout <= 0 {
		cfg.Feed.Timeout = defaultFeedTimeout
	}

	if cfg.Refresh == nil {
		cfg.Refresh = &RefreshConfig{}
	}
	if cfg.Refresh.Hour < 0 || cfg.Refresh.Hour > 23 {
		cfg.Refresh.Hour = 0
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
