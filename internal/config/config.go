// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Store         StoreConfig         `toml:"store"`
	Radarr        *RadarrConfig       `toml:"radarr"`
	Sonarr        *SonarrConfig       `toml:"sonarr"`
	Images        ImagesConfig        `toml:"images"`
	Notifications NotificationsConfig `toml:"notifications"`

	// Unresolved lists environment variables that were referenced but not set.
	// Their values decode as empty strings, disabling whatever needed them.
	Unresolved []string `toml:"-"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	APIKey   string `toml:"api_key"`

	// LogFile enables rotated file logging in addition to stderr.
	LogFile       string `toml:"log_file"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type RadarrConfig struct {
	URL              string `toml:"url"`
	APIKey           string `toml:"api_key"`
	RootFolder       string `toml:"root_folder"`
	QualityProfileID int    `toml:"quality_profile_id"`
}

// Enabled reports whether Radarr has both an address and credentials.
func (c *RadarrConfig) Enabled() bool {
	return c != nil && c.URL != "" && c.APIKey != ""
}

type SonarrConfig struct {
	URL              string `toml:"url"`
	APIKey           string `toml:"api_key"`
	RootFolder       string `toml:"root_folder"`
	QualityProfileID int    `toml:"quality_profile_id"`
	SeasonFolder     *bool  `toml:"season_folder"`
}

// Enabled reports whether Sonarr has both an address and credentials.
func (c *SonarrConfig) Enabled() bool {
	return c != nil && c.URL != "" && c.APIKey != ""
}

// UseSeasonFolder defaults to true when unset.
func (c *SonarrConfig) UseSeasonFolder() bool {
	return c == nil || c.SeasonFolder == nil || *c.SeasonFolder
}

type ImagesConfig struct {
	CDNBase         string `toml:"cdn_base"`
	DefaultProtocol string `toml:"default_protocol"`
}

type NotificationsConfig struct {
	Ntfy *NtfyConfig `toml:"ntfy"`
}

type NtfyConfig struct {
	URL     string        `toml:"url"`
	Token   string        `toml:"token"`
	Timeout time.Duration `toml:"timeout"`
}

// Load reads, parses and validates the configuration file.
// Variables referenced with ${VAR:?message} that are unset fail the load;
// plain ${VAR} references that are unset are recorded in Config.Unresolved.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file and applies defaults.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, unresolved, required := substituteEnvVars(string(data))
	if len(required) > 0 {
		return nil, &ConfigError{Path: path, Missing: required}
	}
	content = blankUnresolved(content)

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Unresolved = unresolved
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8484
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.LogMaxSizeMB == 0 {
		c.Server.LogMaxSizeMB = 50
	}
	if c.Server.LogMaxBackups == 0 {
		c.Server.LogMaxBackups = 3
	}
	if c.Server.LogMaxAgeDays == 0 {
		c.Server.LogMaxAgeDays = 28
	}

	if c.Store.Backend == "" {
		c.Store.Backend = BackendJSON
	}
	if c.Store.Path == "" {
		switch c.Store.Backend {
		case BackendSQLite:
			c.Store.Path = "./data/arrlist.db"
		default:
			c.Store.Path = "./data/lists.json"
		}
	}

	if c.Notifications.Ntfy != nil && c.Notifications.Ntfy.Timeout == 0 {
		c.Notifications.Ntfy.Timeout = 10 * time.Second
	}
}

// Address is the host:port the daemon listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars expands environment references in content.
// Unset plain references are left in place and returned in unresolved.
// Unset ${VAR:?message} references are returned in required as "VAR: message".
// Empty values count as unset for both :- and :?. Comment lines are left alone.
func substituteEnvVars(content string) (string, []string, []string) {
	var unresolved, required []string
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			m := envVarPattern.FindStringSubmatch(match)
			name, op, arg := m[1], m[2], m[3]
			value, ok := os.LookupEnv(name)

			switch op {
			case "-":
				if value == "" {
					return arg
				}
				return value
			case "?":
				if value == "" {
					msg := strings.TrimSpace(arg)
					if msg == "" {
						msg = "required"
					}
					required = append(required, name+": "+msg)
					return match
				}
				return value
			}

			if !ok {
				unresolved = append(unresolved, name)
				return match
			}
			return value
		})
	}
	return strings.Join(lines, "\n"), unresolved, required
}

// blankUnresolved empties the references substituteEnvVars left in place.
func blankUnresolved(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "#") {
			lines[i] = envVarPattern.ReplaceAllString(line, "")
		}
	}
	return strings.Join(lines, "\n")
}
