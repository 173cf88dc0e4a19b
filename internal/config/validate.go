package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validBackends = map[string]bool{
	BackendJSON: true, BackendSQLite: true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.LogMaxSizeMB < 0 || c.Server.LogMaxBackups < 0 || c.Server.LogMaxAgeDays < 0 {
		errs = append(errs, "server: log rotation settings must not be negative")
	}

	if !validBackends[c.Store.Backend] {
		errs = append(errs, fmt.Sprintf("store.backend: must be one of json, sqlite; got %q", c.Store.Backend))
	}

	if c.Radarr == nil && c.Sonarr == nil {
		errs = append(errs, "at least one of [radarr] or [sonarr] must be configured")
	}
	if c.Radarr != nil {
		errs = append(errs, checkService("radarr", c.Radarr.URL, c.Radarr.QualityProfileID)...)
	}
	if c.Sonarr != nil {
		errs = append(errs, checkService("sonarr", c.Sonarr.URL, c.Sonarr.QualityProfileID)...)
	}

	switch c.Images.DefaultProtocol {
	case "", "http", "https":
	default:
		errs = append(errs, fmt.Sprintf("images.default_protocol: must be http or https; got %q", c.Images.DefaultProtocol))
	}
	if c.Images.CDNBase != "" && !isHTTPURL(c.Images.CDNBase) {
		errs = append(errs, fmt.Sprintf("images.cdn_base: invalid URL %q", c.Images.CDNBase))
	}

	if n := c.Notifications.Ntfy; n != nil {
		if n.URL != "" && !isHTTPURL(n.URL) {
			errs = append(errs, fmt.Sprintf("notifications.ntfy.url: invalid URL %q", n.URL))
		}
		if n.Timeout < 0 {
			errs = append(errs, "notifications.ntfy.timeout: must not be negative")
		}
	}

	return errs
}

func checkService(name, rawURL string, profileID int) []string {
	var errs []string
	switch {
	case rawURL == "":
		errs = append(errs, fmt.Sprintf("%s.url: required when %s is configured", name, name))
	case !isHTTPURL(rawURL):
		errs = append(errs, fmt.Sprintf("%s.url: invalid URL %q", name, rawURL))
	}
	if profileID < 0 {
		errs = append(errs, fmt.Sprintf("%s.quality_profile_id: must not be negative, got %d", name, profileID))
	}
	return errs
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
