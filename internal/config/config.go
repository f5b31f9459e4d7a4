// Package config is the configuration file of the steamscraper CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"steamscraper/internal/components/fetch"
	"steamscraper/internal/components/telemetry"
	"steamscraper/internal/storefront"
	"steamscraper/pkg/configutil"
	"time"
)

const DefaultPath = "steamscraper.json5"

type HttpConfig struct {
	Headers map[string]string `json:"headers"`
	Cookies map[string]string `json:"cookies"`
	// Proxy falls back to HTTPS_PROXY / HTTP_PROXY when empty.
	Proxy                   string  `json:"proxy"`
	TimeoutSeconds          int     `json:"timeout_seconds"`
	RequestsPerSecond       float64 `json:"requests_per_second"`
	Retries                 int     `json:"retries"`
	DumpDir                 string  `json:"dump_dir"`
	DisableCloudflareBypass bool    `json:"disable_cloudflare_bypass"`
}

type DefaultsConfig struct {
	Language   string `json:"language"`
	Source     string `json:"source"`
	Concurrent bool   `json:"concurrent"`
}

type Config struct {
	Http      HttpConfig       `json:"http"`
	Telemetry telemetry.Config `json:"telemetry"`
	Defaults  DefaultsConfig   `json:"defaults"`
}

func Default() Config {
	opts := fetch.DefaultOptions()
	return Config{
		Http: HttpConfig{
			Headers:        opts.Headers,
			Cookies:        opts.Cookies,
			TimeoutSeconds: int(opts.Timeout / time.Second),
		},
		Defaults: DefaultsConfig{
			Language: string(storefront.DefaultLanguage),
			Source:   "store-html",
		},
	}
}

// Load reads the config at `path` over Default(). A missing file is only an error
// if `required` is set.
func Load(path string, required bool) (Config, error) {
	cfg, err := configutil.ReadConfig(path, Default())
	if errors.Is(err, os.ErrNotExist) && !required {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// FetchOptions converts the http section into options for fetch.NewClient, the
// environment is consulted for a proxy only if none is configured.
func (c Config) FetchOptions() fetch.Options {
	opts := fetch.DefaultOptions()
	if c.Http.Headers != nil {
		opts.Headers = c.Http.Headers
	}
	if c.Http.Cookies != nil {
		opts.Cookies = c.Http.Cookies
	}
	opts.Proxy = c.Http.Proxy
	if opts.Proxy == "" {
		opts.Proxy = fetch.ProxyFromEnvironment()
	}
	if c.Http.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(c.Http.TimeoutSeconds) * time.Second
	}
	opts.RequestsPerSecond = c.Http.RequestsPerSecond
	opts.Retries = c.Http.Retries
	opts.DumpDir = c.Http.DumpDir
	opts.CloudflareBypass = !c.Http.DisableCloudflareBypass
	return opts
}
