// Package edcbconfig loads edcb.Client settings from the environment:
// typed fields, a getEnv-style helper per type, and a single Load()
// constructor.
package edcbconfig

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/edcb-go/ctrlcmd/edcb"
)

// Config holds the settings needed to build a ready-to-use edcb.Client
// plus the local caches that sit in front of it.
type Config struct {
	// Transport: either pipe name (Windows, default) or Host/Port (TCP).
	PipeName string
	Host     string
	Port     int

	ConnectTimeout time.Duration

	// CacheDBPath is where edcbcache.Open persists enumeration snapshots.
	// Empty disables the sqlite cache.
	CacheDBPath string
	// FileCacheDir is where the brotli file cache for FileCopy/FileCopy2
	// payloads lives. Empty disables the file cache.
	FileCacheDir string

	// MetricsEnabled attaches a prometheus collector to the client built by
	// NewClient; RegisterMetrics registers it on a registry.
	MetricsEnabled bool
}

// Load reads Config from the environment.
func Load() *Config {
	c := &Config{
		PipeName:       getEnv("EDCB_PIPE_NAME", "EpgTimerSrvNoWaitPipe"),
		Host:           os.Getenv("EDCB_HOST"),
		Port:           getEnvInt("EDCB_PORT", 4510),
		ConnectTimeout: getEnvDuration("EDCB_CONNECT_TIMEOUT", 15*time.Second),
		CacheDBPath:    os.Getenv("EDCB_CACHE_DB"),
		FileCacheDir:   os.Getenv("EDCB_FILE_CACHE_DIR"),
		MetricsEnabled: getEnvBool("EDCB_METRICS_ENABLED", false),
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 15 * time.Second
	}
	return c
}

// NewClient builds an edcb.Client from Config: TCP transport if Host is
// set, pipe transport otherwise.
func (c *Config) NewClient() *edcb.Client {
	client := edcb.NewClient()
	client.SetConnectTimeOutSec(c.ConnectTimeout.Seconds())
	if c.Host != "" {
		client.SetNWSetting(c.Host, c.Port)
	} else {
		client.SetPipeSetting(c.PipeName)
	}
	if c.MetricsEnabled {
		client.SetMetrics(edcb.NewMetrics())
	}
	return client
}

// RegisterMetrics registers client's collector (if any) on reg. Callers
// that want CtrlCmd metrics scraped alongside their own should call this
// once after NewClient.
func RegisterMetrics(reg prometheus.Registerer, client *edcb.Client) error {
	if m := client.Metrics(); m != nil {
		return reg.Register(m)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes")
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
