// Package config loads the optional config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dreamerjackson/harvester/extractor"
	"github.com/dreamerjackson/harvester/generator"
	"github.com/go-micro/plugins/v4/config/encoder/toml"
	microconfig "go-micro.dev/v4/config"
	"go-micro.dev/v4/config/reader"
	"go-micro.dev/v4/config/reader/json"
	"go-micro.dev/v4/config/source"
	"go-micro.dev/v4/config/source/file"
)

const DefaultPath = "config.toml"

type Config struct {
	LogLevel  string
	LogFormat string
	LogFile   string

	Profile  string
	PrefsDir string

	ExportDir  string
	ExportNode int64

	StorageType string
	SQLURL      string
	BatchCount  int

	Scripts []extractor.ScriptModel
}

func Default() Config {
	return Config{
		LogLevel:   "INFO",
		LogFormat:  "json",
		Profile:    "default",
		PrefsDir:   defaultPrefsDir(),
		ExportDir:  ".",
		ExportNode: 1,
		BatchCount: 1,
	}
}

// Load reads path; a missing file yields Default.
func Load(path string) (Config, error) {
	c := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("stat config failed:%w", err)
	}

	enc := toml.NewEncoder()
	cfg, err := microconfig.NewConfig(microconfig.WithReader(json.NewReader(reader.WithEncoder(enc))))
	if err != nil {
		return c, fmt.Errorf("new config failed:%w", err)
	}
	defer cfg.Close()

	err = cfg.Load(file.NewSource(
		file.WithPath(path),
		source.WithEncoder(enc),
	))
	if err != nil {
		return c, fmt.Errorf("load config %s failed:%w", path, err)
	}

	c.LogLevel = cfg.Get("logLevel").String(c.LogLevel)
	c.LogFormat = cfg.Get("log", "format").String(c.LogFormat)
	c.LogFile = cfg.Get("log", "file").String(c.LogFile)
	c.Profile = cfg.Get("profile").String(c.Profile)
	c.PrefsDir = cfg.Get("prefsDir").String(c.PrefsDir)
	c.ExportDir = cfg.Get("export", "dir").String(c.ExportDir)
	c.ExportNode = int64(cfg.Get("export", "node").Int(int(c.ExportNode)))
	if ip := cfg.Get("export", "nodeIP").String(""); ip != "" {
		c.ExportNode = generator.NodeByIP(ip)
	}
	c.StorageType = cfg.Get("storage", "type").String(c.StorageType)
	c.SQLURL = cfg.Get("storage", "sqlURL").String(c.SQLURL)
	c.BatchCount = cfg.Get("storage", "batchCount").Int(c.BatchCount)

	if err := cfg.Get("scripts").Scan(&c.Scripts); err != nil {
		return c, fmt.Errorf("read scripts failed:%w", err)
	}

	return c, nil
}

func defaultPrefsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".harvester"
	}

	return filepath.Join(dir, "harvester")
}
