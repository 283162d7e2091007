package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional TOML configuration file.
//
//	library = "/opt/gmt/lib/libgmt"
//	session_name = "batch"
//	log_level = "debug"
type fileConfig struct {
	Library     string `toml:"library"`
	SessionName string `toml:"session_name"`
	LogLevel    string `toml:"log_level"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("read config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}
