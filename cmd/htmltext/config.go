// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/htmltext"
)

// defaultLogLevel keeps CLI quiet unless something goes wrong.
const defaultLogLevel = "warn"

// fileConfig is the YAML config file layout.
type fileConfig struct {
	// Bullet is the unordered and menu list marker.
	Bullet string `yaml:"bullet"`
	// LogLevel is one of debug, info, warn, error or none.
	LogLevel string `yaml:"log_level"`
	// Tags binds HTML tag names to handler kinds.
	Tags map[string]string `yaml:"tags,omitempty"`
}

// defaultConfig returns config with built-in values.
func defaultConfig() fileConfig {
	return fileConfig{
		Bullet:   "*",
		LogLevel: defaultLogLevel,
		Tags:     htmltext.DefaultTags(),
	}
}

// loadConfig reads YAML config file, empty path yields defaults.
func loadConfig(path string) (fileConfig, error) {
	config := defaultConfig()
	path = strings.TrimSpace(path)
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	var loaded fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("decode config file %q: %w", path, err)
	}

	if strings.TrimSpace(loaded.Bullet) != "" {
		config.Bullet = loaded.Bullet
	}

	if strings.TrimSpace(loaded.LogLevel) != "" {
		config.LogLevel = loaded.LogLevel
	}

	for tag, kind := range loaded.Tags {
		config.Tags[tag] = kind
	}

	return config, nil
}

// encodeConfig renders config as YAML document.
func encodeConfig(config fileConfig) ([]byte, error) {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return out.Bytes(), nil
}

// parseTagBindings parses repeated tag=kind flag values.
func parseTagBindings(values []string) (map[string]string, error) {
	bindings := make(map[string]string, len(values))
	for _, value := range values {
		tag, kind, ok := strings.Cut(value, "=")
		tag = strings.TrimSpace(tag)
		kind = strings.TrimSpace(kind)
		if !ok || tag == "" || kind == "" {
			return nil, fmt.Errorf("invalid tag binding %q, expected tag=kind", value)
		}

		bindings[tag] = kind
	}

	return bindings, nil
}
