// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "YOMIDICT_CONFIG"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The file path is path if not empty, otherwise the value of
// YOMIDICT_CONFIG. When neither is set configuration is loaded from the
// environment and defaults only. A path that was given but does not exist
// is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := keepZeros(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// zeroable holds the settings for which zero is a meaningful value.
type zeroable struct {
	Lookup struct {
		Threshold *int `yaml:"threshold"`
		CacheSize *int `yaml:"cache_size"`
	} `yaml:"lookup"`
}

// keepZeros restores settings set to zero in the file at path. cleanenv
// applies env-default to any field left at its zero value, so an explicit
// "threshold: 0" would otherwise read as the default. Values set in the
// environment still take priority.
func keepZeros(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var z zeroable
	if err := yaml.Unmarshal(b, &z); err != nil {
		return err
	}

	if v := z.Lookup.Threshold; v != nil && *v == 0 && !isEnvSet("YOMIDICT_THRESHOLD") {
		cfg.Lookup.Threshold = 0
	}
	if v := z.Lookup.CacheSize; v != nil && *v == 0 && !isEnvSet("YOMIDICT_CACHE_SIZE") {
		cfg.Lookup.CacheSize = 0
	}
	return nil
}

func isEnvSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
