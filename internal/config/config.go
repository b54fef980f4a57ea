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

// Package config loads command line configuration from a YAML file and
// the environment.
package config

// Config is the root configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Lookup     LookupConfig     `yaml:"lookup"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig holds archive and snapshot locations.
type DictionaryConfig struct {
	// Paths are archive files or directories, in build order.
	Paths    []string `yaml:"paths"    env:"YOMIDICT_DICTIONARIES" env-separator:","`
	Snapshot string   `yaml:"snapshot" env:"YOMIDICT_SNAPSHOT"`
}

// LookupConfig holds lookup engine settings.
type LookupConfig struct {
	Threshold int      `yaml:"threshold"  env:"YOMIDICT_THRESHOLD"  env-default:"80"`
	Algorithm string   `yaml:"algorithm"  env:"YOMIDICT_ALGORITHM"  env-default:"levenshtein"`
	Workers   int      `yaml:"workers"    env:"YOMIDICT_WORKERS"    env-default:"1"`
	CacheSize int      `yaml:"cache_size" env:"YOMIDICT_CACHE_SIZE" env-default:"128"`
	Fold      []string `yaml:"fold"       env:"YOMIDICT_FOLD"       env-separator:","`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"YOMIDICT_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"YOMIDICT_LOG_FORMAT" env-default:"text"`
}
