// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/balancedtree/replay"
)

const configFileName = ".avlreplay.yaml"

type ReplayConfig struct {
	KeyMode       string `yaml:"key_mode"`
	CheckEachStep bool   `yaml:"check_each_step"`
}

type StressConfig struct {
	Count        int    `yaml:"count"`
	Seed         uint64 `yaml:"seed"`
	ShowProgress bool   `yaml:"show_progress"`
}

type Config struct {
	Replay ReplayConfig `yaml:"replay"`
	Stress StressConfig `yaml:"stress"`
}

var defaultConfig = Config{
	Replay: ReplayConfig{
		KeyMode:       replay.KeyModeInt,
		CheckEachStep: true,
	},
	Stress: StressConfig{
		Count:        10000,
		Seed:         1,
		ShowProgress: true,
	},
}

// LoadConfig reads ~/.avlreplay.yaml. Any problem reading or decoding the
// file falls back to the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// start from the defaults so a partial file only overrides what it names
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to decode %s: %w", configPath, err)
	}
	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// options turns the replay section into session options.
func (c *Config) options() replay.Options {
	opts := replay.DefaultOptions()
	opts.CheckEachStep = c.Replay.CheckEachStep
	return opts
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(styles *Styles) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Println(styles.Fail.Render(fmt.Sprintf("Failed to get config path: %v", err)))
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")
		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Println(styles.Fail.Render(fmt.Sprintf("Failed to create default config file: %v", err)))
			return
		}
		fmt.Println(styles.Pass.Render("Created default configuration at: " + configPath))
		fmt.Println()
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Println(styles.Fail.Render(fmt.Sprintf("Failed to load configuration: %v", err)))
		return
	}

	fmt.Println(styles.Title.Render("avlreplay configuration"))
	fmt.Printf("Config file: %s\n\n", configPath)

	fmt.Println(styles.Heading.Render("replay"))
	fmt.Printf("  key_mode:        %s\n", config.Replay.KeyMode)
	fmt.Printf("  check_each_step: %t\n\n", config.Replay.CheckEachStep)

	fmt.Println(styles.Heading.Render("stress"))
	fmt.Printf("  count:           %d\n", config.Stress.Count)
	fmt.Printf("  seed:            %d\n", config.Stress.Seed)
	fmt.Printf("  show_progress:   %t\n", config.Stress.ShowProgress)
}
