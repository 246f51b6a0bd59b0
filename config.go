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
)

const configFileName = ".arbor.yaml"

type DemoConfig struct {
	Sequence []int `yaml:"sequence"`
}

type BenchConfig struct {
	Sizes []int  `yaml:"sizes"`
	Seed  uint64 `yaml:"seed"`
}

type UIConfig struct {
	ShowHeights bool `yaml:"show_heights"`
	TipInterval int  `yaml:"tip_interval_seconds"`
	WordWrap    int  `yaml:"word_wrap"`
}

type Config struct {
	Demo  DemoConfig  `yaml:"demo"`
	Bench BenchConfig `yaml:"bench"`
	UI    UIConfig    `yaml:"ui"`
}

var defaultConfig = Config{
	Demo: DemoConfig{
		Sequence: []int{1, 2, 3, 4, 5, 6, 7},
	},
	Bench: BenchConfig{
		Sizes: []int{1_000, 10_000, 100_000},
		Seed:  42,
	},
	UI: UIConfig{
		ShowHeights: true,
		TipInterval: 8,
		WordWrap:    80,
	},
}

// LoadConfig reads ~/.arbor.yaml. A missing or broken file is not an error;
// the defaults are used instead.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath), nil
}

func defaults() *Config {
	c := defaultConfig
	c.Demo.Sequence = append([]int(nil), defaultConfig.Demo.Sequence...)
	c.Bench.Sizes = append([]int(nil), defaultConfig.Bench.Sizes...)
	return &c
}

func loadConfigFrom(configPath string) *Config {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults()
	}

	// Start from the defaults so a partial file only overrides what it names.
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults()
	}
	config.fillGaps()
	return config
}

// fillGaps replaces values that would make a command useless.
func (c *Config) fillGaps() {
	if len(c.Demo.Sequence) == 0 {
		c.Demo.Sequence = append([]int(nil), defaultConfig.Demo.Sequence...)
	}
	sizes := positiveSizes(c.Bench.Sizes)
	if len(sizes) == 0 {
		sizes = append(sizes, defaultConfig.Bench.Sizes...)
	}
	c.Bench.Sizes = sizes
	if c.UI.TipInterval <= 0 {
		c.UI.TipInterval = defaultConfig.UI.TipInterval
	}
	if c.UI.WordWrap <= 0 {
		c.UI.WordWrap = defaultConfig.UI.WordWrap
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeConfigFile(configPath, defaults()); err != nil {
			return err
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config := loadConfigFrom(configPath)

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sDemo:%s\n", Green, Reset)
	fmt.Printf("  • %ssequence%s: %v\n", Green, Reset, config.Demo.Sequence)
	fmt.Printf("    Keys replayed by 'arbor demo' when --keys is not given\n\n")

	fmt.Printf("⏱  %sBench:%s\n", Green, Reset)
	fmt.Printf("  • %ssizes%s: %v\n", Green, Reset, config.Bench.Sizes)
	fmt.Printf("  • %sseed%s: %d\n\n", Green, Reset, config.Bench.Seed)

	fmt.Printf("🖥  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_heights%s: %t\n", Green, Reset, config.UI.ShowHeights)
	fmt.Printf("  • %stip_interval_seconds%s: %d\n", Green, Reset, config.UI.TipInterval)
	fmt.Printf("  • %sword_wrap%s: %d\n\n", Green, Reset, config.UI.WordWrap)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
	return nil
}
