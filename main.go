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
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func loadConfigOrDefaults() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return defaults()
	}
	return config
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
	)
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
A self-balancing AVL tree you can poke at [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	runExplorer := func(cmd *cobra.Command, args []string) error {
		config := loadConfigOrDefaults()
		session := NewSession(NewLessonCache(), config.Bench.Seed)
		return runBubbleTeaApp(session, config)
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Run opens the explorer: type commands, watch the tree rebalance and read about each step"),
		Args:  cobra.NoArgs,
		RunE:  runExplorer,
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Replays a key sequence step by step",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Demo inserts keys one at a time and prints the rotations, height and diagram after each insert"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefaults()
			keys, err := cmd.Flags().GetIntSlice("keys")
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				keys = config.Demo.Sequence
			}
			return runDemo(cmd.OutOrStdout(), keys, config.UI.ShowHeights)
		},
	}
	cmdDemo.Flags().IntSlice("keys", nil, "keys to insert, e.g. --keys 30,20,10")

	var cmdCompare = &cobra.Command{
		Use:   "compare",
		Short: "Compares AVL and plain BST heights",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Compare feeds sequential, reverse and random keys to an AVL tree and a plain BST and reports their heights"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefaults()
			sizes, err := cmd.Flags().GetIntSlice("size")
			if err != nil {
				return err
			}
			chart, _ := cmd.Flags().GetBool("chart")

			sizes = clampSizes(sizes)
			if len(sizes) == 0 {
				return fmt.Errorf("sizes must be between 1 and %d", maxBSTSize)
			}

			bar := newProgressBar(len(sizes)*3, "building trees")
			rows := compareHeights(sizes, config.Bench.Seed, func() { _ = bar.Add(1) })
			_ = bar.Finish()

			if chart {
				return runDashboard(rows, time.Duration(config.UI.TipInterval)*time.Second)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderComparison(rows))
			return nil
		},
	}
	cmdCompare.Flags().IntSlice("size", []int{100, 1_000, 10_000}, "key counts to compare")
	cmdCompare.Flags().Bool("chart", false, "show a terminal dashboard instead of a table")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Times insert, search and delete workloads",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Bench times the AVL tree on sequential, reverse and random workloads"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefaults()
			sizes := config.Bench.Sizes
			if cmd.Flags().Changed("sizes") {
				sizes, _ = cmd.Flags().GetIntSlice("sizes")
				if sizes = positiveSizes(sizes); len(sizes) == 0 {
					return fmt.Errorf("sizes must be at least 1")
				}
			}

			bar := newProgressBar(len(sizes)*9, "benchmarking")
			results := runBench(sizes, config.Bench.Seed, func() { _ = bar.Add(1) })
			_ = bar.Finish()

			fmt.Fprintln(cmd.OutOrStdout(), renderBench(results))
			return nil
		},
	}
	cmdBench.Flags().IntSlice("sizes", nil, "key counts to benchmark (default from ~/.arbor.yaml)")

	var cmdCheck = &cobra.Command{
		Use:   "check [KEYS...]",
		Short: "Builds a tree from keys and verifies it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Check inserts the given keys (or the keys in --file, '-' for stdin), verifies the AVL invariants and prints every traversal"),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			var keys []int
			var err error
			switch {
			case file != "" && len(args) > 0:
				return fmt.Errorf("give keys as arguments or with --file, not both")
			case file != "":
				keys, err = readKeysFile(file)
			default:
				keys, err = parseKeyArgs(args)
			}
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), keys)
		},
	}
	cmdCheck.Flags().StringP("file", "f", "", "read keys from a file")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Usage displays the arbor CLI usage guide"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefaults()
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage(config.UI.WordWrap))
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show or create ~/.arbor.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "arbor",
		Version:       version,
		Long:          asciiLogo,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to the explorer when no subcommand is provided
		RunE: runExplorer,
	}
	rootCmd.AddCommand(cmdRun, cmdDemo, cmdCompare, cmdBench, cmdCheck, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("arbor: %v", err)
	}
}
