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
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func main() {
	styles := NewStyles()
	banner := fmt.Sprintf("avlreplay %s: replay operations against a height balanced tree", version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cmdRun = &cobra.Command{
		Use:   "run <script>",
		Short: "Replay a script and check its expectations",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Run applies every operation of the script, prints one line per step and checks the expect section"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if cmd.Flags().Changed("check") {
				config.Replay.CheckEachStep, _ = cmd.Flags().GetBool("check")
			}

			runner, err := replayScript(ctx, os.Stdout, args[0], config, styles)
			if runner != nil {
				printSummary(os.Stdout, runner, styles)
			}
			if err != nil {
				log.Fatalf("%s %v", styles.Fail.Render("FAIL"), err)
			}
			fmt.Println(styles.Pass.Render("PASS"))
		},
	}
	cmdRun.Flags().Bool("check", true, "verify every tree invariant after each step")

	var cmdPrint = &cobra.Command{
		Use:   "print <script>",
		Short: "Replay a script and draw the final tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Print draws the tree sideways: right subtree above, left subtree below"),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			runner, err := replayScript(ctx, nil, args[0], config, styles)
			if runner == nil {
				log.Fatalf("Error replaying script: %v", err)
			}
			if err != nil {
				log.Printf("%s %v", styles.Fail.Render("warning:"), err)
			}

			drawing := runner.Render()
			fmt.Print(drawing)
			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				if err := copyToClipboard(drawing); err != nil {
					log.Printf("%v", err)
				} else {
					log.Println("Tree successfully copied to clipboard!")
				}
			}
		},
	}
	cmdPrint.Flags().Bool("copy", false, "copy the drawing to the clipboard")

	var cmdStep = &cobra.Command{
		Use:   "step <script>",
		Short: "Walk through a script one operation at a time",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			script, runner, err := openScript(args[0], loadConfigOrDefault())
			if err != nil {
				log.Fatalf("Error loading script: %v", err)
			}
			if err := runStepper(script, runner, styles); err != nil {
				log.Fatalf("Error running stepper: %v", err)
			}
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Random inserts and deletes with invariant checks after each one",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			count, seed, progress := config.Stress.Count, config.Stress.Seed, config.Stress.ShowProgress
			if cmd.Flags().Changed("count") {
				count, _ = cmd.Flags().GetInt("count")
			}
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetUint64("seed")
			}
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				progress = false
			}

			report, err := runStress(ctx, count, seed, progress)
			fmt.Printf("inserts %d  deletes %d (%d removed)  max height %d  final size %d\n",
				report.Inserts, report.Deletes, report.Removed, report.MaxHeight, report.FinalSize)
			if err != nil {
				log.Fatalf("%s %v", styles.Fail.Render("FAIL"), err)
			}
			fmt.Println(styles.Pass.Render("PASS"))
		},
	}
	cmdStress.Flags().Int("count", defaultConfig.Stress.Count, "number of operations")
	cmdStress.Flags().Uint64("seed", defaultConfig.Stress.Seed, "random seed")
	cmdStress.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avlreplay configuration, creating it if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(styles)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlreplay usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlreplay version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlreplay",
		Version: version,
		Long:    banner,
	}
	rootCmd.AddCommand(cmdRun, cmdPrint, cmdStep, cmdStress, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
