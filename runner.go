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
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/cybrota/balancedtree/replay"
)

// openScript loads a script and a session for it. Scripts that do not name a
// key mode use the configured one.
func openScript(path string, config *Config) (*replay.Script, replay.Runner, error) {
	script, err := replay.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if script.KeyMode == "" {
		script.KeyMode = config.Replay.KeyMode
	}

	runner, err := replay.Open(script, config.options())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, runner, nil
}

// replayScript runs every operation of the script, writing one line per
// step to out when out is not nil, then checks the script's expectations.
func replayScript(ctx context.Context, out io.Writer, path string, config *Config, styles *Styles) (replay.Runner, error) {
	script, runner, err := openScript(path, config)
	if err != nil {
		return nil, err
	}

	var onStep func(replay.Step)
	if out != nil {
		fmt.Fprintln(out, styles.Title.Render(script.Name))
		onStep = func(step replay.Step) {
			fmt.Fprintln(out, styles.Step.Render(step.String()))
		}
	}

	if err := runner.Run(ctx, script.Ops, onStep); err != nil {
		return runner, err
	}
	if err := runner.Verify(script.Expect); err != nil {
		return runner, err
	}
	return runner, nil
}

func printSummary(out io.Writer, runner replay.Runner, styles *Styles) {
	summary := runner.Summary()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s [%s]\n", styles.Heading.Render("inorder"), strings.Join(summary.InOrder, " "))
	fmt.Fprintf(out, "%s %d   %s %d", styles.Heading.Render("size"), summary.Size, styles.Heading.Render("height"), summary.Height)
	if summary.HasRoot {
		fmt.Fprintf(out, "   %s %s", styles.Heading.Render("root"), summary.Root)
	}
	fmt.Fprintln(out)
	if hits := runner.PrefilterHits(); hits > 0 {
		fmt.Fprintf(out, "%s %d searches answered by the prefilter\n", styles.HelpDesc.Render("note"), hits)
	}
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy text: %w", err)
	}
	return nil
}
