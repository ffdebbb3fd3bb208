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
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/balancedtree/avl"
)

var errHeightBound = errors.New("tree taller than the AVL bound")

type StressReport struct {
	Inserts   int
	Deletes   int
	Removed   int
	MaxHeight int
	FinalSize int
}

// maxAVLHeight is the worst case height of an AVL tree holding n keys.
func maxAVLHeight(n int) float64 {
	return 1.44 * math.Log2(float64(n+2))
}

// runStress applies count random inserts and deletes, two inserts for every
// delete, and checks every invariant plus the height bound after each one.
func runStress(ctx context.Context, count int, seed uint64, showProgress bool) (StressReport, error) {
	var report StressReport

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetDescription("Balancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Printf("\n")
			}),
		)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	tree := avl.NewOrdered[int]()
	keySpace := max(count/2, 1)

	for i := 0; i < count; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return report, err
			}
		}

		key := rng.IntN(keySpace)
		if rng.IntN(3) == 0 {
			report.Deletes++
			if tree.Delete(key) {
				report.Removed++
			}
		} else {
			report.Inserts++
			tree.Insert(key)
		}

		if err := tree.Check(); err != nil {
			return report, fmt.Errorf("operation %d: %w", i+1, err)
		}
		h := tree.Height()
		if float64(h) > maxAVLHeight(tree.Len()) {
			return report, fmt.Errorf("operation %d: height %d with %d keys: %w", i+1, h, tree.Len(), errHeightBound)
		}
		report.MaxHeight = max(report.MaxHeight, h)

		if bar != nil {
			bar.Add(1)
		}
	}

	report.FinalSize = tree.Len()
	return report, nil
}
