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

package replay

import (
	"errors"
	"fmt"
	"slices"
)

// Verify compares the current tree against expect and reports every
// mismatch, each wrapping ErrExpectation. A nil expect always passes.
func (s *Session[K]) Verify(expect *Expect) error {
	if expect == nil {
		return nil
	}
	return verify(s.Summary(), expect)
}

func verify(got Summary, expect *Expect) error {
	var errs []error

	if expect.InOrder != nil && !slices.Equal(got.InOrder, expect.InOrder) {
		errs = append(errs, fmt.Errorf("inorder = %v, want %v: %w", got.InOrder, expect.InOrder, ErrExpectation))
	}
	if expect.Height != nil && got.Height != *expect.Height {
		errs = append(errs, fmt.Errorf("height = %d, want %d: %w", got.Height, *expect.Height, ErrExpectation))
	}
	if expect.Size != nil && got.Size != *expect.Size {
		errs = append(errs, fmt.Errorf("size = %d, want %d: %w", got.Size, *expect.Size, ErrExpectation))
	}
	if expect.Root != nil {
		switch {
		case !got.HasRoot:
			errs = append(errs, fmt.Errorf("root missing, want %s: %w", *expect.Root, ErrExpectation))
		case got.Root != *expect.Root:
			errs = append(errs, fmt.Errorf("root = %s, want %s: %w", got.Root, *expect.Root, ErrExpectation))
		}
	}

	return errors.Join(errs...)
}
