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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlreplay %s**

Replay insert, delete and search scripts against a height balanced tree and
watch it rebalance.

Built with Go %s

# 1. Commands
* **run** <script>: replay a script, print every step and check its expectations
* **print** <script>: replay a script and draw the final tree (--copy puts it on the clipboard)
* **step** <script>: walk through a script one operation at a time
* **stress**: random inserts and deletes, checking balance after each one
* **settings**: show or create ~/.avlreplay.yaml

# 2. Script formats
YAML files (.yaml, .yml):

    name: right-left
    key_mode: int
    ops:
      - insert: [3, 10, 8]
      - delete: 8
    expect: {inorder: [3, 10], size: 2}

Anything else is read one command per line:

    mode string
    insert cherry banana "dragon fruit"
    delete banana
    search apple

# 3. Reading the tree drawing
The right subtree is drawn above a key and the left subtree below it, each
level indented by four spaces.

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
