// Copyright 2025 The Parseal Authors
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

// Command parseal is the CLI front end every library-only repo in the
// retrieval pack (cue, opal, sai, sqlcode) ships alongside its core.
// The core parsing library has no CLI surface of its own, per spec.md's
// explicit scope boundary; this is the ambient entry point around it.
package main

import (
	"fmt"
	"os"

	"github.com/TheLazyDutchman/parseal/cmd/parseal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
