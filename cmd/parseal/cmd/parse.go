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

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TheLazyDutchman/parseal/adapter"
	jsongrammar "github.com/TheLazyDutchman/parseal/examples/json"
	yamlgrammar "github.com/TheLazyDutchman/parseal/examples/yaml"
)

var (
	grammarFlag string
	formatFlag  string
	reprFlag    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a file under the chosen grammar and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&grammarFlag, "grammar", "json", `grammar to parse with: "json" or "yaml"`)
	parseCmd.Flags().StringVar(&formatFlag, "format", "json", `output format for the projected tree: "json" or "yaml"`)
	parseCmd.Flags().BoolVar(&reprFlag, "repr", false, "print a Go-syntax dump of the raw parsed tree instead of the projected one")
}

func runParse(_ *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(logrus.TraceLevel)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("parseal: %w", err)
	}

	log.WithField("grammar", grammarFlag).WithField("bytes", len(src)).Trace("starting parse")
	started := time.Now()

	var tree adapter.TreeData
	var raw fmt.Stringer

	switch grammarFlag {
	case "json":
		doc, err := jsongrammar.Parse(string(src))
		if err != nil {
			return fmt.Errorf("parseal: %w", err)
		}
		tree = doc
		raw = reprString{doc}
	case "yaml":
		doc, err := yamlgrammar.Parse(string(src))
		if err != nil {
			return fmt.Errorf("parseal: %w", err)
		}
		tree = doc
		raw = reprString{doc}
	default:
		return fmt.Errorf("parseal: unknown grammar %q (want json or yaml)", grammarFlag)
	}

	log.WithField("elapsed", time.Since(started)).Trace("parse finished, winning alternative committed")

	if reprFlag {
		fmt.Println(raw.String())
		return nil
	}

	node := adapter.Project(tree)
	out := toGeneric(node)

	switch formatFlag {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(out)
	default:
		return fmt.Errorf("parseal: unknown format %q (want json or yaml)", formatFlag)
	}
}

// reprString adapts alecthomas/repr's package-level Println-style dump to
// a fmt.Stringer whose output is indented over several lines, following sqltest/querydump.go's use of
// repr.String for individual values in this pack.
type reprString struct {
	v any
}

func (r reprString) String() string {
	return repr.String(r.v, repr.Indent("  "))
}

// toGeneric flattens adapter.Node into the plain map/slice/string shapes
// encoding/json and gopkg.in/yaml.v3 already know how to marshal, since
// Node keeps its kind and content fields unexported and carries no marshal methods of its
// own (spec.md §6.4 specifies TreeData/Node by interface only).
func toGeneric(n *adapter.Node) any {
	switch n.Kind() {
	case adapter.KindScalar:
		return n.AsScalar()
	case adapter.KindObject:
		out := make(map[string]any, len(n.AsObject()))
		for k, v := range n.AsObject() {
			out[k] = toGeneric(v)
		}
		return out
	case adapter.KindList:
		items := n.AsList()
		out := make([]any, len(items))
		for i, v := range items {
			out[i] = toGeneric(v)
		}
		return out
	default:
		return nil
	}
}
