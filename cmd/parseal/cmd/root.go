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

// Package cmd wires parseal's subcommands, following
// vippsas-sqlcode/cli/cmd's root.go shape: a package-level rootCmd,
// persistent flags bound in Execute, and one file per subcommand.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "parseal",
		Short:        "parseal",
		SilenceUsage: true,
		Long:         `A CLI front end for the parseal combinator-parsing library, driving the bundled JSON and YAML example grammars.`,
	}

	verbose bool
	log     = logrus.StandardLogger()
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace-level logging of the parse run (grammar, input size, elapsed time)")
	rootCmd.AddCommand(parseCmd)
	return rootCmd.Execute()
}

func init() {
	log.SetLevel(logrus.InfoLevel)
}
