// Copyright 2025 arrayfunc Authors
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

// Command arrayfunc runs checked element-wise arithmetic from the shell.
//
// Usage:
//
//	arrayfunc sub --type b 100,101,102 2        # [98 99 100]
//	arrayfunc sub --type b 2 [10]               # scalar - array
//	arrayfunc sub --type B --matherrors 0 1     # wraps to 255
//	arrayfunc mul --type h --maxlen 2 1,2,3 10 --out
//	arrayfunc info
//
// An operand is an array when it contains a comma or is written in
// brackets, and a scalar otherwise.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/m1griffin/arrayfunc-sub006/arrayfunc"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "arrayfunc",
		Short:         "Checked element-wise arithmetic over typed arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !verbose {
				arrayfunc.SetLogger(nil)
				return
			}
			arrayfunc.SetLogger(arrayfunc.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log dispatch decisions to stderr")

	root.AddCommand(
		newOpCmd("sub", "Subtract RIGHT from LEFT", arrayfunc.Sub),
		newOpCmd("add", "Add RIGHT to LEFT", arrayfunc.Add),
		newOpCmd("mul", "Multiply LEFT by RIGHT", arrayfunc.Mul),
		newInfoCmd(),
	)
	return root
}
