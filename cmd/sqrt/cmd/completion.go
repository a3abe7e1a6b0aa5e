// Copyright © 2021 Alibaba Group Holding Ltd.
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
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const completionShellBash = "bash"

var supportedCompletionShells = []string{completionShellBash}

// printCompletion writes the autocompletion script for shell.
//
// To load completions in your current shell session:
//
//	source <(sqrt --completion bash)
//
// To load completions for every new session, execute once:
//
//	sqrt --completion bash > /etc/bash_completion.d/sqrt
func printCompletion(cmd *cobra.Command, shell string) error {
	switch shell {
	case completionShellBash:
		if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
			return errors.Wrap(err, "failed to use bash completion")
		}
		return nil
	default:
		return fmt.Errorf("completion shell must be one of %v, got %q", supportedCompletionShells, shell)
	}
}
