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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/sealerio/tutorial/pkg/logger"
	"github.com/sealerio/tutorial/pkg/sqroot"
	"github.com/sealerio/tutorial/pkg/version"
)

const (
	exitOK            = 0
	exitFailure       = 1
	exitInvalidNumber = 2
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	hideLogPath bool
	logToFile   bool
	logDir      string
	colorMode   string
	showVersion bool
	completion  string
}

var longRootCmdDescription = `sqrt computes the square root of a number and prints it.

Only the leading numeric part of the argument is read, text that is not a number counts as 0,
and a negative number yields NaN. Pass --strict to reject both instead.
`

var supportedColorModes = []ColorMode{
	ColorModeNever,
	ColorModeAlways,
	ColorModeAuto,
}

// NewRootCmd builds the sqrt command. progName is printed in the usage line.
func NewRootCmd(progName string) *cobra.Command {
	rootOpt := &rootOpts{}
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   fmt.Sprintf("%s number", commandName(progName)),
		Short: "Print the square root of a number",
		Long:  longRootCmdDescription,
		Example: `sqrt 4
sqrt -1
sqrt --precision -1 2
sqrt -o json 2.25
sqrt --version -o json
source <(sqrt --completion bash)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(rootOpt)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpt.completion != "" {
				return printCompletion(cmd, rootOpt.completion)
			}

			loaded, err := loadConfig(cmd.Flags(), rootOpt.cfgFile)
			if err != nil {
				return err
			}
			if rootOpt.showVersion {
				return printVersion(cmd.OutOrStdout(), loaded.Output)
			}

			if len(args) < 1 {
				return sqroot.ErrMissingArgument
			}
			if len(args) > 1 {
				logrus.Debugf("ignoring extra arguments %v", args[1:])
			}

			result, err := compute(args[0], loaded.Strict)
			if err != nil {
				return err
			}
			logrus.Debugf("square root of %v is %v", result.Input, result.Root)

			return printResult(cmd.OutOrStdout(), result, loaded)
		},
	}

	rootCmd.PersistentFlags().StringVar(&rootOpt.cfgFile, "config", "", "config file of sqrt (default is $HOME/.sqrt.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVar(&rootOpt.hideLogTime, "hide-time", false, "hide the log time")
	rootCmd.PersistentFlags().BoolVar(&rootOpt.hideLogPath, "hide-path", false, "hide the log path")
	rootCmd.PersistentFlags().BoolVar(&rootOpt.logToFile, "log-to-file", false, "write log message to disk")
	rootCmd.PersistentFlags().StringVar(&rootOpt.logDir, "log-dir", "", "directory of the log file, only valid when --log-to-file is set")
	rootCmd.PersistentFlags().StringVar(&rootOpt.colorMode, "color", string(ColorModeAuto), fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))

	rootCmd.Flags().IntVar(&cfg.Precision, keyPrecision, cfg.Precision, "significant digits of the printed numbers, -1 for the shortest exact form")
	rootCmd.Flags().StringVarP((*string)(&cfg.Output), keyOutput, "o", string(cfg.Output), fmt.Sprintf("output format, one of %v", supportedOutputFormats))
	rootCmd.Flags().BoolVar(&cfg.Strict, keyStrict, cfg.Strict, "reject malformed and negative numbers with exit code 2")
	rootCmd.Flags().BoolVar(&rootOpt.showVersion, "version", false, "print version info, in the format chosen by --output")
	rootCmd.Flags().StringVar(&rootOpt.completion, "completion", "", fmt.Sprintf("print the autocompletion script for the shell, one of %v", supportedCompletionShells))
	rootCmd.DisableAutoGenTag = true

	return rootCmd
}

func commandName(progName string) string {
	if progName == "" {
		return "sqrt"
	}
	return filepath.Base(progName)
}

func disableColor(mode ColorMode) (bool, error) {
	switch mode {
	case ColorModeNever:
		return true, nil
	case ColorModeAlways:
		return false, nil
	case ColorModeAuto:
		return !term.IsTerminal(int(os.Stderr.Fd())), nil
	default:
		return false, fmt.Errorf("color mode must be one of %v, got %q", supportedColorModes, mode)
	}
}

func initLogger(opt *rootOpts) error {
	noColor, err := disableColor(ColorMode(opt.colorMode))
	if err != nil {
		return err
	}
	if err := logger.Init(logger.LogOptions{
		OutputPath:   opt.logDir,
		Verbose:      opt.debugModeOn,
		DisableColor: noColor,
		HideLogTime:  opt.hideLogTime,
		HideLogPath:  opt.hideLogPath,
		LogToFile:    opt.logToFile,
	}); err != nil {
		return errors.Wrap(err, "failed to init logger")
	}
	return nil
}

func compute(text string, strict bool) (sqroot.Result, error) {
	if strict {
		return sqroot.ComputeStrict(text)
	}
	return sqroot.Compute(text), nil
}

func printResult(out io.Writer, result sqroot.Result, cfg *Config) error {
	switch cfg.Output {
	case OutputJSON:
		marshalled, err := json.Marshal(result.Output(cfg.Precision))
		if err != nil {
			return fmt.Errorf("fail to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(out, string(marshalled))
		return err
	case OutputYAML:
		marshalled, err := yaml.Marshal(result.Output(cfg.Precision))
		if err != nil {
			return fmt.Errorf("fail to marshal yaml: %w", err)
		}
		_, err = fmt.Fprint(out, string(marshalled))
		return err
	default:
		_, err := fmt.Fprintln(out, result.Text(cfg.Precision))
		return err
	}
}

// Run executes the command line args, args[0] being the program name,
// writes results to out and returns the process exit code.
func Run(args []string, out io.Writer) int {
	progName := ""
	if len(args) > 0 {
		progName, args = args[0], args[1:]
	}

	// flag parsing errors are reported before the root flags configure logging
	if err := initLogger(&rootOpts{colorMode: string(ColorModeAuto)}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitFailure
	}

	rootCmd := NewRootCmd(progName)
	rootCmd.SetOut(out)
	rootCmd.SetArgs(protectPositionals(args, rootCmd.Flags(), rootCmd.PersistentFlags()))

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, sqroot.ErrMissingArgument):
		fmt.Fprintf(out, "Usage: %s number\n.", progName)
		return exitFailure
	case errors.Is(err, sqroot.ErrInvalidNumber), errors.Is(err, sqroot.ErrOutOfDomain):
		logrus.Error(err)
		return exitInvalidNumber
	default:
		logrus.Errorf("sqrt-%s: %v", version.Get().String(), err)
		return exitFailure
	}
}

// Execute runs the command line of the current process and exits with its
// status. This is called by main.main().
func Execute() {
	os.Exit(Run(os.Args, os.Stdout))
}
