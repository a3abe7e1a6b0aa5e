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
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sealerio/tutorial/common"
	"github.com/sealerio/tutorial/pkg/sqroot"
)

type ColorMode string

const (
	ColorModeNever  ColorMode = "never"
	ColorModeAlways ColorMode = "always"
	// ColorModeAuto colors logs only when stderr is a terminal.
	ColorModeAuto ColorMode = "auto"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var supportedOutputFormats = []OutputFormat{OutputText, OutputJSON, OutputYAML}

const (
	keyPrecision = "precision"
	keyOutput    = "output"
	keyStrict    = "strict"
)

// Config holds the settings that can come from flags, SQRT_* environment
// variables or the config file, in that order of precedence.
type Config struct {
	// Precision is the number of significant digits, negative for shortest.
	Precision int          `json:"precision,omitempty"`
	Output    OutputFormat `json:"output,omitempty"`
	// Strict rejects malformed and negative numbers instead of printing 0 or NaN.
	Strict bool `json:"strict,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision: sqroot.DefaultPrecision,
		Output:    OutputText,
		Strict:    false,
	}
}

func (c *Config) Validate() error {
	for _, f := range supportedOutputFormats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("output format must be one of %v, got %q", supportedOutputFormats, c.Output)
}

// loadConfig resolves Config for flags. An explicit cfgFile must exist,
// the default $HOME/.sqrt.yaml is only read when present.
func loadConfig(flags *pflag.FlagSet, cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(common.EnvPrefix)
	v.AutomaticEnv()

	for _, key := range []string{keyPrecision, keyOutput, keyStrict} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, errors.Wrapf(err, "failed to bind flag %s", key)
		}
	}

	if cfgFile == "" {
		if def := common.GetDefaultConfigFile(); def != "" {
			if _, err := os.Stat(def); err == nil {
				cfgFile = def
			}
		}
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
		logrus.Debugf("using config file %s", v.ConfigFileUsed())
	}

	precision, err := cast.ToIntE(v.Get(keyPrecision))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", keyPrecision)
	}
	strict, err := cast.ToBoolE(v.Get(keyStrict))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", keyStrict)
	}

	cfg := &Config{
		Precision: precision,
		Output:    OutputFormat(v.GetString(keyOutput)),
		Strict:    strict,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
