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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/sealerio/tutorial/pkg/logger"
	"github.com/sealerio/tutorial/pkg/version"
)

// run executes the command line with an empty home directory so that no
// user config file leaks into the result.
func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	homedir.DisableCache = true

	out := &bytes.Buffer{}
	code := Run(append([]string{"sqrt"}, args...), out)
	return code, out.String()
}

func TestRun_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"perfect square",
			[]string{"4"},
			"The square root of 4 is 2\n",
		},
		{
			"irrational root",
			[]string{"2"},
			"The square root of 2 is 1.41421\n",
		},
		{
			"non numeric text counts as zero",
			[]string{"abc"},
			"The square root of 0 is 0\n",
		},
		{
			"numeric prefix",
			[]string{"16apples"},
			"The square root of 16 is 4\n",
		},
		{
			"extra arguments are ignored",
			[]string{"9", "foo", "-2"},
			"The square root of 9 is 3\n",
		},
		{
			"shortest precision",
			[]string{"--precision", "-1", "2"},
			"The square root of 2 is 1.4142135623730951\n",
		},
		{
			"dash prefixed exponent counts as zero",
			[]string{"-e5"},
			"The square root of 0 is 0\n",
		},
		{
			"double dash number counts as zero",
			[]string{"--5"},
			"The square root of 0 is 0\n",
		},
		{
			"unknown shorthand counts as zero",
			[]string{"-x"},
			"The square root of 0 is 0\n",
		},
		{
			"help is a number",
			[]string{"help"},
			"The square root of 0 is 0\n",
		},
		{
			"version is a number",
			[]string{"version"},
			"The square root of 0 is 0\n",
		},
		{
			"completion is a number",
			[]string{"completion", "bash"},
			"The square root of 0 is 0\n",
		},
		{
			"infinity",
			[]string{"inf"},
			"The square root of inf is inf\n",
		},
		{
			"hex without exponent",
			[]string{"0x1A"},
			"The square root of 26 is 5.09902\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := run(t, tt.args...)
			assert.Equal(t, exitOK, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_NegativeYieldsNaN(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"negative number", []string{"-1"}, `^The square root of -1 is -?nan\n$`},
		{"debug flag before negative number", []string{"-d", "-4"}, `^The square root of -4 is -?nan\n$`},
		{"negative infinity", []string{"-inf"}, `^The square root of -inf is -?nan\n$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := run(t, tt.args...)
			assert.Equal(t, exitOK, code)
			assert.Regexp(t, tt.want, out)
		})
	}
}

func TestRun_MissingArgument(t *testing.T) {
	code, out := run(t)
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "Usage: sqrt number\n.", out)

	out2 := &bytes.Buffer{}
	assert.Equal(t, exitFailure, Run([]string{"/usr/local/bin/sqrt"}, out2))
	assert.True(t, strings.HasPrefix(out2.String(), "Usage: /usr/local/bin/sqrt number"))
}

func TestRun_RootSquaresBack(t *testing.T) {
	for _, x := range []float64{0, 0.25, 1, 2, 10, 1e-8, 123456.789, 1e20} {
		code, out := run(t, "--precision", "-1", fmt.Sprint(x))
		require.Equal(t, exitOK, code)

		var in, root float64
		_, err := fmt.Sscanf(out, "The square root of %g is %g", &in, &root)
		require.NoError(t, err, out)
		assert.Equal(t, x, in)
		assert.Truef(t, scalar.EqualWithinAbsOrRel(root*root, x, 1e-12, 1e-12), "%v squared is %v, want %v", root, root*root, x)
	}
}

func TestRun_Strict(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"valid", []string{"--strict", "2.25"}, exitOK, "The square root of 2.25 is 1.5\n"},
		{"non numeric", []string{"--strict", "abc"}, exitInvalidNumber, ""},
		{"numeric prefix", []string{"--strict", "16apples"}, exitInvalidNumber, ""},
		{"negative", []string{"--strict", "-1"}, exitInvalidNumber, ""},
		{"missing argument", []string{"--strict"}, exitFailure, "Usage: sqrt number\n."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_Output(t *testing.T) {
	code, out := run(t, "-o", "json", "4")
	assert.Equal(t, exitOK, code)
	assert.JSONEq(t, `{"input":"4","root":"2"}`, out)

	code, out = run(t, "--output=yaml", "-9")
	assert.Equal(t, exitOK, code)
	assert.Regexp(t, `^input: "-9"\nroot: -?nan\n$`, out)

	code, out = run(t, "-o", "xml", "4")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
}

func TestRun_Environment(t *testing.T) {
	t.Setenv("SQRT_PRECISION", "3")
	code, out := run(t, "2")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "The square root of 2 is 1.41\n", out)

	// flags win over the environment
	code, out = run(t, "--precision", "2", "2")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "The square root of 2 is 1.4\n", out)

	t.Setenv("SQRT_STRICT", "true")
	code, _ = run(t, "abc")
	assert.Equal(t, exitInvalidNumber, code)
}

func TestRun_ConfigFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "sqrt.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("precision: 3\noutput: yaml\n"), 0644))

	code, out := run(t, "--config", cfgFile, "2")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "input: \"2\"\nroot: \"1.41\"\n", out)

	code, out = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "2")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
}

func TestRun_DefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".sqrt.yaml"), []byte("precision: 2\n"), 0644))
	t.Setenv("HOME", home)
	homedir.DisableCache = true

	out := &bytes.Buffer{}
	assert.Equal(t, exitOK, Run([]string{"sqrt", "2"}, out))
	assert.Equal(t, "The square root of 2 is 1.4\n", out.String())
}

func TestRun_BadColorMode(t *testing.T) {
	code, out := run(t, "--color", "sometimes", "4")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
}

func TestRun_Version(t *testing.T) {
	code, out := run(t, "--version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, version.Get().String()+"\n", out)

	code, out = run(t, "--version", "-o", "json")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, `"sqrtVersion"`)

	code, out = run(t, "--version", "-o", "yaml")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "sqrtVersion:")

	code, _ = run(t, "--version", "-o", "toml")
	assert.Equal(t, exitFailure, code)
}

func TestRun_Completion(t *testing.T) {
	code, out := run(t, "--completion", "bash")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "bash completion")

	code, out = run(t, "--completion", "zsh")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
}

func TestRun_FlagErrorUsesFormatter(t *testing.T) {
	std := logrus.StandardLogger()
	defer std.SetFormatter(std.Formatter)
	logrus.SetFormatter(&logrus.TextFormatter{})

	code, out := run(t, "--precision", "abc", "4")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
	assert.IsType(t, &logger.Formatter{}, std.Formatter)
}

func TestRun_InvalidEnvironment(t *testing.T) {
	t.Setenv("SQRT_PRECISION", "abc")
	code, out := run(t, "2")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
}

func TestRun_NaNInput(t *testing.T) {
	code, out := run(t, "nan")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "The square root of nan is nan\n", out)
}

func Test_disableColor(t *testing.T) {
	noColor, err := disableColor(ColorModeNever)
	assert.NoError(t, err)
	assert.True(t, noColor)

	noColor, err = disableColor(ColorModeAlways)
	assert.NoError(t, err)
	assert.False(t, noColor)

	_, err = disableColor(ColorModeAuto)
	assert.NoError(t, err)

	_, err = disableColor("sometimes")
	assert.Error(t, err)
}
