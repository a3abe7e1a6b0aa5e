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
	"strings"

	"github.com/spf13/pflag"
)

// cobra registers the help flag lazily, at execution time.
const (
	helpFlagName      = "help"
	helpFlagShorthand = "h"
)

// protectPositionals inserts "--" in front of the first argument that pflag
// would otherwise reject as a flag: a negative number such as "-1", or any
// dash-prefixed text naming no known flag such as "-e5" or "--5". The
// command then reads it as its number. Values consumed by flags are left
// alone.
func protectPositionals(args []string, flagSets ...*pflag.FlagSet) []string {
	out := make([]string, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case !strings.HasPrefix(arg, "-") || len(arg) == 1:
			out = append(out, arg)
			continue
		}

		known, takesNext := parseFlagArg(arg, flagSets)
		if isNegativeNumber(arg) || !known {
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		out = append(out, arg)
		if takesNext && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]
	if c >= '0' && c <= '9' || c == '.' {
		return true
	}
	rest := strings.ToLower(arg[1:])
	return strings.HasPrefix(rest, "inf") || strings.HasPrefix(rest, "nan")
}

// parseFlagArg reports whether the dash-prefixed arg names only known
// flags, and whether it takes its value from the next argument.
func parseFlagArg(arg string, flagSets []*pflag.FlagSet) (known bool, takesNext bool) {
	if strings.HasPrefix(arg, "--") {
		name := arg[2:]
		hasValue := false
		if eq := strings.Index(name, "="); eq >= 0 {
			name, hasValue = name[:eq], true
		}
		if name == helpFlagName {
			return true, false
		}
		f := lookup(flagSets, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) })
		if f == nil {
			return false, false
		}
		return true, !hasValue && f.NoOptDefVal == ""
	}

	// shorthand group such as -do, the first flag taking a value ends it
	shorthands := arg[1:]
	for j := 0; j < len(shorthands); j++ {
		s := shorthands[j : j+1]
		if s == helpFlagShorthand {
			continue
		}
		f := lookup(flagSets, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(s) })
		if f == nil {
			return false, false
		}
		if f.NoOptDefVal == "" {
			return true, j == len(shorthands)-1
		}
	}
	return true, false
}

func lookup(flagSets []*pflag.FlagSet, find func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	for _, fs := range flagSets {
		if f := find(fs); f != nil {
			return f
		}
	}
	return nil
}
