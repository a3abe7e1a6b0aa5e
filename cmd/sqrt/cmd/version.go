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

	"gopkg.in/yaml.v2"

	"github.com/sealerio/tutorial/pkg/version"
)

// printVersion prints just the version number for text output, and the
// full build info for json and yaml.
func printVersion(out io.Writer, output OutputFormat) error {
	info := &version.Output{SqrtVersion: version.Get()}

	var (
		marshalled []byte
		err        error
	)
	switch output {
	case OutputText:
		_, err = fmt.Fprintln(out, info.SqrtVersion.String())
		return err
	case OutputYAML:
		marshalled, err = yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("fail to marshal yaml: %w", err)
		}
	case OutputJSON:
		marshalled, err = json.Marshal(info)
		if err != nil {
			return fmt.Errorf("fail to marshal json: %w", err)
		}
	default:
		// Config.Validate rejects anything else before we get here.
		return fmt.Errorf("output options were not validated: --output=%q should have been rejected", output)
	}
	_, err = fmt.Fprintln(out, string(marshalled))
	return err
}
