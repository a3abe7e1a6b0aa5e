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

package common

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	DefaultLogDir     = "/var/lib/sqrt/log"
	DefaultConfigName = ".sqrt.yaml"
	EnvPrefix         = "SQRT"
)

const (
	FileMode0755 = 0755
	FileMode0644 = 0644
)

// GetDefaultConfigFile returns $HOME/.sqrt.yaml, or an empty string when
// the home directory cannot be resolved.
func GetDefaultConfigFile() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultConfigName)
}
