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

package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// OutputPath is the log directory used when LogToFile is set,
	// default is `/var/lib/sqrt/log`.
	OutputPath string
	// Verbose switches the log level to debug.
	Verbose bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	HideLogTime  bool
	HideLogPath  bool
	// LogToFile flag represent whether write log to disk, default is false.
	LogToFile bool
	// Writer receives console logs, os.Stderr when nil.
	Writer io.Writer
}

func Init(options LogOptions) error {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	// stdout is reserved for command results
	if options.Writer != nil {
		logrus.SetOutput(options.Writer)
	} else {
		logrus.SetOutput(os.Stderr)
	}

	logrus.SetReportCaller(true)

	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
		HideLogPath:  options.HideLogPath,
	})

	// hooks are global, drop the ones a previous Init installed
	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	if options.LogToFile {
		fh, err := NewFileHook(options.OutputPath)
		if err != nil {
			return errors.Errorf("failed to init log file hook: %v", err)
		}
		logrus.AddHook(fh)
	}

	return nil
}
