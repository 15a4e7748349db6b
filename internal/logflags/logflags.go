// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package logflags configures the loggers of the bindguard layers.
package logflags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	pipeline = false
	parser   = false
	settings = false

	output io.Writer = os.Stderr
)

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Out = output

	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}

	return logger
}

// Pipeline returns true if the file pipeline should log.
func Pipeline() bool {
	return pipeline
}

// PipelineLogger returns a logger for the file pipeline.
func PipelineLogger() *logrus.Entry {
	return makeLogger(pipeline, logrus.Fields{"layer": "pipeline"})
}

// Parser returns true if the front-ends should log.
func Parser() bool {
	return parser
}

// ParserLogger returns a logger for parse results.
func ParserLogger() *logrus.Entry {
	return makeLogger(parser, logrus.Fields{"layer": "parser"})
}

// SettingsLogger returns a logger for configuration loading.
func SettingsLogger() *logrus.Entry {
	return makeLogger(settings, logrus.Fields{"layer": "settings"})
}

var (
	errLogstrWithoutLog = errors.New("--log-output specified without --log")
	errUnknownLayer     = errors.New("unknown log layer")
)

// Setup sets the logging flags based on the contents of logstr, a comma-separated
// list of layers. Log output goes to w.
func Setup(logFlag bool, logstr string, w io.Writer) error {
	pipeline, parser, settings = false, false, false
	output = w

	if !logFlag {
		if logstr != "" {
			return errLogstrWithoutLog
		}

		return nil
	}

	if logstr == "" {
		logstr = "pipeline,settings"
	}

	for layer := range strings.SplitSeq(logstr, ",") {
		switch strings.TrimSpace(layer) {
		case "pipeline":
			pipeline = true
		case "parser":
			parser = true
		case "settings":
			settings = true
		default:
			return fmt.Errorf("%w: %q", errUnknownLayer, layer)
		}
	}

	return nil
}
