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

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"fillmore-labs.com/bindguard/syntax"
)

// Format selects the output format of a [Printer].
type Format uint8

const (
	// Text prints diagnostics with a source excerpt.
	Text Format = iota
	// JSON prints one JSON object per diagnostic.
	JSON
)

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the [Format] named s.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return Text, nil

	case "json":
		return JSON, nil

	default:
		return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return "<format>"
	}
}

const (
	styleBold  = "\x1b[1m"
	styleRed   = "\x1b[31m"
	styleGreen = "\x1b[32m"
	styleCyan  = "\x1b[36m"
	styleReset = "\x1b[0m"
)

// Printer writes diagnostics. It is not safe for concurrent use.
type Printer struct {
	w      io.Writer
	format Format
	color  bool
}

// NewPrinter creates a [Printer] writing to w. color enables ANSI escape sequences in text output.
func NewPrinter(w io.Writer, format Format, color bool) *Printer {
	return &Printer{w: w, format: format, color: color}
}

// record is the JSON representation of a [Diagnostic].
type record struct {
	File string `json:"file"`
	Diagnostic
}

// Print writes the diagnostics of f.
func (p *Printer) Print(f *syntax.File, diagnostics []Diagnostic) error {
	if p.format == JSON {
		enc := json.NewEncoder(p.w)
		for _, d := range diagnostics {
			if err := enc.Encode(record{File: f.Name, Diagnostic: d}); err != nil {
				return err
			}
		}

		return nil
	}

	var b strings.Builder
	for _, d := range diagnostics {
		p.writeDiagnostic(&b, f, d)
	}

	_, err := io.WriteString(p.w, b.String())

	return err
}

// PrintError writes a file that could not be analyzed.
func (p *Printer) PrintError(path string, err error) error {
	if p.format == JSON {
		return json.NewEncoder(p.w).Encode(struct {
			File  string `json:"file"`
			Error string `json:"error"`
		}{path, err.Error()})
	}

	_, werr := fmt.Fprintf(p.w, "%s: %s\n", p.style(styleBold, path), p.style(styleRed, err.Error()))

	return werr
}

func (p *Printer) writeDiagnostic(b *strings.Builder, f *syntax.File, d Diagnostic) {
	fmt.Fprintf(b, "%s: %s\n", p.style(styleBold, location(f.Name, d.Pos)), d.Message) // ignore error

	if line := f.Line(d.Pos.Line); line != "" && d.Pos.IsValid() {
		b.WriteString(line) // ignore error
		b.WriteByte('\n')   // ignore error

		b.WriteString(p.style(styleGreen, Caret(line, d.Pos.Col, d.End.Col))) // ignore error
		b.WriteByte('\n')                                                    // ignore error
	}

	for _, r := range d.Related {
		fmt.Fprintf(b, "\t%s: %s\n", p.style(styleCyan, location(f.Name, r.Pos)), r.Message) // ignore error
	}
}

func location(name string, pos syntax.Pos) string {
	return fmt.Sprintf("%s:%d:%d", name, pos.Line, pos.Col)
}

func (p *Printer) style(style, s string) string {
	if !p.color {
		return s
	}

	return style + s + styleReset
}

// Caret returns a marker line underlining the 1-based byte columns [start, end)
// of line, aligned by display width. Tabs in the indentation are kept.
func Caret(line string, start, end int) string {
	start = min(max(start-1, 0), len(line))
	end = min(max(end-1, start), len(line))

	var b strings.Builder

	for _, r := range line[:start] {
		if r == '\t' {
			b.WriteByte('\t') // ignore error

			continue
		}

		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r))) // ignore error
	}

	b.WriteString(strings.Repeat("^", max(runewidth.StringWidth(line[start:end]), 1))) // ignore error

	return b.String()
}
