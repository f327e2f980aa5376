// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox reads and writes values as JSON, TOML, or YAML,
// selecting the encoding from the file extension.
package iox

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/dock/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported encodings.
type Formats int32

const (
	JSON Formats = iota
	TOML
	YAML
)

func (f Formats) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatFromFilename returns the format for the extension of
// the given file name, or an error for an unknown extension.
func FormatFromFilename(filename string) (Formats, error) {
	return ParseFormat(filepath.Ext(filename))
}

// ParseFormat parses a format name or extension, with or
// without the leading dot.
func ParseFormat(s string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, errors.Errorf("iox: unknown format %q", s)
}

// Read decodes v from r in the given format.
func Read(v any, r io.Reader, f Formats) error {
	switch f {
	case TOML:
		return toml.NewDecoder(r).Decode(v)
	case YAML:
		return yaml.NewDecoder(r).Decode(v)
	default:
		return json.NewDecoder(r).Decode(v)
	}
}

// Write encodes v to w in the given format, indented for
// human editing.
func Write(v any, w io.Writer, f Formats) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// ReadBytes decodes v from b in the given format.
func ReadBytes(v any, b []byte, f Formats) error {
	return Read(v, bytes.NewReader(b), f)
}

// WriteBytes encodes v in the given format.
func WriteBytes(v any, f Formats) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b, f)
	return b.Bytes(), err
}

// Open decodes v from the given file, with the format
// taken from its extension.
func Open(v any, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, fp, f); err != nil {
		return errors.Errorf("iox: decoding %s: %w", filename, err)
	}
	return nil
}

// Save encodes v into the given file, with the format
// taken from its extension. The file is written to a temporary
// sibling first and renamed into place.
func Save(v any, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	b, err := WriteBytes(v, f)
	if err != nil {
		return errors.Errorf("iox: encoding %s: %w", filename, err)
	}
	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filename)
}
