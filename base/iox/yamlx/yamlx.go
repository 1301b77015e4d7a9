// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides convenient functions for opening and saving
// YAML data, using the gopkg.in/yaml.v3 package.
package yamlx

import (
	"io"
	"io/fs"

	"cogentcore.org/plotview/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder] for the given reader.
func NewDecoder(r io.Reader) iox.Decoder { return yaml.NewDecoder(r) }

// Open reads the given object from the given filename using YAML encoding.
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// OpenFS reads the given object from the given filename using YAML encoding,
// in the given filesystem.
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, NewDecoder)
}

// Read reads the given object from the given reader using YAML encoding.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes using YAML encoding.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, NewDecoder)
}

// NewEncoder returns a new [iox.Encoder] for the given writer.
func NewEncoder(w io.Writer) iox.Encoder { return yaml.NewEncoder(w) }

// Save writes the given object to the given filename using YAML encoding.
func Save(v any, filename string) error {
	return iox.Save(v, filename, NewEncoder)
}

// Write writes the given object using YAML encoding.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object to bytes using YAML encoding.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
