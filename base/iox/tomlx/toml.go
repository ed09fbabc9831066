// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides TOML marshal / unmarshal functions
// plugged into the [iox] reader / writer / file wrappers.
package tomlx

import (
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/tabulahq/tabula/base/iox"
)

// Open reads the given object from the given TOML file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, func(r io.Reader) iox.Decoder {
		return toml.NewDecoder(r)
	})
}

// Read reads the given object from the given TOML reader.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, func(r io.Reader) iox.Decoder {
		return toml.NewDecoder(r)
	})
}

// Save writes the given object to the given TOML file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, func(w io.Writer) iox.Encoder {
		return toml.NewEncoder(w)
	})
}

// Write writes the given object to the given TOML writer.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, func(w io.Writer) iox.Encoder {
		return toml.NewEncoder(w)
	})
}
