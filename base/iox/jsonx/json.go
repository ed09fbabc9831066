// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides JSON marshal / unmarshal functions
// plugged into the [iox] reader / writer / file wrappers.
package jsonx

import (
	"encoding/json"
	"io"

	"github.com/tabulahq/tabula/base/iox"
)

// Open reads the given object from the given JSON file.
func Open(v any, filename string) error {
	return iox.Open(v, filename, func(r io.Reader) iox.Decoder {
		return json.NewDecoder(r)
	})
}

// Read reads the given object from the given JSON reader.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, func(r io.Reader) iox.Decoder {
		return json.NewDecoder(r)
	})
}

// Save writes the given object to the given JSON file.
func Save(v any, filename string) error {
	return iox.Save(v, filename, func(w io.Writer) iox.Encoder {
		return json.NewEncoder(w)
	})
}

// SaveIndent writes the given object to the given JSON file,
// indented with tabs for human readability.
func SaveIndent(v any, filename string) error {
	return iox.Save(v, filename, indentEncoder)
}

// WriteIndent writes the given object to the given JSON writer,
// indented with tabs for human readability.
func WriteIndent(v any, writer io.Writer) error {
	return iox.Write(v, writer, indentEncoder)
}

func indentEncoder(w io.Writer) iox.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}
