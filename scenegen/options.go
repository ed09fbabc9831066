// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"time"

	"github.com/tabulahq/tabula/base/errors"
	"github.com/tabulahq/tabula/base/indent"
	"github.com/tabulahq/tabula/base/iox/tomlx"
	"github.com/tabulahq/tabula/types"
)

// Options holds the configuration of a [Generator].
type Options struct {

	// Package is the package name of the generated file.
	Package string `toml:"package"`

	// DenyFields is a list of behavior field names that are never
	// emitted, regardless of their values.
	DenyFields []string `toml:"deny-fields"`

	// KeepEmptyStrings emits string fields whose value is "" even when
	// the template value is also empty. Default is to skip them.
	KeepEmptyStrings bool `toml:"keep-empty-strings"`

	// Indent is the indentation character of the generated body.
	Indent indent.Character `toml:"indent"`

	// IndentWidth is the number of spaces per indentation level when
	// Indent is [indent.Space].
	IndentWidth int `toml:"indent-width"`

	// Supported reports whether a behavior type can be emitted. If nil,
	// every registered behavior type is supported. Behaviors of
	// unsupported types are skipped with a logged warning, and
	// references to them degrade the same way.
	Supported func(t *types.Type) bool `toml:"-"`

	// Now provides the timestamp recorded in the generated header.
	// If nil, [time.Now] is used. Tests pin it for reproducible output.
	Now func() time.Time `toml:"-"`
}

// NewOptions returns a new [Options] with default values.
func NewOptions() *Options {
	return &Options{
		Package:     "scenes",
		Indent:      indent.Tab,
		IndentWidth: 4,
	}
}

// OpenOptions returns a new [Options] with defaults overridden by the
// given TOML config file.
func OpenOptions(filename string) (*Options, error) {
	o := NewOptions()
	if err := tomlx.Open(o, filename); err != nil {
		return nil, errors.Log(err)
	}
	return o, nil
}

func (o *Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *Options) supported(t *types.Type) bool {
	if o.Supported == nil {
		return true
	}
	return o.Supported(t)
}
