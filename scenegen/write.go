// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenegen

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/tabulahq/tabula/base/strcase"
)

// WriteFile generates the factory for the given scene name and roots
// (see [Generator.Generate]), formats it with goimports, and writes it
// into the given directory as <snake_case name>.gen.go, returning the
// written filename.
func (g *Generator) WriteFile(dir, name string, roots ...Node) (string, error) {
	src, err := g.Generate(name, roots...)
	if err != nil {
		return "", err
	}
	fname := filepath.Join(dir, strcase.ToSnake(name)+".gen.go")
	fmtd, err := imports.Process(fname, src, nil)
	if err != nil {
		return "", fmt.Errorf("scenegen.WriteFile: formatting generated source: %w", err)
	}
	if err := os.WriteFile(fname, fmtd, 0666); err != nil {
		return "", fmt.Errorf("scenegen.WriteFile: %w", err)
	}
	return fname, nil
}
