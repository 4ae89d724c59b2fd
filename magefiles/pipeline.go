//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Pipeline groups targets that drive the CLI over the working directories.
type Pipeline mg.Namespace

// Run processes every analysis under analyses/ that changed since its last run.
func (Pipeline) Run() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath, "run")
}

// Force reprocesses every analysis under analyses/.
func (Pipeline) Force() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath, "run", "--force")
}

// Schema writes the export JSON Schema to interviews/export/schema.json.
func (Pipeline) Schema() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath, "export", "schema", "-o", "interviews/export/schema.json")
}
