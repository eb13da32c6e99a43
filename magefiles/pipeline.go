//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Graph builds the graph from the built-in corpus and prints its summary.
func Graph() error {
	ensureBuilt()
	return sh.RunV(binPath, "build")
}

// Evaluate scores the built-in corpus in both evaluation modes.
func Evaluate() error {
	ensureBuilt()
	for _, mode := range []string{"detailed", "aggregated"} {
		if err := sh.RunV(binPath, "evaluate", "--mode", mode); err != nil {
			return fmt.Errorf("evaluate %s: %w", mode, err)
		}
		fmt.Println()
	}
	return nil
}

// Export writes snapshots of the built-in corpus graph in every format.
func Export() error {
	mg.Deps(Init)
	ensureBuilt()
	for _, format := range []string{"yaml", "json", "sqlite"} {
		if err := sh.RunV(binPath, "export", "--evaluate", "--format", format); err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}
	}
	return nil
}
