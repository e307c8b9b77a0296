//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	binDir  = "bin"
	apiName = "jana-api"
	cliName = "jana-storefront"
)

var Default = Run

// Run starts the API with go run.
func Run() error {
	mg.Deps(Tidy)
	fmt.Println("Running API on :5000 ...")
	return sh.RunV("go", "run", "./cmd/api")
}

// Build compiles the API and the storefront CLI into bin/.
func Build() error {
	mg.Deps(Tidy)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}

	ext := ""
	if runtime.GOOS == "windows" {
		ext = ".exe"
	}

	if err := sh.RunV("go", "build", "-o", filepath.Join(binDir, apiName+ext), "./cmd/api"); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binDir, cliName+ext), "./cmd/storefront")
}

// Test runs the whole suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Tidy syncs go.mod.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Schema creates the database tables.
func Schema() error {
	return sh.RunV("go", "run", "./cmd/tools/createtables")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binDir)
}
