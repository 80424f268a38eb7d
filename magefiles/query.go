//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Query builds the CLI and runs a query. Set NEO_DATE, or NEO_START_DATE and
// NEO_END_DATE, to choose the dates; NEO_FILTER adds one filter expression.
func Query() error {
	mg.Deps(Build)

	args := []string{"query"}
	for env, flag := range map[string]string{
		"NEO_DATE":       "--date",
		"NEO_START_DATE": "--start-date",
		"NEO_END_DATE":   "--end-date",
		"NEO_FILTER":     "--filter",
	} {
		if v := os.Getenv(env); v != "" {
			args = append(args, flag, v)
		}
	}
	return sh.RunV("./"+binDir+"/"+binName, args...)
}

// Catalog builds the CLI and prints catalog statistics.
func Catalog() error {
	mg.Deps(Build)
	return sh.RunV("./"+binDir+"/"+binName, "catalog")
}
