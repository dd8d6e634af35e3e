// Package main provides the entry point for the sizetree CLI tool.
//
// Usage:
//
//	sizetree [flags] <path>
//
// For more information run: sizetree --help
package main

import (
	"log"
	"os"

	"github.com/kesslermo/sizetree/cmd/sizetree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
