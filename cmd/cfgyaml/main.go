// Command cfgyaml loads a configuration directory and prints, queries or
// saves the merged configuration.
//
// Usage:
//
//	cfgyaml show overlap --dir ./config --set env.device=0
//	cfgyaml get env.device --name overlap
//	cfgyaml save best --name overlap --set lr=0.05 --out ./runs
package main

import (
	"os"
)

func main() {
	err := newRootCommand(os.Stdout, os.Stderr).Execute()
	if err != nil {
		os.Exit(1)
	}
}
