package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/cminus-compiler/cmd/cminusc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
