// file: main.go
// version: 1.0.0
// guid: 3f8c1a2e-9d47-4b6a-8e15-c2a7d4f90b31

package main

import (
	"fmt"
	"os"

	"github.com/vaxtbase/plantmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
