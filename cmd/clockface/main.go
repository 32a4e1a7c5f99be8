// Command clockface renders and animates analog clock faces.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/clockface/cmd/clockface/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
