package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/grugui/internal/cli"
)

func main() {
	if err := cli.GenerateManPage(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
