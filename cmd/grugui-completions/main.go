package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/grugui/internal/cli"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s>\n", os.Args[0], strings.Join(cli.Shells, "|"))
		os.Exit(1)
	}
	if err := cli.GenerateCompletion(os.Stdout, os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
