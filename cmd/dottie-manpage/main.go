package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dottie/cmd/dottie"
	"github.com/arthur-debert/dottie/internal/version"
)

func main() {
	rootCmd := dottie.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTTIE",
		Section: "1",
		Source:  "dottie " + version.Version,
		Manual:  "dottie manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
