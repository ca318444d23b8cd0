// Command dottie-completions writes shell completion scripts for every
// supported shell into a directory, for release packaging.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dottie/cmd/dottie"
)

var scripts = []struct {
	shell string
	file  string
	gen   func(*cobra.Command, string) error
}{
	{"bash", "dottie.bash", func(c *cobra.Command, p string) error { return c.GenBashCompletionFileV2(p, true) }},
	{"zsh", "_dottie", func(c *cobra.Command, p string) error { return c.GenZshCompletionFile(p) }},
	{"fish", "dottie.fish", func(c *cobra.Command, p string) error { return c.GenFishCompletionFile(p, true) }},
	{"powershell", "dottie.ps1", func(c *cobra.Command, p string) error { return c.GenPowerShellCompletionFileWithDesc(p) }},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}

	dir := os.Args[1]
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	rootCmd := dottie.NewRootCmd()
	for _, s := range scripts {
		path := filepath.Join(dir, s.file)
		if err := s.gen(rootCmd, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", s.shell, err)
			os.Exit(1)
		}
	}
}
