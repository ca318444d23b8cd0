package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dottie/cmd/dottie"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := dottie.NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	errorStyle := lipgloss.NewRenderer(os.Stderr).NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF5252"}).
		Bold(true)
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

	if dottie.ShowsHelp(err) {
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Usage()
	}

	os.Exit(dottie.ExitCode(err))
}
