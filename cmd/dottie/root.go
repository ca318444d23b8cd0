package dottie

import (
	"fmt"

	"github.com/arthur-debert/dottie/internal/version"
	"github.com/arthur-debert/dottie/pkg/config"
	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/output"
	"github.com/arthur-debert/dottie/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	verbosity int
	repo      string
	noColor   bool
	format    string
}

// app is the per-invocation state built before a command runs.
type app struct {
	flags    globalFlags
	repoRoot string
	cfg      *config.Config

	// osFs backs both profile loading and the linking core.
	osFs afero.Fs
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{osFs: afero.NewOsFs()}

	rootCmd := &cobra.Command{
		Use:     "dottie",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.flags.repo, "repo", "r", "", MsgFlagRepo)
	rootCmd.PersistentFlags().BoolVar(&a.flags.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&a.flags.format, "format", "", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newLinkCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newProfilesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// annotationStandalone marks commands that need no repository or config.
const annotationStandalone = "standalone"

// setup resolves the repository, loads configuration and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Annotations[annotationStandalone] == "true" {
		logging.Setup(logging.Options{Verbosity: a.flags.verbosity, Console: cmd.ErrOrStderr()})
		return nil
	}

	root, usedFallback, err := paths.FindRepoRoot(a.flags.repo)
	if err != nil {
		logging.SetupLogger(a.flags.verbosity)
		return err
	}
	a.repoRoot = root

	cfg, err := config.Load(root)
	if err != nil {
		logging.Setup(logging.Options{Verbosity: a.flags.verbosity})
		return err
	}
	a.cfg = cfg

	opts := logging.Options{Verbosity: a.flags.verbosity, Console: cmd.ErrOrStderr()}
	if cfg.Logging.File {
		opts.LogFile = paths.LogFilePath()
	}
	logging.Setup(opts)

	log.Debug().
		Str("command", cmd.Name()).
		Str("repo", root).
		Strs("configFiles", cfg.Sources).
		Msg("Command started")

	if usedFallback {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, root)
	}
	return nil
}

// formatName is the --format flag, falling back to config.
func (a *app) formatName() string {
	if a.flags.format != "" {
		return a.flags.format
	}
	return a.cfg.Output.Format
}

// renderer builds the output renderer for the selected format.
func (a *app) renderer(cmd *cobra.Command) (output.Renderer, error) {
	format, err := output.ParseFormat(a.formatName())
	if err != nil {
		return nil, err
	}
	return output.New(cmd.OutOrStdout(), format, a.flags.noColor || a.cfg.Output.NoColor), nil
}
