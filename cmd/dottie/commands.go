package dottie

import (
	"fmt"

	"github.com/arthur-debert/dottie/internal/version"
	"github.com/arthur-debert/dottie/pkg/config"
	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/arthur-debert/dottie/pkg/filesystem"
	"github.com/arthur-debert/dottie/pkg/linking"
	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/profile"
	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loadProfiles reads the repository's profile file.
func (a *app) loadProfiles() (*profile.File, error) {
	return profile.Load(a.osFs, a.repoRoot, a.cfg.Profile.File)
}

// resolveProfile resolves name, or the configured default when name is empty.
func (a *app) resolveProfile(name string) (*types.ResolvedProfile, error) {
	if name == "" {
		name = a.cfg.Profile.Default
	}
	file, err := a.loadProfiles()
	if err != nil {
		return nil, err
	}
	return file.Resolve(name)
}

func (a *app) orchestrator() *linking.Orchestrator {
	return linking.New(filesystem.NewAferoFS(a.osFs), linking.Options{
		BackupTag: a.cfg.Backup.Tag,
		DirMode:   a.cfg.Link.DirMode,
	})
}

// profileNamesCompletion provides shell completion for profile names
func (a *app) profileNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := a.setup(cmd); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	file, err := a.loadProfiles()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return file.List(), cobra.ShellCompDirectiveNoFileComp
}

func newLinkCmd(a *app) *cobra.Command {
	var (
		profileName string
		force       bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.link")

			resolved, err := a.resolveProfile(profileName)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			logger.Info().
				Str("profile", resolved.Name).
				Strs("chain", resolved.InheritanceChain).
				Int("dotfiles", len(resolved.Dotfiles)).
				Bool("force", force).
				Bool("dryRun", dryRun).
				Msg("Starting link")

			if dryRun {
				survey, err := a.orchestrator().Preview(resolved, a.repoRoot)
				if err != nil {
					return err
				}
				if err := renderer.RenderSurvey(resolved, survey); err != nil {
					return err
				}
				if a.formatName() != config.FormatJSON {
					fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
				}
				return nil
			}

			result, err := a.orchestrator().ExecuteLink(resolved, a.repoRoot, force)
			if err != nil {
				return err
			}
			if err := renderer.RenderRun(result); err != nil {
				return err
			}
			return runError(result)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", MsgFlagProfile)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	_ = cmd.RegisterFlagCompletionFunc("profile", a.profileNamesCompletion)

	return cmd
}

// runError turns an unsuccessful run into a coded error for the exit status.
func runError(result types.LinkRunResult) error {
	switch run := result.(type) {
	case *types.BlockedRun:
		return errors.Newf(errors.ErrLinkBlocked, MsgErrLinkBlocked, len(run.Survey.Conflicts))
	case *types.CompletedRun:
		if run.Batch.IsSuccess() {
			return nil
		}
		total := len(run.Batch.Successful) + len(run.Batch.Skipped) + len(run.Batch.Failed)
		return errors.Newf(errors.ErrLinkFailed, MsgErrLinkFailed, len(run.Batch.Failed), total)
	default:
		panic(fmt.Sprintf("unknown LinkRunResult %T", result))
	}
}

func newStatusCmd(a *app) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := a.resolveProfile(profileName)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			survey, err := a.orchestrator().Preview(resolved, a.repoRoot)
			if err != nil {
				return err
			}
			return renderer.RenderSurvey(resolved, survey)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", MsgFlagProfile)
	_ = cmd.RegisterFlagCompletionFunc("profile", a.profileNamesCompletion)

	return cmd
}

func newProfilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "profiles",
		Short:   MsgProfilesShort,
		Long:    MsgProfilesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.loadProfiles()
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			var resolved []*types.ResolvedProfile
			for _, name := range file.List() {
				p, err := file.Resolve(name)
				if err != nil {
					return err
				}
				resolved = append(resolved, p)
			}
			return renderer.RenderProfiles(resolved)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if initFile {
				content, err := config.GenerateConfigContent()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, content)
				return err
			}

			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			for _, source := range a.cfg.Sources {
				fmt.Fprintf(out, MsgSourcesItem, source)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		GroupID:     "misc",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStandalone: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           map[string]string{annotationStandalone: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}
