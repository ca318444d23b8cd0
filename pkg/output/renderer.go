// Package output renders link runs, surveys and profiles for humans or
// machines. Renderers only format; they never decide exit status.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/types"
)

// Renderer writes command results.
type Renderer interface {
	RenderRun(result types.LinkRunResult) error
	RenderSurvey(profile *types.ResolvedProfile, survey types.ConflictSurvey) error
	RenderProfiles(profiles []*types.ResolvedProfile) error
	RenderError(err error) error
}

// New returns the renderer for format writing to w. noColor forces plain
// text in terminal format.
func New(w io.Writer, format Format, noColor bool) Renderer {
	switch format {
	case FormatJSON:
		return NewJSONRenderer(w)
	case FormatText:
		return NewTerminalRenderer(w, false)
	case FormatTerminal:
		return NewTerminalRenderer(w, !noColor && SupportsColor(w))
	default:
		panic(fmt.Sprintf("output: unknown format %d", int(format)))
	}
}

// TerminalRenderer writes human-readable lines, styled with lipgloss when
// color is enabled.
type TerminalRenderer struct {
	w     io.Writer
	style styles
}

// NewTerminalRenderer creates a terminal renderer.
func NewTerminalRenderer(w io.Writer, color bool) *TerminalRenderer {
	logger := logging.GetLogger("output")
	logger.Debug().Bool("color", color).Msg("terminal renderer")
	return &TerminalRenderer{w: w, style: newStyles(w, color)}
}

func (r *TerminalRenderer) line(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *TerminalRenderer) item(mark, text string) {
	r.line("%s", r.style.indent.Render(mark+" "+text))
}

// RenderRun renders a blocked or completed link run.
func (r *TerminalRenderer) RenderRun(result types.LinkRunResult) error {
	switch run := result.(type) {
	case *types.BlockedRun:
		r.renderBlocked(run)
	case *types.CompletedRun:
		r.renderCompleted(run)
	default:
		panic(fmt.Sprintf("output: unknown LinkRunResult %T", result))
	}
	return nil
}

func (r *TerminalRenderer) renderBlocked(run *types.BlockedRun) {
	s := r.style
	r.line("%s", s.err.Render(fmt.Sprintf("Link blocked by %s", plural(len(run.Survey.Conflicts), "conflict"))))
	r.line("")
	for _, c := range run.Survey.Conflicts {
		r.item(s.err.Render(errorMark), r.describeConflict(c))
	}
	r.line("")
	r.line("%s", s.muted.Render("Nothing was changed. Re-run with --force to back up the conflicting paths and link."))
}

func (r *TerminalRenderer) renderCompleted(run *types.CompletedRun) {
	s := r.style
	batch := run.Batch

	for _, o := range batch.Successful {
		text := fmt.Sprintf("%s -> %s", s.path.Render(o.ExpandedTargetPath), o.SourcePath)
		if o.Backup != nil {
			text += s.muted.Render(fmt.Sprintf(" (backup: %s)", o.Backup.BackupPath))
		}
		r.item(s.success.Render(successMark), text)
	}
	for _, o := range batch.Skipped {
		r.item(s.muted.Render(skipMark), s.muted.Render(o.ExpandedTargetPath+" already linked"))
	}
	for _, o := range batch.Failed {
		r.item(s.err.Render(errorMark), fmt.Sprintf("%s: %s", s.path.Render(o.ExpandedTargetPath), o.ErrorMessage))
	}

	if len(batch.Successful)+len(batch.Skipped)+len(batch.Failed) > 0 {
		r.line("")
	}

	summary := fmt.Sprintf("%d linked, %d skipped, %d failed, %s",
		len(batch.Successful), len(batch.Skipped), len(batch.Failed), plural(countBackedUp(run.Backups), "backup"))
	if batch.IsSuccess() {
		r.line("%s", s.success.Render(summary))
	} else {
		r.line("%s", s.err.Render(summary))
	}
}

// RenderSurvey renders what a link run would do.
func (r *TerminalRenderer) RenderSurvey(profile *types.ResolvedProfile, survey types.ConflictSurvey) error {
	s := r.style
	if profile != nil {
		r.line("%s %s", s.title.Render("Profile"), strings.Join(profile.InheritanceChain, " > "))
		r.line("")
	}

	if len(survey.AlreadyLinkedEntries) > 0 {
		r.line("%s", s.title.Render("Linked"))
		for _, e := range survey.AlreadyLinkedEntries {
			r.item(s.success.Render(successMark), e.Target)
		}
	}
	if len(survey.SafeEntries) > 0 {
		r.line("%s", s.title.Render("Not linked"))
		for _, e := range survey.SafeEntries {
			r.item(s.muted.Render(skipMark), fmt.Sprintf("%s -> %s", e.Target, e.Source))
		}
	}
	if survey.HasConflicts() {
		r.line("%s", s.title.Render("Conflicts"))
		for _, c := range survey.Conflicts {
			r.item(s.warning.Render(warnMark), r.describeConflict(c))
		}
	}

	r.line("")
	r.line("%s", s.muted.Render(fmt.Sprintf("%d linked, %d to link, %s",
		len(survey.AlreadyLinkedEntries), len(survey.SafeEntries), plural(len(survey.Conflicts), "conflict"))))
	return nil
}

// RenderProfiles lists profiles with their inheritance chains.
func (r *TerminalRenderer) RenderProfiles(profiles []*types.ResolvedProfile) error {
	s := r.style
	if len(profiles) == 0 {
		r.line("%s", s.muted.Render("No profiles defined"))
		return nil
	}
	for _, p := range profiles {
		chain := ""
		if len(p.InheritanceChain) > 1 {
			chain = s.muted.Render(" (" + strings.Join(p.InheritanceChain, " > ") + ")")
		}
		r.line("%s%s  %s", s.title.Render(p.Name), chain, s.muted.Render(plural(len(p.Dotfiles), "dotfile")))
	}
	return nil
}

// RenderError renders an error message with appropriate styling
func (r *TerminalRenderer) RenderError(err error) error {
	r.line("%s %s", r.style.err.Render("Error:"), err.Error())
	return nil
}

func (r *TerminalRenderer) describeConflict(c types.Conflict) string {
	target := r.style.path.Render(c.ExpandedTargetPath)
	switch c.Kind {
	case types.ConflictRegularFile:
		return target + " exists and is a file"
	case types.ConflictDirectory:
		return target + " exists and is a directory"
	case types.ConflictMismatchedSymlink:
		return fmt.Sprintf("%s links to %s", target, c.ExistingSymlinkTarget)
	case types.ConflictUnreadable:
		return fmt.Sprintf("%s cannot be inspected: %s", target, c.ProbeError)
	case types.ConflictNone:
		return target
	default:
		panic(fmt.Sprintf("output: unknown ConflictKind %d", int(c.Kind)))
	}
}

func countBackedUp(backups []types.BackupOutcome) int {
	n := 0
	for _, b := range backups {
		if b.Success {
			n++
		}
	}
	return n
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
