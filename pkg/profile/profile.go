// Package profile reads profile definitions and flattens inheritance into a
// types.ResolvedProfile.
//
// A definition file looks like:
//
//	profiles:
//	  default:
//	    dotfiles:
//	      - source: bashrc
//	        target: ~/.bashrc
//	  work:
//	    extends: default
//	    dotfiles:
//	      - source: gitconfig-work
//	        target: ~/.gitconfig
package profile

import (
	"bytes"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Definition is one profile as written in the file.
type Definition struct {
	Extends  string               `yaml:"extends,omitempty"`
	Dotfiles []types.DotfileEntry `yaml:"dotfiles"`
}

// File is the parsed definition file.
type File struct {
	Profiles map[string]Definition `yaml:"profiles"`

	path string
}

// Path returns where the file was read from, if anywhere.
func (f *File) Path() string {
	return f.path
}

// Load reads the profile file name from repoRoot on fsys.
func Load(fsys afero.Fs, repoRoot, name string) (*File, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(repoRoot, name)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		exists, _ := afero.Exists(fsys, path)
		if !exists {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "profile file %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read profile file %s", path)
	}

	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid profile file %s", path).
			WithDetail("path", path)
	}
	f.path = path

	logger := logging.GetLogger("profile")
	logger.Debug().
		Str("path", path).
		Int("profiles", len(f.Profiles)).
		Msg("loaded profile file")
	return f, nil
}

// Parse decodes and validates a definition file. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse profiles")
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for _, name := range f.List() {
		if strings.TrimSpace(name) == "" {
			return errors.New(errors.ErrConfigValid, "profile name must not be empty")
		}
		def := f.Profiles[name]
		if def.Extends != "" {
			if _, ok := f.Profiles[def.Extends]; !ok {
				return errors.Newf(errors.ErrProfileNotFound, "profile %q extends unknown profile %q", name, def.Extends).
					WithDetail("profile", def.Extends)
			}
		}
		for i, entry := range def.Dotfiles {
			if strings.TrimSpace(entry.Source) == "" || strings.TrimSpace(entry.Target) == "" {
				return errors.Newf(errors.ErrConfigValid, "profile %q dotfile #%d needs both source and target", name, i+1).
					WithDetails(map[string]interface{}{"profile": name, "index": i})
			}
			if filepath.IsAbs(entry.Source) {
				return errors.Newf(errors.ErrConfigValid, "profile %q dotfile %s: source must be relative to the repository", name, entry)
			}
		}
	}
	return nil
}

// List returns the profile names in sorted order.
func (f *File) List() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain returns name and its ancestors, root ancestor first.
func (f *File) Chain(name string) ([]string, error) {
	var chain []string
	seen := map[string]bool{}

	for current := name; current != ""; {
		def, ok := f.Profiles[current]
		if !ok {
			return nil, errors.Newf(errors.ErrProfileNotFound, "profile %q not found", current).
				WithDetail("available", f.List())
		}
		if seen[current] {
			cycle := append(append([]string{}, chain...), current)
			return nil, errors.Newf(errors.ErrProfileCycle, "profile inheritance cycle: %s", strings.Join(cycle, " -> ")).
				WithDetail("profile", name)
		}
		seen[current] = true
		chain = append(chain, current)
		current = def.Extends
	}

	return reverse(chain), nil
}

// Resolve flattens name and its ancestors. Ancestor entries come first; an
// entry whose target matches an earlier one replaces it in place.
func (f *File) Resolve(name string) (*types.ResolvedProfile, error) {
	chain, err := f.Chain(name)
	if err != nil {
		return nil, err
	}

	var dotfiles []types.DotfileEntry
	byTarget := map[string]int{}
	for _, link := range chain {
		for _, entry := range f.Profiles[link].Dotfiles {
			if i, ok := byTarget[entry.Target]; ok {
				dotfiles[i] = entry
				continue
			}
			byTarget[entry.Target] = len(dotfiles)
			dotfiles = append(dotfiles, entry)
		}
	}

	return &types.ResolvedProfile{
		Name:             name,
		InheritanceChain: chain,
		Dotfiles:         dotfiles,
	}, nil
}

func reverse(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[len(names)-1-i] = n
	}
	return out
}
