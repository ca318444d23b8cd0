package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/arthur-debert/dottie/pkg/constants"
	"github.com/arthur-debert/dottie/pkg/errors"
)

// Output formats
const (
	FormatTerminal = "terminal"
	FormatText     = "text"
	FormatJSON     = "json"
)

// Config is the effective tool configuration.
type Config struct {
	Backup  Backup  `koanf:"backup"`
	Link    Link    `koanf:"link"`
	Profile Profile `koanf:"profile"`
	Output  Output  `koanf:"output"`
	Logging Logging `koanf:"logging"`

	// Sources lists the config files that were applied, in load order.
	Sources []string `koanf:"-"`
}

// Backup controls how conflicting targets are moved aside.
type Backup struct {
	// Tag is embedded in backup names: <path>.<tag>-backup-<timestamp>.
	Tag string `koanf:"tag"`
}

// Link controls symlink creation.
type Link struct {
	// DirMode is used for link parent directories created on demand.
	DirMode fs.FileMode `koanf:"dir_mode"`
}

// Profile selects the profile definition file and default profile.
type Profile struct {
	Default string `koanf:"default"`
	File    string `koanf:"file"`
}

// Output controls rendering.
type Output struct {
	Format  string `koanf:"format"`
	NoColor bool   `koanf:"no_color"`
}

// Logging controls the persistent log file.
type Logging struct {
	File bool `koanf:"file"`
}

// Defaults returns the built-in settings as a nested map, the first koanf layer.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"backup": map[string]interface{}{
			"tag": constants.ToolName,
		},
		"link": map[string]interface{}{
			"dir_mode": 0755,
		},
		"profile": map[string]interface{}{
			"default": constants.DefaultProfile,
			"file":    constants.ProfileFile,
		},
		"output": map[string]interface{}{
			"format":   FormatTerminal,
			"no_color": false,
		},
		"logging": map[string]interface{}{
			"file": true,
		},
	}
}

// Validate checks values that cannot be fixed by decoding.
func (c *Config) Validate() error {
	if c.Backup.Tag == "" {
		return errors.New(errors.ErrConfigValid, "backup.tag must not be empty")
	}
	if strings.ContainsAny(c.Backup.Tag, `/\`) {
		return errors.Newf(errors.ErrConfigValid, "backup.tag %q must not contain path separators", c.Backup.Tag)
	}
	if c.Link.DirMode == 0 || c.Link.DirMode&^fs.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigValid, "link.dir_mode %#o is not a permission mode", uint32(c.Link.DirMode)).
			WithDetail("value", fmt.Sprintf("%#o", uint32(c.Link.DirMode)))
	}
	if c.Profile.File == "" {
		return errors.New(errors.ErrConfigValid, "profile.file must not be empty")
	}
	if c.Profile.Default == "" {
		return errors.New(errors.ErrConfigValid, "profile.default must not be empty")
	}
	switch c.Output.Format {
	case FormatTerminal, FormatText, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.format %q is not one of %s, %s, %s",
			c.Output.Format, FormatTerminal, FormatText, FormatJSON)
	}
	return nil
}
