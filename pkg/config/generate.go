package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// fileView is the on-disk shape of a config file. dir_mode is written as an
// octal string so that it reads back unchanged.
type fileView struct {
	Backup struct {
		Tag string `toml:"tag"`
	} `toml:"backup"`
	Link struct {
		DirMode string `toml:"dir_mode"`
	} `toml:"link"`
	Profile struct {
		Default string `toml:"default"`
		File    string `toml:"file"`
	} `toml:"profile"`
	Output struct {
		Format  string `toml:"format"`
		NoColor bool   `toml:"no_color"`
	} `toml:"output"`
	Logging struct {
		File bool `toml:"file"`
	} `toml:"logging"`
}

// Marshal renders cfg as TOML in the format Load reads.
func Marshal(cfg *Config) ([]byte, error) {
	var view fileView
	view.Backup.Tag = cfg.Backup.Tag
	view.Link.DirMode = fmt.Sprintf("%04o", uint32(cfg.Link.DirMode))
	view.Profile.Default = cfg.Profile.Default
	view.Profile.File = cfg.Profile.File
	view.Output.Format = cfg.Output.Format
	view.Output.NoColor = cfg.Output.NoColor
	view.Logging.File = cfg.Logging.File

	data, err := toml.Marshal(view)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

// GenerateConfigContent returns a starter config file: every default value,
// commented out.
func GenerateConfigContent() (string, error) {
	data, err := Marshal(Default())
	if err != nil {
		return "", err
	}
	header := "# dottie configuration. Uncomment a value to change it.\n\n"
	return header + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [backup], [link]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
