package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/dottie/pkg/constants"
	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/arthur-debert/dottie/pkg/logging"
	"github.com/arthur-debert/dottie/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds the effective configuration for the repository at repoRoot.
// Layers, lowest first:
//  1. built-in defaults
//  2. the user file (paths.UserConfigPath)
//  3. .dottie.toml or dottie.toml in repoRoot, first match wins
//  4. DOTTIE_* environment variables (DOTTIE_BACKUP_TAG sets backup.tag)
//
// Missing files are skipped. An empty repoRoot skips layer 3.
func Load(repoRoot string) (*Config, error) {
	return LoadFiles(paths.UserConfigPath(), repoConfigPath(repoRoot))
}

// LoadFiles is Load with explicit file paths. Empty or missing paths are skipped.
func LoadFiles(userFile, repoFile string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	var sources []string

	// 2-3. User then repository file
	for _, path := range []string{userFile, repoFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, path)
		logger.Debug().Str("path", path).Msg("loaded config file")
	}

	// 4. Environment
	if err := k.Load(env.Provider(constants.EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration, ignoring files and environment.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		panic(err)
	}
	cfg, err := decode(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

// repoConfigPath returns the first repository config file that exists, or "".
func repoConfigPath(repoRoot string) string {
	if repoRoot == "" {
		return ""
	}
	for _, name := range constants.RootConfigFiles {
		path := filepath.Join(repoRoot, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envKey maps DOTTIE_LINK_DIR_MODE to link.dir_mode: the first underscore
// separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, constants.EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// stringToFileModeHookFunc parses strings such as "0750" or "750" as octal
// permission bits.
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	modeType := reflect.TypeOf(fs.FileMode(0))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != modeType {
			return data, nil
		}
		s := strings.TrimPrefix(strings.TrimSpace(data.(string)), "0o")
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid file mode %q", data)
		}
		return fs.FileMode(mode), nil
	}
}
