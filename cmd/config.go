package cmd

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "github.com/mouse-blink/testbook/internal/model"
)

const (
	configFileName = ".testbook"
	configFileType = "yaml"
	envPrefix      = "TESTBOOK"
)

// Configuration keys.
const (
	keyDocument = "document"
	keyLogLevel = "log-level"
	keyParallel = "parallel"
)

// flagKeys maps flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"file":      keyDocument,
	"log-level": keyLogLevel,
	"parallel":  keyParallel,
}

const (
	defaultDocument = "tests.tbk"
	defaultLogLevel = "warn"
	defaultParallel = 4
)

// settings holds the configuration of the running command.
var settings = newSettings()

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyDocument, defaultDocument)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyParallel, defaultParallel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// loadSettings merges, from lowest to highest priority, the defaults, the
// config file, the TESTBOOK_* environment and the flags of cmd, then applies
// the log level.
func loadSettings(cmd *cobra.Command) error {
	v := newSettings()

	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return errors.Wrapf(err, "bind flag %s", key)
			}
		}
	}

	if err := readConfigFile(v, configFlag); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return errors.Wrapf(err, "invalid %s", keyLogLevel)
	}

	logLevel.Set(level)
	settings = v

	return nil
}

// readConfigFile reads path, or $HOME/.testbook.yaml when path is empty. Only
// the default file may be missing.
func readConfigFile(v *viper.Viper, path string) error {
	v.SetConfigType(configFileType)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}

		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return errors.Wrap(err, "find home directory")
	}

	v.AddConfigPath(home)
	v.SetConfigName(configFileName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrap(err, "read config")
	}

	return nil
}

// documentPath returns the configured document with the default extension
// added when it has none.
func documentPath() m.Path {
	return m.Path(settings.GetString(keyDocument)).WithExt()
}
