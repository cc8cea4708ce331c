package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the per-process knobs for local runs. On the platform none
// of them are set and the defaults apply.
type Settings struct {
	ConfigPath string
	LogLevel   string
	DumpConfig bool
}

// ParseSettings resolves flags, then BOTS_* environment variables, then
// defaults.
func ParseSettings(name string, args []string) (*Settings, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "YAML tuning file")
	fs.String("log-level", "warn", "debug stream level (trace, debug, info, warn, error)")
	fs.Bool("dump-config", false, "print the effective tuning as YAML and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("BOTS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("config", "")
	v.SetDefault("log-level", "warn")
	v.SetDefault("dump-config", false)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return &Settings{
		ConfigPath: v.GetString("config"),
		LogLevel:   v.GetString("log-level"),
		DumpConfig: v.GetBool("dump-config"),
	}, nil
}
