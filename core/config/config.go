// Package config resolves textclean settings from flags, environment
// variables and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/textclean/core"
	"github.com/gaurav-prasanna/textclean/core/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment variable, e.g. TEXTCLEAN_DRY_RUN.
const EnvPrefix = "TEXTCLEAN"

const pathKey = "path"

// Config holds the settings of a single run.
type Config struct {
	Path   string
	DryRun bool
	Atomic bool
	Log    logger.Config
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Path:   core.DefaultPath,
		Atomic: true,
		Log:    logger.NewConfig(),
	}
}

// Opt is a single command-line option
type Opt struct {
	DestP   interface{} // pointer to the destination
	Flag    string
	Default interface{}
	Desc    string
}

// NewOpt creates a new command line option.
func NewOpt(destP interface{}, flag string, dflt interface{}, desc string) Opt {
	return Opt{
		DestP:   destP,
		Flag:    flag,
		Default: dflt,
		Desc:    desc,
	}
}

// Opts returns the options that populate c.
func (c *Config) Opts() []Opt {
	d := Default()
	return []Opt{
		NewOpt(&c.DryRun, "dry-run", d.DryRun, "Report what would change without writing the file"),
		NewOpt(&c.Atomic, "atomic", d.Atomic, "Write to a temporary file and rename it over the original"),
		NewOpt(&c.Log.Level, "log-level", d.Log.Level, "Diagnostic log level (debug, info, warn, error)"),
		NewOpt(&c.Log.Format, "log-format", d.Log.Format, "Diagnostic log format (auto, console, logfmt, json)"),
	}
}

// NewViper returns a viper instance reading TEXTCLEAN_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// This normalizes "-" to an underscore in env names.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetDefault(pathKey, core.DefaultPath)
	return v
}

// BindOptions adds opts to fs and registers them with v.
func BindOptions(v *viper.Viper, fs *pflag.FlagSet, opts []Opt) {
	for _, o := range opts {
		switch destP := o.DestP.(type) {
		case *string:
			var d string
			if o.Default != nil {
				d = o.Default.(string)
			}
			fs.StringVar(destP, o.Flag, d, o.Desc)
		case *bool:
			var d bool
			if o.Default != nil {
				d = o.Default.(bool)
			}
			fs.BoolVar(destP, o.Flag, d, o.Desc)
		case *zapcore.Level:
			var d zapcore.Level
			if o.Default != nil {
				d = o.Default.(zapcore.Level)
			}
			LevelVar(fs, destP, o.Flag, d, o.Desc)
		default:
			// if you get a panic here, add the destination type above.
			panic(fmt.Errorf("unknown destination type %T", o.DestP))
		}
		mustBindPFlag(v, o.Flag, fs)
	}
}

// Load copies the resolved value of every option into its destination.
// It must run after flags are parsed so that set flags win over env vars.
func Load(v *viper.Viper, opts []Opt) error {
	for _, o := range opts {
		switch destP := o.DestP.(type) {
		case *string:
			*destP = v.GetString(o.Flag)
		case *bool:
			*destP = v.GetBool(o.Flag)
		case *zapcore.Level:
			if err := destP.UnmarshalText([]byte(v.GetString(o.Flag))); err != nil {
				return fmt.Errorf("invalid %s: %w", o.Flag, err)
			}
		}
	}
	return nil
}

// ResolvePath returns the first positional argument, or the configured path.
// An explicit empty argument is rejected rather than read as "no path".
func ResolvePath(v *viper.Viper, args []string) (string, error) {
	if len(args) > 0 {
		if args[0] == "" {
			return "", errors.New("path must not be empty")
		}
		return args[0], nil
	}
	return v.GetString(pathKey), nil
}

func mustBindPFlag(v *viper.Viper, key string, fs *pflag.FlagSet) {
	if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
		panic(err)
	}
}
