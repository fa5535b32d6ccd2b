package config

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/paperboard/glscene/internal/postfx"
)

// Options are the command line flags.
type Options struct {
	ConfigPath string
	Effect     string
	Watch      bool
	Verbose    bool
}

// ParseFlags parses args (without the program name). Usage goes to out.
func ParseFlags(name string, args []string, out io.Writer) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "scene file (.yaml, .yml or .toml), built-in scene when empty")
	fs.StringVarP(&opts.Effect, "effect", "e", "", fmt.Sprintf("initial post effect %v", postfx.Effects()))
	fs.BoolVarP(&opts.Watch, "watch", "w", false, "reload lights and effect when the scene file changes")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "dump the resolved scene and GL details")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.Watch && opts.ConfigPath == "" {
		return nil, errors.New("--watch needs --config")
	}
	if _, err := postfx.ParseEffect(opts.Effect); err != nil {
		return nil, err
	}
	return opts, nil
}

// Load returns the scene selected by the options, with the effect flag
// applied on top.
func (o *Options) Load() (*Config, error) {
	cfg := Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = Load(o.ConfigPath); err != nil {
			return nil, err
		}
	}
	if o.Effect != "" {
		effect, err := postfx.ParseEffect(o.Effect)
		if err != nil {
			return nil, err
		}
		cfg.Effect = effect
	}
	return cfg, nil
}
