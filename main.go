package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hbomb79/Strata/internal"
	"github.com/hbomb79/Strata/internal/profile"
	"github.com/hbomb79/Strata/pkg/logger"
)

// setFlags collects repeated -set key=value flags, which are decoded on
// top of the output context built from the dedicated flags.
type setFlags map[string]any

func (s setFlags) String() string { return fmt.Sprint(map[string]any(s)) }

func (s setFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}

	s[key] = val
	return nil
}

type options struct {
	configPath string
	profileTag string
	streamType string
	explain    bool
	in         profile.InputContext
	out        profile.OutputContext
	overrides  setFlags
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{overrides: make(setFlags)}

	fs := flag.NewFlagSet("strata", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (environment only when empty)")
	fs.StringVar(&opts.profileTag, "profile", "", "Use the profile with this tag instead of selecting one")
	fs.StringVar(&opts.streamType, "stream-type", "audio", "Stream type to select a profile for: audio | video | thumbnail | any")
	fs.BoolVar(&opts.explain, "explain", false, "Print every candidate profile's verdict instead of an invocation")

	fs.StringVar(&opts.in.File, "input", "", "Source media file")
	fs.IntVar(&opts.in.Stream, "stream", 0, "Index of the stream inside the source")
	fs.StringVar(&opts.in.Codec, "input-codec", "", "Codec of the source stream")
	fs.IntVar(&opts.in.AudioChannels, "input-channels", 0, "Channel count of the source stream")

	fs.StringVar(&opts.out.Outdir, "outdir", "", "Directory the output is written to")
	fs.IntVar(&opts.out.StartNum, "start", 0, "Index of the first segment to produce")
	fs.IntVar(&opts.out.TargetGop, "gop", 0, "Segment length in seconds (config default when 0)")
	fs.StringVar(&opts.out.Codec, "codec", "", "Codec to produce")
	fs.Var(opts.overrides, "set", "Optional output property as key=value (audio_channels, bitrate, width, height). Repeatable")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return opts, nil
}

func (opts *options) filter() (profile.Filter, error) {
	if strings.EqualFold(opts.streamType, "any") {
		return profile.Filter{}, nil
	}

	st, err := profile.ParseStreamType(opts.streamType)
	if err != nil {
		return profile.Filter{}, err
	}

	return profile.ForStream(st), nil
}

func loadConfig(path string) (internal.Config, error) {
	var config internal.Config
	if path == "" {
		return config, config.LoadFromEnv()
	}

	return config, config.LoadFromFile(path)
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	logger.SetOutput(stderr)

	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	config, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	strata, err := internal.New(config)
	if err != nil {
		return err
	}

	out, err := profile.DecodeOutputContext(opts.out, opts.overrides)
	if err != nil {
		return err
	}

	filter, err := opts.filter()
	if err != nil {
		return err
	}

	if opts.explain {
		verdicts, err := strata.Explain(opts.in, out, filter)
		if err != nil {
			return err
		}

		for _, v := range verdicts {
			if v.Err == nil {
				fmt.Fprintf(stdout, "%-12s supported\n", v.Profile.Tag())
			} else {
				fmt.Fprintf(stdout, "%-12s %s\n", v.Profile.Tag(), v.Err.Error())
			}
		}
		return nil
	}

	if opts.profileTag != "" {
		inv, err := strata.PlanWithTag(opts.profileTag, opts.in, out)
		if err != nil {
			return err
		}

		fmt.Fprintln(stdout, inv.String())
		return nil
	}

	inv, err := strata.Plan(opts.in, out, filter)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, inv.String())
	return nil
}

// main prints the ffmpeg invocation Strata would use for the request
// described by the command line flags. Nothing is executed.
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "strata: %v\n", err)
		os.Exit(1)
	}
}
