package internal

import (
	"fmt"

	"github.com/hbomb79/Strata/internal/ffmpeg"
	"github.com/hbomb79/Strata/internal/profile"
	"github.com/hbomb79/Strata/pkg/logger"
)

var log = logger.Get("Core")

// Strata ties the registered profiles to the configured ffmpeg binary. It
// turns a request in to an invocation, but never starts it.
type Strata struct {
	profiles     profile.ProfileManager
	ffmpegConfig ffmpeg.Config
	targetGop    int
}

func New(config Config) (*Strata, error) {
	level, err := logger.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetMinLoggingLevel(level.Level())

	profiles, err := buildProfileList(config.Profiles)
	if err != nil {
		return nil, err
	}

	return &Strata{
		profiles:     profiles,
		ffmpegConfig: config.Ffmpeg,
		targetGop:    config.TargetGop,
	}, nil
}

// buildProfileList returns the built-in profiles enabled by the tags provided, in
// the order the tags are given. No tags enables every profile.
func buildProfileList(tags []string) (profile.ProfileManager, error) {
	defaults, err := profile.NewList(profile.DefaultProfiles()...)
	if err != nil || len(tags) == 0 {
		return defaults, err
	}

	enabled := make([]profile.Profile, 0, len(tags))
	for _, tag := range tags {
		p, err := defaults.LookupTag(tag)
		if err != nil {
			return nil, fmt.Errorf("cannot enable profile: %w", err)
		}

		enabled = append(enabled, p)
	}

	return profile.NewList(enabled...)
}

func (strata *Strata) Profiles() profile.ProfileManager { return strata.profiles }

// Plan selects the first profile which supports the request and returns the
// invocation it builds.
func (strata *Strata) Plan(in profile.InputContext, out profile.OutputContext, filter profile.Filter) (*ffmpeg.Invocation, error) {
	ctx, err := strata.newContext(in, out)
	if err != nil {
		return nil, err
	}

	p, err := strata.profiles.Select(&ctx, filter)
	if err != nil {
		return nil, err
	}

	return strata.build(p, ctx)
}

// PlanWithTag bypasses selection and uses the profile with the tag given. The
// profile must still support the request.
func (strata *Strata) PlanWithTag(tag string, in profile.InputContext, out profile.OutputContext) (*ffmpeg.Invocation, error) {
	ctx, err := strata.newContext(in, out)
	if err != nil {
		return nil, err
	}

	p, err := strata.profiles.LookupTag(tag)
	if err != nil {
		return nil, err
	}

	if err := p.Supports(&ctx); err != nil {
		return nil, err
	}

	return strata.build(p, ctx)
}

// Explain reports the verdict of every candidate profile for the request.
func (strata *Strata) Explain(in profile.InputContext, out profile.OutputContext, filter profile.Filter) ([]profile.Rejection, error) {
	ctx, err := strata.newContext(in, out)
	if err != nil {
		return nil, err
	}

	return strata.profiles.Explain(&ctx, filter), nil
}

func (strata *Strata) newContext(in profile.InputContext, out profile.OutputContext) (profile.Context, error) {
	if out.TargetGop == 0 {
		out.TargetGop = strata.targetGop
	}

	return profile.NewContext(in, out)
}

func (strata *Strata) build(p profile.Profile, ctx profile.Context) (*ffmpeg.Invocation, error) {
	args, ok := p.Build(ctx)
	if !ok {
		return nil, fmt.Errorf("profile %s produced no arguments for %s", p.Name(), ctx)
	}

	inv := ffmpeg.NewInvocation(strata.ffmpegConfig, ctx.ID, p.Tag(), args)
	log.Emit(logger.DEBUG, "Planned %s for %s using %s\n", inv.String(), ctx, p.Name())

	return inv, nil
}
