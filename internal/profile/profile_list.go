package profile

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/adrg/strutil"
	strmetrics "github.com/adrg/strutil/metrics"
	"github.com/hbomb79/Strata/internal/metrics"
	"github.com/hbomb79/Strata/pkg/logger"
)

var profileLogger = logger.Get("ProfileList")

// minSuggestionSimilarity is the lowest similarity score at which a
// registered tag is offered as a suggestion for an unknown one.
const minSuggestionSimilarity = 0.5

type ProfileFindCallback func(Profile) bool

// Filter restricts which profiles are considered during selection. An
// empty slice means "any".
type Filter struct {
	StreamTypes  []StreamType
	ProfileTypes []ProfileType
}

// ForStream is shorthand for a filter on a single stream type, optionally
// restricted to the profile types provided.
func ForStream(streamType StreamType, profileTypes ...ProfileType) Filter {
	return Filter{StreamTypes: []StreamType{streamType}, ProfileTypes: profileTypes}
}

func (f Filter) accepts(p Profile) bool {
	if len(f.StreamTypes) > 0 && !slices.Contains(f.StreamTypes, p.StreamType()) {
		return false
	}
	if len(f.ProfileTypes) > 0 && !slices.Contains(f.ProfileTypes, p.ProfileType()) {
		return false
	}

	return true
}

func (f Filter) String() string {
	if len(f.StreamTypes) == 0 {
		return "ANY"
	}
	if len(f.StreamTypes) == 1 {
		return f.StreamTypes[0].String()
	}

	return fmt.Sprint(f.StreamTypes)
}

type ProfileManager interface {
	Profiles() []Profile
	InsertProfile(Profile) error
	RemoveProfile(string) error
	FindProfile(ProfileFindCallback) (int, Profile)
	FindProfileByTag(string) (int, Profile)
	LookupTag(string) (Profile, error)
	MoveProfile(string, int) error
	Select(*Context, Filter) (Profile, error)
	Explain(*Context, Filter) []Rejection
}

type safeList struct {
	sync.Mutex
	profiles []Profile
}

// DefaultProfiles returns a fresh instance of every built-in profile, in the
// order in which they should be considered for selection.
func DefaultProfiles() []Profile {
	return []Profile{
		NewEac3TransmuxProfile(),
		NewAc3TransmuxProfile(),
		NewAacTranscodeProfile(),
		NewThumbnailProfile(),
	}
}

// NewList returns a new ProfileManager containing the profiles provided, in
// order. An error is returned if two profiles share a tag.
func NewList(profiles ...Profile) (ProfileManager, error) {
	list := &safeList{profiles: make([]Profile, 0, len(profiles))}
	for _, p := range profiles {
		if err := list.InsertProfile(p); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// Profiles returns a copy of the profiles currently stored in this list.
func (list *safeList) Profiles() []Profile {
	list.Lock()
	defer list.Unlock()

	return slices.Clone(list.profiles)
}

// InsertProfile accepts a Profile and appends it to this list, making it a
// candidate for selection after every profile already present.
func (list *safeList) InsertProfile(p Profile) error {
	list.Lock()
	defer list.Unlock()

	if list.indexOfLocked(p.Tag()) != -1 {
		return fmt.Errorf("InsertProfile failed: %w: profile with tag %s already exists", ErrDuplicateProfile, p.Tag())
	}

	list.profiles = append(list.profiles, p)
	profileLogger.Emit(logger.DEBUG, "Registered profile %s (tag=%s type=%s stream=%s)\n", p.Name(), p.Tag(), p.ProfileType(), p.StreamType())

	return nil
}

// RemoveProfile accepts a 'tag', searches for a profile in this list
// that matches the tag provided, and ejects it from the list
func (list *safeList) RemoveProfile(tag string) error {
	list.Lock()
	defer list.Unlock()

	idx := list.indexOfLocked(tag)
	if idx == -1 {
		return fmt.Errorf("RemoveProfile failed: %w", list.unknownTagErrorLocked(tag))
	}

	list.profiles = slices.Delete(list.profiles, idx, idx+1)
	profileLogger.Emit(logger.REMOVE, "Removed profile with tag %s\n", tag)

	return nil
}

// MoveProfile moves the profile identified by the tag to the desiredIndex,
// shifting the profiles in between. Selection order follows list order, so
// this is how a caller prioritises one profile over another.
func (list *safeList) MoveProfile(tag string, desiredIndex int) error {
	list.Lock()
	defer list.Unlock()

	index := list.indexOfLocked(tag)
	if index == -1 {
		return fmt.Errorf("MoveProfile failed: %w", list.unknownTagErrorLocked(tag))
	}

	if desiredIndex < 0 || desiredIndex >= len(list.profiles) {
		return fmt.Errorf("MoveProfile failed: cannot move profile to index %d as destination index is out of bounds", desiredIndex)
	}

	target := list.profiles[index]
	list.profiles = slices.Delete(list.profiles, index, index+1)
	list.profiles = slices.Insert(list.profiles, desiredIndex, target)

	return nil
}

// FindProfile iterates over each profile stored inside this list and calls
// the 'cb' provided. The first profile for which 'cb' returns true is returned
// alongside its index. If none match, -1 and nil are returned.
func (list *safeList) FindProfile(cb ProfileFindCallback) (int, Profile) {
	list.Lock()
	defer list.Unlock()

	for index, currentProfile := range list.profiles {
		if cb(currentProfile) {
			return index, currentProfile
		}
	}

	return -1, nil
}

// FindProfileByTag is shorthand for calling FindProfile with a callback
// that matches on the tag of the Profile.
func (list *safeList) FindProfileByTag(tag string) (int, Profile) {
	return list.FindProfile(func(p Profile) bool {
		return p.Tag() == tag
	})
}

// LookupTag returns the profile with the tag provided. If no such profile
// exists the error returned wraps ErrUnknownProfile and, where possible,
// suggests the closest registered tag.
func (list *safeList) LookupTag(tag string) (Profile, error) {
	list.Lock()
	defer list.Unlock()

	if idx := list.indexOfLocked(tag); idx != -1 {
		return list.profiles[idx], nil
	}

	return nil, list.unknownTagErrorLocked(tag)
}

// indexOfLocked returns the index of the profile with the tag provided, or
// -1. The caller must hold the lock.
func (list *safeList) indexOfLocked(tag string) int {
	return slices.IndexFunc(list.profiles, func(p Profile) bool { return p.Tag() == tag })
}

// Select returns the first profile (in list order) which passes the filter
// and supports the context. If no profile supports the context, a
// *NoProfileError carrying every rejection is returned.
func (list *safeList) Select(ctx *Context, filter Filter) (Profile, error) {
	rejections := make([]Rejection, 0)
	for _, p := range list.candidates(filter) {
		err := p.Supports(ctx)
		if err == nil {
			profileLogger.Emit(logger.DEBUG, "Selected profile %s for %s\n", p.Name(), ctx)
			metrics.ProfileSelectionsTotal.WithLabelValues(p.Tag(), p.StreamType().String()).Inc()
			return p, nil
		}

		profileLogger.Emit(logger.VERBOSE, "Profile %s rejected %s: %s\n", p.Name(), ctx, err.Error())
		metrics.ProfileRejectionsTotal.WithLabelValues(p.Tag()).Inc()
		rejections = append(rejections, Rejection{Profile: p, Err: err})
	}

	selectErr := &NoProfileError{Rejections: rejections}
	profileLogger.Emit(logger.WARNING, "No profile matched %s (filter=%s): %s\n", ctx, filter, selectErr.Error())
	metrics.ProfileSelectionFailuresTotal.WithLabelValues(filter.String()).Inc()

	return nil, selectErr
}

// Explain asks every candidate profile whether it supports the context, without
// selecting one. Profiles that accept the context have a nil Err.
func (list *safeList) Explain(ctx *Context, filter Filter) []Rejection {
	candidates := list.candidates(filter)
	out := make([]Rejection, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, Rejection{Profile: p, Err: p.Supports(ctx)})
	}

	return out
}

func (list *safeList) candidates(filter Filter) []Profile {
	list.Lock()
	defer list.Unlock()

	out := make([]Profile, 0, len(list.profiles))
	for _, p := range list.profiles {
		if filter.accepts(p) {
			out = append(out, p)
		}
	}

	return out
}

// unknownTagErrorLocked must be called with the lock held.
func (list *safeList) unknownTagErrorLocked(tag string) error {
	best, bestScore := "", 0.0
	levenshtein := strmetrics.NewLevenshtein()
	for _, p := range list.profiles {
		if score := strutil.Similarity(tag, p.Tag(), levenshtein); score > bestScore {
			best, bestScore = p.Tag(), score
		}
	}

	if bestScore >= minSuggestionSimilarity {
		return fmt.Errorf("%w: no profile with tag %s exists (did you mean %s?)", ErrUnknownProfile, tag, best)
	}

	return fmt.Errorf("%w: no profile with tag %s exists", ErrUnknownProfile, tag)
}

// IsNotSupported reports whether err is a profile rejection (either a single
// profile's, or an aggregate from Select).
func IsNotSupported(err error) bool { return errors.Is(err, ErrProfileNotSupported) }
