package profile

// Profile is a single transcoding strategy. Profiles are stateless and safe
// for concurrent use; all request specific information is carried by the
// Context passed to Supports and Build.
type Profile interface {
	// ProfileType returns whether this profile re-encodes or repackages.
	ProfileType() ProfileType

	// StreamType returns the kind of stream this profile produces.
	StreamType() StreamType

	// Name is a human readable name, used in diagnostics.
	Name() string

	// Tag is a short stable identifier used to look the profile up.
	Tag() string

	// Supports returns nil if this profile can satisfy the request described
	// by the context. Otherwise, a *NotSupportedError explaining why is returned.
	Supports(ctx *Context) error

	// Build returns the ordered ffmpeg arguments for the context. It must only be
	// called with a context which Supports has accepted; the arguments produced
	// for any other context are unspecified. The boolean is false if no
	// arguments could be produced.
	Build(ctx Context) ([]string, bool)
}
