package profile

import "fmt"

// TransmuxProfile copies an audio stream, unchanged, into fragmented MP4
// HLS segments. Copying works for any codec in theory, but the container
// only supports a handful, so each instance is restricted to a single codec.
type TransmuxProfile struct {
	codec string
	name  string
	tag   string
}

func NewEac3TransmuxProfile() *TransmuxProfile {
	return &TransmuxProfile{codec: "eac3", name: "Eac3TransmuxProfile", tag: "eac3_copy"}
}

func NewAc3TransmuxProfile() *TransmuxProfile {
	return &TransmuxProfile{codec: "ac3", name: "Ac3TransmuxProfile", tag: "ac3_copy"}
}

func (p *TransmuxProfile) ProfileType() ProfileType { return Transmux }
func (p *TransmuxProfile) StreamType() StreamType   { return Audio }
func (p *TransmuxProfile) Name() string             { return p.name }
func (p *TransmuxProfile) Tag() string              { return p.tag }
func (p *TransmuxProfile) Codec() string            { return p.codec }

// Supports accepts the context only if both the source and the requested
// output use this profile's codec, as a stream copy cannot change codec.
func (p *TransmuxProfile) Supports(ctx *Context) error {
	if ctx.Input.Codec == ctx.Output.Codec && ctx.Input.Codec == p.codec {
		return nil
	}

	return notSupported(p, "Profile only supports %s input and output codecs.", p.codec)
}

func (p *TransmuxProfile) Build(ctx Context) ([]string, bool) {
	return hlsArgs(ctx, "-c:0", "copy"), true
}

func (p *TransmuxProfile) String() string {
	return fmt.Sprintf("%s{tag=%s}", p.name, p.tag)
}
