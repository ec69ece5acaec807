package profile

import "strconv"

// stereoDownmixFilter folds centre and LFE in to both channels at half gain,
// and the surround channels at -3dB.
const stereoDownmixFilter = "pan=stereo|FL=0.5*FC+0.707*FL+0.707*BL+0.5*LFE|FR=0.5*FC+0.707*FR+0.707*BR+0.5*LFE"

// AacTranscodeProfile re-encodes any audio stream to AAC, downmixing to
// stereo when the requested channel count differs from the source.
type AacTranscodeProfile struct{}

func NewAacTranscodeProfile() *AacTranscodeProfile { return &AacTranscodeProfile{} }

func (p *AacTranscodeProfile) ProfileType() ProfileType { return Transcode }
func (p *AacTranscodeProfile) StreamType() StreamType   { return Audio }
func (p *AacTranscodeProfile) Name() string             { return "AacTranscodeProfile" }
func (p *AacTranscodeProfile) Tag() string              { return "aac" }

// Supports only looks at the requested output codec. Width/height requests
// are ignored rather than rejected.
func (p *AacTranscodeProfile) Supports(ctx *Context) error {
	if ctx.Output.Codec == "aac" {
		return nil
	}

	return notSupported(p, "Profile only supports aac output, %s was requested.", ctx.Output.Codec)
}

func (p *AacTranscodeProfile) Build(ctx Context) ([]string, bool) {
	codecArgs := []string{"-c:0", "aac"}
	if needsDownmix(ctx) {
		codecArgs = append(codecArgs, "-af", stereoDownmixFilter)
	}

	bitrate := DefaultAudioBitrate
	if ctx.Output.Bitrate != nil {
		bitrate = *ctx.Output.Bitrate
	}
	codecArgs = append(codecArgs, "-ab", strconv.Itoa(bitrate))

	return hlsArgs(ctx, codecArgs...), true
}

// needsDownmix is true when the output requests a channel count that
// differs from the source. No requested count means the layout is unchanged.
func needsDownmix(ctx Context) bool {
	if ctx.Output.AudioChannels == nil {
		return false
	}

	return *ctx.Output.AudioChannels != ctx.Input.AudioChannels
}
