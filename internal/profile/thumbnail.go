package profile

import "strings"

// thumbnailFilter samples one frame every two seconds, scales it to at most
// 320px wide and tiles the frames in to 8x6 sheets.
const thumbnailFilter = `fps=1/2,scale=min(320\,iw):ow/dar,tile=8x6`

// ThumbnailProfile extracts keyframes from a video stream in to a sequence
// of JPEG tile sheets. The output size is fixed.
type ThumbnailProfile struct{}

func NewThumbnailProfile() *ThumbnailProfile { return &ThumbnailProfile{} }

func (p *ThumbnailProfile) ProfileType() ProfileType { return Transcode }
func (p *ThumbnailProfile) StreamType() StreamType   { return Thumbnail }
func (p *ThumbnailProfile) Name() string             { return "ThumbnailProfile" }
func (p *ThumbnailProfile) Tag() string              { return "jpg" }

func (p *ThumbnailProfile) Supports(ctx *Context) error {
	var requested []string
	if ctx.Output.Height != nil {
		requested = append(requested, "height")
	}
	if ctx.Output.Width != nil {
		requested = append(requested, "width")
	}
	if ctx.Output.Bitrate != nil {
		requested = append(requested, "bitrate")
	}
	if len(requested) > 0 {
		return notSupported(p, "Thumbnails are a fixed size and cannot honour a requested %s.", strings.Join(requested, "/"))
	}

	if ctx.Output.Codec == "jpg" {
		return nil
	}

	return notSupported(p, "Codec %s not supported.", ctx.Input.Codec)
}

func (p *ThumbnailProfile) Build(ctx Context) ([]string, bool) {
	return []string{
		"-y",
		"-skip_frame", "nokey",
		"-i", ctx.File,
		"-vf", thumbnailFilter,
		"-c:v", "mjpeg",
		"-fps_mode", "passthrough",
		"-qscale:v", "2",
		ThumbnailPattern(ctx.Output.Outdir),
	}, true
}
