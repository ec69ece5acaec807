package profile

import (
	"fmt"
	"strconv"
)

const (
	PlaylistFileName       = "playlist.m3u8"
	SegmentFileFormat      = "%d.m4s"
	InitSegmentFileFormat  = "%d_init.mp4"
	ThumbnailFileFormat    = "%010d.jpg"
	DefaultAudioBitrate    = 120_000
	hlsMaxDelayMicroSecond = "5000000"

	segmentMovflags      = "movflags=frag_custom+dash+delay_moov"
	discontinuousMovflag = "+frag_discont"
)

// SeekOffset returns the position (in seconds) of the output timeline that
// segment startNum begins at.
func SeekOffset(startNum int, targetGop int) int { return startNum * targetGop }

func PlaylistPath(outdir string) string   { return fmt.Sprintf("%s/%s", outdir, PlaylistFileName) }
func SegmentPattern(outdir string) string { return fmt.Sprintf("%s/%s", outdir, SegmentFileFormat) }
func SegmentPath(outdir string, index int) string {
	return fmt.Sprintf("%s/"+SegmentFileFormat, outdir, index)
}

// InitSegmentName is the file name (relative to the playlist) of the
// initialisation fragment written by a stream starting at startNum.
func InitSegmentName(startNum int) string { return fmt.Sprintf(InitSegmentFileFormat, startNum) }

func ThumbnailPattern(outdir string) string {
	return fmt.Sprintf("%s/%s", outdir, ThumbnailFileFormat)
}

func ThumbnailPath(outdir string, index int) string {
	return fmt.Sprintf("%s/"+ThumbnailFileFormat, outdir, index)
}

// segmentOptions returns the movflags for the fragmented output. A stream
// that starts anywhere other than the first segment is the result of a seek,
// and so its fragments must be marked as discontinuous.
func segmentOptions(startNum int) string {
	if startNum > 0 {
		return segmentMovflags + discontinuousMovflag
	}

	return segmentMovflags
}

// hlsArgs builds the argument list shared by all segmented audio profiles.
// The codecArgs are inserted directly after the stream mapping.
func hlsArgs(ctx Context, codecArgs ...string) []string {
	out := ctx.Output
	startNum := strconv.Itoa(out.StartNum)
	gop := strconv.Itoa(out.TargetGop)

	args := make([]string, 0, 48)
	args = append(args,
		"-y",
		"-ss", strconv.Itoa(SeekOffset(out.StartNum, out.TargetGop)),
		"-i", ctx.File,
		"-copyts",
		"-map", fmt.Sprintf("0:%d", ctx.Input.Stream),
	)
	args = append(args, codecArgs...)

	// Keep source timestamps, but rebase them so a stream started after a
	// seek still lines up with segment 0.
	args = append(args,
		"-start_at_zero",
		"-fps_mode", "auto",
		"-avoid_negative_ts", "make_non_negative",
	)

	args = append(args,
		"-f", "hls",
		"-hls_playlist_type", "event",
		"-start_number", startNum,
	)

	// In-progress segments are written to a temp name and only appended to
	// the playlist once complete.
	args = append(args,
		"-hls_flags", "temp_file+append_list",
		"-max_delay", hlsMaxDelayMicroSecond,
	)

	args = append(args, "-hls_segment_options", segmentOptions(out.StartNum))

	// Each seek produces its own init fragment, named after the segment it starts at.
	args = append(args, "-hls_fmp4_init_filename", InitSegmentName(out.StartNum))

	args = append(args,
		"-hls_time", gop,
		"-force_key_frames", fmt.Sprintf("expr:gte(t,n_forced*%s)", gop),
		"-hls_segment_type", "fmp4",
		"-loglevel", "info",
		"-progress", "pipe:1",
		"-hls_segment_filename", SegmentPattern(out.Outdir),
		PlaylistPath(out.Outdir),
	)

	return args
}
