package ffmpeg_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hbomb79/Strata/internal/ffmpeg"
	"github.com/stretchr/testify/assert"
)

func Test_Invocation_String(t *testing.T) {
	inv := ffmpeg.NewInvocation(ffmpeg.Config{FfmpegBinPath: "/usr/bin/ffmpeg"}, uuid.New(), "aac", []string{
		"-i", "/media/My Film (2020).mkv",
		"-af", "pan=stereo|FL=0.5*FC",
		"/out/playlist.m3u8",
	})

	assert.Equal(t,
		`/usr/bin/ffmpeg -i '/media/My Film (2020).mkv' -af pan=stereo\|FL=0.5\*FC /out/playlist.m3u8`,
		inv.String(),
	)
}

func Test_Invocation_CopiesArgs(t *testing.T) {
	args := []string{"-y", "-i", "a.mkv"}
	inv := ffmpeg.NewInvocation(ffmpeg.Config{FfmpegBinPath: "ffmpeg"}, uuid.New(), "jpg", args)

	args[0] = "-n"
	assert.Equal(t, "-y", inv.Args[0])
}

func Test_Invocation_Command(t *testing.T) {
	inv := ffmpeg.NewInvocation(ffmpeg.Config{FfmpegBinPath: "/opt/ffmpeg/bin/ffmpeg"}, uuid.New(), "eac3_copy", []string{"-y", "-i", "in.mkv"})

	cmd := inv.Command(context.Background())
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cmd.Path)
	assert.Equal(t, []string{"/opt/ffmpeg/bin/ffmpeg", "-y", "-i", "in.mkv"}, cmd.Args)
	assert.Nil(t, cmd.Process, "command should not be started")
}

func Test_Invocation_RequestID(t *testing.T) {
	id := uuid.New()
	inv := ffmpeg.NewInvocation(ffmpeg.Config{FfmpegBinPath: "ffmpeg"}, id, "aac", []string{"-y"})

	assert.Equal(t, id, inv.RequestID)
	assert.Contains(t, inv.GoString(), "request="+id.String())
	assert.NotContains(t, inv.String(), id.String())
}
