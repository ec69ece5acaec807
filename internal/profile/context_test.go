package profile_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/hbomb79/Strata/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewContext_Validation(t *testing.T) {
	validIn := profile.InputContext{File: "/media/a.mkv", Stream: 0, Codec: "aac"}
	validOut := profile.OutputContext{Outdir: "/out", StartNum: 0, TargetGop: 5, Codec: "aac"}

	tests := []struct {
		summary string
		in      func(*profile.InputContext)
		out     func(*profile.OutputContext)
		isValid bool
	}{
		{"valid", nil, nil, true},
		{"resumed", nil, func(o *profile.OutputContext) { o.StartNum = 12 }, true},
		{"negative start", nil, func(o *profile.OutputContext) { o.StartNum = -1 }, false},
		{"zero gop", nil, func(o *profile.OutputContext) { o.TargetGop = 0 }, false},
		{"negative gop", nil, func(o *profile.OutputContext) { o.TargetGop = -6 }, false},
		{"missing outdir", nil, func(o *profile.OutputContext) { o.Outdir = "" }, false},
		{"missing output codec", nil, func(o *profile.OutputContext) { o.Codec = "" }, false},
		{"zero bitrate", nil, func(o *profile.OutputContext) { o.Bitrate = profile.IntPtr(0) }, false},
		{"zero channels", nil, func(o *profile.OutputContext) { o.AudioChannels = profile.IntPtr(0) }, false},
		{"missing file", func(i *profile.InputContext) { i.File = "" }, nil, false},
		{"negative stream", func(i *profile.InputContext) { i.Stream = -2 }, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			in, out := validIn, validOut
			if tt.in != nil {
				tt.in(&in)
			}
			if tt.out != nil {
				tt.out(&out)
			}

			ctx, err := profile.NewContext(in, out)
			if !tt.isValid {
				assert.ErrorIs(t, err, profile.ErrInvalidContext)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, ctx.ID)
			assert.Equal(t, in, ctx.Input)
			assert.Equal(t, out, ctx.Output)
		})
	}
}

func Test_NewContext_ResolvesAbsolutePath(t *testing.T) {
	ctx, err := profile.NewContext(
		profile.InputContext{File: "media/a.mkv"},
		profile.OutputContext{Outdir: "/out", TargetGop: 5, Codec: "aac"},
	)
	require.NoError(t, err)

	expected, err := filepath.Abs("media/a.mkv")
	require.NoError(t, err)
	assert.Equal(t, expected, ctx.File)
	assert.True(t, filepath.IsAbs(ctx.File))
	assert.Equal(t, "media/a.mkv", ctx.Input.File, "input context should be left untouched")
}

func Test_NewContext_UniqueIDs(t *testing.T) {
	in := profile.InputContext{File: "/a.mkv"}
	out := profile.OutputContext{Outdir: "/out", TargetGop: 5, Codec: "aac"}

	a, err := profile.NewContext(in, out)
	require.NoError(t, err)
	b, err := profile.NewContext(in, out)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func Test_DecodeOutputContext(t *testing.T) {
	base := profile.OutputContext{Outdir: "/out", TargetGop: 5, Codec: "aac", Bitrate: profile.IntPtr(64000)}

	out, err := profile.DecodeOutputContext(base, map[string]any{
		"start_num":      "4",
		"bitrate":        "192000",
		"audio_channels": 2,
		"codec":          "aac",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, out.StartNum)
	assert.Equal(t, 5, out.TargetGop)
	require.NotNil(t, out.Bitrate)
	assert.Equal(t, 192000, *out.Bitrate)
	require.NotNil(t, out.AudioChannels)
	assert.Equal(t, 2, *out.AudioChannels)
	assert.Nil(t, out.Width)

	assert.Equal(t, 64000, *base.Bitrate, "decoding should not write through the base context")
}

func Test_DecodeOutputContext_Errors(t *testing.T) {
	base := profile.OutputContext{Outdir: "/out", TargetGop: 5, Codec: "aac"}

	_, err := profile.DecodeOutputContext(base, map[string]any{"resolution": "1080p"})
	assert.Error(t, err, "unknown keys should be rejected")

	_, err = profile.DecodeOutputContext(base, map[string]any{"bitrate": "fast"})
	assert.Error(t, err, "non-numeric values for numeric fields should be rejected")
}
