package profile

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// InputContext holds the facts about a source stream, as observed by
// whatever probed the source file. None of these values are verified
// against the file itself.
type InputContext struct {
	File          string `mapstructure:"file" validate:"required"`
	Stream        int    `mapstructure:"stream" validate:"min=0"`
	Codec         string `mapstructure:"codec"`
	AudioChannels int    `mapstructure:"audio_channels" validate:"min=0"`
}

// OutputContext describes the stream the caller wants produced. The optional
// fields are pointers; nil means "unconstrained".
type OutputContext struct {
	Outdir    string `mapstructure:"outdir" validate:"required"`
	StartNum  int    `mapstructure:"start_num" validate:"min=0"`
	TargetGop int    `mapstructure:"target_gop" validate:"gt=0"`
	Codec     string `mapstructure:"codec" validate:"required"`

	AudioChannels *int `mapstructure:"audio_channels" validate:"omitempty,gt=0"`
	Bitrate       *int `mapstructure:"bitrate" validate:"omitempty,gt=0"`
	Width         *int `mapstructure:"width" validate:"omitempty,gt=0"`
	Height        *int `mapstructure:"height" validate:"omitempty,gt=0"`
}

// Context is the immutable union of an input and output context for a single
// request, alongside the absolute path of the source used for the invocation.
// Contexts should only be created via NewContext.
type Context struct {
	ID     uuid.UUID
	File   string
	Input  InputContext
	Output OutputContext
}

// NewContext validates the input and output contexts provided and returns a
// Context ready to be passed to profiles. The File of the context is the
// absolute form of the input's file path.
func NewContext(in InputContext, out OutputContext) (Context, error) {
	if err := validate.Struct(in); err != nil {
		return Context{}, fmt.Errorf("%w: input: %s", ErrInvalidContext, err.Error())
	}
	if err := validate.Struct(out); err != nil {
		return Context{}, fmt.Errorf("%w: output: %s", ErrInvalidContext, err.Error())
	}

	file, err := filepath.Abs(in.File)
	if err != nil {
		return Context{}, fmt.Errorf("%w: cannot resolve source path %s: %s", ErrInvalidContext, in.File, err.Error())
	}

	return Context{
		ID:     uuid.New(),
		File:   file,
		Input:  in,
		Output: out,
	}, nil
}

func (ctx Context) String() string {
	return fmt.Sprintf("Context{ID=%s File=%s Stream=%d %s->%s Start=%d Gop=%d}",
		ctx.ID, ctx.File, ctx.Input.Stream, ctx.Input.Codec, ctx.Output.Codec, ctx.Output.StartNum, ctx.Output.TargetGop)
}

// DecodeOutputContext decodes a loosely typed map (such as key=value pairs
// supplied on a command line) on top of the base OutputContext provided.
// String values are coerced to the field types; unknown keys are an error.
func DecodeOutputContext(base OutputContext, values map[string]any) (OutputContext, error) {
	// Copy optional fields so decoding never writes through base's pointers
	out := base
	for _, field := range []**int{&out.AudioChannels, &out.Bitrate, &out.Width, &out.Height} {
		if *field != nil {
			*field = IntPtr(**field)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &out,
	})
	if err != nil {
		return base, err
	}

	if err := decoder.Decode(values); err != nil {
		return base, fmt.Errorf("failed to decode output context: %w", err)
	}

	return out, nil
}

// IntPtr is a small helper for populating the optional fields of an
// OutputContext.
func IntPtr(v int) *int { return &v }
