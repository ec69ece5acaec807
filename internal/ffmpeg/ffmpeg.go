package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"slices"

	"github.com/google/uuid"
	"github.com/hbomb79/Strata/pkg/logger"
	"github.com/kballard/go-shellquote"
)

var log = logger.Get("FFmpeg")

type Config struct {
	FfmpegBinPath string `yaml:"ffmpeg_binary_path" env:"STRATA_FFMPEG_BIN" env-default:"/usr/bin/ffmpeg"`
}

// Invocation is a fully formed, unstarted ffmpeg command. Starting the process
// and monitoring the progress it reports on stdout is the caller's concern.
type Invocation struct {
	// RequestID is the ID of the context the arguments were built from.
	RequestID  uuid.UUID
	BinPath    string
	ProfileTag string
	Args       []string
}

// NewInvocation pairs the arguments built by a profile with the ffmpeg
// binary configured. The arguments are copied.
func NewInvocation(config Config, requestID uuid.UUID, profileTag string, args []string) *Invocation {
	return &Invocation{
		RequestID:  requestID,
		BinPath:    config.FfmpegBinPath,
		ProfileTag: profileTag,
		Args:       slices.Clone(args),
	}
}

// Command returns an *exec.Cmd for this invocation which has not yet been started.
func (inv *Invocation) Command(ctx context.Context) *exec.Cmd {
	log.Emit(logger.VERBOSE, "Preparing command for request %s: %s\n", inv.RequestID, inv)
	return exec.CommandContext(ctx, inv.BinPath, inv.Args...)
}

// String returns the invocation as a shell-quoted command line, suitable
// for logging or copying in to a terminal.
func (inv *Invocation) String() string {
	return shellquote.Join(append([]string{inv.BinPath}, inv.Args...)...)
}

func (inv *Invocation) GoString() string {
	return fmt.Sprintf("Invocation{request=%s profile=%s bin=%s args=%d}", inv.RequestID, inv.ProfileTag, inv.BinPath, len(inv.Args))
}
