package profile

import (
	"fmt"
	"strings"
)

// ProfileType describes whether a profile re-encodes the stream it
// operates on, or simply repackages it.
type ProfileType int

const (
	Transmux ProfileType = iota
	Transcode
)

func (e ProfileType) Values() []string {
	return []string{"TRANSMUX", "TRANSCODE"}
}

func (e ProfileType) String() string {
	if e < 0 || int(e) >= len(e.Values()) {
		return fmt.Sprintf("UNKNOWN[%d]", int(e))
	}

	return e.Values()[e]
}

// StreamType describes the kind of elementary stream a profile produces.
type StreamType int

const (
	Audio StreamType = iota
	Video
	Thumbnail
)

func (e StreamType) Values() []string {
	return []string{"AUDIO", "VIDEO", "THUMBNAIL"}
}

func (e StreamType) String() string {
	if e < 0 || int(e) >= len(e.Values()) {
		return fmt.Sprintf("UNKNOWN[%d]", int(e))
	}

	return e.Values()[e]
}

// ParseStreamType accepts the textual form of a StreamType (case-insensitive)
// and returns the matching value.
func ParseStreamType(s string) (StreamType, error) {
	for i, v := range StreamType(0).Values() {
		if strings.EqualFold(v, s) {
			return StreamType(i), nil
		}
	}

	return -1, fmt.Errorf("stream type %q is not one of %v", s, StreamType(0).Values())
}
