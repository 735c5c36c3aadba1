// Package replay turns a search result into a timed sequence of frames
// and plays it back. All animation timing lives here; the search packages
// only return ordered sequences.
//
// Timing follows the classic visualizer: visited cell i is shown at
// i×VisitDelay, then at len(visited)×VisitDelay either the "no path"
// status appears or path cell j is shown j×PathDelay later.
package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Kind classifies a frame.
type Kind int

// Frame kinds.
const (
	Visit Kind = iota
	Path
	Status
)

func (k Kind) String() string {
	switch k {
	case Visit:
		return "visit"
	case Path:
		return "path"
	default:
		return "status"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "visit":
		*k = Visit
	case "path":
		*k = Path
	case "status":
		*k = Status
	default:
		return fmt.Errorf("replay: unknown frame kind %q", text)
	}
	return nil
}

// Frame is one scheduled rendering step.
type Frame struct {
	// At is the offset from the start of playback.
	At   time.Duration   `json:"at"`
	Kind Kind            `json:"kind"`
	Cell gridgraph.Coord `json:"cell"`
	// Message is set on Status frames.
	Message string `json:"message,omitempty"`
}

// Timing holds the per-frame delays.
type Timing struct {
	VisitDelay time.Duration
	PathDelay  time.Duration
}

// DefaultTiming is 10ms per visited cell and 50ms per path cell.
var DefaultTiming = Timing{VisitDelay: 10 * time.Millisecond, PathDelay: 50 * time.Millisecond}

// Timeline builds the frames for res. Marker cells keep their slot in the
// schedule but produce no Visit/Path frame, so the start and end stay
// drawn as markers. The last frame is always a Status frame.
func Timeline(res *pathfind.Result, t Timing) []Frame {
	frames := make([]Frame, 0, len(res.Visited)+len(res.Path)+1)
	marker := func(c gridgraph.Coord) bool { return c == res.Start || c == res.End }

	for i, c := range res.Visited {
		if marker(c) {
			continue
		}
		frames = append(frames, Frame{At: time.Duration(i) * t.VisitDelay, Kind: Visit, Cell: c})
	}
	base := time.Duration(len(res.Visited)) * t.VisitDelay
	if !res.Found {
		return append(frames, Frame{At: base, Kind: Status, Cell: res.End, Message: res.Status()})
	}
	last := base
	for j, c := range res.Path {
		at := base + time.Duration(j)*t.PathDelay
		last = at
		if marker(c) {
			continue
		}
		frames = append(frames, Frame{At: at, Kind: Path, Cell: c})
	}
	return append(frames, Frame{At: last, Kind: Status, Cell: res.End, Message: res.Status()})
}

// Duration returns the offset of the final frame.
func Duration(frames []Frame) time.Duration {
	if len(frames) == 0 {
		return 0
	}
	return frames[len(frames)-1].At
}

// Play delivers frames to sink at their offsets relative to the call.
// It returns ctx.Err() if the context ends first, which is how a rebuild
// abandons a pending animation.
func Play(ctx context.Context, frames []Frame, sink func(Frame)) error {
	begin := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for _, f := range frames {
		if wait := f.At - time.Since(begin); wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		sink(f)
	}
	return nil
}
