// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// FadeMode selects the shape of the linear fade envelope.
type FadeMode int

const (
	// FadeCompat multiplies sample i of an n-sample window by i/n. Full gain
	// is only reached one sample past the window. This is the default.
	FadeCompat FadeMode = iota
	// FadeInclusive multiplies sample i by i/(n-1) so the last sample of the
	// window is already at full gain.
	FadeInclusive
)

// parallelMinFrames is the channel length from which Edit processes
// channels concurrently.
const parallelMinFrames = 1 << 16

// EditOptions describes a trim and fade operation. All values are in
// seconds.
type EditOptions struct {
	Start   float64
	End     float64
	FadeIn  float64
	FadeOut float64
	Mode    FadeMode
}

// Edit returns a new buffer holding [opts.Start, opts.End) of buf with the
// fade envelopes applied. buf is never modified and the result shares no
// memory with it.
//
// Times outside the buffer are clamped, never rejected; an empty range
// yields a valid buffer with zero frames. Only an invalid input buffer
// produces an error.
func Edit(buf *Buffer, opts EditOptions) (*Buffer, error) {
	out, err := Trim(buf, opts.Start, opts.End)
	if err != nil {
		return nil, err
	}

	fadeIn := secondsToSamples(opts.FadeIn, out.SampleRate, out.Frames())
	fadeOut := secondsToSamples(opts.FadeOut, out.SampleRate, out.Frames())

	if out.Channels() == 1 || out.Frames() < parallelMinFrames {
		for _, ch := range out.Data {
			applyFades(ch, fadeIn, fadeOut, opts.Mode)
		}
		return out, nil
	}

	var g errgroup.Group
	for _, ch := range out.Data {
		g.Go(func() error {
			applyFades(ch, fadeIn, fadeOut, opts.Mode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Trim copies [start, end) seconds of buf into a freshly allocated buffer.
// Sample indices are truncated toward zero; start is clamped to
// [0, frames] and end to [start, frames].
func Trim(buf *Buffer, start, end float64) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	total := buf.Frames()
	first := secondsToSamples(start, buf.SampleRate, total)
	last := max(secondsToSamples(end, buf.SampleRate, total), first)

	out := NewBuffer(buf.SampleRate, buf.Channels(), last-first)
	for c, ch := range buf.Data {
		copy(out.Data[c], ch[first:last])
	}

	return out, nil
}

// ApplyFades applies the fade-in and fade-out envelopes to buf in place.
// Durations are in seconds and clamped to the buffer length.
func ApplyFades(buf *Buffer, fadeIn, fadeOut float64, mode FadeMode) error {
	if err := buf.Validate(); err != nil {
		return err
	}

	in := secondsToSamples(fadeIn, buf.SampleRate, buf.Frames())
	out := secondsToSamples(fadeOut, buf.SampleRate, buf.Frames())
	for _, ch := range buf.Data {
		applyFades(ch, in, out, mode)
	}

	return nil
}

// applyFades ramps the first fadeIn and the last fadeOut samples of ch.
// Both windows are applied in that order, so an overlap gets the product
// of the two envelopes.
func applyFades(ch []float32, fadeIn, fadeOut int, mode FadeMode) {
	n := len(ch)

	for i := range fadeIn {
		ch[i] = scale(ch[i], fadeGain(i, fadeIn, mode))
	}

	for i := range fadeOut {
		ch[n-1-i] = scale(ch[n-1-i], fadeGain(i, fadeOut, mode))
	}
}

func fadeGain(i, window int, mode FadeMode) float64 {
	if mode == FadeInclusive {
		if window == 1 {
			return 1
		}
		return float64(i) / float64(window-1)
	}

	return float64(i) / float64(window)
}

func scale(s float32, gain float64) float32 {
	return float32(float64(s) * gain)
}

// secondsToSamples converts t seconds to a sample index truncated toward
// zero and clamped to [0, limit]. NaN maps to 0.
func secondsToSamples(t float64, sampleRate, limit int) int {
	v := t * float64(sampleRate)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(limit):
		return limit
	}

	return int(v)
}
