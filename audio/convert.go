// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audcut/utils"
	"golang.org/x/sync/errgroup"
)

// lowPassAlpha is the coefficient of the one-pole filter run before
// downsampling: y[n] = a*x[n] + (1-a)*y[n-1].
const lowPassAlpha = 0.5

// Resample returns a copy of buf converted to rate using Catmull-Rom
// interpolation. When the rate drops, each channel first goes through a
// one-pole low-pass filter to reduce aliasing. The output has
// frames*rate/buf.SampleRate frames, truncated.
func Resample(buf *Buffer, rate int) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	if rate == buf.SampleRate {
		return buf.Clone(), nil
	}

	frames := int(int64(buf.Frames()) * int64(rate) / int64(buf.SampleRate))
	ratio := float64(buf.SampleRate) / float64(rate)
	out := NewBuffer(rate, buf.Channels(), frames)

	resample := func(c int) {
		in := buf.Data[c]
		if ratio > 1 {
			in = lowPass(in)
		}
		interpolate(out.Data[c], in, ratio)
	}

	if buf.Channels() == 1 || buf.Frames() < parallelMinFrames {
		for c := range buf.Data {
			resample(c)
		}
		return out, nil
	}

	var g errgroup.Group
	for c := range buf.Data {
		g.Go(func() error {
			resample(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// lowPass returns a filtered copy of in. The filter state starts at the
// first sample so a constant signal passes unchanged.
func lowPass(in []float32) []float32 {
	out := make([]float32, len(in))
	if len(in) == 0 {
		return out
	}

	state := in[0]
	for i, s := range in {
		state = lowPassAlpha*s + (1-lowPassAlpha)*state
		out[i] = state
	}

	return out
}

// interpolate fills dst with in sampled every ratio input frames. Edge
// frames are repeated where the spline needs neighbors outside in.
func interpolate(dst, in []float32, ratio float64) {
	last := len(in) - 1
	at := func(i int) float32 {
		return in[max(0, min(i, last))]
	}

	for i := range dst {
		pos := float64(i) * ratio
		k := int(pos)
		x := float32(pos - float64(k))

		dst[i] = utils.CubicInterpolate(at(k-1), at(k), at(k+1), at(k+2), x)
	}
}

// Downmix returns a single channel copy of buf holding the mean of all
// channels. A mono buffer is cloned.
func Downmix(buf *Buffer) (*Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if buf.Channels() == 1 {
		return buf.Clone(), nil
	}

	out := NewBuffer(buf.SampleRate, 1, buf.Frames())
	mono := out.Data[0]
	inv := 1 / float32(buf.Channels())

	for _, ch := range buf.Data {
		for f, s := range ch {
			mono[f] += s
		}
	}
	for f := range mono {
		mono[f] *= inv
	}

	return out, nil
}
