// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a sample to signed 16-bit PCM.
//
// x is clipped to [-1, 1]. Negative values are scaled by 32768 and the rest
// by 32767, both truncated toward zero, so -1 maps to -32768 and 1 maps to
// 32767. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}

	if v < 0 {
		return int16(v * 32768)
	}
	return int16(v * 32767)
}

// Float32ToInt16Slice quantizes src into dst and returns the number of
// samples written, which is min(len(dst), len(src)).
func Float32ToInt16Slice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}

	return n
}
