// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio through github.com/mewkiz/flac.
//
// Frames are decoded lazily as samples are requested. Sample values of any
// bit depth from 1 to 32 are normalized to [-1, 1).
package flac
