// SPDX-License-Identifier: EPL-2.0

// Package output provides audio outputs a mixer.Mixer can be attached to.
//
// Headless has no device behind it: the caller pulls blocks with Render.
// It is used by tests and by offline rendering to WAV:
//
//	h := output.NewHeadless(22050)
//	m := mixer.New(h)
//	m.Init()
//	buf := make([]int8, 512)
//	h.Render(buf)
//
// Live playback through the system sound device lives in output/device.
package output
