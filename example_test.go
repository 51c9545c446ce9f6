// SPDX-License-Identifier: EPL-2.0

package mix8_test

import (
	"fmt"

	"github.com/ik5/mix8"
	"github.com/ik5/mix8/mixer"
	"github.com/ik5/mix8/output"
)

// collect gathers rendered samples in memory.
type collect []int8

func (c *collect) Write(s []int8) error {
	*c = append(*c, s...)
	return nil
}

// Example_render mixes two channels offline.
func Example_render() {
	h := output.NewHeadless(8000)
	m := mixer.New(h)
	if err := m.Init(); err != nil {
		fmt.Println("init:", err)
		return
	}
	defer m.Free()

	square := mixer.Chunk{Data: []int8{40, 40, -40, -40}, LoopLen: 4}
	m.Play(0, square, 8000, mixer.UnityVolume)
	m.Play(1, mixer.Chunk{Data: []int8{100, 100, 100}}, 8000, mixer.UnityVolume/2)

	var out collect
	if err := mix8.Render(h, &out, 6, 3); err != nil {
		fmt.Println("render:", err)
		return
	}

	fmt.Println(out)
	// Output: [88 88 -40 -40 39 39]
}

// Example_saturation shows two loud channels clipping at the int8 limit.
func Example_saturation() {
	h := output.NewHeadless(8000)
	m := mixer.New(h)
	_ = m.Init()
	defer m.Free()

	loud := mixer.Chunk{Data: []int8{100, 100, 100, 100}}
	m.Play(0, loud, 8000, mixer.UnityVolume)
	m.Play(1, loud, 8000, mixer.UnityVolume)

	buf := make([]int8, 2)
	h.Render(buf)

	fmt.Println(buf)
	// Output: [127 127]
}
