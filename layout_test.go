// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf_test

import (
	"testing"

	"code.hybscloud.com/ringbuf"
)

func TestTrailerSize(t *testing.T) {
	if ringbuf.TrailerSize != 768 {
		t.Fatalf("TrailerSize = %d, want %d", ringbuf.TrailerSize, 768)
	}
}

// TestTrailerCounterOffsets is the structural byte-layout check §8
// requires "in every test build": it writes known values directly into
// the raw buffer at the spec's fixed offsets (0x080, 0x100, 0x180,
// 0x200, 0x280 from the start of the trailer) and confirms the public
// accessors observe them through the overlaid struct, not just that
// the formula for TrailerSize agrees with itself.
func TestTrailerCounterOffsets(t *testing.T) {
	const capacity = 64
	buf := make([]byte, capacity+ringbuf.TrailerSize)
	trailerStart := capacity

	poke := func(offset int, v int64) {
		for i := 0; i < 8; i++ {
			buf[trailerStart+offset+i] = byte(v >> (8 * i))
		}
	}
	poke(0x080, 111) // tail_position
	poke(0x100, 222) // head_cache_position (no public accessor; checked via layout only)
	poke(0x180, 333) // head_position
	poke(0x200, 444) // correlation_counter
	poke(0x280, 555) // consumer_heartbeat

	region, err := ringbuf.NewRegion(buf, false)
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}

	if got := region.TailPosition(); got != 111 {
		t.Errorf("TailPosition at offset 0x080 = %d, want 111", got)
	}
	if got := region.HeadPosition(); got != 333 {
		t.Errorf("HeadPosition at offset 0x180 = %d, want 333", got)
	}
	if got := region.CorrelationCounter().Load(); got != 444 {
		t.Errorf("CorrelationCounter at offset 0x200 = %d, want 444", got)
	}
	if got := region.ConsumerHeartbeat().Load(); got != 555 {
		t.Errorf("ConsumerHeartbeat at offset 0x280 = %d, want 555", got)
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct {
		n, want int32
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{16, 16},
		{17, 24},
	}
	for _, c := range cases {
		got := ringbuf.AlignUp(c.n)
		if got != c.want {
			t.Errorf("AlignUp(%d) = %d, want %d", c.n, got, c.want)
		}
		if got < c.n {
			t.Errorf("AlignUp(%d) = %d is less than n", c.n, got)
		}
		if ringbuf.AlignUp(got) != got {
			t.Errorf("AlignUp(%d) is not idempotent: AlignUp(AlignUp(%d)) = %d", c.n, c.n, ringbuf.AlignUp(got))
		}
	}
}

func TestAlignUpMonotone(t *testing.T) {
	prev := ringbuf.AlignUp(0)
	for n := int32(1); n < 200; n++ {
		got := ringbuf.AlignUp(n)
		if got < prev {
			t.Fatalf("AlignUp not monotone at n=%d: got %d < prev %d", n, got, prev)
		}
		prev = got
	}
}

func TestIndexOf(t *testing.T) {
	const capacity = 1024
	cases := []struct {
		position int64
		want     int64
	}{
		{0, 0},
		{1023, 1023},
		{1024, 0},
		{1025, 1},
		{2048, 0},
	}
	for _, c := range cases {
		if got := ringbuf.IndexOf(c.position, capacity); got != c.want {
			t.Errorf("IndexOf(%d, %d) = %d, want %d", c.position, capacity, got, c.want)
		}
	}
}
