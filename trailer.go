// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// trailer overlays the six fixed-layout, cache-line-padded counters
// that follow the data area. Its memory layout is byte-exact with §6
// of the spec: each live counter sits at an (n × TrailerStride) offset
// from the start of the trailer, so the same region mapped by a
// different process (or a different implementation entirely) agrees
// on where to find tail/head/head_cache/correlation/heartbeat.
//
// atomix.Int64 is a single 8-byte value with no extra bookkeeping, so
// this struct's field offsets land exactly on the spec's offsets:
// pad(128) tail(128) headCache(128) head(128) correlation(128) heartbeat(128).
type trailer struct {
	_pad0              [TrailerStride]byte
	tailPosition       atomix.Int64
	_pad1              [TrailerStride - 8]byte
	headCachePosition  atomix.Int64
	_pad2              [TrailerStride - 8]byte
	headPosition       atomix.Int64
	_pad3              [TrailerStride - 8]byte
	correlationCounter atomix.Int64
	_pad4              [TrailerStride - 8]byte
	consumerHeartbeat  atomix.Int64
	_pad5              [TrailerStride - 8]byte
}

func init() {
	if unsafe.Sizeof(trailer{}) != TrailerSize {
		panic("ringbuf: trailer size does not match TrailerSize")
	}
	// §6's byte-exact offset table: each live counter at an
	// (n × TrailerStride) offset from the start of the trailer. If
	// atomix.Int64 ever grew internal bookkeeping, these would drift
	// silently without this guard — mirrors header.go's recordHeaderSize
	// check for the same reason.
	var t trailer
	if off := unsafe.Offsetof(t.tailPosition); off != 1*TrailerStride {
		panic("ringbuf: tailPosition offset does not match spec layout")
	}
	if off := unsafe.Offsetof(t.headCachePosition); off != 2*TrailerStride {
		panic("ringbuf: headCachePosition offset does not match spec layout")
	}
	if off := unsafe.Offsetof(t.headPosition); off != 3*TrailerStride {
		panic("ringbuf: headPosition offset does not match spec layout")
	}
	if off := unsafe.Offsetof(t.correlationCounter); off != 4*TrailerStride {
		panic("ringbuf: correlationCounter offset does not match spec layout")
	}
	if off := unsafe.Offsetof(t.consumerHeartbeat); off != 5*TrailerStride {
		panic("ringbuf: consumerHeartbeat offset does not match spec layout")
	}
}

// trailerAt overlays a trailer onto the first TrailerSize bytes of buf
// (NewRegion passes the slice that starts right after the data area).
// buf must be at least TrailerSize bytes and 8-byte aligned.
func trailerAt(buf []byte) *trailer {
	return (*trailer)(unsafe.Pointer(&buf[0]))
}

// Counter is a client-owned, opaque 64-bit slot in the trailer
// (correlation_counter or consumer_heartbeat). Its semantics belong to
// the caller; the region only guarantees the storage and that Relaxed
// ordering is sufficient, per §9's Open Questions resolution for
// fields that are "purely advisory."
type Counter struct {
	v *atomix.Int64
}

// Load reads the counter's current value.
func (c Counter) Load() int64 { return c.v.LoadRelaxed() }

// Store writes a new value.
func (c Counter) Store(v int64) { c.v.StoreRelaxed(v) }

// Add atomically adds delta and returns the new value.
func (c Counter) Add(delta int64) int64 { return c.v.AddAcqRel(delta) }
