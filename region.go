// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// Region is a caller-supplied contiguous byte buffer laid out as a
// data area followed by a fixed-size trailer of coordination counters
// (§3). It has no destructor responsibility of its own: whoever
// provisioned the backing bytes (heap, mmap, static arena) reclaims
// them once every Sender and Receiver view has been dropped.
type Region struct {
	buf              []byte
	data             []byte
	trailer          *trailer
	capacity         int64
	mask             int64
	maxMessageLength int64
}

// NewRegion wraps an existing byte slice as a Region. capacity is
// derived as len(buf) - TrailerSize and must be a power of two no
// smaller than MinCapacity, or InvalidCapacity is returned.
//
// buf's base address must be aligned for 64-bit atomics (§3): slices
// from make([]byte, n) and mmap satisfy this in practice. Slicing an
// existing, larger buffer at an arbitrary byte offset does not, and is
// the caller's responsibility to avoid.
//
// fresh indicates this is the region's first initialization: the
// trailer's six counters and the entire data area are zeroed. Pass
// false when attaching to a region another process already
// initialized (its counters must be left alone).
func NewRegion(buf []byte, fresh bool) (*Region, error) {
	if len(buf) <= TrailerSize {
		return nil, InvalidCapacity
	}
	capacity := int64(len(buf) - TrailerSize)
	if !isPowerOfTwo(capacity) || capacity < MinCapacity {
		return nil, InvalidCapacity
	}

	r := &Region{
		buf:              buf,
		data:             buf[:capacity],
		trailer:          trailerAt(buf[capacity:]),
		capacity:         capacity,
		mask:             capacity - 1,
		maxMessageLength: maxMessageLength(capacity),
	}

	if fresh {
		for i := range r.data {
			r.data[i] = 0
		}
		clear(r.trailer._pad0[:])
		r.trailer.tailPosition.StoreRelaxed(0)
		r.trailer.headCachePosition.StoreRelaxed(0)
		r.trailer.headPosition.StoreRelaxed(0)
		r.trailer.correlationCounter.StoreRelaxed(0)
		r.trailer.consumerHeartbeat.StoreRelaxed(0)
	}

	return r, nil
}

// NewHeapRegion allocates a fresh, heap-backed region of the given
// data-area capacity (in bytes). capacity must be a power of two and
// at least MinCapacity.
func NewHeapRegion(capacity int) (*Region, error) {
	if capacity <= 0 || !isPowerOfTwo(int64(capacity)) || int64(capacity) < MinCapacity {
		return nil, InvalidCapacity
	}
	buf := make([]byte, capacity+TrailerSize)
	return NewRegion(buf, true)
}

// Capacity returns the data area size in bytes.
func (r *Region) Capacity() int64 { return r.capacity }

// MaxMessageLength returns the largest payload Send will accept,
// per invariant 5. Zero means no payload can ever fit, not even an
// empty one (capacity equals MinCapacity).
func (r *Region) MaxMessageLength() int64 { return r.maxMessageLength }

// CorrelationCounter exposes the trailer's client-opaque correlation
// counter slot. Its meaning is defined entirely by the caller (§1, §3).
func (r *Region) CorrelationCounter() Counter {
	return Counter{v: &r.trailer.correlationCounter}
}

// ConsumerHeartbeat exposes the trailer's client-opaque consumer
// heartbeat slot. Its meaning is defined entirely by the caller (§1, §3).
func (r *Region) ConsumerHeartbeat() Counter {
	return Counter{v: &r.trailer.consumerHeartbeat}
}

// TailPosition returns the current tail position (diagnostics only;
// producers and the consumer use the atomic fields directly).
func (r *Region) TailPosition() int64 { return r.trailer.tailPosition.LoadAcquire() }

// HeadPosition returns the current head position (diagnostics only).
func (r *Region) HeadPosition() int64 { return r.trailer.headPosition.LoadAcquire() }
