// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// CacheLine is the assumed CPU cache line size in bytes.
const CacheLine = 64

// TrailerStride is the per-counter slot size: two cache lines, so that
// no two counters in the trailer ever share a cache line.
const TrailerStride = 2 * CacheLine

// trailerCounters is the number of 128-byte slots in the trailer
// (1 reserved pad slot + 5 live counters).
const trailerCounters = 6

// TrailerSize is the fixed size in bytes of the trailer appended after
// the data area. Offsets of individual counters within the trailer are
// fixed by spec and MUST NOT change: shared-memory readers depend on them.
const TrailerSize = trailerCounters * TrailerStride

// RecordHeaderSize is the size in bytes of a record header
// (length int32 + msg_type_id int32).
const RecordHeaderSize = 8

// RecordAlignment is the byte alignment every record (header + payload,
// and padding records) is padded up to.
const RecordAlignment = 8

// MinCapacity is the smallest legal data-area size: one aligned,
// header-only record's worth of space.
const MinCapacity = RecordHeaderSize

// PaddingMsgTypeID is the reserved msg_type_id value that marks a
// record as wrap-around padding rather than a real message.
const PaddingMsgTypeID = -1

// AlignUp rounds n up to the next multiple of RecordAlignment.
func AlignUp(n int32) int32 {
	return (n + (RecordAlignment - 1)) &^ (RecordAlignment - 1)
}

// IndexOf returns the byte index into the data area for a logical
// position, given the data area's capacity (a power of two).
func IndexOf(position int64, capacity int64) int64 {
	return position & (capacity - 1)
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// maxMessageLength returns the largest payload (header excluded) a
// region of the given capacity can ever hold, per invariant 5.
func maxMessageLength(capacity int64) int64 {
	if capacity <= MinCapacity {
		return 0
	}
	return capacity / 8
}
