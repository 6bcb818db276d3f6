// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "code.hybscloud.com/spin"

// Sender is the producer-side view of a Region. Sender is safe to use
// from multiple goroutines (or, over a shared-memory Region, multiple
// processes) concurrently: producers contend only on the tail CAS
// (§4.3, §5). Sender cannot advance head_position; the MPSC role split
// is enforced by this type simply never exposing that operation.
type Sender struct {
	r *Region
}

// Send claims space for a record, copies payload, and publishes it.
//
// msgTypeID must be >= 1. payload must not exceed r.MaxMessageLength().
// Violating either precondition returns InvalidMessageTypeId or
// MessageTooLong without touching the region. Returns
// InsufficientCapacity if no producer can currently make room; the
// caller should back off and retry (§4.3, §7).
func (s *Sender) Send(msgTypeID int32, payload []byte) error {
	if msgTypeID < 1 {
		return InvalidMessageTypeId
	}
	if s.r.maxMessageLength == 0 || int64(len(payload)) > s.r.maxMessageLength {
		return MessageTooLong
	}

	recordLength := int32(len(payload)) + RecordHeaderSize
	required := AlignUp(recordLength)

	recordIndex, err := s.claimCapacity(int64(required))
	if err != nil {
		return err
	}

	h := headerAt(s.r.data, recordIndex)
	h.reserve(recordLength)
	copy(s.r.data[recordIndex+RecordHeaderSize:], payload)
	h.commit(msgTypeID, recordLength)
	return nil
}

// claimCapacity is the heart of the producer: claim_capacity from §4.3.
// It advances tail_position by required bytes (plus any wrap padding),
// writing the padding record itself if one was needed, and returns the
// byte offset at which the caller's own record header belongs.
func (s *Sender) claimCapacity(required int64) (int64, error) {
	tr := s.r.trailer
	capacity := s.r.capacity
	mask := s.r.mask

	sw := spin.Wait{}
	for {
		tail := tr.tailPosition.LoadAcquire()
		head := tr.headCachePosition.LoadAcquire()
		avail := capacity - (tail - head)

		if required > avail {
			head = tr.headPosition.LoadAcquire()
			if required > capacity-(tail-head) {
				return 0, InsufficientCapacity
			}
			tr.headCachePosition.StoreRelease(head)
		}

		var padding int64
		tailIndex := tail & mask
		toEnd := capacity - tailIndex

		if required > toEnd {
			headIndex := head & mask
			if required > headIndex {
				head = tr.headPosition.LoadAcquire()
				headIndex = head & mask
				if required > headIndex {
					return 0, InsufficientCapacity
				}
				tr.headCachePosition.StoreRelease(head)
			}
			padding = toEnd
		}

		if tr.tailPosition.CompareAndSwapAcqRel(tail, tail+required+padding) {
			if padding != 0 {
				s.writePadding(tailIndex, padding)
				return 0, nil
			}
			return tailIndex, nil
		}
		sw.Once()
	}
}

// writePadding publishes a padding record (§3, §4.3's "after the CAS
// succeeds" step): header-only, msg_type_id = PaddingMsgTypeID, length
// equal to the to-end span it consumes.
func (s *Sender) writePadding(index, length int64) {
	h := headerAt(s.r.data, index)
	h.reserve(int32(length))
	h.commit(PaddingMsgTypeID, int32(length))
}
