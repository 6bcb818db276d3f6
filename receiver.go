// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// Handler is invoked once per committed, non-padding message a
// Receive call scans. payload aliases the region's memory and is only
// valid for the duration of the call: copy it if it must outlive the
// Handler invocation, since the consumer zero-fills it immediately
// after (§4.4 step 5).
type Handler func(msgTypeID int32, payload []byte)

// Receiver is the single-consumer view of a Region. Receiver must not
// be used from more than one goroutine at a time (§1 Non-goals); it
// cannot advance tail_position, enforcing the MPSC role split.
type Receiver struct {
	r *Region
}

// Receive scans committed records starting at head_position, up to the
// contiguous run of bytes available before the data area wraps,
// invoking handler for each non-padding message until limit messages
// have been delivered or a reserved-but-uncommitted slot is reached.
// Returns the number of messages delivered (padding records don't
// count, per §4.4).
//
// Receive never blocks: an empty or fully-reserved region returns 0.
func (c *Receiver) Receive(limit int, handler Handler) int {
	tr := c.r.trailer
	data := c.r.data
	capacity := c.r.capacity
	mask := c.r.mask

	head := tr.headPosition.LoadAcquire()
	headIndex := head & mask
	contiguous := capacity - headIndex

	var bytesRead int64
	var messagesRead int

	for bytesRead < contiguous && messagesRead < limit {
		recIndex := headIndex + bytesRead
		h := headerAt(data, recIndex)

		length := h.loadLength()
		if length <= 0 {
			// Either EMPTY or RESERVED: stop. A reserved slot must
			// not be skipped past, or FIFO order would be violated
			// once it eventually commits (§4.4 rationale).
			break
		}

		aligned := int64(AlignUp(length))
		bytesRead += aligned

		typeID := h.loadMsgTypeID()
		if typeID != PaddingMsgTypeID {
			payload := data[recIndex+RecordHeaderSize : recIndex+int64(length)]
			handler(typeID, payload)
			messagesRead++
		}
	}

	if bytesRead > 0 {
		clear(data[headIndex : headIndex+bytesRead])
		tr.headPosition.StoreRelease(head + bytesRead)
	}

	return messagesRead
}
