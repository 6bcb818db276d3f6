// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// Claim is a reserved-but-uncommitted record slot returned by
// Sender.TryClaim. It is a from-memory port of real Agrona's Java
// ManyToOneRingBuffer.tryClaim/commit pair; the Rust ring buffer this
// module otherwise follows (original_source/agrona/src/concurrent/
// ring_buffer.rs) only exposes a single-call write() and has no
// two-phase claim/commit API of its own. Callers that want to encode a
// message directly into the ring's memory, instead of building a
// temporary []byte first, claim space, write into Payload in place,
// then Commit.
//
// A Claim left uncommitted stalls the consumer exactly like any other
// reserved slot (§9). Call Commit or Abort before discarding it.
type Claim struct {
	h         *recordHeader
	Payload   []byte
	msgTypeID int32
	length    int32
	done      bool
}

// TryClaim reserves space for a record of the given payload length
// without publishing it. The caller fills Claim.Payload in place, then
// calls Commit to publish or Abort to release the slot as padding.
//
// Same preconditions and failure modes as Send.
func (s *Sender) TryClaim(msgTypeID int32, payloadLength int) (*Claim, error) {
	if msgTypeID < 1 {
		return nil, InvalidMessageTypeId
	}
	if s.r.maxMessageLength == 0 || int64(payloadLength) > s.r.maxMessageLength {
		return nil, MessageTooLong
	}

	recordLength := int32(payloadLength) + RecordHeaderSize
	required := AlignUp(recordLength)

	recordIndex, err := s.claimCapacity(int64(required))
	if err != nil {
		return nil, err
	}

	h := headerAt(s.r.data, recordIndex)
	h.reserve(recordLength)

	return &Claim{
		h:         h,
		Payload:   s.r.data[recordIndex+RecordHeaderSize : recordIndex+int64(recordLength)],
		msgTypeID: msgTypeID,
		length:    recordLength,
	}, nil
}

// Commit publishes the claim: the consumer may observe it from this
// point on. Commit (or Abort) must be called exactly once per Claim.
func (c *Claim) Commit() {
	if c.done {
		return
	}
	c.done = true
	c.h.commit(c.msgTypeID, c.length)
}

// Abort releases the claim as a padding record instead of a real
// message, so the consumer skips it rather than stalling on a
// permanently-reserved slot. This is a voluntary mitigation for the
// "crashed producer" stall §9 leaves as an open question — it only
// helps a producer that notices its own failure (e.g. via
// defer/recover) and chooses to call it.
func (c *Claim) Abort() {
	if c.done {
		return
	}
	c.done = true
	c.h.commit(PaddingMsgTypeID, c.length)
}
