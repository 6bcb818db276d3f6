// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// recordHeader overlays the 8-byte header that precedes every record's
// payload in the data area.
//
// length's sign is the record's state (§3, §4.5):
//
//	 0  : EMPTY   — slot unclaimed
//	 <0 : RESERVED — producer has claimed the slot, payload not yet published
//	 >0 : COMMITTED — length (including header), payload and msgTypeID valid
//
// length is always accessed with acquire/release: it is the single
// publish point a consumer with no other synchronization relies on.
// msgTypeID MUST be written before the committing release-store of
// length and is safe to read with a plain (or relaxed) load afterward —
// the length release/acquire pair already establishes happens-before.
type recordHeader struct {
	length    atomix.Int32
	msgTypeID atomix.Int32
}

const recordHeaderSize = int(unsafe.Sizeof(recordHeader{}))

func init() {
	if recordHeaderSize != RecordHeaderSize {
		panic("ringbuf: recordHeader size does not match RecordHeaderSize")
	}
}

// headerAt overlays a recordHeader at byte offset idx within data.
func headerAt(data []byte, idx int64) *recordHeader {
	return (*recordHeader)(unsafe.Pointer(&data[idx]))
}

// reserve transitions EMPTY -> RESERVED, publishing the eventual
// (negative) length with release ordering. The payload is not yet
// written: the negative value is precisely what tells a racing
// consumer "stop here, not ready" (§4.3 step 3).
func (h *recordHeader) reserve(recordLength int32) {
	h.length.StoreRelease(-recordLength)
}

// commit publishes msgTypeID and flips length positive with release
// ordering: the single store that makes the record visible to the
// consumer (§4.3 steps 5-6).
func (h *recordHeader) commit(msgTypeID int32, recordLength int32) {
	h.msgTypeID.StoreRelaxed(msgTypeID)
	h.length.StoreRelease(recordLength)
}

// loadLength acquire-loads the header's state/length field.
func (h *recordHeader) loadLength() int32 {
	return h.length.LoadAcquire()
}

// loadMsgTypeID reads the header's message type id. Only valid to call
// after loadLength has observed a committed (positive) length, which
// establishes happens-before with the commit's writes.
func (h *recordHeader) loadMsgTypeID() int32 {
	return h.msgTypeID.LoadRelaxed()
}
