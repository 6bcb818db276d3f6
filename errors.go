// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import (
	"errors"

	"code.hybscloud.com/iox"
)

// InvalidCapacity is returned when a region's data-area length is not a
// power of two, or is smaller than MinCapacity. Caller-side programming
// error; never returned once a Region has been constructed successfully.
var InvalidCapacity = errors.New("ringbuf: capacity must be a power of two and >= MinCapacity")

// InvalidMessageTypeId is returned by Send when msgTypeID < 1.
// Caller-side programming error; not retried.
var InvalidMessageTypeId = errors.New("ringbuf: msg_type_id must be >= 1")

// MessageTooLong is returned by Send when the payload exceeds the
// region's MaxMessageLength. Caller-side programming error; not retried.
var MessageTooLong = errors.New("ringbuf: payload exceeds max message length")

// InsufficientCapacity indicates claim_capacity could not find room for
// the record even after refreshing head_position from the consumer.
//
// InsufficientCapacity is a control flow signal, not a failure: the
// region is unmodified and the caller should retry after the consumer
// makes progress (with backoff), exactly like [iox.ErrWouldBlock].
// This is an alias for it for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := sender.Send(typeID, payload)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if ringbuf.IsInsufficientCapacity(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err // programming error, not retried
//	}
var InsufficientCapacity = iox.ErrWouldBlock

// IsInsufficientCapacity reports whether err indicates the send could
// not claim enough space right now. Delegates to [iox.IsWouldBlock] for
// wrapped error support.
func IsInsufficientCapacity(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a
// failure). Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}
