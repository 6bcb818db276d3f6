// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringbuf provides a multi-producer, single-consumer lock-free
// ring buffer for low-latency in-process or shared-memory
// inter-process message passing.
//
// Producers enqueue variable-length, typed byte messages; a single
// consumer dequeues them in FIFO order. The buffer is backed by a
// caller-supplied contiguous byte Region whose layout is byte-exact
// and stable across process boundaries.
//
// # Quick Start
//
// In-process, heap-backed:
//
//	sender, receiver, err := ringbuf.NewHeapSplit(1 << 20)
//	if err != nil {
//	    // capacity not a power of two, or too small
//	}
//
//	if err := sender.Send(88, []byte{54, 33, 77, 11, 123}); err != nil {
//	    if ringbuf.IsInsufficientCapacity(err) {
//	        // back off and retry
//	    }
//	}
//
//	n := receiver.Receive(16, func(msgTypeID int32, payload []byte) {
//	    // handle one message; payload is only valid for this call
//	})
//
// Shared-memory, cross-process:
//
//	region, closer, err := ringbuf.NewSharedRegion("/dev/shm/events.ring", 1<<20, true)
//	defer closer()
//	sender, receiver := ringbuf.Split(region)
//
// # Region Layout
//
// A Region is capacity+TrailerSize bytes: a data area of capacity
// bytes (a power of two) followed by a 768-byte trailer of six
// cache-line-padded 64-bit counters at fixed offsets. Every record in
// the data area is an 8-byte header (signed length, msg_type_id)
// followed by payload, padded up to an 8-byte boundary. From the
// start of the trailer, slot 0x000 is reserved padding and the
// counters sit at 0x080 (tail), 0x100 (head cache), 0x180 (head),
// 0x200 (correlation) and 0x280 (consumer heartbeat).
//
// # Concurrency
//
// Sender is safe for concurrent use by multiple producer goroutines
// (or processes, over a shared-memory Region): they contend only on a
// CAS over the trailer's tail position, retrying with
// [code.hybscloud.com/spin.Wait] on failure, the same backoff vocabulary
// the hybscloud lock-free queue packages use for their FAA/CAS retry
// loops. Receiver must be driven by a single consumer goroutine at a
// time.
//
// No operation blocks. Send returns [InsufficientCapacity] rather than
// waiting for the consumer; Receive returns 0 rather than waiting for a
// producer. [InsufficientCapacity] aliases
// [code.hybscloud.com/iox.ErrWouldBlock] for ecosystem-wide error
// classification via [IsInsufficientCapacity] / [IsSemantic].
//
// # Non-goals
//
// Multiple concurrent consumers, dynamic resizing, persistence across
// restarts, cross-producer message ordering beyond the linearization
// the tail CAS imposes, and blocking backpressure are all out of
// scope. A producer that crashes between claiming space and
// committing its record leaves a permanently-reserved slot that stalls
// the consumer; see [Claim.Abort] for a voluntary mitigation and
// DESIGN.md for the rest of that open question.
package ringbuf
