// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// NewHeapSplit allocates a fresh heap-backed region of the given
// capacity and immediately splits it into a Sender and Receiver. This
// is the common in-process case (§9): the backing slice is ordinary
// Go memory, so no explicit disposer is needed — it is reclaimed once
// both the Sender and Receiver (and any clones of the Sender) are
// unreachable. Use SplitOwned directly, alongside NewSharedRegion, for
// provisioners the Go runtime doesn't manage.
func NewHeapSplit(capacity int) (*Sender, *Receiver, error) {
	r, err := NewHeapRegion(capacity)
	if err != nil {
		return nil, nil, err
	}
	sender, receiver := Split(r)
	return sender, receiver, nil
}
