// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

// Split produces one Sender and one Receiver view over an initialized
// Region. This is the sole constructor for both role handles: there is
// no way to obtain a Sender that can advance head_position or a
// Receiver that can advance tail_position, which is how the MPSC role
// split is enforced at the type level (§4.2).
//
// Sender is safe to share across producer goroutines (clone the
// returned value or pass its pointer around); Receiver must be used by
// a single consumer goroutine at a time.
func Split(r *Region) (*Sender, *Receiver) {
	return &Sender{r: r}, &Receiver{r: r}
}

// SplitOwned is like Split, but for a region whose backing bytes must
// be explicitly released once every handle sharing it has dropped it.
// Each of the two returned closers must be called exactly once; the
// underlying release runs after both have been called.
func SplitOwned(r *Region, release func()) (*Sender, func(), *Receiver, func()) {
	rc := &refcount{release: release}
	rc.n.StoreRelaxed(2)
	sender, receiver := Split(r)
	return sender, rc.drop, receiver, rc.drop
}
