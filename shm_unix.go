// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin

package ringbuf

import (
	"os"

	"golang.org/x/sys/unix"
)

// NewSharedRegion opens the file at path (creating it if needed),
// truncates it to capacity + TrailerSize bytes when fresh is true, and
// maps that many bytes MAP_SHARED, for genuine
// cross-process use (§1's stated shared-memory use case; the region's
// wire layout is byte-exact specifically so a second process mapping
// the same file agrees on it).
//
// fresh must be true for the process that creates/owns the file's
// initial contents and false for a process attaching to a mapping
// another process already initialized — process-to-process discovery
// and the decision of who initializes is an external lifecycle
// contract this function does not adjudicate (§1, §9).
//
// The file descriptor is closed before NewSharedRegion returns (the
// mapping stays valid without it). The returned closer unmaps the
// region; it does not remove the file. The caller owns that decision too.
func NewSharedRegion(path string, capacity int, fresh bool) (r *Region, closer func() error, err error) {
	if capacity <= 0 || !isPowerOfTwo(int64(capacity)) || int64(capacity) < MinCapacity {
		return nil, nil, InvalidCapacity
	}
	size := int64(capacity + TrailerSize)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if fresh {
		if err := f.Truncate(size); err != nil {
			return nil, nil, err
		}
	}

	buf, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}

	r, err = NewRegion(buf, fresh)
	if err != nil {
		_ = unix.Munmap(buf)
		return nil, nil, err
	}

	closer = func() error {
		return unix.Munmap(buf)
	}
	return r, closer, nil
}
