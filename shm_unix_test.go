// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin

package ringbuf_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"code.hybscloud.com/ringbuf"
)

func TestSharedRegionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ring")

	region, closer, err := ringbuf.NewSharedRegion(path, 4096, true)
	if err != nil {
		t.Fatalf("NewSharedRegion: %v", err)
	}
	defer func() {
		if err := closer(); err != nil {
			t.Errorf("closer: %v", err)
		}
	}()

	sender, release1, receiver, release2 := ringbuf.SplitOwned(region, func() {})
	defer release1()
	defer release2()

	if err := sender.Send(7, []byte("hello")); err != nil {
		t.Fatalf("Send: %v", err)
	}

	var gotType int32
	var gotPayload []byte
	n := receiver.Receive(1, func(typeID int32, payload []byte) {
		gotType = typeID
		gotPayload = append([]byte(nil), payload...)
	})
	if n != 1 || gotType != 7 || !bytes.Equal(gotPayload, []byte("hello")) {
		t.Fatalf("got n=%d type=%d payload=%q, want 1 7 \"hello\"", n, gotType, gotPayload)
	}
}

func TestSharedRegionAttachSeesInitializedCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ring")

	owner, ownerCloser, err := ringbuf.NewSharedRegion(path, 4096, true)
	if err != nil {
		t.Fatalf("NewSharedRegion (owner): %v", err)
	}
	defer ownerCloser()

	ownerSender, _ := ringbuf.Split(owner)
	if err := ownerSender.Send(1, []byte{1, 2, 3}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	attached, attachedCloser, err := ringbuf.NewSharedRegion(path, 4096, false)
	if err != nil {
		t.Fatalf("NewSharedRegion (attach): %v", err)
	}
	defer attachedCloser()

	if got := attached.TailPosition(); got == 0 {
		t.Fatalf("attached region sees tail=0, want nonzero (owner already sent a message)")
	}
}
