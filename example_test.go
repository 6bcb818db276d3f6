// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package ringbuf_test

import (
	"fmt"

	"code.hybscloud.com/ringbuf"
)

// ExampleNewHeapSplit demonstrates a single producer sending a few
// messages to a single consumer over a heap-backed region.
func ExampleNewHeapSplit() {
	sender, receiver, err := ringbuf.NewHeapSplit(4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := 1; i <= 3; i++ {
		if err := sender.Send(int32(i), []byte{byte(i * 10)}); err != nil {
			fmt.Println(err)
			return
		}
	}

	receiver.Receive(3, func(msgTypeID int32, payload []byte) {
		fmt.Println(msgTypeID, payload[0])
	})

	// Output:
	// 1 10
	// 2 20
	// 3 30
}

// ExampleSender_TryClaim demonstrates encoding a message directly into
// the ring's memory instead of building a temporary []byte first.
func ExampleSender_TryClaim() {
	sender, receiver, err := ringbuf.NewHeapSplit(4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	claim, err := sender.TryClaim(7, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	copy(claim.Payload, []byte("abc"))
	claim.Commit()

	receiver.Receive(1, func(msgTypeID int32, payload []byte) {
		fmt.Println(msgTypeID, string(payload))
	})

	// Output:
	// 7 abc
}
