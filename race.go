// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringbuf

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent stress tests: the race detector
// tracks explicit synchronization primitives, not the acquire/release
// orderings this package relies on for the header/trailer fields, and
// reports false positives on otherwise-correct concurrent access.
const RaceEnabled = true
