// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuf

import "code.hybscloud.com/atomix"

// refcount runs release exactly once, after the last of its holders
// calls drop. Used instead of a runtime finalizer so disposal is
// deterministic and observable, matching the teacher's preference for
// explicit atomic state over implicit GC hooks throughout its queue
// constructors.
type refcount struct {
	n       atomix.Int32
	release func()
}

// drop decrements the refcount and runs release when it reaches zero.
func (r *refcount) drop() {
	if r.n.AddAcqRel(-1) == 0 {
		r.release()
	}
}
