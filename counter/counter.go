// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a count shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - unsigned count that is safe for concurrent use
type Counter uint64

// Acquire - add 1 unless the count has reached limit
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Release - subtract 1, never going below zero
func (c *Counter) Release() {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if 0 == n {
			return
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n-1) {
			return
		}
	}
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
