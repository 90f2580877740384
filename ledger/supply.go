// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"
)

// supply - total shares and those still available to buy
//
// every helper returns a new value and false if the change is not
// possible, the receiver is never modified
type supply struct {
	total       uint32
	outstanding uint32
}

// shares leave the pool of available shares (buy)
func (s supply) take(n uint32) (supply, bool) {
	if n > s.outstanding {
		return s, false
	}
	s.outstanding -= n
	return s, true
}

// shares return to the pool of available shares (sell)
func (s supply) give(n uint32) (supply, bool) {
	if n > s.held() {
		return s, false
	}
	s.outstanding += n
	return s, true
}

// new shares are created (issue)
func (s supply) grow(n uint32) (supply, bool) {
	if n > math.MaxUint32-s.total {
		return s, false
	}
	s.total += n
	s.outstanding += n
	return s, true
}

// available shares are destroyed (buy back)
func (s supply) shrink(n uint32) (supply, bool) {
	if n > s.outstanding {
		return s, false
	}
	s.total -= n
	s.outstanding -= n
	return s, true
}

// outstanding can never exceed total
func (s supply) valid() bool {
	return s.outstanding <= s.total
}

// shares held by all accounts together
func (s supply) held() uint32 {
	return s.total - s.outstanding
}
