// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - reject stale or repeated signed requests
//
// a request carries its creation time, it is accepted only if that
// time is within the window of the server clock and its signature
// has not been seen before. Signatures are remembered for twice the
// window so that anything older has already expired by timestamp.
package replay

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/shareledger/fault"
)

// DefaultWindow - accepted clock difference in either direction
const DefaultWindow = 5 * time.Minute

// Guard - window and cache of accepted signatures
type Guard struct {
	window time.Duration
	seen   *cache.Cache
	now    func() time.Time
}

// New - create a guard, zero window selects the default
func New(window time.Duration) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Guard{
		window: window,
		seen:   cache.New(2*window, window),
		now:    time.Now,
	}
}

// Check - accept a signature once, only within the window
func (g *Guard) Check(signature []byte, timestamp time.Time) error {
	difference := g.now().Sub(timestamp)
	if difference < 0 {
		difference = -difference
	}
	if difference > g.window {
		return fault.ErrRequestExpired
	}

	if err := g.seen.Add(hex.EncodeToString(signature), timestamp, cache.DefaultExpiration); err != nil {
		return fault.ErrReplayedRequest
	}
	return nil
}

// Count - number of remembered signatures
func (g *Guard) Count() int {
	return g.seen.ItemCount()
}
