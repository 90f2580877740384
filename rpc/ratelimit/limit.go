// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - throttle RPC calls with a token bucket
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/shareledger/fault"
)

// Limit - wait for a single token
func Limit(limiter *rate.Limiter) error {
	return LimitN(limiter, 1, 1)
}

// LimitN - wait for count tokens
//
// an out of range count is still charged one token so that bad
// requests cannot be repeated for free
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	valid := count > 0 && count <= maximumCount
	if !valid {
		count = 1
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	if !valid {
		return fault.ErrInvalidCount
	}
	return nil
}
