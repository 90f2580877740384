// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shareledger/counter"
)

func TestLimit(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first")
	assert.True(t, c.Acquire(2), "second")
	assert.False(t, c.Acquire(2), "third")
	assert.Equal(t, uint64(2), c.Uint64(), "count")

	c.Release()
	assert.True(t, c.Acquire(2), "after release")

	c.Release()
	c.Release()
	c.Release()
	assert.Equal(t, uint64(0), c.Uint64(), "release below zero")
}

func TestConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	accepted := make(chan bool, 100)
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			accepted <- c.Acquire(10)
		}()
	}
	wg.Wait()
	close(accepted)

	n := 0
	for ok := range accepted {
		if ok {
			n += 1
		}
	}
	assert.Equal(t, 10, n, "accepted")
	assert.Equal(t, uint64(10), c.Uint64(), "count")
}
