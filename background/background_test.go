// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shareledger/background"
)

type counter struct {
	ticks    int64
	finished int32
	args     interface{}
}

func (c *counter) Run(args interface{}, shutdown <-chan struct{}) {
	c.args = args
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&c.ticks, 1)
		}
	}
	atomic.StoreInt32(&c.finished, 1)
}

func TestStartStop(t *testing.T) {
	one := &counter{}
	two := &counter{}

	p := background.Start(background.Processes{one, two}, "arguments")
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	for i, c := range []*counter{one, two} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&c.finished), "%d: not finished after stop", i)
		assert.True(t, atomic.LoadInt64(&c.ticks) > 0, "%d: never ran", i)
		assert.Equal(t, "arguments", c.args, "%d: arguments", i)
	}

	// no further ticks after stop
	n := atomic.LoadInt64(&one.ticks)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, n, atomic.LoadInt64(&one.ticks), "ran after stop")
}

func TestStopTwice(t *testing.T) {
	p := background.Start(background.Processes{&counter{}}, nil)
	p.Stop()
	p.Stop()

	var nothing *background.T
	nothing.Stop()
}
