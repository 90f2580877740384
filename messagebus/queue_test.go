// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shareledger/messagebus"
)

func TestQueue(t *testing.T) {
	items := []messagebus.Message{
		{
			Command:    "buy",
			Parameters: [][]byte{[]byte("one")},
		},
		{
			Command:    "sell",
			Parameters: [][]byte{[]byte("two"), []byte("three")},
		},
		{
			Command:    "issue",
			Parameters: nil,
		},
	}

	q := messagebus.New(10)
	for _, item := range items {
		assert.True(t, q.Send(item.Command, item.Parameters...), "send: %s", item.Command)
	}
	assert.Equal(t, len(items), q.Len(), "queued")

	queue := q.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item.Command, received.Command, "command")
		assert.Equal(t, len(item.Parameters), len(received.Parameters), "parameter count")
	}
}

func TestFullQueueDrops(t *testing.T) {
	q := messagebus.New(2)

	assert.True(t, q.Send("a"), "first")
	assert.True(t, q.Send("b"), "second")
	assert.False(t, q.Send("c"), "third should be dropped")

	assert.Equal(t, "a", (<-q.Chan()).Command, "order")
	assert.True(t, q.Send("d"), "space after receive")
}

func TestNilQueue(t *testing.T) {
	var q *messagebus.Queue
	assert.False(t, q.Send("ignored"), "nil queue accepted a message")
}

func TestDefaultSize(t *testing.T) {
	q := messagebus.New(0)
	for i := 0; i < messagebus.DefaultQueueSize; i += 1 {
		if !q.Send("fill") {
			t.Fatalf("dropped at: %d", i)
		}
	}
	assert.False(t, q.Send("overflow"), "default capacity exceeded")
}
