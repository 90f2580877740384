// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const DefaultQueueSize = 1000

// Message - a command with its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a single consumer queue
type Queue struct {
	c chan Message
}

// create a queue, a non-positive size selects the default
func New(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message without blocking
//
// returns false if the queue was full and the message dropped;
// a nil queue drops everything
func (q *Queue) Send(command string, parameters ...[]byte) bool {
	if nil == q {
		return false
	}
	select {
	case q.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		return false
	}
}

// channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// number of messages waiting
func (q *Queue) Len() int {
	return len(q.c)
}
