// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shareledger/messagebus"
	"github.com/bitmark-inc/shareledger/zmqutil"
)

const broadcasterZapDomain = "broadcaster"

type broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
	queue  *messagebus.Queue
}

func newBroadcaster(log *logger.L, privateKey []byte, endpoints []string, queue *messagebus.Queue) (*broadcaster, error) {
	socket, err := zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, endpoints)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return nil, err
	}
	return &broadcaster{
		log:    log,
		socket: socket,
		queue:  queue,
	}, nil
}

// Run - send each queued event until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  data: %q", item.Command, item.Parameters)
			brdc.process(&item)
		}
	}

	brdc.socket.Close()
	log.Info("stopped")
}

// a PUB socket drops messages when no subscriber is ready, so a send
// error only loses this event
func (brdc *broadcaster) process(item *messagebus.Message) {
	flags := zmq.DONTWAIT
	if len(item.Parameters) > 0 {
		flags |= zmq.SNDMORE
	}
	if _, err := brdc.socket.Send(item.Command, flags); nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		if _, err := brdc.socket.SendBytes(p, flags); nil != err {
			brdc.log.Warnf("send: %s  part: %d  error: %s", item.Command, i, err)
			return
		}
	}
}
