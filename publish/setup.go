// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast ledger events on a ZeroMQ PUB socket
//
// each event is a two part message: the command followed by its JSON
// data; subscribers filter on the command
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shareledger/background"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/messagebus"
	"github.com/bitmark-inc/shareledger/zmqutil"
)

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc *broadcaster

	background *background.T

	initialised bool
}

var globalData publishData

// NewQueue - the queue the ledger sends its events to
//
// nil when publishing is disabled, since nothing would drain it
func NewQueue(configuration *Configuration) *messagebus.Queue {
	if 0 == len(configuration.Broadcast) {
		return nil
	}
	return messagebus.New(messagebus.DefaultQueueSize)
}

// Initialise - start broadcasting events read from the queue
//
// an empty broadcast list disables publishing
func Initialise(configuration *Configuration, queue *messagebus.Queue) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast endpoints, publishing disabled")
		globalData.initialised = true
		return nil
	}

	if nil == queue {
		return fault.ErrMissingParameters
	}

	privateKey := []byte(nil)
	if "" != configuration.PrivateKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
	}

	brdc, err := newBroadcaster(globalData.log, privateKey, configuration.Broadcast, queue)
	if nil != err {
		return err
	}
	globalData.brdc = brdc

	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		brdc,
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.background = nil
	globalData.brdc = nil

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
