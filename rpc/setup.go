// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shareledger/counter"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/rpc/certificate"
	"github.com/bitmark-inc/shareledger/rpc/listeners"
	"github.com/bitmark-inc/shareledger/rpc/replay"
	"github.com/bitmark-inc/shareledger/rpc/server"
	"github.com/bitmark-inc/shareledger/rpc/shares"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log      *logger.L
	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection count shared by all listen addresses
var connectionCountRPC counter.Counter

// Initialise - start serving the ledger on the configured addresses
//
// replayWindow is the accepted clock difference for signed requests
func Initialise(configuration *listeners.RPCConfiguration, l shares.Ledger, replayWindow time.Duration) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	listener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, l, replay.New(replayWindow)),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	if err := listener.Serve(); nil != err {
		return err
	}
	globalData.listener = listener

	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	err := globalData.listener.Close()
	globalData.listener = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return err
}

// number of open client connections
func Connections() uint64 {
	return connectionCountRPC.Uint64()
}
