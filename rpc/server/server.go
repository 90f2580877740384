// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shareledger/mode"
	"github.com/bitmark-inc/shareledger/rpc/replay"
	"github.com/bitmark-inc/shareledger/rpc/shares"
)

// ServiceName - name the ledger calls are registered under
const ServiceName = "Ledger"

// Create - an RPC server with all services registered
func Create(log *logger.L, l shares.Ledger, guard *replay.Guard) *rpc.Server {
	server := rpc.NewServer()

	_ = server.RegisterName(ServiceName, shares.New(log, l, guard, mode.Is, mode.IsTesting))

	return server
}
