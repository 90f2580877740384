// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept TLS connections for an RPC server
package listeners

import (
	"net"
)

const (
	minConnectionCount = 1
)

// Listener - a server bound to one or more addresses
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Close() error
}
