// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the networks a ledger can serve
//
// accounts carry a test flag, a ledger on a test network only
// accepts test accounts and a live ledger only live accounts
package chain

import (
	"strings"
)

// the supported networks
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - check for a known network name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - whether accounts on the network use test keys
func IsTesting(name string) bool {
	return Testing == name || Local == name
}

// lower case, no surrounding spaces
func Normalise(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
