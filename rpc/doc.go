// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - set up and handle all of the incoming JSON RPC
// requests from clients of the share ledger
//
// standard golang RPC services can be used on the client side to
// access these services, the connection is TLS with a self signed
// certificate identified by its SHA3-256 fingerprint
package rpc
