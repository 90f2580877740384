// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. account      = account identifier as UTF-8 bytes
// 4. count        = big endian uint64 (8 bytes)
// 5. payout id    = 16 byte UUID
//
// Ledger:
//
//   L ++ "ledger"              - the single ledger record
//                                data: see ledger.Record.Pack
//
// Ownership:
//
//   O ++ account               - shares owned by account
//                                data: count
//
// Payouts:
//
//   P ++ payout id             - sale proceeds not yet confirmed as transferred
//                                data: see payout.Request.Pack
//
// Testing:
//
//   Z ++ key                   - testing data
//
// All writes of a single ledger operation go through one Transaction
// so that they are committed as one LevelDB batch, or not at all.
package storage
