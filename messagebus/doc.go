// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - bounded queues carrying ledger events to
// background consumers
//
// senders never block: when a queue is full the message is dropped
// and Send reports it
package messagebus
