// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error to allow easy comparison
// without having to resort to partial string matches.  The string of
// every ledger error is its stable identifier, so it survives the
// trip through JSON-RPC and can be mapped back by FromIdentifier.
package fault
