// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/shareledger/fault"
)

// common errors - keep in alphabetic order
var (
	ErrInvalidQuantity = fault.InvalidError("quantity must be between 1 and 4294967295")
	ErrMissingKey      = fault.InvalidError("private key is required, use --key or SHARES_KEY")
)
