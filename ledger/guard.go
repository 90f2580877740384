// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/fault"
)

// only the configured privileged caller may change the supply
//
// with no privileged caller configured nobody can
func (r *record) verifyPrivileged(caller *account.Account) error {
	if nil == r.privileged || nil == caller {
		return fault.ErrNotPrivileged
	}
	if !r.privileged.Equal(caller) {
		return fault.ErrNotPrivileged
	}
	return nil
}
