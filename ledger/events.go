// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"

	"github.com/bitmark-inc/shareledger/account"
)

// event commands
const (
	eventInitialise      = "initialise"
	eventBuy             = "buy"
	eventSell            = "sell"
	eventIssue           = "issue"
	eventBuyBack         = "buyback"
	eventPayoutConfirmed = "payout-confirmed"
	eventPayoutFailed    = "payout-failed"
)

// Event - informational record sent after each commit
type Event struct {
	Account     *account.Account `json:"account,omitempty"`
	Shares      uint32           `json:"shares"`
	Owned       uint32           `json:"owned"`
	Outstanding uint32           `json:"outstanding"`
	Total       uint32           `json:"total"`
}

// events are best effort and never affect the operation
func (l *Ledger) emit(command string, caller *account.Account, shares uint32, owned uint32, s supply) {
	if nil == l.events {
		return
	}

	data, err := json.Marshal(Event{
		Account:     caller,
		Shares:      shares,
		Owned:       owned,
		Outstanding: s.outstanding,
		Total:       s.total,
	})
	if nil != err {
		l.log.Errorf("event: %s  marshal error: %s", command, err)
		return
	}

	if !l.events.Send(command, data) {
		l.log.Warnf("event queue full, dropped: %s", command)
	}
}
