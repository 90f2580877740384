// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payout

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shareledger/fault"
)

// Transferer - the external mechanism that moves value to a seller
type Transferer interface {
	Transfer(ctx context.Context, request *Request) error
}

// LogTransferer - only records the transfer in the log
//
// for deployments where payouts are settled by an operator
type LogTransferer struct {
	Log *logger.L
}

// Transfer - log the instruction and report success
func (t *LogTransferer) Transfer(ctx context.Context, request *Request) error {
	if err := ctx.Err(); nil != err {
		return err
	}
	t.Log.Infof("transfer: id: %s  recipient: %s  shares: %d  amount: %s", request.Id, request.Recipient, request.Shares, request.Amount)
	return nil
}

// FileTransferer - append one JSON instruction per line to a file
// that an external payer consumes
type FileTransferer struct {
	sync.Mutex
	name string
}

// NewFileTransferer - instructions are appended to the named file
func NewFileTransferer(name string) *FileTransferer {
	return &FileTransferer{
		name: name,
	}
}

type instruction struct {
	Id        string `json:"id"`
	Recipient string `json:"recipient"`
	Shares    uint32 `json:"shares"`
	Amount    string `json:"amount"`
}

// Transfer - write the instruction, failure to write fails the transfer
func (t *FileTransferer) Transfer(ctx context.Context, request *Request) error {
	if err := ctx.Err(); nil != err {
		return err
	}

	line, err := json.Marshal(instruction{
		Id:        request.Id.String(),
		Recipient: request.Recipient.String(),
		Shares:    request.Shares,
		Amount:    request.Amount.String(),
	})
	if nil != err {
		return err
	}

	t.Lock()
	defer t.Unlock()

	f, err := os.OpenFile(t.name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if nil != err {
		return fault.ErrTransferFailed
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); nil != err {
		return fault.ErrTransferFailed
	}
	return nil
}
