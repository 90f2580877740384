// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/logger"
)

// DefaultTimeout - limit on a single transfer
const DefaultTimeout = 30 * time.Second

const dispatchQueueSize = 100

// Reconciler - receives the outcome of each transfer
type Reconciler interface {
	ConfirmPayout(id uuid.UUID) error
	FailPayout(id uuid.UUID, reason error) error
}

// Dispatcher - hands pending payouts to a Transferer in the background
type Dispatcher struct {
	sync.RWMutex
	log        *logger.L
	transferer Transferer
	reconciler Reconciler
	timeout    time.Duration
	queue      chan *Request
}

// NewDispatcher - create a dispatcher, a zero timeout selects the default
func NewDispatcher(log *logger.L, transferer Transferer, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		log:        log,
		transferer: transferer,
		timeout:    timeout,
		queue:      make(chan *Request, dispatchQueueSize),
	}
}

// SetReconciler - where transfer outcomes are reported
//
// must be called before Run
func (d *Dispatcher) SetReconciler(reconciler Reconciler) {
	d.Lock()
	d.reconciler = reconciler
	d.Unlock()
}

// Submit - queue a request without blocking
//
// a dropped request stays pending in storage
func (d *Dispatcher) Submit(request *Request) bool {
	select {
	case d.queue <- request:
		return true
	default:
		d.log.Warnf("queue full, payout: %s left pending", request.Id)
		return false
	}
}

// Run - background process
func (d *Dispatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := d.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case request := <-d.queue:
			d.dispatch(request)
		}
	}

	if n := len(d.queue); n > 0 {
		log.Warnf("stopped with: %d payouts not attempted", n)
	}
	log.Info("stopped")
}

// transfer one request and report the result
func (d *Dispatcher) dispatch(request *Request) {
	log := d.log

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	err := d.transferer.Transfer(ctx, request)
	cancel()

	d.RLock()
	reconciler := d.reconciler
	d.RUnlock()

	if nil == reconciler {
		log.Criticalf("no reconciler, payout: %s  transfer error: %v", request.Id, err)
		return
	}

	if nil == err {
		log.Infof("payout: %s  transferred", request.Id)
		if err := reconciler.ConfirmPayout(request.Id); nil != err {
			log.Errorf("confirm payout: %s  error: %s", request.Id, err)
		}
		return
	}

	log.Warnf("payout: %s  transfer error: %s", request.Id, err)
	if err := reconciler.FailPayout(request.Id, err); nil != err {
		log.Criticalf("reconcile payout: %s  error: %s", request.Id, err)
	}
}
