// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pricing - fixed price per share
//
// the price is a whole number of payment units per share; payments
// are counted in the smallest denomination which is
// 10^decimals of a whole unit.  Buying and selling use the same
// price, there is no spread.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
)

// DefaultDecimals - smallest denominations per whole unit as a power of ten
const DefaultDecimals = 24

// MaximumDecimals - largest power of ten that fits an amount
const MaximumDecimals = 38

// Policy - price and unit conversion
type Policy struct {
	pricePerShare uint32
	decimals      int
	multiplier    amount.Amount
	unitCost      amount.Amount // price of one share in smallest denomination
}

// New - create a pricing policy
func New(pricePerShare uint32, decimals int) (*Policy, error) {
	if 0 == pricePerShare {
		return nil, fault.ErrInvalidPrice
	}
	if decimals < 0 || decimals > MaximumDecimals {
		return nil, fault.ErrInvalidUnitMultiplier
	}

	multiplier, err := amount.Pow10(decimals)
	if nil != err {
		return nil, fault.ErrInvalidUnitMultiplier
	}

	unitCost, err := multiplier.Mul64(uint64(pricePerShare))
	if nil != err {
		return nil, err
	}

	return &Policy{
		pricePerShare: pricePerShare,
		decimals:      decimals,
		multiplier:    multiplier,
		unitCost:      unitCost,
	}, nil
}

// PricePerShare - whole units per share
func (p *Policy) PricePerShare() uint32 {
	return p.pricePerShare
}

// Decimals - the power of ten of the unit multiplier
func (p *Policy) Decimals() int {
	return p.decimals
}

// UnitMultiplier - smallest denominations per whole unit
func (p *Policy) UnitMultiplier() amount.Amount {
	return p.multiplier
}

// Cost - payment required to buy n shares
//
// fails with fault.ErrPaymentOverflow rather than wrap
func (p *Policy) Cost(n uint32) (amount.Amount, error) {
	return p.unitCost.Mul64(uint64(n))
}

// Proceeds - payment made for selling n shares
func (p *Policy) Proceeds(n uint32) (amount.Amount, error) {
	return p.Cost(n)
}

// Units - render an amount in whole units
func (p *Policy) Units(a amount.Amount) string {
	return decimal.NewFromBigInt(a.Big(), -int32(p.decimals)).String()
}

// ParseUnits - convert a whole unit decimal string to an amount
//
// fractions below the smallest denomination are rejected
func (p *Policy) ParseUnits(s string) (amount.Amount, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return amount.Zero, fault.ErrInvalidAmount
	}
	if d.Sign() < 0 {
		return amount.Zero, fault.ErrInvalidAmount
	}

	shifted := d.Shift(int32(p.decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return amount.Zero, fault.ErrInvalidAmount
	}
	return amount.FromBig(shifted.BigInt())
}
