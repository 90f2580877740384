// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount - 128 bit unsigned payment amounts
//
// payments are counted in the smallest denomination, which for a
// whole unit multiplier of 10^24 does not fit in 64 bits.  All
// arithmetic reports overflow instead of wrapping.
package amount

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/bitmark-inc/shareledger/fault"
)

// Amount - an unsigned 128 bit value
type Amount struct {
	hi uint64
	lo uint64
}

// Zero - the zero amount
var Zero = Amount{}

// Max - the largest representable amount
var Max = Amount{hi: ^uint64(0), lo: ^uint64(0)}

// New - amount from a 64 bit value
func New(value uint64) Amount {
	return Amount{lo: value}
}

// Pow10 - 10^n, fails if it does not fit
func Pow10(n int) (Amount, error) {
	result := New(1)
	for i := 0; i < n; i += 1 {
		var err error
		result, err = result.Mul64(10)
		if nil != err {
			return Zero, err
		}
	}
	return result, nil
}

// IsZero - test for zero
func (a Amount) IsZero() bool {
	return 0 == a.hi && 0 == a.lo
}

// Sub - checked subtraction
func (a Amount) Sub(b Amount) (Amount, error) {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, borrow := bits.Sub64(a.hi, b.hi, borrow)
	if 0 != borrow {
		return Zero, fault.ErrInvalidAmount
	}
	return Amount{hi: hi, lo: lo}, nil
}

// Mul64 - checked multiplication by a 64 bit value
func (a Amount) Mul64(v uint64) (Amount, error) {
	hiLo, lo := bits.Mul64(a.lo, v)
	hiHi, hi := bits.Mul64(a.hi, v)
	if 0 != hiHi {
		return Zero, fault.ErrPaymentOverflow
	}
	hi, carry := bits.Add64(hi, hiLo, 0)
	if 0 != carry {
		return Zero, fault.ErrPaymentOverflow
	}
	return Amount{hi: hi, lo: lo}, nil
}

// Big - convert to a big integer
func (a Amount) Big() *big.Int {
	b := new(big.Int).SetUint64(a.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(a.lo))
}

// FromBig - convert from a non-negative big integer of at most 128 bits
func FromBig(b *big.Int) (Amount, error) {
	if b.Sign() < 0 {
		return Zero, fault.ErrInvalidAmount
	}
	if b.BitLen() > 128 {
		return Zero, fault.ErrPaymentOverflow
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Amount{hi: hi.Uint64(), lo: lo.Uint64()}, nil
}

// FromString - parse a base 10 string
func FromString(s string) (Amount, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fault.ErrInvalidAmount
	}
	return FromBig(b)
}

// String - base 10 representation
func (a Amount) String() string {
	if 0 == a.hi {
		return new(big.Int).SetUint64(a.lo).String()
	}
	return a.Big().String()
}

// MarshalText - amounts are transported as base 10 strings since
// JSON numbers cannot hold 128 bits
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base 10 string back to an amount
func (a *Amount) UnmarshalText(s []byte) error {
	v, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = v
	return nil
}

// Bytes - 16 byte big endian representation
func (a Amount) Bytes() []byte {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[0:8], a.hi)
	binary.BigEndian.PutUint64(buffer[8:16], a.lo)
	return buffer
}

// FromBytes - inverse of Bytes
func FromBytes(buffer []byte) (Amount, error) {
	if 16 != len(buffer) {
		return Zero, fault.ErrInvalidAmount
	}
	return Amount{
		hi: binary.BigEndian.Uint64(buffer[0:8]),
		lo: binary.BigEndian.Uint64(buffer[8:16]),
	}, nil
}
