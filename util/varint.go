// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/shareledger/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, high bit set
// when more bytes follow; the ninth byte carries a full eight bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for i := 1; i < Varint64MaximumBytes; i += 1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 1; count <= len(buffer) && count <= Varint64MaximumBytes; count += 1 {
		b := uint64(buffer[count-1])
		if Varint64MaximumBytes == count {
			return result | b<<shift, count
		}
		result |= (b & 0x7f) << shift
		if 0 == b&0x80 {
			return result, count
		}
		shift += 7
	}
	return 0, 0
}

// Packed - a byte buffer built up from varints and length prefixed fields
type Packed []byte

// AppendVarint64 - add an unsigned value
func (p Packed) AppendVarint64(value uint64) Packed {
	return append(p, ToVarint64(value)...)
}

// AppendBytes - add a count prefixed byte string
func (p Packed) AppendBytes(data []byte) Packed {
	p = p.AppendVarint64(uint64(len(data)))
	return append(p, data...)
}

// Unpacker - sequential reader for a Packed buffer
type Unpacker struct {
	buffer []byte
}

// NewUnpacker - start reading at the beginning of a buffer
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Varint64 - read the next unsigned value
func (u *Unpacker) Varint64() (uint64, error) {
	value, n := FromVarint64(u.buffer)
	if 0 == n {
		return 0, fault.ErrInvalidCount
	}
	u.buffer = u.buffer[n:]
	return value, nil
}

// Bytes - read the next count prefixed byte string as a copy
func (u *Unpacker) Bytes() ([]byte, error) {
	length, err := u.Varint64()
	if nil != err {
		return nil, err
	}
	if uint64(len(u.buffer)) < length {
		return nil, fault.ErrInvalidCount
	}
	data := make([]byte, length)
	copy(data, u.buffer[:length])
	u.buffer = u.buffer[length:]
	return data, nil
}

// Done - true if the whole buffer was consumed
func (u *Unpacker) Done() bool {
	return 0 == len(u.buffer)
}
