// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		result := util.ToVarint64(item.value)
		assert.Equal(t, item.encoded, result, "%d: ToVarint64(%x)", i, item.value)
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		result1, count1 := util.FromVarint64(item.encoded)
		assert.Equal(t, item.value, result1, "%d: FromVarint64(%x)", i, item.encoded)
		assert.Equal(t, len(item.encoded), count1, "%d: count", i)

		suffix := []byte{0xff, 0x97, 0x23}
		b := append(append([]byte{}, item.encoded...), suffix...)

		result2, count2 := util.FromVarint64(b)
		assert.Equal(t, item.value, result2, "%d: FromVarint64(%x)", i, b)
		assert.Equal(t, count1, count2, "%d: suffixed count", i)
		assert.True(t, bytes.Equal(suffix, b[count2:]), "%d: suffix: %x", i, b[count2:])
	}

	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		assert.Equal(t, uint64(0), result, "%d: FromVarint64(%x)", i, item)
		assert.Equal(t, 0, count, "%d: FromVarint64(%x)", i, item)
	}
}

func TestPackUnpack(t *testing.T) {
	p := util.Packed{}
	p = p.AppendVarint64(300)
	p = p.AppendBytes([]byte("SHR"))
	p = p.AppendVarint64(0)

	u := util.NewUnpacker(p)

	n, err := u.Varint64()
	assert.Nil(t, err, "first varint")
	assert.Equal(t, uint64(300), n, "first varint")

	b, err := u.Bytes()
	assert.Nil(t, err, "bytes")
	assert.Equal(t, []byte("SHR"), b, "bytes")

	n, err = u.Varint64()
	assert.Nil(t, err, "second varint")
	assert.Equal(t, uint64(0), n, "second varint")

	assert.True(t, u.Done(), "buffer not consumed")

	_, err = u.Varint64()
	assert.Equal(t, fault.ErrInvalidCount, err, "read past end")
}

func TestUnpackTruncatedBytes(t *testing.T) {
	p := util.Packed{}.AppendBytes([]byte("abcdef"))

	u := util.NewUnpacker(p[:4])
	_, err := u.Bytes()
	assert.Equal(t, fault.ErrInvalidCount, err, "truncated bytes")
}
