// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"time"
)

// SetClock - replace the clock used for window checks
func (g *Guard) SetClock(now func() time.Time) {
	g.now = now
}
