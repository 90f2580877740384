// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shareledger/fault"
)

// LogCategory - log file name used by tests
const LogCategory = "testing"

var logDirectory string

// SetupTestLogger - start logging to a temporary directory
//
// only critical messages are written
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "shareledger-test-")
	if nil != err {
		panic(err)
	}
	logDirectory = dir

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = fault.Initialise()
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	fault.Finalise()
	logger.Finalise()
	if "" != logDirectory {
		err := os.RemoveAll(logDirectory)
		if nil != err {
			fmt.Println("remove dir with error: ", err)
		}
		logDirectory = ""
	}
}
