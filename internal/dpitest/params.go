// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package dpitest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logfmt/logfmt"
)

// EnvDSN names the environment variable holding the logfmt-formatted test
// connection parameters, e.g.
//
//	ODPIEXT_TEST_DSN="user=demo password=demo connectString=localhost:1521/freepdb1"
const EnvDSN = "ODPIEXT_TEST_DSN"

// ErrNoDSN is returned by ParamsFromEnv when EnvDSN is not set.
var ErrNoDSN = errors.New(EnvDSN + " is not set")

// Params are the connection parameters of the test database.
type Params struct {
	Username, Password, ConnectString string
}

// ParseParams parses a logfmt-formatted parameter string.
func ParseParams(s string) (Params, error) {
	var p Params
	d := logfmt.NewDecoder(strings.NewReader(s))
	for d.ScanRecord() {
		for d.ScanKeyval() {
			value := string(d.Value())
			switch key := string(d.Key()); key {
			case "user", "username":
				p.Username = value
			case "password":
				p.Password = value
			case "connectString", "connectstring":
				p.ConnectString = value
			default:
				return p, fmt.Errorf("unknown parameter %q in %q", key, s)
			}
		}
	}
	if err := d.Err(); err != nil {
		return p, err
	}
	if p.Username == "" || p.ConnectString == "" {
		return p, fmt.Errorf("user and connectString are required, got %q", s)
	}
	return p, nil
}

// ParamsFromEnv reads the test connection parameters from EnvDSN.
func ParamsFromEnv() (Params, error) {
	s := os.Getenv(EnvDSN)
	if s == "" {
		return Params{}, ErrNoDSN
	}
	return ParseParams(s)
}
