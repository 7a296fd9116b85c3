// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package odpiext

/*
#include "dpiImpl.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHandle is returned when a nil handle (or an Ext created around
// one) is used. It is reported before any native call is made, so the output
// of the failed operation is never written.
var ErrInvalidHandle = errors.New("invalid handle")

// OraErr is an error holding the Oracle error code and message
// from the ODPI-C error stack.
type OraErr struct {
	message, fnName, action string
	code                    int
}

// Code returns the Oracle error code.
func (oe *OraErr) Code() int { return oe.code }

// Message returns the error message.
func (oe *OraErr) Message() string { return oe.message }

// FnName returns the ODPI-C function the error was raised in.
func (oe *OraErr) FnName() string { return oe.fnName }

// Action returns the internal action that failed.
func (oe *OraErr) Action() string { return oe.action }

func (oe *OraErr) Error() string {
	msg := oe.Message()
	if oe.code == 0 && msg == "" {
		return ""
	}
	prefix := fmt.Sprintf("ORA-%05d: ", oe.code)
	if strings.HasPrefix(msg, prefix) {
		return msg
	}
	return prefix + msg
}

// getError retrieves the details of the last failed call on this context's
// thread-local error stack.
func (x *Ext) getError() error {
	if x == nil || x.dpiContext == nil {
		return ErrInvalidHandle
	}
	var errInfo C.dpiErrorInfo
	C.dpiContext_getError(x.dpiContext, &errInfo)
	return &OraErr{
		code:    int(errInfo.code),
		message: C.GoString(errInfo.message),
		fnName:  C.GoString(errInfo.fnName),
		action:  C.GoString(errInfo.action),
	}
}
