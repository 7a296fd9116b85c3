// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package odpiext

/*
#include <stdlib.h>
#include "dpiImpl.h"

uint8_t odpiext_bufferUint8(dpiDataBuffer *buf);
uint16_t odpiext_bufferUint16(dpiDataBuffer *buf);
uint32_t odpiext_bufferUint32(dpiDataBuffer *buf);
uint64_t odpiext_bufferUint64(dpiDataBuffer *buf);
int odpiext_bufferBool(dpiDataBuffer *buf);
const char *odpiext_bufferString(dpiDataBuffer *buf);
void *odpiext_bufferRaw(dpiDataBuffer *buf);
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"
)

// HandleType selects which OCI handle of a connection an attribute targets.
// Statement attributes always target the OCI statement handle.
type HandleType uint32

const (
	// SvcCtx targets the service context handle.
	SvcCtx HandleType = C.DPI_OCI_HTYPE_SVCCTX
	// Server targets the server handle.
	Server HandleType = C.DPI_OCI_HTYPE_SERVER
	// Session targets the user session handle.
	Session HandleType = C.DPI_OCI_HTYPE_SESSION
)

func (ht HandleType) String() string {
	switch ht {
	case SvcCtx:
		return "svcctx"
	case Server:
		return "server"
	case Session:
		return "session"
	default:
		return fmt.Sprintf("HandleType(%d)", uint32(ht))
	}
}

// Attr is an OCI attribute number, as defined in oci.h of the Oracle client
// SDK. Any attribute number works with AttrValue, not just the ones named
// here - specifying the wrong value type for an attribute is undefined
// behavior, just as it is in OCI.
type Attr uint32

const (
	AttrSQLFnCode              Attr = 10
	AttrInternalName           Attr = 25
	AttrServerStatus           Attr = 143
	AttrStatement              Attr = 144
	AttrStmtCacheSize          Attr = 176
	AttrModule                 Attr = 366
	AttrCollectCallTime        Attr = 369
	AttrCallTime               Attr = 370
	AttrDefaultLobPrefetchSize Attr = 438
	AttrMaxOpenCursors         Attr = 471
	AttrTransactionInProgress  Attr = 484
	AttrVarTypeMaxLenCompat    Attr = 489
)

// AttrValue addresses one attribute of one borrowed handle. It goes through
// ODPI-C's public dpiConn_getOciAttr/dpiStmt_getOciAttr family, so the usual
// public-function guard and error stack of the embedding driver apply.
type AttrValue struct {
	x          *Ext
	dpiConn    *C.dpiConn
	dpiStmt    *C.dpiStmt
	handleType C.uint32_t
	attr       C.uint32_t
}

func (v AttrValue) valid() bool {
	return v.x != nil && v.x.dpiContext != nil &&
		(v.dpiConn != nil || v.dpiStmt != nil)
}

func (v AttrValue) get(ctx context.Context) (C.dpiDataBuffer, C.uint32_t, error) {
	var buf C.dpiDataBuffer
	var length C.uint32_t
	if !v.valid() {
		return buf, 0, fmt.Errorf("attrGet(%d): %w", uint32(v.attr), ErrInvalidHandle)
	}
	var failed bool
	if v.dpiStmt != nil {
		failed = C.dpiStmt_getOciAttr(v.dpiStmt, v.attr, &buf, &length) == C.DPI_FAILURE
	} else {
		failed = C.dpiConn_getOciAttr(v.dpiConn, v.handleType, v.attr, &buf, &length) == C.DPI_FAILURE
	}
	if failed {
		return buf, 0, fmt.Errorf("attrGet(%d): %w", uint32(v.attr), v.x.getError())
	}
	if lgr := getLogger(ctx); lgr != nil {
		lgr.Debug("attrGet", "attr", uint32(v.attr), "handleType", HandleType(v.handleType).String(), "length", uint32(length))
	}
	return buf, length, nil
}

func (v AttrValue) set(ctx context.Context, value unsafe.Pointer, length C.uint32_t) error {
	if !v.valid() {
		return fmt.Errorf("attrSet(%d): %w", uint32(v.attr), ErrInvalidHandle)
	}
	var failed bool
	if v.dpiStmt != nil {
		failed = C.dpiStmt_setOciAttr(v.dpiStmt, v.attr, value, length) == C.DPI_FAILURE
	} else {
		failed = C.dpiConn_setOciAttr(v.dpiConn, v.handleType, v.attr, value, length) == C.DPI_FAILURE
	}
	if failed {
		return fmt.Errorf("attrSet(%d): %w", uint32(v.attr), v.x.getError())
	}
	if lgr := getLogger(ctx); lgr != nil {
		lgr.Debug("attrSet", "attr", uint32(v.attr), "handleType", HandleType(v.handleType).String(), "length", uint32(length))
	}
	return nil
}

// Uint8 reads the attribute as ub1.
func (v AttrValue) Uint8(ctx context.Context) (uint8, error) {
	buf, _, err := v.get(ctx)
	if err != nil {
		return 0, err
	}
	return uint8(C.odpiext_bufferUint8(&buf)), nil
}

// Uint16 reads the attribute as ub2.
func (v AttrValue) Uint16(ctx context.Context) (uint16, error) {
	buf, _, err := v.get(ctx)
	if err != nil {
		return 0, err
	}
	return uint16(C.odpiext_bufferUint16(&buf)), nil
}

// Uint32 reads the attribute as ub4.
func (v AttrValue) Uint32(ctx context.Context) (uint32, error) {
	buf, _, err := v.get(ctx)
	if err != nil {
		return 0, err
	}
	return uint32(C.odpiext_bufferUint32(&buf)), nil
}

// Uint64 reads the attribute as ub8.
func (v AttrValue) Uint64(ctx context.Context) (uint64, error) {
	buf, _, err := v.get(ctx)
	if err != nil {
		return 0, err
	}
	return uint64(C.odpiext_bufferUint64(&buf)), nil
}

// Bool reads the attribute as boolean.
func (v AttrValue) Bool(ctx context.Context) (bool, error) {
	buf, _, err := v.get(ctx)
	if err != nil {
		return false, err
	}
	return C.odpiext_bufferBool(&buf) != 0, nil
}

// Text reads the attribute as oratext, copied out as a Go string.
func (v AttrValue) Text(ctx context.Context) (string, error) {
	buf, length, err := v.get(ctx)
	if err != nil {
		return "", err
	}
	p := C.odpiext_bufferString(&buf)
	if p == nil || length == 0 {
		return "", nil
	}
	return C.GoStringN(p, C.int(length)), nil
}

// Bytes reads the attribute as a ub1 array, copied out as a Go slice.
func (v AttrValue) Bytes(ctx context.Context) ([]byte, error) {
	buf, length, err := v.get(ctx)
	if err != nil {
		return nil, err
	}
	p := C.odpiext_bufferRaw(&buf)
	if p == nil || length == 0 {
		return nil, nil
	}
	return C.GoBytes(p, C.int(length)), nil
}

// SetUint8 writes the attribute as ub1.
func (v AttrValue) SetUint8(ctx context.Context, value uint8) error {
	cv := C.uint8_t(value)
	return v.set(ctx, unsafe.Pointer(&cv), 1)
}

// SetUint16 writes the attribute as ub2.
func (v AttrValue) SetUint16(ctx context.Context, value uint16) error {
	cv := C.uint16_t(value)
	return v.set(ctx, unsafe.Pointer(&cv), 2)
}

// SetUint32 writes the attribute as ub4.
func (v AttrValue) SetUint32(ctx context.Context, value uint32) error {
	cv := C.uint32_t(value)
	return v.set(ctx, unsafe.Pointer(&cv), 4)
}

// SetUint64 writes the attribute as ub8.
func (v AttrValue) SetUint64(ctx context.Context, value uint64) error {
	cv := C.uint64_t(value)
	return v.set(ctx, unsafe.Pointer(&cv), 8)
}

// SetBool writes the attribute as boolean.
func (v AttrValue) SetBool(ctx context.Context, value bool) error {
	var cv C.int
	if value {
		cv = 1
	}
	return v.set(ctx, unsafe.Pointer(&cv), C.uint32_t(C.sizeof_int))
}

// SetText writes the attribute as oratext.
func (v AttrValue) SetText(ctx context.Context, value string) error {
	cs := C.CString(value)
	defer C.free(unsafe.Pointer(cs))
	return v.set(ctx, unsafe.Pointer(cs), C.uint32_t(len(value)))
}

// SetBytes writes the attribute as a ub1 array.
func (v AttrValue) SetBytes(ctx context.Context, value []byte) error {
	if len(value) == 0 {
		return v.set(ctx, nil, 0)
	}
	cp := C.CBytes(value)
	defer C.free(cp)
	return v.set(ctx, cp, C.uint32_t(len(value)))
}
