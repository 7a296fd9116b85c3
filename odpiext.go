// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

// Package odpiext reads OCI handle attributes that ODPI-C does not expose
// through its public API.
//
// The package borrows raw dpiContext, dpiConn and dpiStmt pointers from the
// embedding ODPI-C based driver. It never creates, closes or releases them;
// every call is a point-in-time read (or write) of a single attribute, and
// the handle ownership and thread-safety rules of the embedding driver apply
// unchanged.
package odpiext

/*
#cgo CFLAGS: -I./odpi/include -I./odpi/src
#cgo LDFLAGS: -Lodpi/lib -lodpic -ldl -s

#include <stdlib.h>
#include "dpiImpl.h"

#define ODPIEXT_OCI_ATTR_SQLFNCODE 10

int odpiext_stmtGetFnCode(dpiStmt *stmt, uint16_t *fnCode)
{
	dpiError error;
	int status;

	if (dpiGen__startPublicFn(stmt, DPI_HTYPE_STMT, __func__, &error) < 0)
		return dpiGen__endPublicFn(stmt, DPI_FAILURE, &error);
	status = dpiOci__attrGet(stmt->handle, DPI_OCI_HTYPE_STMT, fnCode, 0,
			ODPIEXT_OCI_ATTR_SQLFNCODE, "get sql function code", &error);
	return dpiGen__endPublicFn(stmt, status, &error);
}

int odpiext_connGetServerStatus(dpiConn *conn, uint32_t *serverStatus)
{
	dpiError error;
	int status;

	if (dpiGen__startPublicFn(conn, DPI_HTYPE_CONN, __func__, &error) < 0)
		return dpiGen__endPublicFn(conn, DPI_FAILURE, &error);
	if (!conn->handle)
		return dpiGen__endPublicFn(conn,
				dpiError__set(&error, "check connected",
						DPI_ERR_NOT_CONNECTED),
				&error);
	status = dpiOci__attrGet(conn->serverHandle, DPI_OCI_HTYPE_SERVER,
			serverStatus, 0, DPI_OCI_ATTR_SERVER_STATUS,
			"get server status", &error);
	return dpiGen__endPublicFn(conn, status, &error);
}

// cgo represents C unions as byte arrays, so dpiDataBuffer members
// are read through these.
uint8_t odpiext_bufferUint8(dpiDataBuffer *buf)   { return buf->asUint8; }
uint16_t odpiext_bufferUint16(dpiDataBuffer *buf) { return buf->asUint16; }
uint32_t odpiext_bufferUint32(dpiDataBuffer *buf) { return buf->asUint32; }
uint64_t odpiext_bufferUint64(dpiDataBuffer *buf) { return buf->asUint64; }
int odpiext_bufferBool(dpiDataBuffer *buf)        { return buf->asBoolean; }
const char *odpiext_bufferString(dpiDataBuffer *buf) { return buf->asString; }
void *odpiext_bufferRaw(dpiDataBuffer *buf)       { return buf->asRaw; }
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Ext gives access to the extension calls for one ODPI-C context.
//
// The dpiContext is only used to fetch error details after a failed call,
// with dpiContext_getError - the same mechanism the embedding driver uses.
type Ext struct {
	dpiContext *C.dpiContext
}

// New wraps the embedding driver's dpiContext.
func New(dpiContext unsafe.Pointer) (*Ext, error) {
	if dpiContext == nil {
		return nil, fmt.Errorf("New: %w", ErrInvalidHandle)
	}
	return &Ext{dpiContext: (*C.dpiContext)(dpiContext)}, nil
}

// Conn borrows a dpiConn owned by the embedding driver.
func (x *Ext) Conn(dpiConn unsafe.Pointer) (Conn, error) {
	if x == nil || x.dpiContext == nil || dpiConn == nil {
		return Conn{}, fmt.Errorf("Conn: %w", ErrInvalidHandle)
	}
	return Conn{x: x, dpiConn: (*C.dpiConn)(dpiConn)}, nil
}

// Stmt borrows a dpiStmt owned by the embedding driver.
func (x *Ext) Stmt(dpiStmt unsafe.Pointer) (Stmt, error) {
	if x == nil || x.dpiContext == nil || dpiStmt == nil {
		return Stmt{}, fmt.Errorf("Stmt: %w", ErrInvalidHandle)
	}
	return Stmt{x: x, dpiStmt: (*C.dpiStmt)(dpiStmt)}, nil
}
