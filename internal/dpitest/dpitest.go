// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

// Package dpitest opens real ODPI-C handles for the odpiext tests.
//
// It goes through the public ODPI-C API only (context, standalone
// connection, prepare/execute, single-value fetch) - just enough to hand
// borrowed handles to the package under test. It is not a driver.
package dpitest

/*
#cgo CFLAGS: -I${SRCDIR}/../../odpi/include
#cgo LDFLAGS: -L${SRCDIR}/../../odpi/lib -lodpic -ldl

#include <stdlib.h>
#include "dpi.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// DB holds one standalone connection and the ODPI-C context it was created
// from. Not safe for concurrent use, like the underlying handles.
type DB struct {
	dpiContext *C.dpiContext
	dpiConn    *C.dpiConn
}

// Connect creates an ODPI-C context and a standalone connection.
func Connect(p Params) (*DB, error) {
	db := &DB{}
	var errInfo C.dpiErrorInfo
	if C.dpiContext_createWithParams(C.DPI_MAJOR_VERSION, C.DPI_MINOR_VERSION,
		nil, &db.dpiContext, &errInfo,
	) == C.DPI_FAILURE {
		return nil, fmt.Errorf("dpiContext_createWithParams: %s", C.GoString(errInfo.message))
	}
	cUser, cPass, cConn := C.CString(p.Username), C.CString(p.Password), C.CString(p.ConnectString)
	defer func() {
		C.free(unsafe.Pointer(cUser))
		C.free(unsafe.Pointer(cPass))
		C.free(unsafe.Pointer(cConn))
	}()
	if C.dpiConn_create(db.dpiContext,
		cUser, C.uint32_t(len(p.Username)),
		cPass, C.uint32_t(len(p.Password)),
		cConn, C.uint32_t(len(p.ConnectString)),
		nil, nil, &db.dpiConn,
	) == C.DPI_FAILURE {
		err := db.lastError("dpiConn_create")
		C.dpiContext_destroy(db.dpiContext)
		db.dpiContext = nil
		return nil, err
	}
	return db, nil
}

// Context returns the raw dpiContext.
func (db *DB) Context() unsafe.Pointer { return unsafe.Pointer(db.dpiContext) }

// Conn returns the raw dpiConn.
func (db *DB) Conn() unsafe.Pointer { return unsafe.Pointer(db.dpiConn) }

// Ping performs a round trip on the connection.
func (db *DB) Ping() error {
	if C.dpiConn_ping(db.dpiConn) == C.DPI_FAILURE {
		return db.lastError("dpiConn_ping")
	}
	return nil
}

// Commit commits the current transaction.
func (db *DB) Commit() error {
	if C.dpiConn_commit(db.dpiConn) == C.DPI_FAILURE {
		return db.lastError("dpiConn_commit")
	}
	return nil
}

// Rollback rolls back the current transaction.
func (db *DB) Rollback() error {
	if C.dpiConn_rollback(db.dpiConn) == C.DPI_FAILURE {
		return db.lastError("dpiConn_rollback")
	}
	return nil
}

// CloseConn closes the connection but keeps the handle referenced, so the
// dpiConn stays valid while being disconnected.
func (db *DB) CloseConn() error {
	if C.dpiConn_close(db.dpiConn, C.DPI_MODE_CONN_CLOSE_DEFAULT, nil, 0) == C.DPI_FAILURE {
		return db.lastError("dpiConn_close")
	}
	return nil
}

// Close releases the connection and destroys the context.
func (db *DB) Close() {
	if db.dpiConn != nil {
		C.dpiConn_release(db.dpiConn)
		db.dpiConn = nil
	}
	if db.dpiContext != nil {
		C.dpiContext_destroy(db.dpiContext)
		db.dpiContext = nil
	}
}

func (db *DB) prepare(qry string) (*C.dpiStmt, error) {
	cSQL := C.CString(qry)
	defer C.free(unsafe.Pointer(cSQL))
	var stmt *C.dpiStmt
	if C.dpiConn_prepareStmt(db.dpiConn, 0, cSQL, C.uint32_t(len(qry)),
		nil, 0, &stmt,
	) == C.DPI_FAILURE {
		return nil, db.lastError("dpiConn_prepareStmt: " + qry)
	}
	return stmt, nil
}

func (db *DB) prepareExec(qry string) (*C.dpiStmt, error) {
	stmt, err := db.prepare(qry)
	if err != nil {
		return nil, err
	}
	var numCols C.uint32_t
	if C.dpiStmt_execute(stmt, C.DPI_MODE_EXEC_DEFAULT, &numCols) == C.DPI_FAILURE {
		err = db.lastError("dpiStmt_execute: " + qry)
		C.dpiStmt_release(stmt)
		return nil, err
	}
	return stmt, nil
}

// PrepareStmt prepares qry without executing it and returns the raw dpiStmt
// with a release function.
func (db *DB) PrepareStmt(qry string) (unsafe.Pointer, func(), error) {
	stmt, err := db.prepare(qry)
	if err != nil {
		return nil, nil, err
	}
	return unsafe.Pointer(stmt), func() { C.dpiStmt_release(stmt) }, nil
}

// ExecStmt prepares and executes qry and returns the raw dpiStmt with a
// release function.
func (db *DB) ExecStmt(qry string) (unsafe.Pointer, func(), error) {
	stmt, err := db.prepareExec(qry)
	if err != nil {
		return nil, nil, err
	}
	return unsafe.Pointer(stmt), func() { C.dpiStmt_release(stmt) }, nil
}

// Exec prepares, executes and releases qry.
func (db *DB) Exec(qry string) error {
	stmt, err := db.prepareExec(qry)
	if err != nil {
		return err
	}
	C.dpiStmt_release(stmt)
	return nil
}

// QueryString executes qry and returns the first column of its first row as
// a string.
func (db *DB) QueryString(qry string) (string, error) {
	stmt, err := db.prepareExec(qry)
	if err != nil {
		return "", err
	}
	defer C.dpiStmt_release(stmt)
	var found C.int
	var rowIdx C.uint32_t
	if C.dpiStmt_fetch(stmt, &found, &rowIdx) == C.DPI_FAILURE {
		return "", db.lastError("dpiStmt_fetch: " + qry)
	}
	if found == 0 {
		return "", errors.New("no rows: " + qry)
	}
	var nativeType C.dpiNativeTypeNum
	var data *C.dpiData
	if C.dpiStmt_getQueryValue(stmt, 1, &nativeType, &data) == C.DPI_FAILURE {
		return "", db.lastError("dpiStmt_getQueryValue: " + qry)
	}
	if C.dpiData_getIsNull(data) != 0 {
		return "", nil
	}
	if nativeType != C.DPI_NATIVE_TYPE_BYTES {
		return "", fmt.Errorf("unexpected native type %d for %q", int(nativeType), qry)
	}
	b := C.dpiData_getBytes(data)
	return C.GoStringN(b.ptr, C.int(b.length)), nil
}

func (db *DB) lastError(op string) error {
	var errInfo C.dpiErrorInfo
	C.dpiContext_getError(db.dpiContext, &errInfo)
	return fmt.Errorf("%s: ORA-%05d: %s", op, int(errInfo.code), C.GoString(errInfo.message))
}
