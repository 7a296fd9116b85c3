// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package odpiext

/*
#include "dpiImpl.h"

int odpiext_connGetServerStatus(dpiConn *conn, uint32_t *serverStatus);
*/
import "C"

import (
	"context"
	"fmt"
	"time"
)

// ServerStatus is the value of the OCI_ATTR_SERVER_STATUS attribute of the
// connection's server handle. Values other than the two defined here are
// passed through as the server reports them.
type ServerStatus uint32

const (
	ServerNotConnected ServerStatus = 0x0
	ServerNormal       ServerStatus = 0x1
)

func (s ServerStatus) String() string {
	switch s {
	case ServerNotConnected:
		return "not connected"
	case ServerNormal:
		return "normal"
	default:
		return fmt.Sprintf("ServerStatus(%d)", uint32(s))
	}
}

// Conn borrows a dpiConn owned by the embedding driver.
// The zero Conn is invalid; get one from Ext.Conn.
type Conn struct {
	x       *Ext
	dpiConn *C.dpiConn
}

// ServerStatus reports the status of the server the connection is attached
// to. The connection must be connected; a closed or never-connected dpiConn
// fails with DPI-1010 before any attribute is read.
func (c Conn) ServerStatus(ctx context.Context) (ServerStatus, error) {
	if c.x == nil || c.dpiConn == nil {
		return 0, fmt.Errorf("ServerStatus: %w", ErrInvalidHandle)
	}
	var status C.uint32_t
	if C.odpiext_connGetServerStatus(c.dpiConn, &status) == C.DPI_FAILURE {
		return 0, fmt.Errorf("getServerStatus: %w", c.x.getError())
	}
	if lgr := getLogger(ctx); lgr != nil {
		lgr.Debug("ServerStatus", "status", ServerStatus(status).String())
	}
	return ServerStatus(status), nil
}

// Attr addresses one attribute of the given OCI handle of the connection.
func (c Conn) Attr(handleType HandleType, attr Attr) AttrValue {
	return AttrValue{x: c.x, dpiConn: c.dpiConn,
		handleType: C.uint32_t(handleType), attr: C.uint32_t(attr)}
}

// CallTime returns the server-side time of the preceding call
// (OCI_ATTR_CALL_TIME). Enable it with SetCollectCallTime first.
func (c Conn) CallTime(ctx context.Context) (time.Duration, error) {
	usec, err := c.Attr(Session, AttrCallTime).Uint64(ctx)
	return time.Duration(usec) * time.Microsecond, err
}

// CollectCallTime reports whether the server measures call times
// (OCI_ATTR_COLLECT_CALL_TIME).
func (c Conn) CollectCallTime(ctx context.Context) (bool, error) {
	return c.Attr(Session, AttrCollectCallTime).Bool(ctx)
}

// SetCollectCallTime makes the server measure the elapsed time
// of each subsequent call, readable with CallTime.
func (c Conn) SetCollectCallTime(ctx context.Context, enable bool) error {
	return c.Attr(Session, AttrCollectCallTime).SetBool(ctx, enable)
}

// DefaultLobPrefetchSize returns the session's default prefetch buffer size
// for LOB locators (OCI_ATTR_DEFAULT_LOBPREFETCH_SIZE).
func (c Conn) DefaultLobPrefetchSize(ctx context.Context) (uint32, error) {
	return c.Attr(Session, AttrDefaultLobPrefetchSize).Uint32(ctx)
}

// SetDefaultLobPrefetchSize sets the session's default prefetch buffer size
// for LOB locators.
func (c Conn) SetDefaultLobPrefetchSize(ctx context.Context, size uint32) error {
	return c.Attr(Session, AttrDefaultLobPrefetchSize).SetUint32(ctx, size)
}

// MaxOpenCursors returns the maximum number of statements that can be open
// in the session (OCI_ATTR_MAX_OPEN_CURSORS). Needs a 12.1 or later server
// for a proper value.
func (c Conn) MaxOpenCursors(ctx context.Context) (uint32, error) {
	return c.Attr(Session, AttrMaxOpenCursors).Uint32(ctx)
}

// TransactionInProgress reports whether the connection has an active
// transaction (OCI_ATTR_TRANSACTION_IN_PROGRESS). Needs Oracle client 12.1
// or later.
func (c Conn) TransactionInProgress(ctx context.Context) (bool, error) {
	return c.Attr(Session, AttrTransactionInProgress).Bool(ctx)
}

// StmtCacheSize returns the size of the statement cache of the service
// context (OCI_ATTR_STMTCACHESIZE).
func (c Conn) StmtCacheSize(ctx context.Context) (uint32, error) {
	return c.Attr(SvcCtx, AttrStmtCacheSize).Uint32(ctx)
}

// SetStmtCacheSize sets the size of the statement cache.
func (c Conn) SetStmtCacheSize(ctx context.Context, size uint32) error {
	return c.Attr(SvcCtx, AttrStmtCacheSize).SetUint32(ctx, size)
}

// InternalName returns the server handle's internal name
// (OCI_ATTR_INTERNAL_NAME), used for distributed transaction naming.
func (c Conn) InternalName(ctx context.Context) (string, error) {
	return c.Attr(Server, AttrInternalName).Text(ctx)
}

// SetInternalName sets the server handle's internal name.
func (c Conn) SetInternalName(ctx context.Context, name string) error {
	return c.Attr(Server, AttrInternalName).SetText(ctx, name)
}

// SetModule sets the module name of the session (OCI_ATTR_MODULE), as seen
// in SYS_CONTEXT('USERENV', 'MODULE'). Write-only: the next round trip
// piggybacks the value, there is no OCI read for it.
func (c Conn) SetModule(ctx context.Context, module string) error {
	return c.Attr(Session, AttrModule).SetText(ctx, module)
}

// MaxStringSize is the value of the MAX_STRING_SIZE init.ora parameter the
// service context reports (OCI_ATTR_VARTYPE_MAXLEN_COMPAT).
type MaxStringSize uint8

const (
	// MaxStringSizeStandard allows at most 4000 bytes for VARCHAR2 and
	// NVARCHAR, 2000 bytes for RAW.
	MaxStringSizeStandard MaxStringSize = 1
	// MaxStringSizeExtended allows at most 32767 bytes for VARCHAR2,
	// NVARCHAR and RAW.
	MaxStringSizeExtended MaxStringSize = 2
)

func (m MaxStringSize) String() string {
	switch m {
	case MaxStringSizeStandard:
		return "standard"
	case MaxStringSizeExtended:
		return "extended"
	default:
		return fmt.Sprintf("MaxStringSize(%d)", uint8(m))
	}
}

// MaxStringSize returns the MAX_STRING_SIZE compatibility setting of the
// database the connection is attached to.
func (c Conn) MaxStringSize(ctx context.Context) (MaxStringSize, error) {
	v, err := c.Attr(SvcCtx, AttrVarTypeMaxLenCompat).Uint8(ctx)
	if err != nil {
		return 0, err
	}
	m := MaxStringSize(v)
	if m != MaxStringSizeStandard && m != MaxStringSizeExtended {
		return m, fmt.Errorf("invalid MaxStringSize %d", v)
	}
	return m, nil
}
