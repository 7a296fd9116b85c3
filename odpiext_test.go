// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package odpiext

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logfmt/logfmt"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slog"
)

func TestNewInvalidContext(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("New(nil): got %v, want ErrInvalidHandle", err)
	}
}

func TestBorrowInvalidHandles(t *testing.T) {
	var nilExt *Ext
	if _, err := nilExt.Conn(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("nil Ext.Conn: got %v, want ErrInvalidHandle", err)
	}
	if _, err := nilExt.Stmt(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("nil Ext.Stmt: got %v, want ErrInvalidHandle", err)
	}
	x := &Ext{}
	if _, err := x.Conn(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Conn(nil): got %v, want ErrInvalidHandle", err)
	}
	if _, err := x.Stmt(nil); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Stmt(nil): got %v, want ErrInvalidHandle", err)
	}
}

// A zero Conn/Stmt/AttrValue must fail before any native call, leaving the
// output untouched.
func TestZeroValuesRejected(t *testing.T) {
	ctx := context.Background()
	if _, err := (Conn{}).ServerStatus(ctx); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("zero Conn.ServerStatus: got %v, want ErrInvalidHandle", err)
	}
	if _, err := (Stmt{}).FunctionCode(ctx); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("zero Stmt.FunctionCode: got %v, want ErrInvalidHandle", err)
	}
	if _, err := (AttrValue{}).Uint32(ctx); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("zero AttrValue.Uint32: got %v, want ErrInvalidHandle", err)
	}
	if err := (AttrValue{}).SetText(ctx, "x"); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("zero AttrValue.SetText: got %v, want ErrInvalidHandle", err)
	}
	if _, err := (Conn{}).CallTime(ctx); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("zero Conn.CallTime: got %v, want ErrInvalidHandle", err)
	}
	if _, err := (Stmt{}).Text(ctx); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("zero Stmt.Text: got %v, want ErrInvalidHandle", err)
	}
}

func TestOraErr(t *testing.T) {
	for _, tc := range []struct {
		name string
		oe   OraErr
		want string
	}{
		{name: "empty", oe: OraErr{}, want: ""},
		{name: "prefixed",
			oe:   OraErr{code: 1017, message: "ORA-01017: invalid username/password; logon denied"},
			want: "ORA-01017: invalid username/password; logon denied"},
		{name: "bare",
			oe:   OraErr{code: 24315, message: "illegal attribute type"},
			want: "ORA-24315: illegal attribute type"},
	} {
		if got := tc.oe.Error(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
	oe := &OraErr{code: 28, message: "your session has been killed"}
	var err error = oe
	var cd interface{ Code() int }
	if !errors.As(err, &cd) || cd.Code() != 28 {
		t.Errorf("Code: got %v", cd)
	}
}

func TestFunctionCodeString(t *testing.T) {
	got := map[FunctionCode]string{}
	for _, fc := range []FunctionCode{
		FnCodeInsert, FnCodeSelect, FnCodeUpdate, FnCodeDelete,
		FnCodePLSQLExecute, FnCodeCreateTable, FnCodeDropTable,
		FnCodeCommit, FnCodeRollback, FunctionCode(999),
	} {
		got[fc] = fc.String()
	}
	want := map[FunctionCode]string{
		FnCodeInsert:       "INSERT",
		FnCodeSelect:       "SELECT",
		FnCodeUpdate:       "UPDATE",
		FnCodeDelete:       "DELETE",
		FnCodePLSQLExecute: "PL/SQL EXECUTE",
		FnCodeCreateTable:  "CREATE TABLE",
		FnCodeDropTable:    "DROP TABLE",
		FnCodeCommit:       "COMMIT",
		FnCodeRollback:     "ROLLBACK",
		FunctionCode(999):  "FunctionCode(999)",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestServerStatusString(t *testing.T) {
	for _, tc := range []struct {
		st   ServerStatus
		want string
	}{
		{ServerNotConnected, "not connected"},
		{ServerNormal, "normal"},
		{ServerStatus(7), "ServerStatus(7)"},
	} {
		if got := tc.st.String(); got != tc.want {
			t.Errorf("%d: got %q, want %q", uint32(tc.st), got, tc.want)
		}
	}
}

func TestMaxStringSizeString(t *testing.T) {
	for _, tc := range []struct {
		m    MaxStringSize
		want string
	}{
		{MaxStringSizeStandard, "standard"},
		{MaxStringSizeExtended, "extended"},
		{MaxStringSize(9), "MaxStringSize(9)"},
	} {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%d: got %q, want %q", uint8(tc.m), got, tc.want)
		}
	}
}

func TestHandleTypeString(t *testing.T) {
	for _, tc := range []struct {
		ht   HandleType
		want string
	}{
		{SvcCtx, "svcctx"}, {Server, "server"}, {Session, "session"},
	} {
		if got := tc.ht.String(); got != tc.want {
			t.Errorf("%d: got %q, want %q", uint32(tc.ht), got, tc.want)
		}
	}
}

func TestContextWithLogger(t *testing.T) {
	if lgr := getLogger(context.Background()); lgr != nil {
		t.Errorf("got %v, want nil logger", lgr)
	}
	want := slog.New(NewLogfmtHandler(&bytes.Buffer{}, nil))
	ctx := ContextWithLogger(context.Background(), want)
	if got := getLogger(ctx); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLogfmtHandler(t *testing.T) {
	var buf bytes.Buffer
	lgr := slog.New(NewLogfmtHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lgr = lgr.With("attr", uint32(143))
	lgr.Debug("attrGet", "handleType", "server", "length", 4)

	got := map[string]string{}
	d := logfmt.NewDecoder(strings.NewReader(buf.String()))
	for d.ScanRecord() {
		for d.ScanKeyval() {
			got[string(d.Key())] = string(d.Value())
		}
	}
	if err := d.Err(); err != nil {
		t.Fatal(err)
	}
	delete(got, "time")
	want := map[string]string{
		"level":      "DEBUG",
		"msg":        "attrGet",
		"attr":       "143",
		"handleType": "server",
		"length":     "4",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	buf.Reset()
	quiet := slog.New(NewLogfmtHandler(&buf, nil))
	quiet.Debug("dropped")
	if buf.Len() != 0 {
		t.Errorf("debug record written by info-level handler: %q", buf.String())
	}
}
