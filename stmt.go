// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package odpiext

/*
#include "dpiImpl.h"

int odpiext_stmtGetFnCode(dpiStmt *stmt, uint16_t *fnCode);
*/
import "C"

import (
	"context"
	"fmt"
)

// FunctionCode is the OCI SQL command code (OCI_ATTR_SQLFNCODE) of an
// executed statement, identifying the kind of SQL command it ran.
type FunctionCode uint16

const (
	FnCodeCreateTable    FunctionCode = 1
	FnCodeSetRole        FunctionCode = 2
	FnCodeInsert         FunctionCode = 3
	FnCodeSelect         FunctionCode = 4
	FnCodeUpdate         FunctionCode = 5
	FnCodeDropRole       FunctionCode = 6
	FnCodeDropView       FunctionCode = 7
	FnCodeDropTable      FunctionCode = 8
	FnCodeDelete         FunctionCode = 9
	FnCodeCreateView     FunctionCode = 10
	FnCodeDropUser       FunctionCode = 11
	FnCodeCreateRole     FunctionCode = 12
	FnCodeCreateSequence FunctionCode = 13
	FnCodeAlterSequence  FunctionCode = 14
	FnCodeDropSequence   FunctionCode = 16
	FnCodeCreateSchema   FunctionCode = 17
	FnCodeCreateCluster  FunctionCode = 18
	FnCodeCreateUser     FunctionCode = 19
	FnCodeCreateIndex    FunctionCode = 20
	FnCodeDropIndex      FunctionCode = 21
	FnCodeDropCluster    FunctionCode = 22
	FnCodeCreateProc     FunctionCode = 24
	FnCodeAlterProc      FunctionCode = 25
	FnCodeAlterTable     FunctionCode = 26
	FnCodeExplain        FunctionCode = 27
	FnCodeGrant          FunctionCode = 28
	FnCodeRevoke         FunctionCode = 29
	FnCodeCreateSynonym  FunctionCode = 30
	FnCodeDropSynonym    FunctionCode = 31
	FnCodeSetTransaction FunctionCode = 33
	FnCodePLSQLExecute   FunctionCode = 34
	FnCodeLockTable      FunctionCode = 35
	FnCodeRename         FunctionCode = 37
	FnCodeComment        FunctionCode = 38
	FnCodeAudit          FunctionCode = 39
	FnCodeNoAudit        FunctionCode = 40
	FnCodeAlterIndex     FunctionCode = 41
	FnCodeAlterSession   FunctionCode = 52
	FnCodeAlterUser      FunctionCode = 53
	FnCodeCommit         FunctionCode = 54
	FnCodeRollback       FunctionCode = 55
	FnCodeSavepoint      FunctionCode = 56
	FnCodeCreateTrigger  FunctionCode = 59
	FnCodeAlterTrigger   FunctionCode = 60
	FnCodeDropTrigger    FunctionCode = 61
	FnCodeAnalyzeTable   FunctionCode = 62
	FnCodeDropProc       FunctionCode = 68
	FnCodeTruncateTable  FunctionCode = 85
)

var fnCodeNames = map[FunctionCode]string{
	FnCodeCreateTable:    "CREATE TABLE",
	FnCodeSetRole:        "SET ROLE",
	FnCodeInsert:         "INSERT",
	FnCodeSelect:         "SELECT",
	FnCodeUpdate:         "UPDATE",
	FnCodeDropRole:       "DROP ROLE",
	FnCodeDropView:       "DROP VIEW",
	FnCodeDropTable:      "DROP TABLE",
	FnCodeDelete:         "DELETE",
	FnCodeCreateView:     "CREATE VIEW",
	FnCodeDropUser:       "DROP USER",
	FnCodeCreateRole:     "CREATE ROLE",
	FnCodeCreateSequence: "CREATE SEQUENCE",
	FnCodeAlterSequence:  "ALTER SEQUENCE",
	FnCodeDropSequence:   "DROP SEQUENCE",
	FnCodeCreateSchema:   "CREATE SCHEMA",
	FnCodeCreateCluster:  "CREATE CLUSTER",
	FnCodeCreateUser:     "CREATE USER",
	FnCodeCreateIndex:    "CREATE INDEX",
	FnCodeDropIndex:      "DROP INDEX",
	FnCodeDropCluster:    "DROP CLUSTER",
	FnCodeCreateProc:     "CREATE PROCEDURE",
	FnCodeAlterProc:      "ALTER PROCEDURE",
	FnCodeAlterTable:     "ALTER TABLE",
	FnCodeExplain:        "EXPLAIN",
	FnCodeGrant:          "GRANT",
	FnCodeRevoke:         "REVOKE",
	FnCodeCreateSynonym:  "CREATE SYNONYM",
	FnCodeDropSynonym:    "DROP SYNONYM",
	FnCodeSetTransaction: "SET TRANSACTION",
	FnCodePLSQLExecute:   "PL/SQL EXECUTE",
	FnCodeLockTable:      "LOCK TABLE",
	FnCodeRename:         "RENAME",
	FnCodeComment:        "COMMENT",
	FnCodeAudit:          "AUDIT",
	FnCodeNoAudit:        "NOAUDIT",
	FnCodeAlterIndex:     "ALTER INDEX",
	FnCodeAlterSession:   "ALTER SESSION",
	FnCodeAlterUser:      "ALTER USER",
	FnCodeCommit:         "COMMIT",
	FnCodeRollback:       "ROLLBACK",
	FnCodeSavepoint:      "SAVEPOINT",
	FnCodeCreateTrigger:  "CREATE TRIGGER",
	FnCodeAlterTrigger:   "ALTER TRIGGER",
	FnCodeDropTrigger:    "DROP TRIGGER",
	FnCodeAnalyzeTable:   "ANALYZE TABLE",
	FnCodeDropProc:       "DROP PROCEDURE",
	FnCodeTruncateTable:  "TRUNCATE TABLE",
}

func (fc FunctionCode) String() string {
	if s, ok := fnCodeNames[fc]; ok {
		return s
	}
	return fmt.Sprintf("FunctionCode(%d)", uint16(fc))
}

// Stmt borrows a dpiStmt owned by the embedding driver.
// The zero Stmt is invalid; get one from Ext.Stmt.
type Stmt struct {
	x       *Ext
	dpiStmt *C.dpiStmt
}

// FunctionCode returns the SQL command code of the statement.
// The statement must have been executed.
func (s Stmt) FunctionCode(ctx context.Context) (FunctionCode, error) {
	if s.x == nil || s.dpiStmt == nil {
		return 0, fmt.Errorf("FunctionCode: %w", ErrInvalidHandle)
	}
	var fnCode C.uint16_t
	if C.odpiext_stmtGetFnCode(s.dpiStmt, &fnCode) == C.DPI_FAILURE {
		return 0, fmt.Errorf("getFnCode: %w", s.x.getError())
	}
	if lgr := getLogger(ctx); lgr != nil {
		lgr.Debug("FunctionCode", "code", FunctionCode(fnCode).String())
	}
	return FunctionCode(fnCode), nil
}

// Text returns the text of the prepared SQL statement (OCI_ATTR_STATEMENT).
func (s Stmt) Text(ctx context.Context) (string, error) {
	return s.Attr(AttrStatement).Text(ctx)
}

// Attr addresses one attribute of the statement's OCI handle.
func (s Stmt) Attr(attr Attr) AttrValue {
	return AttrValue{x: s.x, dpiStmt: s.dpiStmt, attr: C.uint32_t(attr)}
}
