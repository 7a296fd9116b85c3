// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package dpitest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParams(t *testing.T) {
	for _, tc := range []struct {
		name, in string
		want     Params
		wantErr  bool
	}{
		{name: "full",
			in:   "user=demo password=demo connectString=localhost:1521/freepdb1",
			want: Params{Username: "demo", Password: "demo", ConnectString: "localhost:1521/freepdb1"}},
		{name: "quoted",
			in:   `user=scott password="tiger beer" connectString="dbhost:1521/orclpdb1?connect_timeout=5"`,
			want: Params{Username: "scott", Password: "tiger beer", ConnectString: "dbhost:1521/orclpdb1?connect_timeout=5"}},
		{name: "altKeys",
			in:   "username=demo connectstring=localhost/xe",
			want: Params{Username: "demo", ConnectString: "localhost/xe"}},
		{name: "unknownKey", in: "user=demo dsn=x", wantErr: true},
		{name: "missingUser", in: "connectString=localhost/xe", wantErr: true},
		{name: "missingConnectString", in: "user=demo", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	} {
		got, err := ParseParams(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: got %+v, want error", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %+v", tc.name, err)
			continue
		}
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("%s: %s", tc.name, d)
		}
	}
}
