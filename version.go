// Copyright 2026 The Godror Authors
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package odpiext

//go:generate bash -c "echo master>odpi-version; echo master>odpi-vversion; set -x; curl -L https://github.com/oracle/odpi/archive/$(cat odpi-vversion).tar.gz | tar xzvf - odpi-$(cat odpi-version)/{embed,include,src,CONTRIBUTING.md,LICENSE.md,README.md} && rm -rf odpi && mv odpi-$(cat odpi-version) odpi; rm -f odpi-{,v}version"

// Version of this extension.
const Version = "v0.1.0"
