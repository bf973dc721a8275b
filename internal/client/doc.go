// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the operator command line of the control plane.
//
// Each subcommand maps to one API call through [adapter.ServerAdapter] and
// prints the decoded response as indented JSON, so the output can be piped
// into jq or stored by deployment scripts.
package client
