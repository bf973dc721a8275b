// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the control plane.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, metrics, hardening headers, CORS,
// rate limiting, authentication and the admin gate are handled in this
// package before requests are delegated to the service layer. Every failure
// leaves through writeError, which renders the flat {"error": code} body.
package http
