// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package reason classifies failed request attempts into retry reasons.
//
// A Reason is the category the retry engine assigns to a transport
// error or an unfavorable HTTP response. Reasons are plain comparable
// values, so they can be used as map keys, and the retry policy uses
// them exactly that way to select per-reason overrides.
//
// The package ships the default classifiers used by the retry policy,
// FromError and FromResponse, plus the transient-error helpers they are
// built from (IsTransient, IsTimeout, HTTPStatus). All classifiers are
// total: they accept any input, never panic, and always produce a
// Reason.
package reason
