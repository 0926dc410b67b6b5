// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request provides the re-issuable request descriptor (Plan)
// and the per-sequence state record (Execution) used by the reissue
// retry engine.
//
// Build a Plan with NewPlan or NewPlanWithContext, or adopt an
// existing *http.Request with FromRequest. A Plan can produce an
// equivalent http.Request for every attempt the engine decides to
// make; a request that cannot be duplicated is rejected up front with
// ErrNotReusable.
package request
