// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import "github.com/decred/slog"

// log is the package-level logger used to report filter construction
// diagnostics. By default it is disabled; callers that want logging should
// call UseLogger to set an active backend.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}
