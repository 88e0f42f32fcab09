// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is given no services to
// route to. This is a wiring bug and fails the application at startup.
var errNoServices = errors.New("no services are provided for handlers")
