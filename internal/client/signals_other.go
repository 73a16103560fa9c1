// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !unix

package client

import "os"

var resumeSignals []os.Signal
