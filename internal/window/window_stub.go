// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !cgo

package window

import "github.com/gogpu/mandelview/surface"

// Without cgo the backend is registered as unavailable, so priority
// selection skips it and picks a non-interactive surface instead.
func init() {
	surface.Register(BackendName, 100, func(surface.Options) (surface.Surface, error) {
		return nil, ErrUnsupported
	}, func() bool { return false })
}
