// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !pffdtd_debug

package grid

// debugBounds is compiled out of release builds; build with -tags
// pffdtd_debug to turn on (i,j,k) bounds checking in the accessors.
const debugBounds = false
