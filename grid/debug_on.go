// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build pffdtd_debug

package grid

const debugBounds = true
