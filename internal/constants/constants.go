// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constants holds the physical constants shared by the Maxwell,
// source and plasma kernels.
package constants

// Electromagnetic constants (SI units), taken from the legacy
// utils/constants.h header.
const (
	MU0    = 1.25663706143591729538505735331180115367886775e-6
	Eps0   = 8.85418781762038985053656303171075026060837e-12
	LightC = 2.998e8
)

// Particle/thermal constants used by the plasma fluid updater.
const (
	MassElectron   = 9.1066e-31   // kg
	ChargeElectron = -1.6021917e-19 // C
	AMU            = 1.6605e-27   // kg -> amu conversion
	Boltzmann      = 1.380622e-23 // J/K
)

// DefaultSpeciesCount is NS in the legacy sources: electrons plus two ion
// species by default.
const DefaultSpeciesCount = 3

// ExitCode values mirror spec.md §6.1 / §7.
const (
	ExitOK               = 0
	ExitFileOpen         = 1
	ExitAllocFail        = 2
	ExitScenarioFormat   = 3
	ExitSignalSetupFail  = 4
)
