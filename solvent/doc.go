/*
 * doc.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

//Package solvent resolves free-text solvent names into canonical solvent
//records and, on request, converts an implicitly-modeled solvent into an
//explicit one (a number of discrete solvent molecules).
//
//The package ships a registry of known solvents and a separate table of
//dielectric constants, both built once per process from embedded data and
//never mutated, so they are safe for concurrent readers. Electronic
//structure packages do not agree on solvent naming, so each record carries
//the spelling used by each package (ORCA, Gaussian, NWChem, xtb, MOPAC,
//QChem) together with a list of case-insensitive aliases, e.g. "water" and
//"h2o".
//
//The usual entry point is Get:
//
//	solv, err := solvent.Get("DCM", "implicit")
//
//or, for an explicit solvent with five molecules:
//
//	solv, err := solvent.Get("water", "explicit", 5)
package solvent
