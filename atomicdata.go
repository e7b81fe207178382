/*
 * atomicdata.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package autode

//A map for assigning mass to elements.
//Only the elements appearing in the packaged solvent library and in
//common organic solutes are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.904,
	"Si": 28.085,
	"B":  10.81,
	"Na": 22.990,
	"K":  39.098,
	"Ar": 39.948,
	"Kr": 83.798,
	"Xe": 131.293,
}

//A map for assigning van der Waals radii (in A) to elements.
//Values from Bondi, 1964 (DOI:10.1021/j100785a001).
var symbolVdwRad = map[string]float64{
	"H":  1.20,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"Br": 1.85,
	"I":  1.98,
	"Si": 2.10,
	"Ar": 1.88,
	"Kr": 2.02,
	"Xe": 2.16,
}

//MassOf returns the mass for the element with the given symbol,
//or false if the element is not tabulated.
func MassOf(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

//VdwRadiusOf returns the van der Waals radius for the element with the
//given symbol, or false if the element is not tabulated.
func VdwRadiusOf(symbol string) (float64, bool) {
	r, ok := symbolVdwRad[symbol]
	return r, ok
}
