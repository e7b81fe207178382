/*
 * doc.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

//Package autode provides the molecular structures and coordinate facilities
//needed by the solvent subpackage: atoms, species (a named molecule with a
//charge, a spin multiplicity and a set of Cartesian coordinates), XYZ file
//reading and writing, and a few geometric manipulations used when building
//explicit solvation shells.
//
//Coordinates are stored as Nx3 gonum matrices, one row per atom, in
//Angstroms. Within the package a "vector" is a row of such a matrix, i.e.
//the position of one atom in 3D space.
package autode
