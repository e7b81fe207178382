/*
 * atom.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package autode

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Atom contains the per-atom information except for the coordinates,
//which live in the Nx3 matrix of the owning Species.
type Atom struct {
	Symbol string
	Mass   float64
}

//NewAtom returns an Atom for the element with the given symbol, with its
//mass filled in when the element is tabulated.
func NewAtom(symbol string) *Atom {
	at := &Atom{Symbol: symbol}
	at.Mass, _ = MassOf(symbol)
	return at
}

//Copy returns a copy of the Atom.
func (a *Atom) Copy() *Atom {
	if a == nil {
		panic("autode: attempted to copy a nil atom")
	}
	na := *a
	return &na
}

//Species is a named molecule: a set of atoms with Cartesian coordinates,
//a total charge and a spin multiplicity.
type Species struct {
	name   string
	charge int
	mult   int
	atoms  []*Atom
	coords *mat.Dense //one row per atom
}

//NewSpecies builds a Species from atoms and an Nx3 coordinate matrix.
//It returns an error if either is nil, if the matrix shape does not match
//the number of atoms, or if the multiplicity is not positive.
func NewSpecies(name string, charge, mult int, atoms []*Atom, coords *mat.Dense) (*Species, error) {
	if atoms == nil {
		return nil, NewError("NewSpecies", "supplied a nil atom slice")
	}
	if coords == nil {
		return nil, NewError("NewSpecies", "supplied a nil coordinate matrix")
	}
	r, c := coords.Dims()
	if c != 3 || r != len(atoms) {
		return nil, NewError("NewSpecies", fmt.Sprintf("malformed coordinates: %d atoms but a %dx%d matrix", len(atoms), r, c))
	}
	if mult < 1 {
		return nil, NewError("NewSpecies", fmt.Sprintf("spin multiplicity must be positive, had %d", mult))
	}
	return &Species{name: name, charge: charge, mult: mult, atoms: atoms, coords: coords}, nil
}

//Name returns the name of the species.
func (s *Species) Name() string { return s.name }

//Charge gets the total charge of the species.
func (s *Species) Charge() int { return s.charge }

//Mult gets the spin multiplicity of the species.
func (s *Species) Mult() int { return s.mult }

//SetCharge sets the total charge of the species to i.
func (s *Species) SetCharge(i int) { s.charge = i }

//SetMult sets the spin multiplicity of the species to i.
//Panics on non-positive values.
func (s *Species) SetMult(i int) {
	if i < 1 {
		panic("autode: spin multiplicity must be positive")
	}
	s.mult = i
}

//Len returns the number of atoms in the species.
func (s *Species) Len() int { return len(s.atoms) }

//Atom returns the Atom corresponding to the index i. Panics if out of
//range.
func (s *Species) Atom(i int) *Atom {
	if i < 0 || i >= s.Len() {
		panic("autode: requested atom out of bounds")
	}
	return s.atoms[i]
}

//Coords returns the coordinate matrix of the species. The matrix is
//shared with the species, not copied.
func (s *Species) Coords() *mat.Dense { return s.coords }

//Coord returns a copy of the position of the atom i. Panics if out of
//range.
func (s *Species) Coord(i int) []float64 {
	if i < 0 || i >= s.Len() {
		panic("autode: requested coordinate out of bounds")
	}
	return mat.Row(nil, i, s.coords)
}

//Masses returns a slice with the masses of all atoms, or an error if
//any of them is not known.
func (s *Species) Masses() ([]float64, error) {
	masses := make([]float64, s.Len())
	for i, at := range s.atoms {
		if at.Mass == 0 {
			return nil, NewError("Masses", fmt.Sprintf("no mass for atom %d (%s)", i, at.Symbol))
		}
		masses[i] = at.Mass
	}
	return masses, nil
}

//Copy returns a deep copy of the species.
func (s *Species) Copy() *Species {
	atoms := make([]*Atom, s.Len())
	for i, at := range s.atoms {
		atoms[i] = at.Copy()
	}
	coords := mat.DenseCopyOf(s.coords)
	return &Species{name: s.name, charge: s.charge, mult: s.mult, atoms: atoms, coords: coords}
}
