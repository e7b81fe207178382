/*
 * explicit.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	autode "github.com/danielhollas/autodE"
)

//ExplicitSolvent is the result of converting an implicit solvent: one
//neutral, closed-shell solvent molecule, the number of copies to place,
//and the aliases inherited from the originating record. The solute is not
//set by the conversion; attaching it is the caller's responsibility.
type ExplicitSolvent struct {
	mol     *autode.Species
	num     int
	solute  *autode.Species
	aliases []string
	shells  []float64
}

//toExplicit converts the implicit record s into an explicit solvent with
//num molecules, loading the packaged geometry for the canonical name.
func (r *Registry) toExplicit(s *Solvent, num int) (*ExplicitSolvent, error) {
	if num <= 0 {
		return nil, &ArgumentError{
			Message: fmt.Sprintf("number of explicit solvent molecules must be positive, had %d", num),
			deco:    []string{"toExplicit"},
		}
	}
	mol, err := r.store.Load(strings.ToLower(s.Name))
	if err != nil {
		if err, ok := err.(autode.Error); ok {
			err.Decorate(fmt.Sprintf("toExplicit: %s", s.Name))
		}
		return nil, err
	}
	//Explicit solvent molecules are always neutral singlets.
	mol.SetCharge(0)
	mol.SetMult(1)
	return &ExplicitSolvent{mol: mol, num: num, aliases: s.Aliases()}, nil
}

//Kind returns Explicit.
func (e *ExplicitSolvent) Kind() Kind { return Explicit }

//Aliases returns a copy of the aliases inherited from the originating
//implicit record.
func (e *ExplicitSolvent) Aliases() []string {
	out := make([]string, len(e.aliases))
	copy(out, e.aliases)
	return out
}

//Num returns the number of solvent molecules to place.
func (e *ExplicitSolvent) Num() int { return e.num }

//Solvent returns the single solvent molecule.
func (e *ExplicitSolvent) Solvent() *autode.Species { return e.mol }

//Solute returns the solute, or nil if none has been attached.
func (e *ExplicitSolvent) Solute() *autode.Species { return e.solute }

//WithSolute attaches the solute to be solvated and returns the receiver.
func (e *ExplicitSolvent) WithSolute(s *autode.Species) *ExplicitSolvent {
	e.solute = s
	return e
}

func (e *ExplicitSolvent) String() string {
	return fmt.Sprintf("%s (x%d)", e.aliases[0], e.num)
}

func (e *ExplicitSolvent) sealed() {}

//The closest two placed molecules are allowed to approach, in Angstroms.
//Roughly two carbon van der Waals radii minus some tolerance for
//hydrogen-bonded contacts.
const clashCutoff = 2.0

//Assemble places Num randomly oriented copies of the solvent molecule
//around the solute, if one is attached, or around the first copy
//otherwise, and returns the resulting cluster as a single species carrying
//the solute's charge and multiplicity (or 0/1 without a solute).
//Placements are drawn on a sphere whose radius grows whenever a
//non-clashing position cannot be found. An optional seed makes the
//packing deterministic.
func (e *ExplicitSolvent) Assemble(seed ...int64) (*autode.Species, error) {
	src := time.Now().UnixNano()
	if len(seed) > 0 {
		src = seed[0]
	}
	rng := rand.New(rand.NewSource(src))

	solvCoords := mat.DenseCopyOf(e.mol.Coords())
	center(solvCoords)
	rsolv := autode.MaxRadius(solvCoords)

	var atoms []*autode.Atom
	var data []float64
	charge, mult := 0, 1
	e.shells = make([]float64, 0, e.num)

	core := rsolv
	var placed []*mat.Dense
	if e.solute != nil {
		solute := e.solute.Copy()
		soluteCoords := mat.DenseCopyOf(solute.Coords())
		center(soluteCoords)
		placed = append(placed, soluteCoords)
		atoms, data = appendMol(atoms, data, solute, soluteCoords)
		charge, mult = solute.Charge(), solute.Mult()
		core = autode.MaxRadius(soluteCoords)
	}
	radius := core + rsolv + clashCutoff + 0.5

	left := e.num
	for left > 0 {
		var cand *mat.Dense
		found := false
		for try := 0; try < 50; try++ {
			cand = mat.DenseCopyOf(solvCoords)
			autode.Rotate(cand, autode.RandomRotation(rng))
			var dist float64
			if len(placed) > 0 {
				dist = radius
			}
			autode.Translate(cand, randomDirection(rng, dist))
			if clashes(cand, placed) {
				continue
			}
			found = true
			break
		}
		if !found {
			//Sphere is packed full at this radius, move one shell out.
			radius += rsolv + 0.5
			continue
		}
		placed = append(placed, cand)
		atoms, data = appendMol(atoms, data, e.mol, cand)
		e.shells = append(e.shells, norm3(autode.Centroid(cand)))
		left--
	}

	name := fmt.Sprintf("%s_x%d", e.aliases[0], e.num)
	if e.solute != nil {
		name = fmt.Sprintf("%s_in_%s", e.solute.Name(), e.aliases[0])
	}
	return autode.NewSpecies(name, charge, mult, atoms, mat.NewDense(len(atoms), 3, data))
}

//ShellDistances returns, for the last Assemble call, the distance of each
//placed solvent molecule's centroid from the cluster origin, in placement
//order. It returns nil if Assemble has not been called.
func (e *ExplicitSolvent) ShellDistances() []float64 {
	if e.shells == nil {
		return nil
	}
	out := make([]float64, len(e.shells))
	copy(out, e.shells)
	return out
}

func clashes(cand *mat.Dense, placed []*mat.Dense) bool {
	for _, p := range placed {
		if autode.ShortestDist(cand, p) < clashCutoff {
			return true
		}
	}
	return false
}

//center translates m so its centroid sits at the origin.
func center(m *mat.Dense) {
	c := autode.Centroid(m)
	autode.Translate(m, []float64{-c[0], -c[1], -c[2]})
}

//randomDirection returns a uniformly random point on the sphere with the
//given radius.
func randomDirection(rng *rand.Rand, radius float64) []float64 {
	for {
		x, y, z := 2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1
		n := norm3([]float64{x, y, z})
		if n < 1e-6 || n > 1 {
			continue
		}
		return []float64{x / n * radius, y / n * radius, z / n * radius}
	}
}

func norm3(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func appendMol(atoms []*autode.Atom, data []float64, mol *autode.Species, coords *mat.Dense) ([]*autode.Atom, []float64) {
	for i := 0; i < mol.Len(); i++ {
		atoms = append(atoms, mol.Atom(i).Copy())
		data = append(data, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
	}
	return atoms, data
}
