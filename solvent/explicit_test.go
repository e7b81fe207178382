/*
 * explicit_test.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	autode "github.com/danielhollas/autodE"
	"github.com/danielhollas/autodE/solvent"
)

func argonSolute(t *testing.T) *autode.Species {
	t.Helper()
	s, err := autode.NewSpecies("argon", 0, 1,
		[]*autode.Atom{autode.NewAtom("Ar")},
		mat.NewDense(1, 3, []float64{0, 0, 0}))
	require.NoError(t, err)
	return s
}

func waterShell(t *testing.T, num int) *solvent.ExplicitSolvent {
	t.Helper()
	res, err := solvent.Get("water", "explicit", num)
	require.NoError(t, err)
	return res.(*solvent.ExplicitSolvent)
}

func TestAssembleWithoutSolute(t *testing.T) {
	t.Parallel()

	exp := waterShell(t, 4)
	cluster, err := exp.Assemble(7)
	require.NoError(t, err)
	assert.Equal(t, 12, cluster.Len())
	assert.Equal(t, 0, cluster.Charge())
	assert.Equal(t, 1, cluster.Mult())
	assert.Equal(t, "water_x4", cluster.Name())

	dists := exp.ShellDistances()
	require.Len(t, dists, 4)
	//the first molecule seeds the cluster at the origin
	assert.InDelta(t, 0, dists[0], 1e-9)
}

func TestAssembleWithSolute(t *testing.T) {
	t.Parallel()

	solute := argonSolute(t)
	solute.SetCharge(1)
	solute.SetMult(2)

	exp := waterShell(t, 5).WithSolute(solute)
	require.Same(t, solute, exp.Solute())

	cluster, err := exp.Assemble(11)
	require.NoError(t, err)
	//1 solute atom + 5 * 3 water atoms
	assert.Equal(t, 16, cluster.Len())
	//charge and multiplicity come from the solute
	assert.Equal(t, 1, cluster.Charge())
	assert.Equal(t, 2, cluster.Mult())
	assert.Equal(t, "argon_in_water", cluster.Name())

	for _, d := range exp.ShellDistances() {
		assert.Greater(t, d, 1.0)
	}
}

//No two placed molecules may come closer than the clash cutoff.
func TestAssembleAvoidsClashes(t *testing.T) {
	t.Parallel()

	exp := waterShell(t, 8).WithSolute(argonSolute(t))
	cluster, err := exp.Assemble(3)
	require.NoError(t, err)

	mols := make([]*mat.Dense, 0, 9)
	coords := cluster.Coords()
	mols = append(mols, mat.DenseCopyOf(coords.Slice(0, 1, 0, 3)))
	for i := 0; i < 8; i++ {
		start := 1 + i*3
		mols = append(mols, mat.DenseCopyOf(coords.Slice(start, start+3, 0, 3)))
	}
	for i := range mols {
		for j := i + 1; j < len(mols); j++ {
			assert.GreaterOrEqual(t, autode.ShortestDist(mols[i], mols[j]), 2.0,
				"molecules %d and %d clash", i, j)
		}
	}
}

func TestAssembleIsDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	a, err := waterShell(t, 6).Assemble(42)
	require.NoError(t, err)
	b, err := waterShell(t, 6).Assemble(42)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a.Coords(), b.Coords()))
}

//Conversion must not mutate the solvent molecule held by the assembly.
func TestAssembleLeavesSolventIntact(t *testing.T) {
	t.Parallel()

	exp := waterShell(t, 3)
	before := mat.DenseCopyOf(exp.Solvent().Coords())
	_, err := exp.Assemble(1)
	require.NoError(t, err)
	assert.True(t, mat.Equal(before, exp.Solvent().Coords()))
}

func TestExplicitSolventString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "water (x5)", waterShell(t, 5).String())
}

func TestShellDistancesBeforeAssemble(t *testing.T) {
	t.Parallel()

	assert.Nil(t, waterShell(t, 2).ShellDistances())
}

//A registry can be given a replacement structure store, e.g. a user
//library of geometries for solvents the packaged one lacks.
func TestCustomStructureStore(t *testing.T) {
	t.Parallel()

	lib := fstest.MapFS{
		"pyridine.xyz": &fstest.MapFile{Data: []byte(
			"1\npyridine placeholder\nN  0.0  0.0  0.0\n")},
	}
	rec := solvent.NewImplicit("pyridine", "C1=NC=CC=C1", nil, nil)
	r := solvent.NewRegistry([]*solvent.Solvent{rec}, nil, solvent.NewFSStore(lib))

	res, err := r.Get("pyridine", "explicit", 2)
	require.NoError(t, err)
	exp := res.(*solvent.ExplicitSolvent)
	assert.Equal(t, 1, exp.Solvent().Len())
	assert.Equal(t, "pyridine", exp.Solvent().Name())
}
