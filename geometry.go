/*
 * geometry.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package autode

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

//Centroid returns the geometric center of the Nx3 coordinate matrix m.
func Centroid(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	c := make([]float64, 3)
	for i := 0; i < r; i++ {
		c[0] += m.At(i, 0)
		c[1] += m.At(i, 1)
		c[2] += m.At(i, 2)
	}
	fr := float64(r)
	c[0], c[1], c[2] = c[0]/fr, c[1]/fr, c[2]/fr
	return c
}

//CenterOfMass returns the mass-weighted center of the Nx3 coordinate
//matrix m. It returns an error if the number of masses does not match the
//number of rows.
func CenterOfMass(m *mat.Dense, masses []float64) ([]float64, error) {
	r, _ := m.Dims()
	if len(masses) != r {
		return nil, NewError("CenterOfMass", "mismatched masses and coordinates")
	}
	c := make([]float64, 3)
	var total float64
	for i := 0; i < r; i++ {
		c[0] += m.At(i, 0) * masses[i]
		c[1] += m.At(i, 1) * masses[i]
		c[2] += m.At(i, 2) * masses[i]
		total += masses[i]
	}
	if total == 0 {
		return nil, NewError("CenterOfMass", "zero total mass")
	}
	c[0], c[1], c[2] = c[0]/total, c[1]/total, c[2]/total
	return c, nil
}

//Translate displaces every row of m by delta, in place.
func Translate(m *mat.Dense, delta []float64) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		m.Set(i, 0, m.At(i, 0)+delta[0])
		m.Set(i, 1, m.At(i, 1)+delta[1])
		m.Set(i, 2, m.At(i, 2)+delta[2])
	}
}

//Rotate applies the 3x3 rotation rot to every row of m, in place:
//each row v becomes v*rotT.
func Rotate(m, rot *mat.Dense) {
	var out mat.Dense
	out.Mul(m, rot.T())
	m.Copy(&out)
}

//RandomRotation returns a uniformly distributed random 3x3 rotation
//matrix, built from a random unit quaternion (Shoemake's method).
func RandomRotation(rng *rand.Rand) *mat.Dense {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	s1 := math.Sqrt(1 - u1)
	s2 := math.Sqrt(u1)
	w := s1 * math.Sin(2*math.Pi*u2)
	x := s1 * math.Cos(2*math.Pi*u2)
	y := s2 * math.Sin(2*math.Pi*u3)
	z := s2 * math.Cos(2*math.Pi*u3)
	return mat.NewDense(3, 3, []float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	})
}

//MaxRadius returns the largest distance between any row of m and the
//centroid of m.
func MaxRadius(m *mat.Dense) float64 {
	c := Centroid(m)
	r, _ := m.Dims()
	var max float64
	for i := 0; i < r; i++ {
		d := dist3(m.At(i, 0)-c[0], m.At(i, 1)-c[1], m.At(i, 2)-c[2])
		if d > max {
			max = d
		}
	}
	return max
}

//ShortestDist returns the shortest distance between any row of test and
//any row of ref. This is probably not a very efficient way to do it.
func ShortestDist(test, ref *mat.Dense) float64 {
	tr, _ := test.Dims()
	rr, _ := ref.Dims()
	closest := math.Inf(1)
	for i := 0; i < tr; i++ {
		for j := 0; j < rr; j++ {
			d := dist3(test.At(i, 0)-ref.At(j, 0), test.At(i, 1)-ref.At(j, 1), test.At(i, 2)-ref.At(j, 2))
			if d < closest {
				closest = d
			}
		}
	}
	return closest
}

func dist3(dx, dy, dz float64) float64 {
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
