/*
 * xyz_test.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package autode

import (
	"math"
	"path/filepath"
	"testing"
)

//TestXYZIO tests that XYZ files are read and written back correctly.
func TestXYZIO(Te *testing.T) {
	mol, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 6 {
		Te.Errorf("Expected 6 atoms, got %d", mol.Len())
	}
	if mol.Name() != "sample" {
		Te.Errorf("Expected species name sample, got %s", mol.Name())
	}
	if mol.Charge() != 0 || mol.Mult() != 1 {
		Te.Errorf("Expected a neutral singlet, got charge %d mult %d", mol.Charge(), mol.Mult())
	}
	if mol.Atom(0).Symbol != "O" || mol.Atom(5).Symbol != "H" {
		Te.Errorf("Wrong atom symbols read: %s %s", mol.Atom(0).Symbol, mol.Atom(5).Symbol)
	}
	c := mol.Coord(3)
	if math.Abs(c[0]-1.35063) > 1e-6 {
		Te.Errorf("Wrong coordinate read for atom 3: %v", c)
	}
	outname := filepath.Join(Te.TempDir(), "sampleFirst.xyz")
	if err := XYZWrite(outname, mol); err != nil {
		Te.Fatal(err)
	}
	mol2, err := XYZRead(outname)
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() {
		Te.Errorf("Round trip changed the number of atoms: %d vs %d", mol2.Len(), mol.Len())
	}
	for i := 0; i < mol.Len(); i++ {
		a, b := mol.Coord(i), mol2.Coord(i)
		for j := 0; j < 3; j++ {
			if math.Abs(a[j]-b[j]) > 1e-4 {
				Te.Errorf("Round trip changed coordinates of atom %d: %v vs %v", i, a, b)
			}
		}
	}
}

//TestXYZGzip tests that gzip-compressed XYZ files read the same as the
//plain ones.
func TestXYZGzip(Te *testing.T) {
	plain, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	zipped, err := XYZRead("test/sample.xyz.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if zipped.Name() != "sample" {
		Te.Errorf("Expected species name sample, got %s", zipped.Name())
	}
	if plain.Len() != zipped.Len() {
		Te.Fatalf("Different number of atoms: %d vs %d", plain.Len(), zipped.Len())
	}
	for i := 0; i < plain.Len(); i++ {
		a, b := plain.Coord(i), zipped.Coord(i)
		if a[0] != b[0] || a[1] != b[1] || a[2] != b[2] {
			Te.Errorf("Different coordinates for atom %d: %v vs %v", i, a, b)
		}
	}
}

func TestXYZReadErrors(Te *testing.T) {
	if _, err := XYZRead("test/does-not-exist.xyz"); err == nil {
		Te.Error("Expected an error for a missing file")
	}
}
