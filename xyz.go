/*
 * xyz.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package autode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

//XYZRead reads the XYZ file with the given name and returns the species it
//contains, with charge 0 and multiplicity 1. Files ending in ".gz" are
//transparently decompressed. The species is named after the file, without
//directories or extensions.
func XYZRead(xyzname string) (*Species, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	var r io.Reader = xyzfile
	name := strings.TrimSuffix(filepath.Base(xyzname), ".gz")
	if strings.HasSuffix(xyzname, ".gz") {
		gz, err := gzip.NewReader(xyzfile)
		if err != nil {
			return nil, NewError("XYZRead", fmt.Sprintf("%s: %s", xyzname, err.Error()))
		}
		defer gz.Close()
		r = gz
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	mol, err := XYZReadFrom(r, name)
	if err != nil {
		if err, ok := err.(Error); ok {
			err.Decorate(fmt.Sprintf("XYZRead: %s", xyzname))
		}
		return nil, err
	}
	return mol, nil
}

//XYZReadFrom reads one XYZ-formatted structure from r and returns it as a
//species with the given name, charge 0 and multiplicity 1.
func XYZReadFrom(r io.Reader, name string) (*Species, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, NewError("XYZReadFrom", "ill-formatted XYZ: missing atom-count line")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || natoms <= 0 {
		return nil, NewError("XYZReadFrom", "ill-formatted XYZ: bad atom count")
	}
	scanner.Scan() //the title line is ignored
	atoms := make([]*Atom, 0, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			return nil, NewError("XYZReadFrom", fmt.Sprintf("ill-formatted XYZ: expected %d atoms, got %d", natoms, i))
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, NewError("XYZReadFrom", fmt.Sprintf("ill-formatted XYZ: line for atom %d", i))
		}
		atoms = append(atoms, NewAtom(fields[0]))
		for j := 1; j <= 3; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, NewError("XYZReadFrom", fmt.Sprintf("ill-formatted XYZ: coordinate %d of atom %d", j, i))
			}
			coords = append(coords, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewSpecies(name, 0, 1, atoms, mat.NewDense(natoms, 3, coords))
}

//XYZWrite writes the species mol to an XYZ file with the given name, which
//is created, or overwritten if it exists.
func XYZWrite(xyzname string, mol *Species) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n", mol.Len())
	fmt.Fprintf(w, "%s\n", mol.Name())
	for i := 0; i < mol.Len(); i++ {
		c := mol.Coord(i)
		if _, err := fmt.Fprintf(w, "%-2s  %10.5f  %10.5f  %10.5f\n", mol.Atom(i).Symbol, c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return w.Flush()
}
