/*
 * store.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/klauspost/compress/gzip"

	autode "github.com/danielhollas/autodE"
)

//lib holds one neutral, closed-shell molecule per solvent that supports
//the explicit representation, keyed by canonical name. Geometries may be
//stored plain (<name>.xyz) or gzip-compressed (<name>.xyz.gz).
//
//go:embed lib
var libFS embed.FS

//StructureStore maps a canonical solvent name to a packaged 3D structure.
//Load returns a StructureError when the store has no geometry for the
//name, which is an expected condition: most solvents in the registry have
//no packaged structure.
type StructureStore interface {
	Load(name string) (*autode.Species, error)
}

type fsStore struct {
	fsys fs.FS
}

//LibStore returns the store backed by the geometry library shipped with
//this package.
func LibStore() StructureStore {
	sub, err := fs.Sub(libFS, "lib")
	if err != nil {
		panic("solvent: embedded geometry library missing")
	}
	return &fsStore{fsys: sub}
}

//NewFSStore returns a store reading <name>.xyz or <name>.xyz.gz files
//from the root of fsys.
func NewFSStore(fsys fs.FS) StructureStore {
	return &fsStore{fsys: fsys}
}

func (st *fsStore) Load(name string) (*autode.Species, error) {
	for _, fname := range []string{name + ".xyz", name + ".xyz.gz"} {
		mol, err := st.read(fname, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return mol, err
	}
	return nil, &StructureError{Name: name}
}

func (st *fsStore) read(fname, name string) (*autode.Species, error) {
	f, err := st.fsys.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(fname, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("solvent: corrupt structure file %s: %w", fname, err)
		}
		defer gz.Close()
		r = gz
	}
	return autode.XYZReadFrom(r, name)
}
