/*
 * registry.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent

import (
	_ "embed"
	"fmt"
	"log"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//The shipped datasets. Editing them is a data-maintenance operation, not a
//runtime one: the registry built from them never changes while the process
//runs.

//go:embed data/solvents.yaml
var solventsYAML []byte

//dielectrics.yaml holds the dielectric constants from the Gaussian solvent
//list. Its keyspace is independent from the registry aliases: not every
//alias has a dielectric, and some keys belong to no record.
//
//go:embed data/dielectrics.yaml
var dielectricsYAML []byte

//Registry is an immutable, ordered collection of solvent records, with a
//sidecar table of dielectric constants and a store of packaged 3D
//geometries. A Registry is safe for concurrent use: nothing mutates it
//after construction.
type Registry struct {
	solvents    []*Solvent
	dielectrics map[string]float64
	store       StructureStore
}

//NewRegistry builds a registry from the given records and dielectric
//table. Record order is preserved: resolution scans records as declared
//and the first match wins, so if two records share an alias the
//later-declared one is unreachable through it. Dielectric keys are
//lowercased. An optional store overrides the packaged geometry library,
//which is mostly useful for tests.
func NewRegistry(solvents []*Solvent, dielectrics map[string]float64, store ...StructureStore) *Registry {
	r := &Registry{}
	r.solvents = make([]*Solvent, len(solvents))
	copy(r.solvents, solvents)
	r.dielectrics = make(map[string]float64, len(dielectrics))
	for k, v := range dielectrics {
		r.dielectrics[strings.ToLower(k)] = v
	}
	r.store = LibStore()
	if len(store) > 0 && store[0] != nil {
		r.store = store[0]
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

//Default returns the registry built from the shipped datasets. It is
//built on first use and shared by every caller thereafter.
func Default() *Registry {
	defaultOnce.Do(func() {
		var err error
		defaultReg, err = loadShipped()
		if err != nil {
			//The embedded datasets ship with the library; failing to
			//parse them means the build itself is broken.
			panic(fmt.Sprintf("solvent: cannot parse the shipped datasets: %s", err.Error()))
		}
	})
	return defaultReg
}

type solventEntry struct {
	Name     string            `yaml:"name"`
	SMILES   string            `yaml:"smiles"`
	Aliases  []string          `yaml:"aliases"`
	Packages map[string]string `yaml:"packages"`
}

func loadShipped() (*Registry, error) {
	var entries []solventEntry
	if err := yaml.Unmarshal(solventsYAML, &entries); err != nil {
		return nil, err
	}
	solvents := make([]*Solvent, 0, len(entries))
	for _, e := range entries {
		solvents = append(solvents, NewImplicit(e.Name, e.SMILES, e.Aliases, e.Packages))
	}
	dielectrics := make(map[string]float64)
	if err := yaml.Unmarshal(dielectricsYAML, &dielectrics); err != nil {
		return nil, err
	}
	return NewRegistry(solvents, dielectrics), nil
}

//Len returns the number of records in the registry.
func (r *Registry) Len() int { return len(r.solvents) }

//Find returns copies of the records satisfying pred, in registry order.
//A nil pred matches every record.
func (r *Registry) Find(pred func(*Solvent) bool) []*Solvent {
	var out []*Solvent
	for _, s := range r.solvents {
		if pred == nil || pred(s) {
			out = append(out, s.Copy())
		}
	}
	return out
}

//DielectricFor walks the aliases in the order given and returns the
//dielectric constant for the first one present in the table. Callers
//should pass a record's alias list in its stored order: in practice the
//result is "the first alias that is a table key", not "the canonical name
//preferred". A total miss is not an error; it is logged and reported as
//false.
func (r *Registry) DielectricFor(aliases []string) (float64, bool) {
	for _, a := range aliases {
		if eps, ok := r.dielectrics[strings.ToLower(a)]; ok {
			return eps, true
		}
	}
	log.Printf("autode/solvent: could not find a dielectric for %v", aliases)
	return 0, false
}

//Dielectric returns the dielectric constant (epsilon) for the solvent s,
//looked up through its aliases in r, or false if none of them is in the
//table. Implicit solvation models use this value for the electrostatic
//interaction.
func (s *Solvent) Dielectric(r *Registry) (float64, bool) {
	if r == nil {
		r = Default()
	}
	return r.DielectricFor(s.aliases)
}
