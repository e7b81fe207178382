/*
 * solvent.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent

import (
	"fmt"
	"strings"
)

//Kind discriminates between the two solvent representations.
type Kind int

const (
	//Implicit solvents are defined only by a dielectric constant.
	Implicit Kind = iota
	//Explicit solvents have actual molecules placed in space.
	Explicit
)

func (k Kind) String() string {
	if k == Implicit {
		return "implicit"
	}
	return "explicit"
}

//ParseKind converts a string into a Kind, case-insensitively. Anything
//other than "implicit" or "explicit" is an ArgumentError.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "implicit":
		return Implicit, nil
	case "explicit":
		return Explicit, nil
	}
	return 0, &ArgumentError{Message: fmt.Sprintf("solvent kind must be implicit or explicit, had: %s", s)}
}

//Solvation is implemented by the two solvent representations, *Solvent
//(implicit) and *ExplicitSolvent. The set is closed: no type outside this
//package can implement it.
type Solvation interface {
	//Kind returns the representation of the solvent.
	Kind() Kind
	//Aliases returns the names the solvent is known by, lowercased.
	Aliases() []string

	sealed()
}

//Solvent is one record of the registry: a canonical name, an optional
//SMILES string, the set of aliases it can be matched by, and the name each
//electronic structure package uses for it. Records are immutable once
//built; the resolver hands out copies.
type Solvent struct {
	//Name is the unique canonical identifier of the solvent.
	Name string
	//SMILES is an informational structure descriptor. It may be empty
	//and it is never validated.
	SMILES   string
	aliases  []string
	packages map[string]string
	kind     Kind
}

//NewImplicit builds an implicit solvent record. The alias list always
//starts with the lowercased name; the remaining aliases are lowercased and
//deduplicated, preserving their declared order, which matters for
//dielectric lookup. packages maps an electronic structure package
//identifier (e.g. "orca") to that package's spelling of the solvent;
//Gaussian 09 and Gaussian 16 name solvents identically, so a "g09" entry
//fills in "g16" when the latter is absent.
func NewImplicit(name, smiles string, aliases []string, packages map[string]string) *Solvent {
	s := &Solvent{Name: name, SMILES: smiles, kind: Implicit}
	s.aliases = []string{strings.ToLower(name)}
	for _, a := range aliases {
		a = strings.ToLower(a)
		if !containsString(s.aliases, a) {
			s.aliases = append(s.aliases, a)
		}
	}
	s.packages = make(map[string]string, len(packages)+1)
	for pkg, n := range packages {
		s.packages[strings.ToLower(pkg)] = n
	}
	if g09, ok := s.packages["g09"]; ok {
		if _, ok := s.packages["g16"]; !ok {
			s.packages["g16"] = g09
		}
	}
	return s
}

//Kind returns the representation of the solvent record.
func (s *Solvent) Kind() Kind { return s.kind }

//Aliases returns a copy of the alias list, in declared order.
func (s *Solvent) Aliases() []string {
	out := make([]string, len(s.aliases))
	copy(out, s.aliases)
	return out
}

//HasAlias reports whether the solvent is known by the given name.
//The comparison is case-insensitive only; no fuzzy matching.
func (s *Solvent) HasAlias(name string) bool {
	return containsString(s.aliases, strings.ToLower(name))
}

//NameForPackage returns the solvent name used by the given electronic
//structure package (e.g. "orca", "g16"), or false if the package has no
//spelling for this solvent.
func (s *Solvent) NameForPackage(pkg string) (string, bool) {
	n, ok := s.packages[strings.ToLower(pkg)]
	return n, ok
}

//Equal reports whether two solvents are the same, based on name and
//SMILES.
func (s *Solvent) Equal(other *Solvent) bool {
	if other == nil {
		return false
	}
	return s.Name == other.Name && s.SMILES == other.SMILES
}

//Copy returns a copy of the solvent record.
func (s *Solvent) Copy() *Solvent {
	n := &Solvent{Name: s.Name, SMILES: s.SMILES, kind: s.kind}
	n.aliases = s.Aliases()
	n.packages = make(map[string]string, len(s.packages))
	for k, v := range s.packages {
		n.packages[k] = v
	}
	return n
}

func (s *Solvent) String() string { return s.Name }

func (s *Solvent) sealed() {}

func containsString(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
