/*
 * errors.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent

import "fmt"

//All failures this package reports are deterministic for a given input and
//registry: there is nothing transient to retry against. The three error
//types below implement the autode.Error Decorate contract.

//ArgumentError reports a caller contract violation: an unknown solvent
//kind, an explicit request without a molecule count, or a non-positive
//count.
type ArgumentError struct {
	Message string
	deco    []string
}

func (err *ArgumentError) Error() string { return err.Message }

//Decorate adds dec to the decoration slice, unless it is empty, and
//returns the resulting slice.
func (err *ArgumentError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//NotFoundError reports that a requested name matched no alias of any
//registry record.
type NotFoundError struct {
	//Name is the solvent name as requested by the caller.
	Name string
	deco []string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("no matching solvent in the library for %s", err.Name)
}

//Decorate adds dec to the decoration slice, unless it is empty, and
//returns the resulting slice.
func (err *NotFoundError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//StructureError reports that a solvent matched in the registry has no
//packaged 3D geometry, so it cannot be converted to an explicit solvent.
//This is an expected, recoverable condition: most registry entries only
//support the implicit representation.
type StructureError struct {
	//Name is the canonical name of the solvent lacking a geometry.
	Name string
	deco []string
}

func (err *StructureError) Error() string {
	return fmt.Sprintf("could not convert %s to explicit solvent: no packaged structure", err.Name)
}

//Decorate adds dec to the decoration slice, unless it is empty, and
//returns the resulting slice.
func (err *StructureError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
