/*
 * resolve.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent

import (
	"log"
	"strings"
)

//Get resolves a named solvent against the registry r. The name is matched
//case-insensitively against each record's aliases, scanning records in
//their declared order; the first match wins. kind selects the
//representation, "implicit" or "explicit" (case-insensitive); for an
//explicit solvent the number of solvent molecules must be given as num.
//
//An empty name means no solvent was requested and resolves to (nil, nil),
//which is distinct from a name that matches nothing (a NotFoundError).
//For an implicit request the returned Solvation is a copy of the registry
//record; mutating it does not affect the registry.
func (r *Registry) Get(name, kind string, num ...int) (Solvation, error) {
	k, err := ParseKind(kind)
	if err != nil {
		err.(*ArgumentError).Decorate("Get")
		return nil, err
	}
	if name == "" {
		log.Printf("autode/solvent: no solvent requested, returning nil")
		return nil, nil
	}
	if k == Explicit && len(num) == 0 {
		return nil, &ArgumentError{
			Message: "requested an explicit solvent but the number of solvent molecules was not given",
			deco:    []string{"Get"},
		}
	}
	target := strings.ToLower(name)
	for _, s := range r.solvents {
		if !containsString(s.aliases, target) {
			continue
		}
		//Only implicit records can be matched directly; anything else
		//in the registry is skipped.
		if s.kind != Implicit {
			continue
		}
		if k == Implicit {
			return s.Copy(), nil
		}
		return r.toExplicit(s, num[0])
	}
	return nil, &NotFoundError{Name: name, deco: []string{"Get"}}
}

//Get resolves a named solvent against the default registry. See
//Registry.Get.
func Get(name, kind string, num ...int) (Solvation, error) {
	return Default().Get(name, kind, num...)
}
