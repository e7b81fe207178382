/*
 * internal_test.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package solvent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//The registry currently only ever holds implicit records, but the
//resolver must tolerate mixed content: a record that is not implicit is
//skipped, never matched directly.
func TestGetSkipsNonImplicitRecords(t *testing.T) {
	t.Parallel()

	odd := &Solvent{Name: "odd", aliases: []string{"odd", "shared"}, kind: Explicit}
	normal := NewImplicit("normal", "C", []string{"shared"}, nil)
	r := NewRegistry([]*Solvent{odd, normal}, nil)

	//the shared alias falls through the explicit record to the
	//implicit one
	res, err := r.Get("shared", "implicit")
	require.NoError(t, err)
	assert.Equal(t, "normal", res.(*Solvent).Name)

	//an alias only held by a non-implicit record matches nothing
	_, err = r.Get("odd", "implicit")
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestErrorDecorate(t *testing.T) {
	t.Parallel()

	_, err := Default().Get("not-a-solvent", "implicit")
	require.Error(t, err)
	nf := err.(*NotFoundError)
	deco := nf.Decorate("CalculationSetup: while reading input")
	assert.Equal(t, []string{"Get", "CalculationSetup: while reading input"}, deco)
	//an empty decoration only reads the current value
	assert.Len(t, nf.Decorate(""), 2)
}
