/*
 * errors.go, part of autodE.
 *
 * Copyright 2026 The autodE developers.
 *
 * This program is distributed under the MIT license.
 *
 */

package autode

//Error is the interface for errors that all packages in this library
//implement. The Decorate method adds information to the error as it is
//passed up the call stack, without changing its type or wrapping it.
//Each call returns the current decoration slice. If passed an empty string
//it only returns the current value. Decorations should name the function
//in the calling stack, optionally followed by extra context, in the format
//"FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the general-purpose error of the autode package.
type CError struct {
	msg  string
	deco []string
}

//NewError returns a CError with the given message, decorated with the
//name of the function reporting it.
func NewError(function, msg string) *CError {
	return &CError{msg: msg, deco: []string{function}}
}

func (err *CError) Error() string { return err.msg }

//Decorate adds dec to the decoration slice, unless it is empty, and
//returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
