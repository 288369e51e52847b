// Extensions to the go-check unittest framework.
//
// NOTE: see https://github.com/go-check/check/pull/6 for reasons why these
// checkers live here.
package gocheck2

import (
	"fmt"
	"reflect"

	. "gopkg.in/check.v1"
)

// -----------------------------------------------------------------------
// IsTrue / IsFalse checker.

type isBoolValueChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolValueChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(bool)
	if !ok {
		return false, "Argument to " + checker.Name + " must be bool"
	}

	return obtained == checker.expected, ""
}

// The IsTrue checker verifies that the obtained value is true.
//
// For example:
//
//     c.Assert(value, IsTrue)
//
var IsTrue Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"obtained"}},
	true,
}

// The IsFalse checker verifies that the obtained value is false.
//
// For example:
//
//     c.Assert(value, IsFalse)
//
var IsFalse Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// HasKey checker.

type hasKeyChecker struct{}

func (checker *hasKeyChecker) Info() *CheckerInfo {
	return &CheckerInfo{
		Name:   "HasKey",
		Params: []string{"obtained", "key"},
	}
}

func (checker *hasKeyChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	if len(params) != 2 {
		return false, "HasKey takes 2 arguments: a map and a key"
	}

	mapValue := reflect.ValueOf(params[0])
	if mapValue.Kind() != reflect.Map {
		return false, "First argument to HasKey must be a map"
	}

	keyValue := reflect.ValueOf(params[1])
	if !keyValue.Type().AssignableTo(mapValue.Type().Key()) {
		return false, "Second argument must be assignable to the map key type"
	}

	return mapValue.MapIndex(keyValue).IsValid(), ""
}

// The HasKey checker verifies that the obtained map contains the given key.
//
// For example:
//
//     c.Assert(myMap, HasKey, "foo")
//
var HasKey Checker = &hasKeyChecker{}

// -----------------------------------------------------------------------
// NoErr checker.

type noErrChecker struct{}

func (checker *noErrChecker) Info() *CheckerInfo {
	return &CheckerInfo{
		Name:   "NoErr",
		Params: []string{"error"},
	}
}

func (checker *noErrChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	errMsg string) {

	if params[0] == nil {
		return true, ""
	}

	err, ok := params[0].(error)
	if !ok {
		return false, "Argument to NoErr must be an error"
	}

	return false, fmt.Sprintf("Obtained error:\n%s", err.Error())
}

// The NoErr checker verifies that the obtained error is nil. On failure the
// full error message, including any wrapped errors and stack traces, becomes
// part of the check output.
//
// For example:
//
//     res, err := Sample(population, 3)
//     c.Assert(err, NoErr)
//
var NoErr Checker = &noErrChecker{}
