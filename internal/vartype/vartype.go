// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package vartype provides a value wrapper that remembers whether it was ever set. Station
// measurements use it, since the stations index does not publish any.
package vartype

import (
	"fmt"
)

// Unset is the placeholder printed for a Variable that holds no value.
const Unset = "-"

type (
	// VarFloat64 is a type alias for Variable[float64], representing a float64 value with initialization tracking.
	VarFloat64 = Variable[float64]

	// VarInt is a type alias for Variable[int], representing an integer value with initialization tracking.
	VarInt = Variable[int]

	// VarString is a type alias for Variable[string], representing a string value with initialization tracking.
	VarString = Variable[string]
)

// Variable represents a generic type wrapper that holds a value and tracks its initialization state.
type Variable[T any] struct {
	value T
	isset bool
}

// NewVariable creates and returns a new Variable instance initialized with the provided value.
func NewVariable[T any](value T) Variable[T] {
	return Variable[T]{
		isset: true,
		value: value,
	}
}

// Value retrieves the current value stored in the Variable.
func (v Variable[T]) Value() T {
	return v.value
}

// Set assigns the provided value to the Variable and marks it as initialized.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet returns true if the Variable has been initialized with a value, otherwise false.
func (v Variable[T]) IsSet() bool {
	return v.isset
}

// Format returns the value rendered with the given fmt verb, or Unset if no value is held.
func (v Variable[T]) Format(format string) string {
	if !v.isset {
		return Unset
	}
	return fmt.Sprintf(format, v.value)
}

// String returns a string representation of the Variable. If uninitialized, it returns Unset.
func (v Variable[T]) String() string {
	if !v.isset {
		return Unset
	}
	return fmt.Sprint(v.value)
}
