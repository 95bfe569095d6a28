// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import "strconv"

// =============================================================================
// PARAMETER KINDS
// =============================================================================

// Kind is the primitive type tag of a command parameter or variable.
type Kind int

const (
	KindNull    Kind = iota // No value expected (Empty)
	KindBool                // bool
	KindInt                 // int
	KindInt64               // int64
	KindFloat32             // float32
	KindFloat64             // float64
	KindString              // string
	KindObject              // any interface a string satisfies
)

var kindNames = [...]string{
	KindNull:    "Empty",
	KindBool:    "Boolean",
	KindInt:     "Int",
	KindInt64:   "Int64",
	KindFloat32: "Single",
	KindFloat64: "Double",
	KindString:  "String",
	KindObject:  "Object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// bitSize returns the width used by strconv for numeric kinds.
func (k Kind) bitSize() int {
	switch k {
	case KindInt:
		return strconv.IntSize
	case KindFloat32:
		return 32
	default:
		return 64
	}
}

// Empty is the parameter type for a null slot. Handlers always receive
// the zero value.
type Empty struct{}

// KindOf returns the Kind for the type parameter T.
// ok is false when T is not one of the supported types.
func KindOf[T any]() (kind Kind, ok bool) {
	var zero T
	switch any(zero).(type) {
	case Empty:
		return KindNull, true
	case bool:
		return KindBool, true
	case int:
		return KindInt, true
	case int64:
		return KindInt64, true
	case float32:
		return KindFloat32, true
	case float64:
		return KindFloat64, true
	case string:
		return KindString, true
	}
	// Interface types a string satisfies (such as any) receive the raw token.
	if _, isObject := any("").(T); isObject {
		return KindObject, true
	}
	return KindNull, false
}
