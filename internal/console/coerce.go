// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// =============================================================================
// TOKEN COERCION
// =============================================================================

// Coerce converts a raw token into a value of the given kind.
//
// KindNull always yields nil. String and object kinds return the token
// unchanged. Booleans accept yes/1/on and no/0/off in any case before
// falling back to strconv.ParseBool on the original token, so "True" is
// accepted but "tRUE" is not. Failures return a *CoercionError.
func Coerce(token string, kind Kind) (any, error) {
	switch kind {
	case KindNull:
		return nil, nil
	case KindString, KindObject:
		return token, nil
	case KindBool:
		switch cases.Lower(language.Und).String(token) {
		case "yes", "1", "on":
			return true, nil
		case "no", "0", "off":
			return false, nil
		}
	}
	return convert(token, kind)
}

// convert is the generic string to primitive conversion.
func convert(token string, kind Kind) (any, error) {
	fail := func(err error) (any, error) {
		return nil, &CoercionError{Token: token, Kind: kind, Err: err}
	}

	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return fail(err)
		}
		return b, nil

	case KindInt, KindInt64:
		n, err := strconv.ParseInt(token, 10, kind.bitSize())
		if err != nil {
			return fail(err)
		}
		if kind == KindInt {
			return int(n), nil
		}
		return n, nil

	case KindFloat32, KindFloat64:
		f, err := strconv.ParseFloat(token, kind.bitSize())
		if err != nil {
			return fail(err)
		}
		if kind == KindFloat32 {
			return float32(f), nil
		}
		return f, nil
	}

	return fail(nil)
}
