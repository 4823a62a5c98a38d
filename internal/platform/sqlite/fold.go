// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sqlite

import (
	"database/sql/driver"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	modernc "modernc.org/sqlite"
)

// FoldFunc is the SQL name of the Unicode case-folding scalar function
// registered on every connection. SQLite's own LIKE and lower() only fold
// ASCII letters.
const FoldFunc = "casefold"

func init() {
	if err := modernc.RegisterDeterministicScalarFunction(FoldFunc, 1, foldValue); err != nil {
		panic(fmt.Sprintf("sqlite: registering %s: %v", FoldFunc, err))
	}
}

// Fold returns the NFC-normalised Unicode case fold of s, so that "ÉMMA" and
// "émma" compare equal.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func foldValue(_ *modernc.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch value := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return Fold(value), nil
	case []byte:
		return Fold(string(value)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", FoldFunc, value)
	}
}
