// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// id_fn.go - vertex labelling schemes. All schemes are pure and deterministic.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a construction index to a vertex label.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// OneBasedIDFn renders idx+1 in base 10: "1", "2", ...
// Matches graphs numbered from 1, as in most textbook figures.
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn maps 0→"A", 25→"Z", 26→"AA", ... Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns a scheme producing prefix+idx ("v0", "v1", ...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb labels vertices prefix+idx.
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithOneBasedIDs labels vertices "1", "2", ...
func WithOneBasedIDs() BuilderOption {
	return WithIDScheme(OneBasedIDFn)
}

// WithSymbolIDs labels vertices "A".."Z".
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs labels vertices "A".."Z","AA",...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
