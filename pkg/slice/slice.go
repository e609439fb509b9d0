// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice holds the small generic transforms the services use when
shaping rows into payloads: Map, Filter and Reduce. It complements [slices].
*/
package slice

// Map applies transform to each element. A nil input stays nil.
func Map[T, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	mapped := make([]U, 0, len(input))
	for _, element := range input {
		mapped = append(mapped, transform(element))
	}
	return mapped
}

// Filter keeps the elements for which keep returns true. The result is
// never nil, even when nothing matches.
func Filter[T any](input []T, keep func(T) bool) []T {
	kept := make([]T, 0, len(input))
	for _, element := range input {
		if keep(element) {
			kept = append(kept, element)
		}
	}
	return kept
}

// Reduce folds input into an accumulator, starting from initial.
func Reduce[T, U any](input []T, initial U, fold func(U, T) U) U {
	accumulator := initial
	for _, element := range input {
		accumulator = fold(accumulator, element)
	}
	return accumulator
}
