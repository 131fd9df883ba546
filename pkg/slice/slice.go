// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with generic helpers
for shaping query results into response payloads.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
//
// The result is never nil, so an empty collection encodes as [] rather than null.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}
