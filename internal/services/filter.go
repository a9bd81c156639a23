package services

import (
	"fmt"
	"strconv"
	"strings"
)

// buildMatcher turns an operator and comparison value into a cell predicate.
func buildMatcher(op, value string) (func(string) bool, error) {
	switch op {
	case OpEq:
		return func(cell string) bool { return cell == value }, nil
	case OpNeq:
		return func(cell string) bool { return cell != value }, nil
	case OpContains:
		return func(cell string) bool {
			return strings.Contains(strings.ToLower(cell), strings.ToLower(value))
		}, nil
	case OpGt, OpLt:
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not numeric", ErrBadFilter, value)
		}
		return func(cell string) bool {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return false
			}
			if op == OpGt {
				return v > threshold
			}
			return v < threshold
		}, nil
	default:
		return nil, fmt.Errorf("%w: operator %q", ErrBadFilter, op)
	}
}
