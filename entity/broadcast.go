package entity

import (
	"fmt"

	"github.com/lars-frogner/impact-wire/errors"
)

// Arg is one argument to a batched setup function: either a single value
// shared by every entity in the batch, or one value per entity.
type Arg[T any] struct {
	same T
	all  []T
	list bool
}

// Same wraps a value shared by every entity in the batch.
func Same[T any](v T) Arg[T] {
	return Arg[T]{same: v}
}

// All wraps per-entity values. The slice length must match the batch size
// when the argument is expanded.
func All[T any](vs []T) Arg[T] {
	return Arg[T]{all: vs, list: true}
}

func (a Arg[T]) check(n int) error {
	if a.list && len(a.all) != n {
		var zero T
		return errors.CountMismatch(errors.PhaseBroadcast, fmt.Sprintf("%T", zero), len(a.all), n)
	}
	return nil
}

func (a Arg[T]) at(i int) T {
	if a.list {
		return a.all[i]
	}
	return a.same
}

// Expand materializes the argument for a batch of n entities. A shared value
// is repeated n times; per-entity values are returned as given after the
// length check.
func (a Arg[T]) Expand(n int) ([]T, error) {
	if err := a.check(n); err != nil {
		return nil, err
	}
	if a.list {
		return a.all, nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = a.same
	}
	return out, nil
}

// Broadcast2 applies fn elementwise across two broadcast arguments for a
// batch of n entities and collects the results. Length mismatches are
// reported before fn runs; the first error from fn stops the batch.
func Broadcast2[A, B, R any](n int, a Arg[A], b Arg[B], fn func(A, B) (R, error)) ([]R, error) {
	if err := a.check(n); err != nil {
		return nil, err
	}
	if err := b.check(n); err != nil {
		return nil, err
	}
	out := make([]R, n)
	for i := 0; i < n; i++ {
		r, err := fn(a.at(i), b.at(i))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// Broadcast3 is Broadcast2 for three arguments.
func Broadcast3[A, B, C, R any](n int, a Arg[A], b Arg[B], c Arg[C], fn func(A, B, C) (R, error)) ([]R, error) {
	if err := a.check(n); err != nil {
		return nil, err
	}
	if err := b.check(n); err != nil {
		return nil, err
	}
	if err := c.check(n); err != nil {
		return nil, err
	}
	out := make([]R, n)
	for i := 0; i < n; i++ {
		r, err := fn(a.at(i), b.at(i), c.at(i))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// Broadcast4 is Broadcast2 for four arguments.
func Broadcast4[A, B, C, D, R any](n int, a Arg[A], b Arg[B], c Arg[C], d Arg[D], fn func(A, B, C, D) (R, error)) ([]R, error) {
	if err := a.check(n); err != nil {
		return nil, err
	}
	if err := b.check(n); err != nil {
		return nil, err
	}
	if err := c.check(n); err != nil {
		return nil, err
	}
	if err := d.check(n); err != nil {
		return nil, err
	}
	out := make([]R, n)
	for i := 0; i < n; i++ {
		r, err := fn(a.at(i), b.at(i), c.at(i), d.at(i))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
