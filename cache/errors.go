// SPDX-License-Identifier: MIT
// Package cache: sentinel error set.
// ErrInvalidArgument is the umbrella class for argument-contract violations;
// the named causes below wrap it, so callers can match either the class or
// the precise cause via errors.Is. Solver failures (matrix.ErrSingular and
// friends) are NOT redefined here — they propagate from the matrix package
// untouched.

package cache

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella sentinel for argument-contract
// violations in ResolveInverse: a container that does not expose the
// required capability set, or an auxiliary right-hand side that is not the
// identity matrix. It is never recovered internally.
var ErrInvalidArgument = errors.New("cache: invalid argument")

// ErrNilCache indicates that ResolveInverse received a nil container
// (nil interface value or typed-nil *CachedMatrix).
// errors.Is(err, ErrInvalidArgument) also holds.
var ErrNilCache = fmt.Errorf("cache: nil container: %w", ErrInvalidArgument)

// ErrNonIdentityRHS indicates that an auxiliary right-hand side was supplied
// (WithRHS) and is not the identity matrix of matching dimension. The resolve
// operation is restricted to computing true inverses; a general linear solve
// must call matrix.Solve directly.
// errors.Is(err, ErrInvalidArgument) also holds.
var ErrNonIdentityRHS = fmt.Errorf("cache: right-hand side is not the identity matrix: %w", ErrInvalidArgument)
