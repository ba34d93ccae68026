// SPDX-License-Identifier: MIT

package loader

import "github.com/pkg/errors"

var (
	// ErrSyntax indicates malformed adjacency text or HCL. The wrapping error carries
	// the position ("file:line:col").
	ErrSyntax = errors.New("loader: syntax error")

	// ErrEmptyInput indicates an input that defines no vertex at all.
	ErrEmptyInput = errors.New("loader: input defines no vertices")
)
