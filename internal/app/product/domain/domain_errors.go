package domain

import "errors"

// ErrInvalidProductID indicates an identifier that is not a positive integer.
// Absence is not an error anywhere in the lookup path; it travels as an
// explicit (view, ok) result, so there is no not-found sentinel.
var ErrInvalidProductID = errors.New("product id must be a positive integer")
