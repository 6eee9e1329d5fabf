package domain

import "errors"

var (
	// ErrMissingMedia marks a product record without a media node.
	// Fatal on a detail view, a listing view degrades to "no image".
	ErrMissingMedia = errors.New("product media is missing")

	// ErrDuplicateCategory marks a category list where two entries
	// share a slug. A data-integrity condition, surfaced to logs.
	ErrDuplicateCategory = errors.New("duplicate category slug")

	ErrProductNotFound = errors.New("product not found")
)
