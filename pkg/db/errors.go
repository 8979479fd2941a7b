package db

import "errors"

var (
	ErrNotFound   = errors.New("page not found")
	ErrSlugExists = errors.New("slug already exists")
)
