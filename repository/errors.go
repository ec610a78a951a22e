package repository

import "errors"

// ErrDuplicateNumber is returned when a document is submitted with a number
// that already belongs to a different record of the same kind. Surfaces to
// the client as a validation error; nothing is persisted.
var ErrDuplicateNumber = errors.New("document number already exists")

// ErrNotFound is returned for updates/deletes against a missing record.
var ErrNotFound = errors.New("record not found")

// Mongo database name shared by all mongo repositories.
const mongoDatabase = "brcroadlines"
