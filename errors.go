package pgmodel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRows occurs when a lookup by primary key finds nothing.
var ErrNoRows = errors.New("no rows in result set")

// ErrTooManyRows occurs when a lookup by primary key finds more than one row.
var ErrTooManyRows = errors.New("more than one row in result set")

// MissingFieldError is returned by RowDecoder.Decode when the row has no column for a field of the entity.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// FieldError annotates a decode or encode failure with the entity field it occurred on.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// EntityError is returned when an entity description does not match a projection or structure.
type EntityError struct {
	Entity  string
	Field   string
	Message string
	Err     error
}

func (e *EntityError) Error() string {
	var sb strings.Builder
	sb.WriteString("entity ")
	sb.WriteString(e.Entity)
	if e.Field != "" {
		fmt.Fprintf(&sb, " field %q", e.Field)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

// InvalidPrimaryKeyError is returned when the keys given to FindByPK are not the primary key of the relation.
type InvalidPrimaryKeyError struct {
	Relation string
	Want     []string
	Got      []string
}

func (e *InvalidPrimaryKeyError) Error() string {
	return fmt.Sprintf("invalid primary key for %s: want [%s], got [%s]", e.Relation, strings.Join(e.Want, ", "), strings.Join(e.Got, ", "))
}

// UnsupportedTypeError is returned when a model uses a type the connected server does not provide.
type UnsupportedTypeError struct {
	Field            string
	TypeName         string
	MinServerVersion string
	ServerVersion    string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field %q: type %s requires PostgreSQL %s or later, server is %s", e.Field, e.TypeName, e.MinServerVersion, e.ServerVersion)
}
