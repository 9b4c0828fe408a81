package pgmodel

import (
	"errors"
	"fmt"
)

// Column is a declared column of a relation.
type Column struct {
	Name string
	OID  uint32
}

// Structure declares the shape of a relation: its name, primary key and columns in order.
type Structure struct {
	// Relation is written into queries as is, e.g. "public.event".
	Relation   string
	PrimaryKey []string
	Columns    []Column
}

// Validate checks that the structure has a relation, unique column names and a primary key made of its columns.
func (s Structure) Validate() error {
	if s.Relation == "" {
		return errors.New("structure has no relation")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("structure %s has no columns", s.Relation)
	}

	seen := make(map[string]struct{}, len(s.Columns))
	for _, c := range s.Columns {
		if c.Name == "" {
			return fmt.Errorf("structure %s has a column without name", s.Relation)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("structure %s has duplicate column %q", s.Relation, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	pk := make(map[string]struct{}, len(s.PrimaryKey))
	for _, k := range s.PrimaryKey {
		if _, ok := seen[k]; !ok {
			return fmt.Errorf("structure %s primary key %q is not a column", s.Relation, k)
		}
		if _, ok := pk[k]; ok {
			return fmt.Errorf("structure %s has duplicate primary key %q", s.Relation, k)
		}
		pk[k] = struct{}{}
	}

	return nil
}

// Column returns the column name.
func (s Structure) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// DefaultProjection returns one field per column, in column order, with the expression %:column:%.
func (s Structure) DefaultProjection() Projection {
	fields := make([]ProjectionField, len(s.Columns))
	for i, c := range s.Columns {
		fields[i] = ProjectionField{Name: c.Name, Expression: "%:" + c.Name + ":%", OID: c.OID}
	}
	return Projection{fields: fields}
}
