package pgmodel

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgmodel/pgtype"
)

// FindAll returns every entity of the relation of m.
func FindAll[E any](ctx context.Context, c *Conn, m *Model[E]) ([]E, error) {
	return FindWhere(ctx, c, m, "")
}

// FindWhere returns the entities of the relation of m matching clause. clause may reference args as $1, $2...
// and the relation columns by name. An empty clause matches every row.
func FindWhere[E any](ctx context.Context, c *Conn, m *Model[E], clause string, args ...pgtype.Encoder) ([]E, error) {
	if err := c.checkServerVersion(m.Projection()); err != nil {
		return nil, err
	}

	values, oids, err := c.encodeParams(args)
	if err != nil {
		return nil, err
	}

	return collect(ctx, c, m, m.selectSQL(clause), values, oids)
}

// PaginateFindWhere returns page of the entities of the relation of m matching clause, maxPerPage entities at most.
// Pages are numbered from 1. The total count is read with a separate query.
func PaginateFindWhere[E any](ctx context.Context, c *Conn, m *Model[E], clause string, maxPerPage, page int, args ...pgtype.Encoder) (*Pager[E], error) {
	if maxPerPage < 1 {
		return nil, fmt.Errorf("invalid max per page: %d", maxPerPage)
	}
	if page < 1 {
		return nil, fmt.Errorf("invalid page: %d", page)
	}

	if err := c.checkServerVersion(m.Projection()); err != nil {
		return nil, err
	}

	values, oids, err := c.encodeParams(args)
	if err != nil {
		return nil, err
	}

	countSQL := "SELECT count(*) AS count FROM " + m.structure.Relation
	if clause != "" {
		countSQL += " WHERE " + clause
	}

	var count pgtype.Int8
	_, err = c.query(ctx, countSQL, values, oids, func(row Row) error {
		v, ok := row.Value("count")
		if !ok {
			return &MissingFieldError{Field: "count"}
		}
		return pgtype.Decode(c.catalog, &count, v.OID, v.Format, v.Bytes)
	})
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf("%s OFFSET %d LIMIT %d", m.selectSQL(clause), (page-1)*maxPerPage, maxPerPage)
	entities, err := collect(ctx, c, m, sql, values, oids)
	if err != nil {
		return nil, err
	}

	return &Pager[E]{Entities: entities, Count: int64(count), Page: page, MaxPerPage: maxPerPage}, nil
}

// FindByPK returns the entity whose primary key is pk. The keys of pk must be exactly the primary key columns of the
// relation. ErrNoRows is returned when no row matches.
func FindByPK[E any](ctx context.Context, c *Conn, m *Model[E], pk map[string]pgtype.Encoder) (E, error) {
	var zero E

	primaryKey := m.structure.PrimaryKey
	if len(primaryKey) == 0 || len(pk) != len(primaryKey) {
		return zero, invalidPrimaryKey(m.structure, pk)
	}

	conditions := make([]string, len(primaryKey))
	args := make([]pgtype.Encoder, len(primaryKey))
	for i, k := range primaryKey {
		v, ok := pk[k]
		if !ok {
			return zero, invalidPrimaryKey(m.structure, pk)
		}
		conditions[i] = fmt.Sprintf("%s = $%d", Identifier{k}.Sanitize(), i+1)
		args[i] = v
	}

	entities, err := FindWhere(ctx, c, m, strings.Join(conditions, " AND "), args...)
	if err != nil {
		return zero, err
	}

	switch len(entities) {
	case 0:
		return zero, ErrNoRows
	case 1:
		return entities[0], nil
	default:
		return zero, ErrTooManyRows
	}
}

func invalidPrimaryKey(s Structure, pk map[string]pgtype.Encoder) error {
	got := make([]string, 0, len(pk))
	for k := range pk {
		got = append(got, k)
	}
	sort.Strings(got)

	return &InvalidPrimaryKeyError{Relation: s.Relation, Want: s.PrimaryKey, Got: got}
}

// InsertOne inserts entity into the relation of m and returns the row as stored. Only the entity fields that are
// columns of the relation are inserted; NULL values are left out so column defaults apply.
func InsertOne[E any](ctx context.Context, c *Conn, m *Model[E], entity E) (E, error) {
	var zero E

	if err := c.checkServerVersion(m.Projection()); err != nil {
		return zero, err
	}

	columns := make([]string, 0, len(m.structure.Columns))
	placeholders := make([]string, 0, len(m.structure.Columns))
	values := make([][]byte, 0, len(m.structure.Columns))
	oids := make([]uint32, 0, len(m.structure.Columns))

	for _, col := range m.structure.Columns {
		f, ok := m.entity.field(col.Name)
		if !ok {
			continue
		}

		enc, err := f.value(&entity)
		if err != nil {
			return zero, &FieldError{Field: col.Name, Err: err}
		}
		buf, err := enc.EncodeText(c.catalog, nil)
		if err != nil {
			return zero, &FieldError{Field: col.Name, Err: err}
		}
		if buf == nil {
			continue
		}

		columns = append(columns, Identifier{col.Name}.Sanitize())
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(values)+1))
		values = append(values, buf)
		oids = append(oids, enc.OID())
	}

	var sql string
	if len(columns) == 0 {
		sql = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", m.structure.Relation, m.Projection().Expand(""))
	} else {
		sql = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			m.structure.Relation,
			strings.Join(columns, ", "),
			strings.Join(placeholders, ", "),
			m.Projection().Expand(""),
		)
	}

	entities, err := collect(ctx, c, m, sql, values, oids)
	if err != nil {
		return zero, err
	}
	if len(entities) != 1 {
		return zero, fmt.Errorf("insert into %s returned %d rows", m.structure.Relation, len(entities))
	}

	return entities[0], nil
}

func collect[E any](ctx context.Context, c *Conn, m *Model[E], sql string, values [][]byte, oids []uint32) ([]E, error) {
	var entities []E
	_, err := c.query(ctx, sql, values, oids, func(row Row) error {
		e, err := m.decoder.Decode(row)
		if err != nil {
			return err
		}
		entities = append(entities, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entities, nil
}
