package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

// taxonomyTables whitelists the tables taxonomy queries may touch.
// Table names are interpolated into SQL, so only these are allowed.
var taxonomyTables = map[string]bool{
	"grades":        true,
	"product_lines": true,
	"mobile_suits":  true,
	"series":        true,
	"release_types": true,
}

// Taxonomy returns all rows of one taxonomy table, ordered by name.
func (s *Store) Taxonomy(ctx context.Context, table string) ([]catalog.TaxonomyEntry, error) {
	if !taxonomyTables[table] {
		return nil, fmt.Errorf("unknown taxonomy table %q", table)
	}

	sql := fmt.Sprintf(`SELECT id::text, name, slug FROM %s ORDER BY name ASC`, table)

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, queryErr(err))
	}
	defer rows.Close()

	var out []catalog.TaxonomyEntry
	for rows.Next() {
		var e catalog.TaxonomyEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Slug); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, queryErr(err))
	}
	return out, nil
}

// ResolveSlugs maps slugs to ids for one taxonomy table. Slugs that match
// no row are simply absent from the result; a stale slug must degrade to
// "no filter", not fail the search.
func (s *Store) ResolveSlugs(ctx context.Context, table string, slugs []string) ([]string, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	if !taxonomyTables[table] {
		return nil, fmt.Errorf("unknown taxonomy table %q", table)
	}

	sql := fmt.Sprintf(`SELECT id::text FROM %s WHERE slug = ANY(@slugs)`, table)

	rows, err := s.pool.Query(ctx, sql, pgx.NamedArgs{"slugs": slugs})
	if err != nil {
		return nil, fmt.Errorf("resolve %s slugs: %w", table, queryErr(err))
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s ids: %w", table, queryErr(err))
	}
	return ids, nil
}
