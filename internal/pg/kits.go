package pg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
)

// kitSelect is the shared projection for kit queries. Taxonomy joins are
// LEFT JOINs: a kit with a missing relation still searches and projects.
const kitSelect = `
	SELECT
		k.id::text,
		k.slug,
		k.name,
		k.number,
		COALESCE(k.variant, ''),
		COALESCE(g.id::text, ''), COALESCE(g.name, ''), COALESCE(g.slug, ''),
		COALESCE(pl.id::text, ''), COALESCE(pl.name, ''),
		COALESCE(sr.id::text, ''), COALESCE(sr.name, ''),
		COALESCE(rt.id::text, ''), COALESCE(rt.name, ''),
		k.release_date,
		k.price_yen,
		k.base_kit_id::text,
		(
			SELECT COALESCE(array_agg(km.mobile_suit_id::text), '{}')
			FROM kit_mobile_suits km
			WHERE km.kit_id = k.id
		)
	FROM kits k
	LEFT JOIN grades g ON g.id = k.grade_id
	LEFT JOIN product_lines pl ON pl.id = k.product_line_id
	LEFT JOIN series sr ON sr.id = k.series_id
	LEFT JOIN release_types rt ON rt.id = k.release_type_id`

// SearchKits is the direct-database equivalent of the index search, used
// as the fallback path. It matches the index search's output shape but not
// its re-ranking fidelity: ordering is a plain SQL sort.
func (s *Store) SearchKits(
	ctx context.Context, crit criteria.Criteria,
) ([]catalog.SearchableKit, int, error) {
	where, args := kitWhere(crit.Term(), crit.Facets())

	sql := fmt.Sprintf(`%s
	%s
	ORDER BY %s
	LIMIT @limit OFFSET @offset`, kitSelect, where, kitOrder(crit.Sort()))
	args["limit"] = crit.Limit()
	args["offset"] = crit.Offset()

	kits, err := s.queryKits(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.countKits(ctx, where, args)
	if err != nil {
		return nil, 0, err
	}

	return kits, total, nil
}

// SuggestKitNames returns distinct kit names matching the term, for the
// suggestion fallback. Case preserved as stored.
func (s *Store) SuggestKitNames(ctx context.Context, term string, limit int) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" || limit <= 0 {
		return nil, nil
	}

	sql := `
		SELECT DISTINCT name
		FROM kits
		WHERE name ILIKE '%' || @term || '%'
		ORDER BY name ASC
		LIMIT @limit`

	rows, err := s.pool.Query(ctx, sql, pgx.NamedArgs{"term": term, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("suggest kit names: %w", queryErr(err))
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan kit name: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read kit names: %w", queryErr(err))
	}
	return names, nil
}

// AllKits streams every kit for the index sync.
func (s *Store) AllKits(ctx context.Context) ([]catalog.SearchableKit, error) {
	kits, err := s.queryKits(ctx, kitSelect, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("load kits: %w", err)
	}
	return kits, nil
}

func kitWhere(term string, f criteria.Facets) (string, pgx.NamedArgs) {
	var clauses []string
	args := pgx.NamedArgs{}

	if term = strings.TrimSpace(term); term != "" {
		clauses = append(clauses, `k.searchable_text ILIKE '%' || @term || '%'`)
		args["term"] = term
	}
	if len(f.GradeIDs) > 0 {
		clauses = append(clauses, `k.grade_id::text = ANY(@grade_ids)`)
		args["grade_ids"] = f.GradeIDs
	}
	if len(f.ProductLineIDs) > 0 {
		clauses = append(clauses, `k.product_line_id::text = ANY(@product_line_ids)`)
		args["product_line_ids"] = f.ProductLineIDs
	}
	if len(f.SeriesIDs) > 0 {
		clauses = append(clauses, `k.series_id::text = ANY(@series_ids)`)
		args["series_ids"] = f.SeriesIDs
	}
	if len(f.ReleaseTypeIDs) > 0 {
		clauses = append(clauses, `k.release_type_id::text = ANY(@release_type_ids)`)
		args["release_type_ids"] = f.ReleaseTypeIDs
	}
	if len(f.MobileSuitIDs) > 0 {
		clauses = append(clauses, `EXISTS (
			SELECT 1 FROM kit_mobile_suits km
			WHERE km.kit_id = k.id AND km.mobile_suit_id::text = ANY(@mobile_suit_ids)
		)`)
		args["mobile_suit_ids"] = f.MobileSuitIDs
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func kitOrder(sort criteria.Sort) string {
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}
	switch sort.Field {
	case criteria.SortReleaseDate:
		return fmt.Sprintf("k.release_date %s NULLS LAST, k.name ASC", dir)
	case criteria.SortPrice:
		return fmt.Sprintf("k.price_yen %s NULLS LAST, k.name ASC", dir)
	case criteria.SortName:
		return fmt.Sprintf("k.name %s", dir)
	default:
		// No relevance signal in SQL; newest releases first is the
		// closest useful default for the fallback.
		return "k.release_date DESC NULLS LAST, k.name ASC"
	}
}

func (s *Store) queryKits(ctx context.Context, sql string, args pgx.NamedArgs) ([]catalog.SearchableKit, error) {
	rows, err := s.pool.Query(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("query kits: %w", queryErr(err))
	}
	defer rows.Close()

	var kits []catalog.SearchableKit
	for rows.Next() {
		var (
			k           catalog.SearchableKit
			releaseDate *time.Time
			priceYen    *int
			baseKitID   *string
		)
		if err := rows.Scan(
			&k.ID, &k.Slug, &k.Name, &k.Number, &k.Variant,
			&k.GradeID, &k.Grade, &k.GradeSlug,
			&k.ProductLineID, &k.ProductLine,
			&k.SeriesID, &k.Series,
			&k.ReleaseTypeID, &k.ReleaseType,
			&releaseDate, &priceYen, &baseKitID,
			&k.MobileSuitIDs,
		); err != nil {
			return nil, fmt.Errorf("scan kit: %w", err)
		}
		k.ReleaseDate = releaseDate
		k.PriceYen = priceYen
		k.BaseKitID = baseKitID
		kits = append(kits, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read kits: %w", queryErr(err))
	}
	return kits, nil
}

func (s *Store) countKits(ctx context.Context, where string, args pgx.NamedArgs) (int, error) {
	delete(args, "limit")
	delete(args, "offset")

	sql := fmt.Sprintf(`SELECT COUNT(*) FROM kits k %s`, where)

	var total int
	if err := s.pool.QueryRow(ctx, sql, args).Scan(&total); err != nil {
		return 0, fmt.Errorf("count kits: %w", queryErr(err))
	}
	return total, nil
}
