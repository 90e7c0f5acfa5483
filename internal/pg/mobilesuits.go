package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

const mobileSuitSelect = `
	SELECT
		ms.id::text,
		ms.slug,
		ms.name,
		COALESCE(sr.id::text, ''), COALESCE(sr.name, ''),
		COALESCE(ms.description, ''),
		(SELECT COUNT(*) FROM kit_mobile_suits km WHERE km.mobile_suit_id = ms.id)
	FROM mobile_suits ms
	LEFT JOIN series sr ON sr.id = ms.series_id`

// SearchMobileSuits is the direct-database fallback for the cross-entity
// search's mobile suit half.
func (s *Store) SearchMobileSuits(
	ctx context.Context, term string, limit int,
) ([]catalog.SearchableMobileSuit, int, error) {
	term = strings.TrimSpace(term)
	if limit <= 0 {
		return nil, 0, nil
	}

	where := ""
	args := pgx.NamedArgs{"limit": limit}
	if term != "" {
		where = `WHERE ms.name ILIKE '%' || @term || '%' OR ms.description ILIKE '%' || @term || '%'`
		args["term"] = term
	}

	sql := fmt.Sprintf(`%s
	%s
	ORDER BY ms.name ASC
	LIMIT @limit`, mobileSuitSelect, where)

	suits, err := s.queryMobileSuits(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM mobile_suits ms %s`, where)
	delete(args, "limit")

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count mobile suits: %w", queryErr(err))
	}

	return suits, total, nil
}

// AllMobileSuits loads every mobile suit for the index sync.
func (s *Store) AllMobileSuits(ctx context.Context) ([]catalog.SearchableMobileSuit, error) {
	suits, err := s.queryMobileSuits(ctx, mobileSuitSelect, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("load mobile suits: %w", err)
	}
	return suits, nil
}

func (s *Store) queryMobileSuits(
	ctx context.Context, sql string, args pgx.NamedArgs,
) ([]catalog.SearchableMobileSuit, error) {
	rows, err := s.pool.Query(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("query mobile suits: %w", queryErr(err))
	}
	defer rows.Close()

	var suits []catalog.SearchableMobileSuit
	for rows.Next() {
		var ms catalog.SearchableMobileSuit
		if err := rows.Scan(
			&ms.ID, &ms.Slug, &ms.Name,
			&ms.SeriesID, &ms.Series,
			&ms.Description, &ms.KitCount,
		); err != nil {
			return nil, fmt.Errorf("scan mobile suit: %w", err)
		}
		suits = append(suits, ms)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read mobile suits: %w", queryErr(err))
	}
	return suits, nil
}
