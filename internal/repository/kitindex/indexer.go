package kitindex

import (
	"context"
	"errors"
	"fmt"

	"github.com/gunplahub/kitsearch/internal/db"
	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

// indexBatchSize bounds one pipelined HSET round-trip.
const indexBatchSize = 500

// EnsureIndexes creates the FT indexes if they do not exist yet.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	for _, def := range []*db.IndexDefinition{kitsIndexDef(), mobileSuitsIndexDef()} {
		exists, err := r.store.IndexExists(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("check index %s: %w", def.Name, storeErr(err))
		}
		if exists {
			continue
		}
		if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return fmt.Errorf("create index %s: %w", def.Name, storeErr(err))
		}
	}
	return nil
}

// IndexKits writes kit documents in pipelined batches.
func (r *Repo) IndexKits(ctx context.Context, kits []catalog.SearchableKit) error {
	items := make([]db.HashSetItem, 0, len(kits))
	for _, k := range kits {
		items = append(items, db.HashSetItem{
			Key:    docKey(KitsCollection, k.ID),
			Fields: kitToFields(k),
		})
	}
	return r.writeBatches(ctx, items)
}

// IndexMobileSuits writes mobile suit documents in pipelined batches.
func (r *Repo) IndexMobileSuits(ctx context.Context, suits []catalog.SearchableMobileSuit) error {
	items := make([]db.HashSetItem, 0, len(suits))
	for _, ms := range suits {
		items = append(items, db.HashSetItem{
			Key:    docKey(MobileSuitsCollection, ms.ID),
			Fields: mobileSuitToFields(ms),
		})
	}
	return r.writeBatches(ctx, items)
}

func (r *Repo) writeBatches(ctx context.Context, items []db.HashSetItem) error {
	for start := 0; start < len(items); start += indexBatchSize {
		end := start + indexBatchSize
		if end > len(items) {
			end = len(items)
		}
		if err := r.store.HSetMulti(ctx, items[start:end]); err != nil {
			return fmt.Errorf("write document batch: %w", storeErr(err))
		}
	}
	return nil
}

func kitsIndexDef() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     indexName(KitsCollection),
		Prefixes: []string{docKey(KitsCollection, "")},
		Fields: []db.IndexField{
			{Name: fieldText, Type: db.IndexFieldText},
			{Name: fieldName, Type: db.IndexFieldText, Sortable: true},
			{Name: fieldGradeID, Type: db.IndexFieldTag},
			{Name: fieldProductLineID, Type: db.IndexFieldTag},
			{Name: fieldSeriesID, Type: db.IndexFieldTag},
			{Name: fieldReleaseTypeID, Type: db.IndexFieldTag},
			{Name: fieldBaseKitID, Type: db.IndexFieldTag},
			{Name: fieldMobileSuitIDs, Type: db.IndexFieldTag, TagSeparator: tagSeparator},
			{Name: fieldReleaseTS, Type: db.IndexFieldNumeric, Sortable: true},
			{Name: fieldPriceYen, Type: db.IndexFieldNumeric, Sortable: true},
		},
	}
}

func mobileSuitsIndexDef() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     indexName(MobileSuitsCollection),
		Prefixes: []string{docKey(MobileSuitsCollection, "")},
		Fields: []db.IndexField{
			{Name: fieldText, Type: db.IndexFieldText},
			{Name: fieldName, Type: db.IndexFieldText, Sortable: true},
			{Name: fieldSeriesID, Type: db.IndexFieldTag},
		},
	}
}
