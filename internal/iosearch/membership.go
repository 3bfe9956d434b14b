package iosearch

import (
	"context"

	"github.com/vogtools/vogdb/pkg/schema"
	"github.com/vogtools/vogdb/pkg/search"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// VOGsBySpecies resolves group ids whose member proteins belong to
// species matching each name, one membership set per name, combined
// according to mode. Name matching is a case-insensitive substring
// match, so one name can cover several species.
func (e *engine) VOGsBySpecies(
	ctx context.Context,
	names []string,
	mode search.CombinationMode,
) ([]string, error) {
	sets, err := e.resolveSets(ctx, len(names),
		func(ctx context.Context, i int) ([]string, error) {
			return e.pluckVOGs(
				e.db.WithContext(ctx).
					Model(&schema.Protein{}).
					Joins("JOIN species ON species.taxon_id = proteins.taxon_id").
					Where("species.name ILIKE ?", "%"+names[i]+"%"),
			)
		})
	if err != nil {
		return nil, err
	}
	return combineSets(sets, mode), nil
}

// VOGsByTaxa resolves group ids whose member proteins fall under each
// expanded taxon, one membership set per original taxon, combined
// according to mode. Descendant expansion already happened in the
// compiler, so within one set the descendant ids are a plain union.
func (e *engine) VOGsByTaxa(
	ctx context.Context,
	sets []search.TaxonSet,
	mode search.CombinationMode,
) ([]string, error) {
	vogSets, err := e.resolveSets(ctx, len(sets),
		func(ctx context.Context, i int) ([]string, error) {
			return e.pluckVOGs(
				e.db.WithContext(ctx).
					Model(&schema.Protein{}).
					Where("proteins.taxon_id IN ?", sets[i].Descendants),
			)
		})
	if err != nil {
		return nil, err
	}
	return combineSets(vogSets, mode), nil
}

// VOGsByProteins resolves group ids containing any of the given
// proteins. A protein belongs to exactly one group, so the result is
// always a union.
func (e *engine) VOGsByProteins(
	ctx context.Context,
	proteinIDs []string,
) ([]string, error) {
	ids, err := e.pluckVOGs(
		e.db.WithContext(ctx).
			Model(&schema.Protein{}).
			Where("proteins.id IN ?", proteinIDs),
	)
	if err != nil {
		return nil, err
	}
	return combineSets([]stringSet{toSet(ids)}, search.ModeUnion), nil
}

// ProteinsBySpecies resolves protein ids of species matching any of
// the given names. Names are always unioned for protein searches.
func (e *engine) ProteinsBySpecies(
	ctx context.Context,
	names []string,
) ([]string, error) {
	sets, err := e.resolveSets(ctx, len(names),
		func(ctx context.Context, i int) ([]string, error) {
			var ids []string
			err := e.db.WithContext(ctx).
				Model(&schema.Protein{}).
				Joins("JOIN species ON species.taxon_id = proteins.taxon_id").
				Where("species.name ILIKE ?", "%"+names[i]+"%").
				Distinct().
				Pluck("proteins.id", &ids).Error
			if err != nil {
				return nil, search.NewStoreError(err)
			}
			return ids, nil
		})
	if err != nil {
		return nil, err
	}
	return combineSets(sets, search.ModeUnion), nil
}

// resolveSets runs one membership query per item, bounded by the
// configured jobs number, and returns the per-item id sets in input
// order. Order matters only for determinism of error reporting; the
// combine step is commutative.
func (e *engine) resolveSets(
	ctx context.Context,
	n int,
	query func(ctx context.Context, i int) ([]string, error),
) ([]stringSet, error) {
	sets := make([]stringSet, n)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i := range n {
		g.Go(func() error {
			ids, err := query(gCtx, i)
			if err != nil {
				return err
			}
			sets[i] = toSet(ids)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

func (e *engine) pluckVOGs(q *gorm.DB) ([]string, error) {
	var ids []string
	err := q.Distinct().Pluck("proteins.vog_id", &ids).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}
	return ids, nil
}
