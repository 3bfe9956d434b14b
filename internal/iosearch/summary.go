package iosearch

import (
	"context"

	"github.com/vogtools/vogdb/pkg/schema"
	"github.com/vogtools/vogdb/pkg/search"
)

// SpeciesByIDs returns full species records for the listed taxon ids,
// ordered by taxon id. Unknown ids are absorbed silently.
func (e *engine) SpeciesByIDs(
	ctx context.Context,
	taxonIDs []int32,
) ([]schema.Species, error) {
	if len(taxonIDs) == 0 {
		return nil, search.NewNoIdentifiersError()
	}

	var res []schema.Species
	err := e.db.WithContext(ctx).
		Where("taxon_id IN ?", taxonIDs).
		Order("taxon_id").
		Find(&res).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}
	return res, nil
}

// VOGsByIDs returns full group records for the listed ids, ordered by
// id.
func (e *engine) VOGsByIDs(
	ctx context.Context,
	ids []string,
) ([]schema.VOG, error) {
	if len(ids) == 0 {
		return nil, search.NewNoIdentifiersError()
	}

	var res []schema.VOG
	err := e.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&res).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}
	return res, nil
}

// ProteinsByIDs returns protein records joined with species names,
// ordered by protein id.
func (e *engine) ProteinsByIDs(
	ctx context.Context,
	ids []string,
) ([]search.ProteinSummary, error) {
	if len(ids) == 0 {
		return nil, search.NewNoIdentifiersError()
	}

	var res []search.ProteinSummary
	err := e.db.WithContext(ctx).
		Model(&schema.Protein{}).
		Select("proteins.id, proteins.vog_id, proteins.taxon_id, " +
			"species.name AS species_name").
		Joins("JOIN species ON species.taxon_id = proteins.taxon_id").
		Where("proteins.id IN ?", ids).
		Order("proteins.id").
		Scan(&res).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}
	return res, nil
}

// AASeqsByIDs returns amino-acid sequences for the listed protein
// ids, ordered by id.
func (e *engine) AASeqsByIDs(
	ctx context.Context,
	ids []string,
) ([]schema.AASeq, error) {
	if len(ids) == 0 {
		return nil, search.NewNoIdentifiersError()
	}

	var res []schema.AASeq
	err := e.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&res).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}
	return res, nil
}

// NTSeqsByIDs returns nucleotide sequences for the listed protein
// ids, ordered by id.
func (e *engine) NTSeqsByIDs(
	ctx context.Context,
	ids []string,
) ([]schema.NTSeq, error) {
	if len(ids) == 0 {
		return nil, search.NewNoIdentifiersError()
	}

	var res []schema.NTSeq
	err := e.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&res).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}
	return res, nil
}
