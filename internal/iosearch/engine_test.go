package iosearch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogtools/vogdb/internal/iodb"
	"github.com/vogtools/vogdb/internal/ioschema"
	"github.com/vogtools/vogdb/internal/iosearch"
	"github.com/vogtools/vogdb/internal/iotaxa"
	"github.com/vogtools/vogdb/internal/iotesting"
	"github.com/vogtools/vogdb/pkg/search"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// setupEngine creates a fresh schema in the test database, loads a
// small fixture and returns a query engine over it.
//
// Fixture layout:
//
//	taxa:    10239 (root) > 28883 > {101, 102}; 10239 > 103
//	species: 101 T4 (phage), 102 Lambda (phage), 103 Zika (not phage)
//	VOG0001: proteins of 101 and 102, high stringency, phages_only
//	VOG0002: one protein of 101, low stringency, phages_only
//	VOG0003: one protein of 103, not virus specific, np_only
func setupEngine(t *testing.T) search.Searcher {
	t.Helper()

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	t.Cleanup(func() { op.Close() })

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx))

	pool := op.Pool()
	stmts := []string{
		`INSERT INTO taxa (taxon_id, parent_id, name, rank) VALUES
			(10239, 10239, 'Viruses', 'superkingdom'),
			(28883, 10239, 'Caudoviricetes', 'class'),
			(101, 28883, 'Escherichia virus T4', 'species'),
			(102, 28883, 'Escherichia virus Lambda', 'species'),
			(103, 10239, 'Zika virus', 'species')`,
		`INSERT INTO species (taxon_id, name, phage, source, version) VALUES
			(101, 'Escherichia virus T4', true, 'NCBI Refseq', 220),
			(102, 'Escherichia virus Lambda', true, 'NCBI Refseq', 220),
			(103, 'Zika virus', false, 'NCBI Refseq', 220)`,
		`INSERT INTO vogs (id, protein_count, species_count,
			functional_category, consensus_function, genomes_in_group,
			genomes_total_in_lca, ancestors, h_stringency, m_stringency,
			l_stringency, virus_specific, phages_nonphages) VALUES
			('VOG0001', 2, 2, 'Xr', 'tail fiber protein', 2, 10,
				'Viruses;Caudoviricetes', true, true, true, true,
				'phages_only'),
			('VOG0002', 1, 1, 'Xu', 'hypothetical protein', 1, 10,
				'Viruses;Caudoviricetes', false, false, true, true,
				'phages_only'),
			('VOG0003', 1, 1, 'Xs', 'envelope protein', 1, 4,
				'Viruses;Riboviria', false, false, false, false,
				'np_only')`,
		`INSERT INTO proteins (id, vog_id, taxon_id) VALUES
			('101.P1', 'VOG0001', 101),
			('102.P2', 'VOG0001', 102),
			('101.P3', 'VOG0002', 101),
			('103.P4', 'VOG0003', 103)`,
		`INSERT INTO aa_seqs (id, seq) VALUES
			('101.P1', 'MKTAYIAK'), ('102.P2', 'MKVLWAAL')`,
		`INSERT INTO nt_seqs (id, seq) VALUES
			('101.P1', 'ATGAAAACC')`,
	}
	for _, stmt := range stmts {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	eng, err := iosearch.NewEngine(op, iotaxa.NewResolver(op), 2)
	require.NoError(t, err)
	return eng
}

func TestSearchVOGs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	eng := setupEngine(t)
	ctx := context.Background()

	tests := []struct {
		msg string
		cr  search.VOGCriteria
		res []string
	}{
		{
			msg: "no criteria match all, ordered",
			res: []string{"VOG0001", "VOG0002", "VOG0003"},
		},
		{
			msg: "protein count range",
			cr: search.VOGCriteria{
				ProteinCount: search.Range{Min: intPtr(2)},
			},
			res: []string{"VOG0001"},
		},
		{
			msg: "consensus function substring",
			cr: search.VOGCriteria{
				ConsensusFunctions: []string{"TAIL"},
			},
			res: []string{"VOG0001"},
		},
		{
			msg: "stringency flag",
			cr: search.VOGCriteria{
				StringencyHigh: boolPtr(false),
			},
			res: []string{"VOG0002", "VOG0003"},
		},
		{
			msg: "phage class",
			cr: search.VOGCriteria{
				PhageClass: strPtr("np_only"),
			},
			res: []string{"VOG0003"},
		},
		{
			msg: "species intersection",
			cr: search.VOGCriteria{
				SpeciesNames: []string{"T4", "Lambda"},
			},
			res: []string{"VOG0001"},
		},
		{
			msg: "species union",
			cr: search.VOGCriteria{
				SpeciesNames: []string{"Lambda", "Zika"},
				Mode:         search.ModeUnion,
			},
			res: []string{"VOG0001", "VOG0003"},
		},
		{
			msg: "taxon expands to descendants",
			cr: search.VOGCriteria{
				TaxonIDs: []int32{28883},
			},
			res: []string{"VOG0001", "VOG0002"},
		},
		{
			msg: "two-taxon intersection needs members under both",
			cr: search.VOGCriteria{
				TaxonIDs: []int32{10239, 28883},
			},
			res: []string{"VOG0001", "VOG0002"},
		},
		{
			msg: "disjoint branches intersect to nothing",
			cr: search.VOGCriteria{
				TaxonIDs: []int32{28883, 103},
			},
			res: []string{},
		},
		{
			msg: "disjoint branches union",
			cr: search.VOGCriteria{
				TaxonIDs: []int32{28883, 103},
				Mode:     search.ModeUnion,
			},
			res: []string{"VOG0001", "VOG0002", "VOG0003"},
		},
		{
			msg: "protein membership",
			cr: search.VOGCriteria{
				ProteinIDs: []string{"101.P3", "103.P4"},
			},
			res: []string{"VOG0002", "VOG0003"},
		},
		{
			msg: "membership conjoined with columns",
			cr: search.VOGCriteria{
				SpeciesNames:   []string{"Escherichia"},
				StringencyHigh: boolPtr(true),
			},
			res: []string{"VOG0001"},
		},
		{
			msg: "no matches is not an error",
			cr: search.VOGCriteria{
				FunctionalCategories: []string{"nothing like this"},
			},
			res: []string{},
		},
	}

	for _, v := range tests {
		res, err := eng.SearchVOGs(ctx, v.cr)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestSearchVOGsInvalidTaxon(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	eng := setupEngine(t)

	cr := search.VOGCriteria{TaxonIDs: []int32{424242}}
	_, err := eng.SearchVOGs(context.Background(), cr)

	var invalid search.InvalidTaxonError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, int32(424242), invalid.TaxonID)
}

func TestSearchSpecies(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	eng := setupEngine(t)
	ctx := context.Background()

	tests := []struct {
		msg string
		cr  search.SpeciesCriteria
		res []int32
	}{
		{
			msg: "name substring is case-insensitive",
			cr:  search.SpeciesCriteria{Name: strPtr("escherichia")},
			res: []int32{101, 102},
		},
		{
			msg: "phage flag",
			cr:  search.SpeciesCriteria{Phage: boolPtr(false)},
			res: []int32{103},
		},
		{
			msg: "taxon ids are exact, no expansion",
			cr:  search.SpeciesCriteria{TaxonIDs: []int32{102, 103}},
			res: []int32{102, 103},
		},
	}

	for _, v := range tests {
		res, err := eng.SearchSpecies(ctx, v.cr)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestSearchProteins(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	eng := setupEngine(t)
	ctx := context.Background()

	tests := []struct {
		msg string
		cr  search.ProteinCriteria
		res []string
	}{
		{
			msg: "by group",
			cr:  search.ProteinCriteria{VOGIDs: []string{"VOG0001"}},
			res: []string{"101.P1", "102.P2"},
		},
		{
			msg: "species names union",
			cr: search.ProteinCriteria{
				SpeciesNames: []string{"Lambda", "Zika"},
			},
			res: []string{"102.P2", "103.P4"},
		},
		{
			msg: "conjoined filters",
			cr: search.ProteinCriteria{
				SpeciesNames: []string{"Escherichia"},
				VOGIDs:       []string{"VOG0002"},
			},
			res: []string{"101.P3"},
		},
	}

	for _, v := range tests {
		res, err := eng.SearchProteins(ctx, v.cr)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestSummaries(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	eng := setupEngine(t)
	ctx := context.Background()

	t.Run("species records", func(t *testing.T) {
		recs, err := eng.SpeciesByIDs(ctx, []int32{103, 101})
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Escherichia virus T4", recs[0].Name)
		assert.Equal(t, "Zika virus", recs[1].Name)
	})

	t.Run("unknown ids are absorbed", func(t *testing.T) {
		recs, err := eng.VOGsByIDs(ctx, []string{"VOG0001", "VOG9999"})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "VOG0001", recs[0].ID)
	})

	t.Run("proteins join species names", func(t *testing.T) {
		recs, err := eng.ProteinsByIDs(ctx, []string{"102.P2"})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "VOG0001", recs[0].VOGID)
		assert.Equal(t, "Escherichia virus Lambda", recs[0].SpeciesName)
	})

	t.Run("empty id list fails", func(t *testing.T) {
		_, err := eng.SpeciesByIDs(ctx, nil)

		var noIDs search.NoIdentifiersError
		require.ErrorAs(t, err, &noIDs)
	})

	t.Run("sequences", func(t *testing.T) {
		aa, err := eng.AASeqsByIDs(ctx, []string{"101.P1", "102.P2"})
		require.NoError(t, err)
		require.Len(t, aa, 2)
		assert.Equal(t, "MKTAYIAK", aa[0].Seq)

		nt, err := eng.NTSeqsByIDs(ctx, []string{"101.P1", "102.P2"})
		require.NoError(t, err)
		// Only one protein has a nucleotide sequence.
		require.Len(t, nt, 1)
		assert.Equal(t, "ATGAAAACC", nt[0].Seq)
	})
}
