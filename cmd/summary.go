package cmd

import (
	"context"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/vogtools/vogdb/pkg/search"
)

func getSummaryCmd() *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Expand identifier lists into full records",
		Long: `Summary takes identifiers, usually piped from a search, and
returns the full records as JSON. Unknown identifiers are skipped with
a warning; a shorter result than the request is not an error.`,
	}

	summaryCmd.AddCommand(getSummaryVOGCmd())
	summaryCmd.AddCommand(getSummarySpeciesCmd())
	summaryCmd.AddCommand(getSummaryProteinCmd())

	return summaryCmd
}

func getSummaryVOGCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vog ID...",
		Short: "Full records of orthologous groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(
				ctx context.Context, s search.Searcher,
			) error {
				recs, err := s.VOGsByIDs(ctx, args)
				if err != nil {
					return err
				}
				warnPartial("groups", len(args), len(recs))
				return printJSON(recs)
			})
		},
	}
}

func getSummarySpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species TAXON_ID...",
		Short: "Full records of species",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseTaxonIDs(args)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			return withEngine(func(
				ctx context.Context, s search.Searcher,
			) error {
				recs, err := s.SpeciesByIDs(ctx, ids)
				if err != nil {
					return err
				}
				warnPartial("species", len(ids), len(recs))
				return printJSON(recs)
			})
		},
	}
}

func getSummaryProteinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protein ID...",
		Short: "Full records of proteins with their species names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(
				ctx context.Context, s search.Searcher,
			) error {
				recs, err := s.ProteinsByIDs(ctx, args)
				if err != nil {
					return err
				}
				warnPartial("proteins", len(args), len(recs))
				return printJSON(recs)
			})
		},
	}
}

// warnPartial reports identifiers the store did not know. Requested
// duplicates can also shrink the result, so the comparison is a
// heuristic, not an exact miss list.
func warnPartial(what string, requested, returned int) {
	if returned >= requested {
		return
	}
	gn.Warn("Returned %s of %s requested %s, unknown ids skipped",
		humanize.Comma(int64(returned)),
		humanize.Comma(int64(requested)), what)
}

func parseTaxonIDs(args []string) ([]int32, error) {
	res := make([]int32, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, NewBadTaxonIDError(arg, err)
		}
		res = append(res, int32(id))
	}
	return res, nil
}
