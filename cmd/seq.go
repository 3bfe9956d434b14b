package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vogtools/vogdb/pkg/search"
)

func getSeqCmd() *cobra.Command {
	seqCmd := &cobra.Command{
		Use:   "seq",
		Short: "Fetch protein sequences",
		Long: `Seq returns sequences for protein identifiers in FASTA format.
Unknown identifiers are skipped with a warning.`,
	}

	seqCmd.AddCommand(getSeqAACmd())
	seqCmd.AddCommand(getSeqNTCmd())

	return seqCmd
}

func getSeqAACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aa ID...",
		Short: "Amino-acid sequences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(
				ctx context.Context, s search.Searcher,
			) error {
				recs, err := s.AASeqsByIDs(ctx, args)
				if err != nil {
					return err
				}
				warnPartial("sequences", len(args), len(recs))
				for _, rec := range recs {
					printFasta(rec.ID, rec.Seq)
				}
				return nil
			})
		},
	}
}

func getSeqNTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nt ID...",
		Short: "Nucleotide sequences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(
				ctx context.Context, s search.Searcher,
			) error {
				recs, err := s.NTSeqsByIDs(ctx, args)
				if err != nil {
					return err
				}
				warnPartial("sequences", len(args), len(recs))
				for _, rec := range recs {
					printFasta(rec.ID, rec.Seq)
				}
				return nil
			})
		},
	}
}

func printFasta(id, seq string) {
	fmt.Printf(">%s\n%s\n", id, seq)
}
