package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/vogtools/vogdb/internal/ioblob"
	"github.com/vogtools/vogdb/pkg/blob"
)

func getFetchCmd() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch precomputed artifacts for groups",
		Long: `Fetch reads precomputed per-group artifacts from the flat-file
data tree configured via data.dir. Content goes to stdout
decompressed; with several ids the artifacts are concatenated in the
given order.`,
	}

	fetchCmd.AddCommand(getFetchKindCmd(
		"hmm", "Hidden Markov Model profiles", blob.HMM))
	fetchCmd.AddCommand(getFetchKindCmd(
		"msa", "Multiple sequence alignments", blob.MSA))

	return fetchCmd
}

func getFetchKindCmd(
	use, short string,
	kind blob.Kind,
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(kind, args)
		},
	}
}

func runFetch(kind blob.Kind, ids []string) error {
	reader := ioblob.NewReader(dataDir())

	res, err := reader.FetchBatch(kind, ids)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, id := range ids {
		content, ok := res[id]
		if !ok {
			gn.Warn("No %s artifact for <em>%s</em>, skipping",
				kind.String(), id)
			continue
		}
		fmt.Print(content)
	}
	return nil
}

func dataDir() string {
	return cfg.Data.Dir
}
