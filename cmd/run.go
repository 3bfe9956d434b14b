package cmd

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"github.com/vogtools/vogdb/internal/iodb"
	"github.com/vogtools/vogdb/internal/iosearch"
	"github.com/vogtools/vogdb/internal/iotaxa"
	"github.com/vogtools/vogdb/pkg/search"
)

// withEngine connects the database operator, wires the taxonomy
// resolver and query engine over it, and runs fn. The connection is
// scoped to one command invocation.
func withEngine(
	fn func(ctx context.Context, s search.Searcher) error,
) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	taxa := iotaxa.NewResolver(op)
	eng, err := iosearch.NewEngine(op, taxa, cfg.JobsNumber)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err := fn(ctx, eng); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

// printJSON writes the result to stdout as pretty JSON. Results go to
// stdout, messages and logs elsewhere, so output stays pipeable.
func printJSON(obj any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(obj)
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}

// flag helpers for tri-state criteria: a field is only set when its
// flag was given explicitly, so false and 0 stay distinguishable from
// "not filtered".

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func rangeFlag(cmd *cobra.Command, minName, maxName string) search.Range {
	return search.Range{
		Min: intFlag(cmd, minName),
		Max: intFlag(cmd, maxName),
	}
}
