package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/vogtools/vogdb/pkg/search"
)

func getSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search the release by typed filter criteria",
		Long: `Search returns ordered identifier lists for one entity type.

Every flag adds one filter; filters combine with AND unless --union is
given for membership filters of the vog subcommand. Results go to
stdout as JSON, sorted by identifier.`,
	}

	searchCmd.AddCommand(getSearchVOGCmd())
	searchCmd.AddCommand(getSearchSpeciesCmd())
	searchCmd.AddCommand(getSearchProteinCmd())

	return searchCmd
}

func getSearchVOGCmd() *cobra.Command {
	vogCmd := &cobra.Command{
		Use:   "vog",
		Short: "Search orthologous groups",
		Long: `Search orthologous groups by attributes and membership.

Attribute filters match columns of the group itself. Membership
filters (--protein, --species, --taxon-id) resolve to group id sets
first; --union switches species and taxonomy membership from
intersection to union semantics.

Examples:
  vogdb search vog --species "Escherichia" --high-stringency
  vogdb search vog --taxon-id 10239 --protein-count-min 5
  vogdb search vog --species "T4" --species "lambda" --union`,
		RunE: runSearchVOG,
	}

	f := vogCmd.Flags()
	f.StringSlice("id", nil, "group identifier")
	f.Int("protein-count-min", 0, "minimal number of member proteins")
	f.Int("protein-count-max", 0, "maximal number of member proteins")
	f.Int("species-count-min", 0, "minimal number of member species")
	f.Int("species-count-max", 0, "maximal number of member species")
	f.Int("genomes-total-min", 0,
		"minimal number of genomes in the group's ancestral clade")
	f.Int("genomes-total-max", 0,
		"maximal number of genomes in the group's ancestral clade")
	f.Int("genomes-in-group-min", 0,
		"minimal number of genomes represented in the group")
	f.Int("genomes-in-group-max", 0,
		"maximal number of genomes represented in the group")
	f.StringSlice("function", nil, "functional category substring")
	f.StringSlice("consensus-function", nil,
		"consensus functional description substring")
	f.StringSlice("ancestor", nil, "ancestral lineage substring")
	f.Bool("high-stringency", false,
		"all members are in the majority of the clade's genomes")
	f.Bool("medium-stringency", false, "medium stringency membership")
	f.Bool("low-stringency", false, "low stringency membership")
	f.Bool("virus-specific", false, "group is specific to viruses")
	f.String("phage-class", "", "phage composition class")
	f.StringSlice("protein", nil, "member protein identifier")
	f.StringSlice("species", nil, "member species name substring")
	f.Int32Slice("taxon-id", nil,
		"taxonomy id, expanded to all descendants")
	f.Bool("union", false,
		"combine species and taxonomy membership sets with union")

	return vogCmd
}

func runSearchVOG(cmd *cobra.Command, _ []string) error {
	cr := search.VOGCriteria{
		ProteinCount: rangeFlag(cmd,
			"protein-count-min", "protein-count-max"),
		SpeciesCount: rangeFlag(cmd,
			"species-count-min", "species-count-max"),
		GenomesTotal: rangeFlag(cmd,
			"genomes-total-min", "genomes-total-max"),
		GenomesInGroup: rangeFlag(cmd,
			"genomes-in-group-min", "genomes-in-group-max"),
		StringencyHigh:   boolFlag(cmd, "high-stringency"),
		StringencyMedium: boolFlag(cmd, "medium-stringency"),
		StringencyLow:    boolFlag(cmd, "low-stringency"),
		VirusSpecific:    boolFlag(cmd, "virus-specific"),
		PhageClass:       stringFlag(cmd, "phage-class"),
	}
	cr.IDs, _ = cmd.Flags().GetStringSlice("id")
	cr.FunctionalCategories, _ = cmd.Flags().GetStringSlice("function")
	cr.ConsensusFunctions, _ =
		cmd.Flags().GetStringSlice("consensus-function")
	cr.Ancestors, _ = cmd.Flags().GetStringSlice("ancestor")
	cr.ProteinIDs, _ = cmd.Flags().GetStringSlice("protein")
	cr.SpeciesNames, _ = cmd.Flags().GetStringSlice("species")
	cr.TaxonIDs, _ = cmd.Flags().GetInt32Slice("taxon-id")

	if union, _ := cmd.Flags().GetBool("union"); union {
		cr.Mode = search.ModeUnion
	}

	return withEngine(func(ctx context.Context, s search.Searcher) error {
		ids, err := s.SearchVOGs(ctx, cr)
		if err != nil {
			return err
		}
		gn.Info("Matched <em>%s</em> groups",
			humanize.Comma(int64(len(ids))))
		return printJSON(ids)
	})
}

func getSearchSpeciesCmd() *cobra.Command {
	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "Search species",
		Long: `Search species by taxonomy id, name substring, phage flag,
source database and release version.

Examples:
  vogdb search species --name "coli"
  vogdb search species --phage=false --source RefSeq`,
		RunE: runSearchSpecies,
	}

	f := speciesCmd.Flags()
	f.Int32Slice("taxon-id", nil, "exact species taxonomy id")
	f.String("name", "", "species name substring")
	f.Bool("phage", false, "species is a phage")
	f.String("source", "", "source database substring")
	f.Int("version", 0, "release version of the record")

	return speciesCmd
}

func runSearchSpecies(cmd *cobra.Command, _ []string) error {
	cr := search.SpeciesCriteria{
		Name:    stringFlag(cmd, "name"),
		Phage:   boolFlag(cmd, "phage"),
		Source:  stringFlag(cmd, "source"),
		Version: intFlag(cmd, "version"),
	}
	cr.TaxonIDs, _ = cmd.Flags().GetInt32Slice("taxon-id")

	return withEngine(func(ctx context.Context, s search.Searcher) error {
		ids, err := s.SearchSpecies(ctx, cr)
		if err != nil {
			return err
		}
		gn.Info("Matched <em>%s</em> species",
			humanize.Comma(int64(len(ids))))
		return printJSON(ids)
	})
}

func getSearchProteinCmd() *cobra.Command {
	proteinCmd := &cobra.Command{
		Use:   "protein",
		Short: "Search proteins",
		Long: `Search proteins by species name, taxonomy id or group
membership. Multiple species names are unioned; the other filters
combine with AND.

Examples:
  vogdb search protein --vog VOG00001
  vogdb search protein --species "T4" --species "lambda"`,
		RunE: runSearchProtein,
	}

	f := proteinCmd.Flags()
	f.StringSlice("species", nil, "species name substring")
	f.Int32Slice("taxon-id", nil, "exact species taxonomy id")
	f.StringSlice("vog", nil, "group identifier the protein belongs to")

	return proteinCmd
}

func runSearchProtein(cmd *cobra.Command, _ []string) error {
	var cr search.ProteinCriteria
	cr.SpeciesNames, _ = cmd.Flags().GetStringSlice("species")
	cr.TaxonIDs, _ = cmd.Flags().GetInt32Slice("taxon-id")
	cr.VOGIDs, _ = cmd.Flags().GetStringSlice("vog")

	return withEngine(func(ctx context.Context, s search.Searcher) error {
		ids, err := s.SearchProteins(ctx, cr)
		if err != nil {
			return err
		}
		gn.Info("Matched <em>%s</em> proteins",
			humanize.Comma(int64(len(ids))))
		return printJSON(ids)
	})
}
