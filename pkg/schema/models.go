// Package schema provides database schema models for vogdb.
// Models mirror the tables produced by the VOGDB bulk loader; the query
// engine treats all of them as read-only reference data.
package schema

// Species is one viral species known to the database.
type Species struct {
	// TaxonID is the NCBI taxonomy identifier of the species.
	TaxonID int32 `gorm:"column:taxon_id;primaryKey"`

	// Name is the scientific name of the species.
	Name string `gorm:"column:name;type:varchar(255);not null;index"`

	// Phage is true when the species is a bacteriophage.
	Phage bool `gorm:"column:phage;not null"`

	// Source names the sequence archive the species came from
	// (e.g. "NCBI Refseq").
	Source string `gorm:"column:source;type:varchar(100)"`

	// Version is the release version of the source data.
	Version int `gorm:"column:version"`
}

func (Species) TableName() string { return "species" }

// VOG is a viral ortholog group: a cluster of homologous viral
// proteins with aggregate statistics over its members.
type VOG struct {
	// ID is the stable external group identifier (VOG\d+).
	ID string `gorm:"column:id;type:varchar(30);primaryKey"`

	// ProteinCount is the number of member proteins.
	ProteinCount int `gorm:"column:protein_count;not null"`

	// SpeciesCount is the number of distinct member species.
	SpeciesCount int `gorm:"column:species_count;not null"`

	// FunctionalCategory is the coded functional category of the group.
	FunctionalCategory string `gorm:"column:functional_category;type:varchar(30)"`

	// ConsensusFunction is the consensus functional description.
	ConsensusFunction string `gorm:"column:consensus_function;type:varchar(255)"`

	// GenomesInGroup is the number of genomes present in the group.
	GenomesInGroup int `gorm:"column:genomes_in_group"`

	// GenomesTotal is the total number of genomes under the group's
	// last common ancestor.
	GenomesTotal int `gorm:"column:genomes_total_in_lca"`

	// Ancestors is the semicolon-separated lineage of the group's LCA.
	Ancestors string `gorm:"column:ancestors;type:text"`

	// StringencyHigh, StringencyMedium and StringencyLow are the three
	// confidence tiers of virus-specificity classification.
	StringencyHigh   bool `gorm:"column:h_stringency;not null"`
	StringencyMedium bool `gorm:"column:m_stringency;not null"`
	StringencyLow    bool `gorm:"column:l_stringency;not null"`

	// VirusSpecific is the OR of the three stringency flags. The bulk
	// loader derives it at load time; it must never disagree with them.
	VirusSpecific bool `gorm:"column:virus_specific;not null"`

	// PhageClass classifies member species' phage flags:
	// "phages_only", "np_only" or "mixed". Derived at load time.
	PhageClass string `gorm:"column:phages_nonphages;type:varchar(20)"`
}

func (VOG) TableName() string { return "vogs" }

// Protein is a member protein of a VOG. The relational projection
// keeps one row per VOG/protein pair, so a physical protein listed
// under several groups appears as several rows.
type Protein struct {
	// ID is the protein identifier ("<taxon_id>.<protein accession>").
	ID string `gorm:"column:id;type:varchar(50);primaryKey"`

	// VOGID references the group the protein belongs to.
	VOGID string `gorm:"column:vog_id;type:varchar(30);not null;index"`

	// TaxonID references the species the protein belongs to.
	TaxonID int32 `gorm:"column:taxon_id;not null;index"`
}

func (Protein) TableName() string { return "proteins" }

// AASeq is the amino-acid sequence of a protein.
type AASeq struct {
	ID  string `gorm:"column:id;type:varchar(50);primaryKey"`
	Seq string `gorm:"column:seq;type:text"`
}

func (AASeq) TableName() string { return "aa_seqs" }

// NTSeq is the nucleotide sequence of a protein.
type NTSeq struct {
	ID  string `gorm:"column:id;type:varchar(50);primaryKey"`
	Seq string `gorm:"column:seq;type:text"`
}

func (NTSeq) TableName() string { return "nt_seqs" }

// Taxon is one node of the taxonomic hierarchy snapshot. It backs the
// taxonomy capability used for descendant expansion.
type Taxon struct {
	// TaxonID is the NCBI taxonomy identifier of the node.
	TaxonID int32 `gorm:"column:taxon_id;primaryKey"`

	// ParentID is the taxon_id of the parent node; the root points to
	// itself.
	ParentID int32 `gorm:"column:parent_id;not null;index"`

	// Name is the scientific name of the node.
	Name string `gorm:"column:name;type:varchar(255)"`

	// Rank is the taxonomic rank ("species", "genus", ...).
	Rank string `gorm:"column:rank;type:varchar(50)"`
}

func (Taxon) TableName() string { return "taxa" }
