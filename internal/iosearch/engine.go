// Package iosearch implements the search.Searcher and
// search.MembershipResolver contracts over the relational store.
// This is an impure I/O package; all predicate logic stays in
// pkg/search, this package only resolves memberships and applies
// compiled condition lists.
package iosearch

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/vogtools/vogdb/pkg/db"
	"github.com/vogtools/vogdb/pkg/schema"
	"github.com/vogtools/vogdb/pkg/search"
	"github.com/vogtools/vogdb/pkg/taxonomy"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// engine implements search.Searcher. It also acts as the
// MembershipResolver injected into its own Compiler, so membership
// queries and final filtered queries share one session source.
type engine struct {
	db       *gorm.DB
	compiler *search.Compiler
	jobs     int
}

// NewEngine creates a query engine over the operator's pool. The
// taxonomy resolver is injected so tests can substitute a fake
// hierarchy; jobs bounds concurrent per-item membership resolution.
func NewEngine(
	op db.Operator,
	taxa taxonomy.Resolver,
	jobs int,
) (search.Searcher, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, NewNotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, NewGORMConnectionError(err)
	}

	if jobs < 1 {
		jobs = 1
	}

	res := &engine{db: gormDB, jobs: jobs}
	res.compiler = search.NewCompiler(taxa, res)
	return res, nil
}

// SearchSpecies returns taxon ids of species matching the criteria,
// ascending.
func (e *engine) SearchSpecies(
	ctx context.Context,
	cr search.SpeciesCriteria,
) ([]int32, error) {
	sid := uuid.New().String()
	slog.Info("Searching species", "search_id", sid)

	conds, err := e.compiler.CompileSpecies(ctx, cr)
	if err != nil {
		return nil, err
	}

	q := e.applyConditions(
		e.db.WithContext(ctx).Model(&schema.Species{}), conds)

	var ids []int32
	err = q.Order("taxon_id").Pluck("taxon_id", &ids).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}

	slog.Info("Species search done",
		"search_id", sid, "count", len(ids))
	return ids, nil
}

// SearchVOGs returns ids of groups matching the criteria, ascending.
func (e *engine) SearchVOGs(
	ctx context.Context,
	cr search.VOGCriteria,
) ([]string, error) {
	sid := uuid.New().String()
	slog.Info("Searching VOGs", "search_id", sid, "mode", cr.Mode.String())

	conds, err := e.compiler.CompileVOG(ctx, cr)
	if err != nil {
		return nil, err
	}

	q := e.applyConditions(
		e.db.WithContext(ctx).Model(&schema.VOG{}), conds)

	var ids []string
	err = q.Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}

	slog.Info("VOG search done", "search_id", sid, "count", len(ids))
	return ids, nil
}

// SearchProteins returns ids of proteins matching the criteria,
// ascending.
func (e *engine) SearchProteins(
	ctx context.Context,
	cr search.ProteinCriteria,
) ([]string, error) {
	sid := uuid.New().String()
	slog.Info("Searching proteins", "search_id", sid)

	conds, err := e.compiler.CompileProteins(ctx, cr)
	if err != nil {
		return nil, err
	}

	q := e.applyConditions(
		e.db.WithContext(ctx).Model(&schema.Protein{}), conds)

	var ids []string
	err = q.Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, search.NewStoreError(err)
	}

	slog.Info("Protein search done",
		"search_id", sid, "count", len(ids))
	return ids, nil
}

// applyConditions conjoins compiled conditions. No predicate logic
// lives here.
func (e *engine) applyConditions(
	q *gorm.DB,
	conds []search.Condition,
) *gorm.DB {
	for _, c := range conds {
		q = q.Where(c.Query, c.Args...)
	}
	return q
}
