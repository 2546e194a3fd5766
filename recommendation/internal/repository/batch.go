package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

var batchColumns = []string{
	"b.id", "b.generated_at", "(a.batch_id is not null) as is_active",
	"b.cluster_count", "b.student_count", "b.transaction_count", "b.rule_count",
	"b.min_support", "b.min_confidence",
}

var ruleColumns = []string{"cluster_id", "antecedent", "antecedent_key", "consequent", "support", "confidence"}

func batchQuery() sq.SelectBuilder {
	return qb.Select(batchColumns...).
		From(batchesTableName + " b").
		LeftJoin(activeTableName + " a on a.batch_id = b.id")
}

// CreateBatch stores the whole result in one transaction and, when activate is
// set, points the active batch at it before committing.
func (r *repository) CreateBatch(ctx context.Context, res engine.Result, activate bool) (model.Batch, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Batch{}, errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	q := `
insert into recommendation_batches
    (generated_at, cluster_count, student_count, transaction_count, rule_count, min_support, min_confidence)
values (@generated_at, @cluster_count, @student_count, @transaction_count, @rule_count, @min_support, @min_confidence)
returning id`
	args := pgx.NamedArgs{
		"generated_at":      res.GeneratedAt,
		"cluster_count":     res.ClusterCount,
		"student_count":     res.StudentCount,
		"transaction_count": res.TransactionCount,
		"rule_count":        len(res.Rules),
		"min_support":       res.Params.Mining.MinSupport,
		"min_confidence":    res.Params.Mining.MinConfidence,
	}
	var batchID int
	if err = tx.QueryRow(ctx, q, args).Scan(&batchID); err != nil {
		return model.Batch{}, errors.Wrap(err, "insert batch")
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{assignmentsTableName},
		[]string{"batch_id", "student_id", "cluster_id"},
		pgx.CopyFromSlice(len(res.Assignments), func(i int) ([]any, error) {
			a := res.Assignments[i]
			return []any{batchID, a.StudentID, a.ClusterID}, nil
		}),
	)
	if err != nil {
		return model.Batch{}, errors.Wrap(err, "copy assignments")
	}
	r.log.Debug("CreateBatch assignments", zap.Int("batch", batchID), zap.Int64("rows", n))

	n, err = tx.CopyFrom(ctx,
		pgx.Identifier{rulesTableName},
		[]string{"batch_id", "cluster_id", "antecedent", "antecedent_key", "consequent", "support", "confidence"},
		pgx.CopyFromSlice(len(res.Rules), func(i int) ([]any, error) {
			rule := res.Rules[i]
			return []any{batchID, rule.ClusterID, rule.Antecedent, rule.Key(), rule.Consequent, rule.Support, rule.Confidence}, nil
		}),
	)
	if err != nil {
		return model.Batch{}, errors.Wrap(err, "copy rules")
	}
	r.log.Debug("CreateBatch rules", zap.Int("batch", batchID), zap.Int64("rows", n))

	if activate {
		if err = setActive(ctx, tx, batchID); err != nil {
			return model.Batch{}, err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return model.Batch{}, errors.Wrap(err, "commit")
	}

	return model.Batch{
		ID:               batchID,
		GeneratedAt:      res.GeneratedAt,
		IsActive:         activate,
		ClusterCount:     res.ClusterCount,
		StudentCount:     res.StudentCount,
		TransactionCount: res.TransactionCount,
		RuleCount:        len(res.Rules),
		MinSupport:       res.Params.Mining.MinSupport,
		MinConfidence:    res.Params.Mining.MinConfidence,
	}, nil
}

func (r *repository) SetActive(ctx context.Context, batchID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err = setActive(ctx, tx, batchID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// setActive swaps the single active pointer. A batch deleted concurrently
// fails the foreign key and is reported as not found.
func setActive(ctx context.Context, tx pgx.Tx, batchID int) error {
	q := `
insert into recommendation_active (singleton, batch_id) values (true, @batch_id)
on conflict (singleton) do update set batch_id = excluded.batch_id`
	if _, err := tx.Exec(ctx, q, pgx.NamedArgs{"batch_id": batchID}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errs.ErrNotFound
		}
		return errors.Wrap(err, "set active")
	}
	return nil
}

func (r *repository) GetActiveBatch(ctx context.Context) (model.Batch, error) {
	query, args, err := qb.Select(batchColumns...).
		From(activeTableName + " a").
		Join(batchesTableName + " b on b.id = a.batch_id").
		ToSql()
	if err != nil {
		return model.Batch{}, err
	}
	return r.oneBatch(ctx, query, args)
}

func (r *repository) LatestBatch(ctx context.Context) (model.Batch, error) {
	query, args, err := batchQuery().
		OrderBy("b.generated_at desc", "b.id desc").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Batch{}, err
	}
	return r.oneBatch(ctx, query, args)
}

func (r *repository) GetBatch(ctx context.Context, batchID int) (model.Batch, error) {
	query, args, err := batchQuery().
		Where(sq.Eq{"b.id": batchID}).
		ToSql()
	if err != nil {
		return model.Batch{}, err
	}
	return r.oneBatch(ctx, query, args)
}

func (r *repository) oneBatch(ctx context.Context, query string, args []any) (model.Batch, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Batch{}, err
	}
	defer rows.Close()

	batch, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Batch])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Batch{}, errs.ErrNotFound
		}
		return model.Batch{}, errors.Wrap(err, "pgx.CollectOneRow")
	}
	return batch, nil
}

func (r *repository) ListBatches(ctx context.Context) ([]model.Batch, error) {
	query, args, err := batchQuery().
		OrderBy("b.generated_at desc", "b.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Batch])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return batches, nil
}

func (r *repository) GetBatchRules(ctx context.Context, batchID int) ([]model.AssociationRule, error) {
	query, args, err := qb.Select(ruleColumns...).
		From(rulesTableName).
		Where(sq.Eq{"batch_id": batchID}).
		OrderBy("cluster_id", "cardinality(antecedent)", "antecedent_key").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.rules(ctx, query, args)
}

// FindRules returns the rules of one cluster whose antecedent key is in keys.
func (r *repository) FindRules(ctx context.Context, batchID, clusterID int, keys []string) ([]model.AssociationRule, error) {
	if len(keys) == 0 {
		return []model.AssociationRule{}, nil
	}
	query, args, err := qb.Select(ruleColumns...).
		From(rulesTableName).
		Where(sq.Eq{"batch_id": batchID, "cluster_id": clusterID, "antecedent_key": keys}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.rules(ctx, query, args)
}

func (r *repository) rules(ctx context.Context, query string, args []any) ([]model.AssociationRule, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.AssociationRule])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return rules, nil
}

func (r *repository) ClusterSizes(ctx context.Context, batchID int) ([]model.ClusterSize, error) {
	query, args, err := qb.Select("cluster_id", "count(*) as students").
		From(assignmentsTableName).
		Where(sq.Eq{"batch_id": batchID}).
		GroupBy("cluster_id").
		OrderBy("cluster_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ClusterSize])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return sizes, nil
}

// DeleteBatch removes the batch with its rules and assignments. Deleting the
// active batch clears the active pointer.
func (r *repository) DeleteBatch(ctx context.Context, batchID int) error {
	query, args, err := qb.Delete(batchesTableName).
		Where(sq.Eq{"id": batchID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetClusterID(ctx context.Context, batchID, studentID int) (int, error) {
	query, args, err := qb.Select("cluster_id").
		From(assignmentsTableName).
		Where(sq.Eq{"batch_id": batchID, "student_id": studentID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var clusterID int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&clusterID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return clusterID, nil
}

// ImpactedStudents lists the students who borrowed any antecedent book of
// the batch, i.e. the students the batch can recommend to.
func (r *repository) ImpactedStudents(ctx context.Context, batchID int) ([]int, error) {
	q := `
select distinct br.student_id
from borrows br
where br.book_id in (select unnest(antecedent) from association_rules where batch_id = @batch_id)
order by br.student_id`
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"batch_id": batchID})
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return ids, nil
}
