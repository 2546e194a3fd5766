package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetStudent(ctx context.Context, id int) (model.Student, error)
	StudentsByIDs(ctx context.Context, ids []int) ([]model.Student, error)
	BooksByIDs(ctx context.Context, ids []int) ([]model.Book, error)

	LedgerSnapshot(ctx context.Context, since time.Time) (engine.Snapshot, error)
	BorrowHistory(ctx context.Context, studentID int) ([]model.Borrow, error)
	PopularBooks(ctx context.Context, limit int) ([]model.PopularBook, error)
	CreateBorrow(ctx context.Context, req model.CreateBorrowRequest, borrowDate time.Time) (model.Borrow, error)
	ReturnBorrow(ctx context.Context, borrowID int, returnDate time.Time) (model.Borrow, error)

	CreateBatch(ctx context.Context, res engine.Result, activate bool) (model.Batch, error)
	SetActive(ctx context.Context, batchID int) error
	GetActiveBatch(ctx context.Context) (model.Batch, error)
	LatestBatch(ctx context.Context) (model.Batch, error)
	ListBatches(ctx context.Context) ([]model.Batch, error)
	GetBatch(ctx context.Context, batchID int) (model.Batch, error)
	GetBatchRules(ctx context.Context, batchID int) ([]model.AssociationRule, error)
	ClusterSizes(ctx context.Context, batchID int) ([]model.ClusterSize, error)
	DeleteBatch(ctx context.Context, batchID int) error
	GetClusterID(ctx context.Context, batchID, studentID int) (int, error)
	FindRules(ctx context.Context, batchID, clusterID int, keys []string) ([]model.AssociationRule, error)
	ImpactedStudents(ctx context.Context, batchID int) ([]int, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName       = `books`
	studentsTableName    = `students`
	borrowsTableName     = `borrows`
	batchesTableName     = `recommendation_batches`
	activeTableName      = `recommendation_active`
	assignmentsTableName = `cluster_assignments`
	rulesTableName       = `association_rules`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	bookColumns    = []string{"id", "title", "author", "published_year", "stock", "cover_image_url"}
	studentColumns = []string{"id", "nisn", "name", "class", "active"}
)

func (r *repository) GetStudent(ctx context.Context, id int) (model.Student, error) {
	query, args, err := qb.Select(studentColumns...).
		From(studentsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Student{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Student{}, err
	}
	defer rows.Close()

	student, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Student{}, errs.ErrNotFound
		}
		return model.Student{}, errors.Wrap(err, "pgx.CollectOneRow")
	}
	return student, nil
}

func (r *repository) StudentsByIDs(ctx context.Context, ids []int) ([]model.Student, error) {
	query, args, err := qb.Select(studentColumns...).
		From(studentsTableName).
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return students, nil
}

// BooksByIDs returns the books in no particular order; unknown ids are skipped.
func (r *repository) BooksByIDs(ctx context.Context, ids []int) ([]model.Book, error) {
	if len(ids) == 0 {
		return []model.Book{}, nil
	}
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return books, nil
}
