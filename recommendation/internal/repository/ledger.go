package repository

import (
	"context"
	"time"

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

var borrowColumns = []string{"id", "student_id", "book_id", "borrow_date", "due_date", "return_date"}

// LedgerSnapshot reads the active students and their borrows in one
// repeatable-read transaction. A zero since means all history.
func (r *repository) LedgerSnapshot(ctx context.Context, since time.Time) (engine.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query, args, err := qb.Select("id").
		From(studentsTableName).
		Where(sq.Eq{"active": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return engine.Snapshot{}, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return engine.Snapshot{}, err
	}
	studentIDs, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "students")
	}

	q := qb.Select("b.student_id", "b.book_id", "b.borrow_date").
		From(borrowsTableName + " b").
		Join(studentsTableName + " s on s.id = b.student_id").
		Where(sq.Eq{"s.active": true}).
		OrderBy("b.id")
	if !since.IsZero() {
		q = q.Where(sq.GtOrEq{"b.borrow_date": since})
	}
	query, args, err = q.ToSql()
	if err != nil {
		return engine.Snapshot{}, err
	}
	rows, err = tx.Query(ctx, query, args...)
	if err != nil {
		return engine.Snapshot{}, err
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[engine.LedgerEntry])
	if err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "borrows")
	}

	if err = tx.Commit(ctx); err != nil {
		return engine.Snapshot{}, err
	}
	r.log.Debug("LedgerSnapshot", zap.Int("students", len(studentIDs)), zap.Int("borrows", len(entries)))
	return engine.Snapshot{StudentIDs: studentIDs, Entries: entries}, nil
}

// BorrowHistory returns every borrow of the student, newest first.
func (r *repository) BorrowHistory(ctx context.Context, studentID int) ([]model.Borrow, error) {
	query, args, err := qb.Select(borrowColumns...).
		From(borrowsTableName).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("borrow_date desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	borrows, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Borrow])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return borrows, nil
}

// PopularBooks ranks books by all-time borrow count, ties by id.
func (r *repository) PopularBooks(ctx context.Context, limit int) ([]model.PopularBook, error) {
	query, args, err := qb.Select("book_id", "count(*) as borrows").
		From(borrowsTableName).
		GroupBy("book_id").
		OrderBy("borrows desc", "book_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	popular, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.PopularBook])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return popular, nil
}

func (r *repository) CreateBorrow(ctx context.Context, req model.CreateBorrowRequest, borrowDate time.Time) (model.Borrow, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Borrow{}, errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var active bool
	err = tx.QueryRow(ctx, `select active from students where id = @id for share`,
		pgx.NamedArgs{"id": req.StudentID}).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Borrow{}, errors.Wrap(errs.ErrNotFound, "student")
		}
		return model.Borrow{}, err
	}
	if !active {
		return model.Borrow{}, errs.ErrStudentInactive
	}

	var stock int
	err = tx.QueryRow(ctx, `select stock from books where id = @id for update`,
		pgx.NamedArgs{"id": req.BookID}).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Borrow{}, errors.Wrap(errs.ErrNotFound, "book")
		}
		return model.Borrow{}, err
	}
	if stock <= 0 {
		return model.Borrow{}, errs.ErrNoStock
	}

	q := `
insert into borrows (student_id, book_id, borrow_date, due_date)
values (@student_id, @book_id, @borrow_date, @due_date)
returning id, student_id, book_id, borrow_date, due_date, return_date`
	args := pgx.NamedArgs{
		"student_id":  req.StudentID,
		"book_id":     req.BookID,
		"borrow_date": borrowDate,
		"due_date":    req.DueDate,
	}
	rows, err := tx.Query(ctx, q, args)
	if err != nil {
		return model.Borrow{}, err
	}
	borrow, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Borrow])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Borrow{}, errs.ErrAlreadyBorrowed
		}
		return model.Borrow{}, errors.Wrap(err, "insert borrow")
	}

	if _, err = tx.Exec(ctx, `update books set stock = stock - 1 where id = @id`,
		pgx.NamedArgs{"id": req.BookID}); err != nil {
		return model.Borrow{}, errors.Wrap(err, "decrement stock")
	}
	if err = tx.Commit(ctx); err != nil {
		return model.Borrow{}, err
	}
	return borrow, nil
}

func (r *repository) ReturnBorrow(ctx context.Context, borrowID int, returnDate time.Time) (model.Borrow, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Borrow{}, errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	rows, err := tx.Query(ctx, `
select id, student_id, book_id, borrow_date, due_date, return_date
from borrows where id = @id for update`, pgx.NamedArgs{"id": borrowID})
	if err != nil {
		return model.Borrow{}, err
	}
	current, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Borrow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Borrow{}, errs.ErrNotFound
		}
		return model.Borrow{}, err
	}
	if !current.Outstanding() {
		return model.Borrow{}, errs.ErrAlreadyReturned
	}

	q := `
update borrows set return_date = @return_date
where id = @id
returning id, student_id, book_id, borrow_date, due_date, return_date`
	rows, err = tx.Query(ctx, q, pgx.NamedArgs{"id": borrowID, "return_date": returnDate})
	if err != nil {
		return model.Borrow{}, err
	}
	borrow, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Borrow])
	if err != nil {
		return model.Borrow{}, errors.Wrap(err, "close borrow")
	}

	if _, err = tx.Exec(ctx, `update books set stock = stock + 1 where id = @id`,
		pgx.NamedArgs{"id": current.BookID}); err != nil {
		return model.Borrow{}, errors.Wrap(err, "increment stock")
	}
	if err = tx.Commit(ctx); err != nil {
		return model.Borrow{}, err
	}
	return borrow, nil
}
