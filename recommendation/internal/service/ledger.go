package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
)

func (s *Service) Borrow(ctx context.Context, req model.CreateBorrowRequest) (model.Borrow, error) {
	today := truncateDay(s.now())
	if req.DueDate.Before(today) {
		return model.Borrow{}, errors.Wrap(errs.ErrInvalidInput, "due date is in the past")
	}
	borrow, err := s.repo.CreateBorrow(ctx, req, today)
	if err != nil {
		return model.Borrow{}, err
	}
	s.popular.Invalidate(ctx)
	s.log.Debug("borrow created", zap.Int("borrow", borrow.ID), zap.Int("student", borrow.StudentID), zap.Int("book", borrow.BookID))
	return borrow, nil
}

func (s *Service) Return(ctx context.Context, borrowID int) (model.Borrow, error) {
	if borrowID <= 0 {
		return model.Borrow{}, errors.Wrap(errs.ErrInvalidInput, "borrow id must be positive")
	}
	return s.repo.ReturnBorrow(ctx, borrowID, truncateDay(s.now()))
}

// StudentHistory returns all borrows of an existing student, newest first.
func (s *Service) StudentHistory(ctx context.Context, studentID int) ([]model.Borrow, error) {
	if _, err := s.repo.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.repo.BorrowHistory(ctx, studentID)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
