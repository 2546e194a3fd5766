package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/pkg/kafka"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/model"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/service"

	repo_mocks "github.com/Astemirdum/library-recommendation/recommendation/internal/repository/mocks"
)

func TestService_Borrow(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	pop := &fakePopular{}
	svc := service.NewService(repo, pop, nil, kafka.NopPublisher(), service.Options{}, zap.NewNop())

	req := model.CreateBorrowRequest{StudentID: 1, BookID: 7, DueDate: time.Now().AddDate(0, 0, 14)}
	repo.EXPECT().CreateBorrow(gomock.Any(), req, gomock.Any()).Return(model.Borrow{ID: 11, StudentID: 1, BookID: 7}, nil)

	borrow, err := svc.Borrow(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 11, borrow.ID)
	require.Equal(t, 1, pop.invalidated)

	repo.EXPECT().CreateBorrow(gomock.Any(), req, gomock.Any()).Return(model.Borrow{}, errs.ErrNoStock)
	_, err = svc.Borrow(context.Background(), req)
	require.ErrorIs(t, err, errs.ErrNoStock)
	require.Equal(t, 1, pop.invalidated)

	past := req
	past.DueDate = time.Now().AddDate(0, 0, -3)
	_, err = svc.Borrow(context.Background(), past)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestService_Return(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, &fakePopular{}, nil, kafka.NopPublisher(), service.Options{}, zap.NewNop())

	repo.EXPECT().ReturnBorrow(gomock.Any(), 11, gomock.Any()).Return(model.Borrow{ID: 11}, nil)
	repo.EXPECT().ReturnBorrow(gomock.Any(), 12, gomock.Any()).Return(model.Borrow{}, errs.ErrAlreadyReturned)

	_, err := svc.Return(context.Background(), 11)
	require.NoError(t, err)
	_, err = svc.Return(context.Background(), 12)
	require.ErrorIs(t, err, errs.ErrAlreadyReturned)
	_, err = svc.Return(context.Background(), 0)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestService_StudentHistory(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, &fakePopular{}, nil, kafka.NopPublisher(), service.Options{}, zap.NewNop())

	repo.EXPECT().GetStudent(gomock.Any(), 1).Return(student, nil)
	repo.EXPECT().BorrowHistory(gomock.Any(), 1).Return(history(3, 2), nil)
	repo.EXPECT().GetStudent(gomock.Any(), 2).Return(model.Student{}, errs.ErrNotFound)

	got, err := svc.StudentHistory(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, history(3, 2), got)

	_, err = svc.StudentHistory(context.Background(), 2)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
