package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/catanview/internal/entity"
)

type mockMatchSource struct {
	mock.Mock
}

func (that *mockMatchSource) GetMatch(ctx context.Context, id int) (*entity.Match, error) {
	args := that.Called(ctx, id)
	match, _ := args.Get(0).(*entity.Match)

	return match, args.Error(1)
}

type mockSnapshotRepo struct {
	mock.Mock
}

func (that *mockSnapshotRepo) Save(ctx context.Context, match *entity.Match) error {
	return that.Called(ctx, match).Error(0)
}

func (that *mockSnapshotRepo) GetByID(ctx context.Context, id int) (*entity.Match, error) {
	args := that.Called(ctx, id)
	match, _ := args.Get(0).(*entity.Match)

	return match, args.Error(1)
}

func (that *mockSnapshotRepo) DeleteByID(ctx context.Context, id int) error {
	return that.Called(ctx, id).Error(0)
}

type mockRenderer struct {
	mock.Mock
}

func (that *mockRenderer) WriteSVG(w io.Writer, snapshot *entity.Snapshot) {
	that.Called(w, snapshot)
}

func (that *mockRenderer) WritePNG(w io.Writer, snapshot *entity.Snapshot) error {
	return that.Called(w, snapshot).Error(0)
}
