package service

import (
	"context"
	"testing"

	"dms-converter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*ConvertResult)
	return result, args.Error(1)
}

// MockPointRepository is a mock implementation of the PointRepository interface
type MockPointRepository struct {
	mock.Mock
}

func (m *MockPointRepository) CreateSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPointRepository) ReplacePoints(ctx context.Context, source string, points []models.Point) (int64, error) {
	args := m.Called(ctx, source, points)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPointRepository) CountPoints(ctx context.Context, source string) (int, error) {
	args := m.Called(ctx, source)
	return args.Int(0), args.Error(1)
}

func TestImportService_Import(t *testing.T) {
	points := []models.Point{{Row: 2, Longitude: 116.391389, Latitude: 39.9075}}
	req := defaultRequest("data/1.xlsx", "output.xlsx")

	tests := []struct {
		name        string
		convertErr  error
		replaceErr  error
		count       int
		expectError bool
		expectKind  Kind
	}{
		{name: "imports converted points", count: 1},
		{name: "conversion error passes through", convertErr: ErrNotFound, expectError: true, expectKind: KindNotFound},
		{name: "replace error", replaceErr: assert.AnError, expectError: true, expectKind: KindUnclassified},
		{name: "count mismatch", count: 3, expectError: true, expectKind: KindUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := new(MockConverter)
			repo := new(MockPointRepository)
			service := NewImportService(converter, repo)

			if tt.convertErr != nil {
				converter.On("Convert", mock.Anything, req).Return(nil, tt.convertErr)
			} else {
				converter.On("Convert", mock.Anything, req).Return(&ConvertResult{Points: points}, nil)
				repo.On("CreateSchema", mock.Anything).Return(nil)
				repo.On("ReplacePoints", mock.Anything, "1.xlsx", points).Return(int64(1), tt.replaceErr)
				if tt.replaceErr == nil {
					repo.On("CountPoints", mock.Anything, "1.xlsx").Return(tt.count, nil)
				}
			}

			result, err := service.Import(context.Background(), req)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectKind, KindOf(err))
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "1.xlsx", result.Source)
				assert.Equal(t, int64(1), result.Imported)
				assert.Equal(t, points, result.Points)
			}
			converter.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestImportService_FailedReplaceStopsImport(t *testing.T) {
	points := []models.Point{{Row: 2, Longitude: 116.391389, Latitude: 39.9075}}
	req := defaultRequest("data/1.xlsx", "output.xlsx")

	converter := new(MockConverter)
	repo := new(MockPointRepository)
	converter.On("Convert", mock.Anything, req).Return(&ConvertResult{Points: points}, nil)
	repo.On("CreateSchema", mock.Anything).Return(nil)
	repo.On("ReplacePoints", mock.Anything, "1.xlsx", points).Return(int64(0), assert.AnError).Once()

	_, err := NewImportService(converter, repo).Import(context.Background(), req)

	assert.ErrorIs(t, err, assert.AnError)
	// the old rows are only removed inside ReplacePoints, never ahead of it
	repo.AssertNumberOfCalls(t, "ReplacePoints", 1)
	repo.AssertNotCalled(t, "CountPoints", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}
