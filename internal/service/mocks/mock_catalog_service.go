package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doccatalog/internal/model"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) list(ctx context.Context, method string) ([]model.Document, error) {
	args := m.MethodCalled(method, ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockCatalogService) ByEngineer(ctx context.Context) ([]model.Document, error) {
	return m.list(ctx, "ByEngineer")
}

func (m *MockCatalogService) ByHR(ctx context.Context) ([]model.Document, error) {
	return m.list(ctx, "ByHR")
}

func (m *MockCatalogService) ByTechnician(ctx context.Context) ([]model.Document, error) {
	return m.list(ctx, "ByTechnician")
}

func (m *MockCatalogService) ByEmployee(ctx context.Context) ([]model.Document, error) {
	return m.list(ctx, "ByEmployee")
}

func (m *MockCatalogService) All(ctx context.Context) ([]model.Document, error) {
	return m.list(ctx, "All")
}

func (m *MockCatalogService) EnsureSeeded(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogService) FileURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
