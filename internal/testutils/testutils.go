package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTextGenerator implements the web.TextGenerator interface using
// testify/mock so handler tests can script adapter behavior.
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) FormatFeatures(ctx context.Context, rawFeatureText string) (string, error) {
	args := m.Called(ctx, rawFeatureText)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) GenerateStoryCaption(ctx context.Context, rawText string) (string, error) {
	args := m.Called(ctx, rawText)
	return args.String(0), args.Error(1)
}
