package usecase

import (
	"errors"
	"testing"

	"github.com/avc-dev/url-alias/internal/mocks"
	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/service"
	"github.com/avc-dev/url-alias/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateShortURL_CreatesNewMapping(t *testing.T) {
	tests := []struct {
		name        string
		inputURL    string
		expectedURL string
		customAlias string
		created     model.URLMapping
	}{
		{
			name:        "generated code",
			inputURL:    "https://example.com/some/long/path",
			expectedURL: "https://example.com/some/long/path",
			created:     model.URLMapping{ID: 1, LongURL: "https://example.com/some/long/path", ShortURL: "Ab3dE9xZ"},
		},
		{
			name:        "custom alias",
			inputURL:    "https://example.com/x",
			expectedURL: "https://example.com/x",
			customAlias: "custom",
			created:     model.URLMapping{ID: 2, LongURL: "https://example.com/x", ShortURL: "custom"},
		},
		{
			name:        "surrounding quotes and spaces are stripped",
			inputURL:    `  "https://example.com/quoted"  `,
			expectedURL: "https://example.com/quoted",
			created:     model.URLMapping{ID: 3, LongURL: "https://example.com/quoted", ShortURL: "q1w2e3r4"},
		},
		{
			name:        "unicode path",
			inputURL:    "https://example.com/путь",
			expectedURL: "https://example.com/путь",
			created:     model.URLMapping{ID: 4, LongURL: "https://example.com/путь", ShortURL: "unicode1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewMockURLRepository(t)
			mockService := mocks.NewMockURLService(t)

			mockRepo.EXPECT().
				GetMappingByLong(mock.Anything, model.URL(tt.expectedURL)).
				Return(model.URLMapping{}, store.ErrNotFound).
				Once()
			mockService.EXPECT().
				CreateMapping(mock.Anything, model.URL(tt.expectedURL), tt.customAlias).
				Return(tt.created, nil).
				Once()

			uc := NewURLUsecase(mockRepo, mockService, zap.NewNop())

			// Act
			result, err := uc.CreateShortURL(t.Context(), tt.inputURL, tt.customAlias)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.created, result)
		})
	}
}

func TestCreateShortURL_ReturnsExistingMapping(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockURLRepository(t)
	mockService := mocks.NewMockURLService(t)

	existing := model.URLMapping{ID: 7, LongURL: "https://example.com", ShortURL: "9Abc"}
	mockRepo.EXPECT().
		GetMappingByLong(mock.Anything, model.URL("https://example.com")).
		Return(existing, nil).
		Once()

	uc := NewURLUsecase(mockRepo, mockService, zap.NewNop())

	// Act
	result, err := uc.CreateShortURL(t.Context(), "https://example.com", "custom")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, existing, result)
	mockService.AssertNotCalled(t, "CreateMapping", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateShortURL_EmptyURL(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
	}{
		{name: "empty string", inputURL: ""},
		{name: "only spaces", inputURL: "   "},
		{name: "only quotes", inputURL: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc := NewURLUsecase(mocks.NewMockURLRepository(t), mocks.NewMockURLService(t), zap.NewNop())

			// Act
			result, err := uc.CreateShortURL(t.Context(), tt.inputURL, "")

			// Assert
			assert.ErrorIs(t, err, ErrEmptyURL)
			assert.True(t, result.IsZero())
		})
	}
}

func TestCreateShortURL_Errors(t *testing.T) {
	storageErr := errors.New("connection refused")

	tests := []struct {
		name        string
		lookupErr   error
		createErr   error
		expectedErr error
	}{
		{
			name:        "lookup failure is returned",
			lookupErr:   storageErr,
			expectedErr: storageErr,
		},
		{
			name:        "alias conflict is returned",
			lookupErr:   store.ErrNotFound,
			createErr:   service.ErrAliasConflict,
			expectedErr: service.ErrAliasConflict,
		},
		{
			name:        "generation exhausted is returned",
			lookupErr:   store.ErrNotFound,
			createErr:   service.ErrGenerationExhausted,
			expectedErr: service.ErrGenerationExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewMockURLRepository(t)
			mockService := mocks.NewMockURLService(t)

			mockRepo.EXPECT().
				GetMappingByLong(mock.Anything, model.URL("https://example.com")).
				Return(model.URLMapping{}, tt.lookupErr).
				Once()
			if tt.createErr != nil {
				mockService.EXPECT().
					CreateMapping(mock.Anything, model.URL("https://example.com"), "taken").
					Return(model.URLMapping{}, tt.createErr).
					Once()
			}

			uc := NewURLUsecase(mockRepo, mockService, zap.NewNop())

			// Act
			_, err := uc.CreateShortURL(t.Context(), "https://example.com", "taken")

			// Assert
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
