package service

import (
	"errors"
	"testing"

	"github.com/avc-dev/url-alias/internal/config"
	"github.com/avc-dev/url-alias/internal/mocks"
	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, maxAttempts int) (*URLService, *mocks.MockCodeRepository, *mocks.MockGenerator) {
	t.Helper()

	mockRepo := mocks.NewMockCodeRepository(t)
	mockGenerator := mocks.NewMockGenerator(t)

	cfg := config.NewDefaultConfig()
	cfg.Retry.MaxAttempts = maxAttempts

	s := NewURLService(mockRepo, cfg)
	s.codeGenerator = mockGenerator

	return s, mockRepo, mockGenerator
}

// TestCreateMapping_GeneratedCode проверяет создание записи со сгенерированным кодом
func TestCreateMapping_GeneratedCode(t *testing.T) {
	for _, alias := range []string{"", AliasPlaceholder} {
		t.Run("alias="+alias, func(t *testing.T) {
			// Arrange
			s, mockRepo, mockGenerator := newTestService(t, 10)
			code := model.Code("Ab3dE9xZ")

			mockGenerator.EXPECT().GenerateCode().Return(code).Once()
			mockRepo.EXPECT().IsCodeTaken(mock.Anything, code).Return(false, nil).Once()
			mockRepo.EXPECT().
				CreateMapping(mock.Anything, model.URLMapping{LongURL: "https://example.com", ShortURL: code}).
				Return(model.URLMapping{ID: 1, LongURL: "https://example.com", ShortURL: code}, nil).
				Once()

			// Act
			created, err := s.CreateMapping(t.Context(), "https://example.com", alias)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, model.MappingID(1), created.ID)
			assert.Equal(t, code, created.ShortURL)
		})
	}
}

// TestCreateMapping_RetriesTakenCodes проверяет, что занятые коды пропускаются
func TestCreateMapping_RetriesTakenCodes(t *testing.T) {
	// Arrange
	s, mockRepo, mockGenerator := newTestService(t, 10)

	mockGenerator.EXPECT().GenerateCode().Return("taken001").Once()
	mockGenerator.EXPECT().GenerateCode().Return("taken002").Once()
	mockGenerator.EXPECT().GenerateCode().Return("free0003").Once()

	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("taken001")).Return(true, nil).Once()
	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("taken002")).Return(true, nil).Once()
	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("free0003")).Return(false, nil).Once()

	mockRepo.EXPECT().
		CreateMapping(mock.Anything, mock.MatchedBy(func(m model.URLMapping) bool {
			return m.ShortURL == "free0003"
		})).
		Return(model.URLMapping{ID: 2, LongURL: "https://example.com", ShortURL: "free0003"}, nil).
		Once()

	// Act
	created, err := s.CreateMapping(t.Context(), "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("free0003"), created.ShortURL)
}

// TestCreateMapping_GenerationExhausted проверяет ограничение числа попыток
func TestCreateMapping_GenerationExhausted(t *testing.T) {
	// Arrange
	s, mockRepo, mockGenerator := newTestService(t, 3)

	mockGenerator.EXPECT().GenerateCode().Return("collides").Times(3)
	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("collides")).Return(true, nil).Times(3)

	// Act
	_, err := s.CreateMapping(t.Context(), "https://example.com", "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationExhausted)
	mockRepo.AssertNotCalled(t, "CreateMapping", mock.Anything, mock.Anything)
}

// TestCreateMapping_CustomAlias проверяет использование пользовательского алиаса
func TestCreateMapping_CustomAlias(t *testing.T) {
	// Arrange
	s, mockRepo, _ := newTestService(t, 10)

	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("custom")).Return(false, nil).Once()
	mockRepo.EXPECT().
		CreateMapping(mock.Anything, model.URLMapping{LongURL: "https://example.com/x", ShortURL: "custom"}).
		Return(model.URLMapping{ID: 3, LongURL: "https://example.com/x", ShortURL: "custom"}, nil).
		Once()

	// Act
	created, err := s.CreateMapping(t.Context(), "https://example.com/x", "custom")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("custom"), created.ShortURL)
}

// TestCreateMapping_CustomAliasTaken проверяет конфликт алиаса
func TestCreateMapping_CustomAliasTaken(t *testing.T) {
	// Arrange
	s, mockRepo, _ := newTestService(t, 10)

	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("custom")).Return(true, nil).Once()

	// Act
	_, err := s.CreateMapping(t.Context(), "https://example.com/y", "custom")

	// Assert
	assert.ErrorIs(t, err, ErrAliasConflict)
	assert.Equal(t, "This Alias Already Exist", err.Error())
}

// TestCreateMapping_InsertRace проверяет, что конфликт при вставке превращается в ErrAliasConflict
func TestCreateMapping_InsertRace(t *testing.T) {
	// Arrange
	s, mockRepo, _ := newTestService(t, 10)

	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("custom")).Return(false, nil).Once()
	mockRepo.EXPECT().
		CreateMapping(mock.Anything, mock.Anything).
		Return(model.URLMapping{}, store.ErrAlreadyExists).
		Once()

	// Act
	_, err := s.CreateMapping(t.Context(), "https://example.com", "custom")

	// Assert
	assert.ErrorIs(t, err, ErrAliasConflict)
}

// TestCreateMapping_StorageErrors проверяет, что ошибки хранилища возвращаются как есть
func TestCreateMapping_StorageErrors(t *testing.T) {
	storageErr := errors.New("disk full")

	t.Run("check fails", func(t *testing.T) {
		// Arrange
		s, mockRepo, mockGenerator := newTestService(t, 10)
		mockGenerator.EXPECT().GenerateCode().Return("abcdefgh").Once()
		mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("abcdefgh")).Return(false, storageErr).Once()

		// Act
		_, err := s.CreateMapping(t.Context(), "https://example.com", "")

		// Assert
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("insert fails", func(t *testing.T) {
		// Arrange
		s, mockRepo, mockGenerator := newTestService(t, 10)
		mockGenerator.EXPECT().GenerateCode().Return("abcdefgh").Once()
		mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("abcdefgh")).Return(false, nil).Once()
		mockRepo.EXPECT().CreateMapping(mock.Anything, mock.Anything).Return(model.URLMapping{}, storageErr).Once()

		// Act
		_, err := s.CreateMapping(t.Context(), "https://example.com", "")

		// Assert
		assert.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, ErrAliasConflict)
	})
}

// TestCreateMapping_ReservedAlias проверяет, что алиас фиксированного маршрута отклоняется
func TestCreateMapping_ReservedAlias(t *testing.T) {
	// Arrange
	s, mockRepo, _ := newTestService(t, 10)

	// Act
	_, err := s.CreateMapping(t.Context(), "https://example.com", "ping")

	// Assert
	assert.ErrorIs(t, err, ErrAliasConflict)
	mockRepo.AssertNotCalled(t, "IsCodeTaken", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "CreateMapping", mock.Anything, mock.Anything)
}

// TestCreateMapping_ReservedCodeIsRegenerated проверяет, что сгенерированный код не совпадает с маршрутом
func TestCreateMapping_ReservedCodeIsRegenerated(t *testing.T) {
	// Arrange
	s, mockRepo, mockGenerator := newTestService(t, 10)

	mockGenerator.EXPECT().GenerateCode().Return("ping").Once()
	mockGenerator.EXPECT().GenerateCode().Return("pong").Once()
	mockRepo.EXPECT().IsCodeTaken(mock.Anything, model.Code("pong")).Return(false, nil).Once()
	mockRepo.EXPECT().
		CreateMapping(mock.Anything, model.URLMapping{LongURL: "https://example.com", ShortURL: "pong"}).
		Return(model.URLMapping{ID: 1, LongURL: "https://example.com", ShortURL: "pong"}, nil).
		Once()

	// Act
	created, err := s.CreateMapping(t.Context(), "https://example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("pong"), created.ShortURL)
}
