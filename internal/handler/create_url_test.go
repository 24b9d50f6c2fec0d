package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/url-alias/internal/mocks"
	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/service"
	"github.com/avc-dev/url-alias/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestCreateURL_Success проверяет успешное создание записи
func TestCreateURL_Success(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedURL   string
		expectedAlias string
		mapping       model.URLMapping
	}{
		{
			name:        "without alias",
			body:        `{"originalUrl":"https://example.com/some/long/path"}`,
			expectedURL: "https://example.com/some/long/path",
			mapping:     model.URLMapping{ID: 1, LongURL: "https://example.com/some/long/path", ShortURL: "Ab3dE9xZ"},
		},
		{
			name:          "with alias",
			body:          `{"originalUrl":"https://example.com/x","customAlias":"custom"}`,
			expectedURL:   "https://example.com/x",
			expectedAlias: "custom",
			mapping:       model.URLMapping{ID: 2, LongURL: "https://example.com/x", ShortURL: "custom"},
		},
		{
			name:        "null alias",
			body:        `{"originalUrl":"https://example.com/y","customAlias":null}`,
			expectedURL: "https://example.com/y",
			mapping:     model.URLMapping{ID: 3, LongURL: "https://example.com/y", ShortURL: "q1w2e3r4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().
				CreateShortURL(mock.Anything, tt.expectedURL, tt.expectedAlias).
				Return(tt.mapping, nil).
				Once()

			h := New(mockUsecase, zap.NewNop(), nil)

			req := httptest.NewRequest(http.MethodPost, "/url/create", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// Act
			h.CreateURL(w, req)

			// Assert
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response model.MappingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, model.NewMappingResponse(tt.mapping), response)
		})
	}
}

// TestCreateURL_ResponseFieldNames проверяет имена полей JSON ответа
func TestCreateURL_ResponseFieldNames(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockURLUsecase(t)
	mockUsecase.EXPECT().
		CreateShortURL(mock.Anything, "https://example.com", "custom").
		Return(model.URLMapping{ID: 1, LongURL: "https://example.com", ShortURL: "custom"}, nil).
		Once()

	h := New(mockUsecase, zap.NewNop(), nil)

	req := httptest.NewRequest(http.MethodPost, "/url/create",
		strings.NewReader(`{"originalUrl":"https://example.com","customAlias":"custom"}`))
	w := httptest.NewRecorder()

	// Act
	h.CreateURL(w, req)

	// Assert
	assert.JSONEq(t, `{"id":1,"longUrl":"https://example.com","shortUrl":"custom"}`, w.Body.String())
}

// TestCreateURL_Errors проверяет перевод ошибок в HTTP статусы
func TestCreateURL_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "empty URL",
			err:            usecase.ErrEmptyURL,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   usecase.ErrEmptyURL.Error(),
		},
		{
			name:           "alias conflict",
			err:            service.ErrAliasConflict,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "This Alias Already Exist",
		},
		{
			name:           "generation exhausted",
			err:            fmt.Errorf("failed after 100 attempts: %w", service.ErrGenerationExhausted),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed after 100 attempts: " + service.ErrGenerationExhausted.Error(),
		},
		{
			name:           "storage failure",
			err:            errors.New("disk full"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockURLUsecase(t)
			mockUsecase.EXPECT().
				CreateShortURL(mock.Anything, mock.Anything, mock.Anything).
				Return(model.URLMapping{}, tt.err).
				Once()

			h := New(mockUsecase, zap.NewNop(), nil)

			req := httptest.NewRequest(http.MethodPost, "/url/create",
				strings.NewReader(`{"originalUrl":"https://example.com","customAlias":"custom"}`))
			w := httptest.NewRecorder()

			// Act
			h.CreateURL(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

// TestCreateURL_InvalidJSON проверяет отказ для некорректного тела
func TestCreateURL_InvalidJSON(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockURLUsecase(t)
	h := New(mockUsecase, zap.NewNop(), nil)

	req := httptest.NewRequest(http.MethodPost, "/url/create", strings.NewReader(`{"originalUrl":`))
	w := httptest.NewRecorder()

	// Act
	h.CreateURL(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUsecase.AssertNotCalled(t, "CreateShortURL", mock.Anything, mock.Anything, mock.Anything)
}
