package store

import (
	"testing"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, mappings ...model.URLMapping) []model.URLMapping {
	t.Helper()

	created := make([]model.URLMapping, 0, len(mappings))
	for _, m := range mappings {
		c, err := s.Insert(t.Context(), m)
		require.NoError(t, err)
		created = append(created, c)
	}
	return created
}

func TestStore_Insert(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)

	// Act
	first, err1 := s.Insert(t.Context(), model.URLMapping{LongURL: "https://a.example", ShortURL: "aaaa"})
	second, err2 := s.Insert(t.Context(), model.URLMapping{LongURL: "https://b.example", ShortURL: "bbbb"})

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, model.MappingID(1), first.ID)
	assert.Equal(t, model.MappingID(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestStore_InsertDuplicateCode(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)
	seed(t, s, model.URLMapping{LongURL: "https://a.example", ShortURL: "custom"})

	// Act
	_, err := s.Insert(t.Context(), model.URLMapping{LongURL: "https://b.example", ShortURL: "custom"})

	// Assert
	assert.ErrorIs(t, err, ErrAlreadyExists)
	list, _ := s.List(t.Context())
	assert.Len(t, list, 1)
}

// Уникальность при вставке проверяется точным сравнением даже в режиме подстроки
func TestStore_InsertSubstringCodeIsAllowed(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)
	seed(t, s, model.URLMapping{LongURL: "https://a.example", ShortURL: "custom"})

	// Act
	_, err := s.Insert(t.Context(), model.URLMapping{LongURL: "https://b.example", ShortURL: "cust"})

	// Assert
	assert.NoError(t, err)
}

func TestStore_FindByShort(t *testing.T) {
	tests := []struct {
		name         string
		mode         model.MatchMode
		query        model.Code
		expectedCode model.Code
		expectErr    bool
	}{
		{name: "substring exact hit", mode: model.MatchSubstring, query: "xaby", expectedCode: "xaby"},
		{name: "substring partial hit", mode: model.MatchSubstring, query: "ab", expectedCode: "xaby"},
		{name: "substring first in insertion order", mode: model.MatchSubstring, query: "y", expectedCode: "xaby"},
		{name: "substring miss", mode: model.MatchSubstring, query: "zzz", expectErr: true},
		{name: "exact hit", mode: model.MatchExact, query: "abyss", expectedCode: "abyss"},
		{name: "exact partial miss", mode: model.MatchExact, query: "ab", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s := NewStore(tt.mode)
			seed(t, s,
				model.URLMapping{LongURL: "https://one.example", ShortURL: "xaby"},
				model.URLMapping{LongURL: "https://two.example", ShortURL: "abyss"},
			)

			// Act
			found, err := s.FindByShort(t.Context(), tt.query)

			// Assert
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, found.ShortURL)
		})
	}
}

func TestStore_FindByLong(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)
	seed(t, s,
		model.URLMapping{LongURL: "https://example.com/docs/intro", ShortURL: "intro"},
		model.URLMapping{LongURL: "https://example.com/docs", ShortURL: "docs"},
	)

	// Act
	found, err := s.FindByLong(t.Context(), "https://example.com/docs")
	_, missErr := s.FindByLong(t.Context(), "https://other.example")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("intro"), found.ShortURL)
	assert.ErrorIs(t, missErr, ErrNotFound)
}

func TestStore_ExistsByShort(t *testing.T) {
	// Arrange
	substring := NewStore(model.MatchSubstring)
	exact := NewStore(model.MatchExact)
	seed(t, substring, model.URLMapping{LongURL: "https://a.example", ShortURL: "custom"})
	seed(t, exact, model.URLMapping{LongURL: "https://a.example", ShortURL: "custom"})

	// Act
	subHit, _ := substring.ExistsByShort(t.Context(), "cust")
	exactMiss, _ := exact.ExistsByShort(t.Context(), "cust")
	exactHit, _ := exact.ExistsByShort(t.Context(), "custom")

	// Assert
	assert.True(t, subHit)
	assert.False(t, exactMiss)
	assert.True(t, exactHit)
}

func TestStore_Delete(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)
	created := seed(t, s,
		model.URLMapping{LongURL: "https://a.example", ShortURL: "aaaa"},
		model.URLMapping{LongURL: "https://b.example", ShortURL: "bbbb"},
		model.URLMapping{LongURL: "https://c.example", ShortURL: "cccc"},
	)

	// Act
	removed, err := s.Delete(t.Context(), created[1])

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created[1], removed)

	list, err := s.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []model.URLMapping{created[0], created[2]}, list)

	_, err = s.Delete(t.Context(), created[1])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_IDsAreNotReused(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)
	created := seed(t, s, model.URLMapping{LongURL: "https://a.example", ShortURL: "aaaa"})
	_, err := s.Delete(t.Context(), created[0])
	require.NoError(t, err)

	// Act
	next, err := s.Insert(t.Context(), model.URLMapping{LongURL: "https://b.example", ShortURL: "bbbb"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.MappingID(2), next.ID)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)
	seed(t, s, model.URLMapping{LongURL: "https://a.example", ShortURL: "aaaa"})

	// Act
	list, _ := s.List(t.Context())
	list[0].ShortURL = "changed"

	// Assert
	found, err := s.FindByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.Code("aaaa"), found.ShortURL)
}

func TestStore_RestoreKeepsPosition(t *testing.T) {
	// Arrange
	s := NewStore(model.MatchSubstring)
	created := seed(t, s,
		model.URLMapping{LongURL: "https://a.example", ShortURL: "ab"},
		model.URLMapping{LongURL: "https://b.example", ShortURL: "xaby"},
		model.URLMapping{LongURL: "https://c.example", ShortURL: "cccc"},
	)

	removed, idx, err := s.remove(created[0].ID)
	require.NoError(t, err)

	// Act
	s.restore(idx, removed)

	// Assert
	list, err := s.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, created, list)

	found, err := s.FindByShort(t.Context(), "ab")
	require.NoError(t, err)
	assert.Equal(t, model.Code("ab"), found.ShortURL)
}
