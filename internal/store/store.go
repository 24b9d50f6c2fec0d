package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/avc-dev/url-alias/internal/model"
)

var (
	ErrNotFound      = errors.New("mapping not found")
	ErrAlreadyExists = errors.New("short code already exists")
)

// Store хранит записи в памяти в порядке добавления
type Store struct {
	mappings []model.URLMapping
	nextID   model.MappingID
	mode     model.MatchMode
	mutex    sync.Mutex
}

func NewStore(mode model.MatchMode) *Store {
	return &Store{
		mappings: make([]model.URLMapping, 0),
		nextID:   1,
		mode:     mode,
	}
}

// Insert сохраняет запись, назначая ей идентификатор и время создания.
// Код должен быть уникален по точному совпадению
func (s *Store) Insert(_ context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, existing := range s.mappings {
		if existing.ShortURL == mapping.ShortURL {
			return model.URLMapping{}, fmt.Errorf("code %s: %w", mapping.ShortURL, ErrAlreadyExists)
		}
	}

	if mapping.ID == 0 {
		mapping.ID = s.nextID
	}
	if mapping.ID >= s.nextID {
		s.nextID = mapping.ID + 1
	}
	if mapping.CreatedAt.IsZero() {
		mapping.CreatedAt = time.Now().UTC()
	}

	s.mappings = append(s.mappings, mapping)

	return mapping, nil
}

// Delete удаляет запись по её идентификатору и возвращает удалённую запись
func (s *Store) Delete(_ context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	removed, _, err := s.remove(mapping.ID)
	return removed, err
}

// remove удаляет запись и возвращает позицию, которую она занимала
func (s *Store) remove(id model.MappingID) (model.URLMapping, int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.URLMapping{}, -1, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	removed := s.mappings[idx]
	s.mappings = slices.Delete(s.mappings, idx, idx+1)

	return removed, idx, nil
}

// restore возвращает запись на позицию idx, сохраняя порядок добавления
func (s *Store) restore(idx int, mapping model.URLMapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx = min(max(idx, 0), len(s.mappings))
	s.mappings = slices.Insert(s.mappings, idx, mapping)
}

// List возвращает копию всех записей
func (s *Store) List(_ context.Context) ([]model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return slices.Clone(s.mappings), nil
}

func (s *Store) FindByID(_ context.Context, id model.MappingID) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.URLMapping{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	return s.mappings[idx], nil
}

// ExistsByShort проверяет, занят ли код (с учётом режима сравнения)
func (s *Store) ExistsByShort(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.findFirst(func(m model.URLMapping) bool {
		return s.mode.Matches(m.ShortURL.String(), code.String())
	}) >= 0, nil
}

func (s *Store) FindByLong(_ context.Context, url model.URL) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.findFirst(func(m model.URLMapping) bool {
		return s.mode.Matches(m.LongURL.String(), url.String())
	})
	if idx < 0 {
		return model.URLMapping{}, fmt.Errorf("url %s: %w", url, ErrNotFound)
	}

	return s.mappings[idx], nil
}

func (s *Store) FindByShort(_ context.Context, code model.Code) (model.URLMapping, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.findFirst(func(m model.URLMapping) bool {
		return s.mode.Matches(m.ShortURL.String(), code.String())
	})
	if idx < 0 {
		return model.URLMapping{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return s.mappings[idx], nil
}

// InitializeWith заполняет хранилище без проверок уникальности.
// Используется при загрузке данных из файла
func (s *Store) InitializeWith(mappings []model.URLMapping) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, m := range mappings {
		s.mappings = append(s.mappings, m)
		if m.ID >= s.nextID {
			s.nextID = m.ID + 1
		}
	}
}

func (s *Store) indexOf(id model.MappingID) int {
	return s.findFirst(func(m model.URLMapping) bool {
		return m.ID == id
	})
}

func (s *Store) findFirst(match func(model.URLMapping) bool) int {
	return slices.IndexFunc(s.mappings, match)
}
