package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через файл
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	uuids       map[model.MappingID]string // id -> uuid записи в файле
	mutex       sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string, mode model.MatchMode) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(mode),
		fileStorage: NewFileStorage(filePath),
		uuids:       make(map[model.MappingID]string),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// Insert записывает запись в память и сохраняет файл.
// Если файл записать не удалось, запись откатывается
func (fs *FileStore) Insert(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	created, err := fs.store.Insert(ctx, mapping)
	if err != nil {
		return model.URLMapping{}, err
	}
	fs.uuids[created.ID] = uuid.New().String()

	if err := fs.persist(ctx); err != nil {
		delete(fs.uuids, created.ID)
		if _, rbErr := fs.store.Delete(ctx, created); rbErr != nil {
			return model.URLMapping{}, fmt.Errorf("failed to rollback insert: %w", rbErr)
		}
		return model.URLMapping{}, err
	}

	return created, nil
}

// Delete удаляет запись из памяти и сохраняет файл
func (fs *FileStore) Delete(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	removed, idx, err := fs.store.remove(mapping.ID)
	if err != nil {
		return model.URLMapping{}, err
	}
	id := fs.uuids[removed.ID]
	delete(fs.uuids, removed.ID)

	if err := fs.persist(ctx); err != nil {
		fs.store.restore(idx, removed)
		fs.uuids[removed.ID] = id
		return model.URLMapping{}, err
	}

	return removed, nil
}

func (fs *FileStore) List(ctx context.Context) ([]model.URLMapping, error) {
	return fs.store.List(ctx)
}

func (fs *FileStore) FindByID(ctx context.Context, id model.MappingID) (model.URLMapping, error) {
	return fs.store.FindByID(ctx, id)
}

func (fs *FileStore) ExistsByShort(ctx context.Context, code model.Code) (bool, error) {
	return fs.store.ExistsByShort(ctx, code)
}

func (fs *FileStore) FindByLong(ctx context.Context, url model.URL) (model.URLMapping, error) {
	return fs.store.FindByLong(ctx, url)
}

func (fs *FileStore) FindByShort(ctx context.Context, code model.Code) (model.URLMapping, error) {
	return fs.store.FindByShort(ctx, code)
}

// persist сохраняет текущий снимок хранилища в файл
func (fs *FileStore) persist(ctx context.Context) error {
	mappings, err := fs.store.List(ctx)
	if err != nil {
		return err
	}

	entries := make([]model.MappingEntry, 0, len(mappings))
	for _, m := range mappings {
		entries = append(entries, model.MappingEntry{
			UUID:        fs.uuids[m.ID],
			ID:          int64(m.ID),
			ShortURL:    m.ShortURL.String(),
			OriginalURL: m.LongURL.String(),
			CreatedAt:   m.CreatedAt,
		})
	}

	if err := fs.fileStorage.Save(entries); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	mappings := make([]model.URLMapping, 0, len(entries))
	for _, entry := range entries {
		id := model.MappingID(entry.ID)
		mappings = append(mappings, model.URLMapping{
			ID:        id,
			LongURL:   model.URL(entry.OriginalURL),
			ShortURL:  model.Code(entry.ShortURL),
			CreatedAt: entry.CreatedAt,
		})

		if entry.UUID == "" {
			entry.UUID = uuid.New().String()
		}
		fs.uuids[id] = entry.UUID
	}

	fs.store.InitializeWith(mappings)

	return nil
}
