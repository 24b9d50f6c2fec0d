package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/url-alias/internal/config/db"
	"github.com/avc-dev/url-alias/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

const selectColumns = `id, long_url, short_url, created_at`

// DatabaseStore реализует хранилище записей в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
	mode model.MatchMode
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database, mode model.MatchMode) (*DatabaseStore, error) {
	if database == nil || database.Pool() == nil {
		return nil, errors.New("database store requires a connection pool")
	}

	return &DatabaseStore{
		pool: database.Pool(),
		mode: mode,
	}, nil
}

// Insert добавляет запись. Уникальность кода обеспечивает индекс url_mappings_short_url_key
func (ds *DatabaseStore) Insert(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	query := `
		INSERT INTO url_mappings (long_url, short_url)
		VALUES ($1, $2)
		RETURNING ` + selectColumns

	row := ds.pool.QueryRow(ctx, query, mapping.LongURL.String(), mapping.ShortURL.String())

	created, err := scanMapping(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.URLMapping{}, fmt.Errorf("code %s: %w", mapping.ShortURL, ErrAlreadyExists)
		}
		return model.URLMapping{}, fmt.Errorf("failed to insert into database: %w", err)
	}

	return created, nil
}

// Delete удаляет запись по id
func (ds *DatabaseStore) Delete(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	query := `
		DELETE FROM url_mappings
		WHERE id = $1
		RETURNING ` + selectColumns

	removed, err := scanMapping(ds.pool.QueryRow(ctx, query, int64(mapping.ID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, fmt.Errorf("id %d: %w", mapping.ID, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to delete from database: %w", err)
	}

	return removed, nil
}

func (ds *DatabaseStore) List(ctx context.Context) ([]model.URLMapping, error) {
	query := `SELECT ` + selectColumns + ` FROM url_mappings ORDER BY id`

	rows, err := ds.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings: %w", err)
	}

	mappings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.URLMapping, error) {
		return scanMapping(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings: %w", err)
	}

	return mappings, nil
}

func (ds *DatabaseStore) FindByID(ctx context.Context, id model.MappingID) (model.URLMapping, error) {
	query := `SELECT ` + selectColumns + ` FROM url_mappings WHERE id = $1`

	return ds.findOne(ctx, query, int64(id))
}

// ExistsByShort проверяет, занят ли код
func (ds *DatabaseStore) ExistsByShort(ctx context.Context, code model.Code) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM url_mappings WHERE ` + ds.condition("short_url") + `)`

	var exists bool
	if err := ds.pool.QueryRow(ctx, query, code.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}

func (ds *DatabaseStore) FindByLong(ctx context.Context, url model.URL) (model.URLMapping, error) {
	query := `SELECT ` + selectColumns + ` FROM url_mappings WHERE ` + ds.condition("long_url") + ` ORDER BY id LIMIT 1`

	return ds.findOne(ctx, query, url.String())
}

func (ds *DatabaseStore) FindByShort(ctx context.Context, code model.Code) (model.URLMapping, error) {
	query := `SELECT ` + selectColumns + ` FROM url_mappings WHERE ` + ds.condition("short_url") + ` ORDER BY id LIMIT 1`

	return ds.findOne(ctx, query, code.String())
}

// condition строит условие поиска по колонке для текущего режима сравнения.
// strpos не интерпретирует % и _, в отличие от LIKE
func (ds *DatabaseStore) condition(column string) string {
	if ds.mode == model.MatchExact {
		return column + ` = $1`
	}
	return `strpos(` + column + `, $1) > 0`
}

func (ds *DatabaseStore) findOne(ctx context.Context, query string, arg any) (model.URLMapping, error) {
	mapping, err := scanMapping(ds.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, fmt.Errorf("%v: %w", arg, ErrNotFound)
		}
		return model.URLMapping{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return mapping, nil
}

func scanMapping(row pgx.Row) (model.URLMapping, error) {
	var (
		m        model.URLMapping
		id       int64
		longURL  string
		shortURL string
	)

	if err := row.Scan(&id, &longURL, &shortURL, &m.CreatedAt); err != nil {
		return model.URLMapping{}, err
	}

	m.ID = model.MappingID(id)
	m.LongURL = model.URL(longURL)
	m.ShortURL = model.Code(shortURL)

	return m, nil
}
