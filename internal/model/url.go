package model

import "time"

// Code короткий код (алиас), по которому открывается ссылка
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный (длинный) адрес
type URL string

func (u URL) String() string {
	return string(u)
}

// MappingID идентификатор записи, назначается хранилищем
type MappingID int64

// URLMapping связь длинного адреса с коротким кодом
type URLMapping struct {
	ID        MappingID
	LongURL   URL
	ShortURL  Code
	CreatedAt time.Time
}

// IsZero сообщает, что запись не заполнена
func (m URLMapping) IsZero() bool {
	return m.ID == 0 && m.LongURL == "" && m.ShortURL == ""
}

// MappingEntry представляет запись для хранения в файле
type MappingEntry struct {
	UUID        string    `json:"uuid"`
	ID          int64     `json:"id"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateMappingRequest тело запроса на создание короткой ссылки
type CreateMappingRequest struct {
	OriginalURL string  `json:"originalUrl"`
	CustomAlias *string `json:"customAlias,omitempty"`
}

// Alias возвращает запрошенный алиас или пустую строку
func (r CreateMappingRequest) Alias() string {
	if r.CustomAlias == nil {
		return ""
	}
	return *r.CustomAlias
}

// MappingResponse пара длинный/короткий адрес в ответах API
type MappingResponse struct {
	ID       int64  `json:"id"`
	LongURL  string `json:"longUrl"`
	ShortURL string `json:"shortUrl"`
}

// NewMappingResponse формирует ответ из записи
func NewMappingResponse(m URLMapping) MappingResponse {
	return MappingResponse{
		ID:       int64(m.ID),
		LongURL:  m.LongURL.String(),
		ShortURL: m.ShortURL.String(),
	}
}
