// Package grpcserver предоставляет gRPC API поверх тех же операций, что и HTTP.
// Сообщения описаны стандартными типами protobuf, поэтому кодогенерация не нужна.
package grpcserver

import (
	"context"
	"errors"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/service"
	"github.com/avc-dev/url-alias/internal/usecase"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName полное имя gRPC сервиса
const ServiceName = "urlalias.v1.Mappings"

// URLUsecase определяет операции, которые вызывает gRPC слой
type URLUsecase interface {
	CreateShortURL(ctx context.Context, urlString string, customAlias string) (model.URLMapping, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetAllURLs(ctx context.Context) ([]model.MappingResponse, error)
	DeleteURL(ctx context.Context, id int64) (model.URLMapping, error)
}

// MappingsServer реализация сервиса urlalias.v1.Mappings
type MappingsServer interface {
	Create(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Resolve(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	List(ctx context.Context, req *emptypb.Empty) (*structpb.ListValue, error)
	Delete(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error)
}

// Server обслуживает gRPC запросы
type Server struct {
	usecase URLUsecase
	logger  *zap.Logger
}

// New создает новый Server
func New(usecase URLUsecase, logger *zap.Logger) *Server {
	return &Server{
		usecase: usecase,
		logger:  logger,
	}
}

// Register регистрирует сервис на gRPC сервере
func (s *Server) Register(registrar grpc.ServiceRegistrar) {
	registrar.RegisterService(&ServiceDesc, s)
}

// Create создает запись. Ожидает поля originalUrl и необязательный customAlias
func (s *Server) Create(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	originalURL := fields["originalUrl"].GetStringValue()
	customAlias := fields["customAlias"].GetStringValue()

	mapping, err := s.usecase.CreateShortURL(ctx, originalURL, customAlias)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return mappingToStruct(model.NewMappingResponse(mapping)), nil
}

// Resolve возвращает оригинальный URL по короткому коду
func (s *Server) Resolve(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	originalURL, err := s.usecase.GetOriginalURL(ctx, req.GetValue())
	if err != nil {
		return nil, s.toStatus(err)
	}

	return wrapperspb.String(originalURL), nil
}

// List возвращает все записи
func (s *Server) List(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	urls, err := s.usecase.GetAllURLs(ctx)
	if err != nil {
		return nil, s.toStatus(err)
	}

	values := make([]*structpb.Value, 0, len(urls))
	for _, u := range urls {
		values = append(values, structpb.NewStructValue(mappingToStruct(u)))
	}

	return &structpb.ListValue{Values: values}, nil
}

// Delete удаляет запись по id
func (s *Server) Delete(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	removed, err := s.usecase.DeleteURL(ctx, req.GetValue())
	if err != nil {
		return nil, s.toStatus(err)
	}

	return mappingToStruct(model.NewMappingResponse(removed)), nil
}

func mappingToStruct(m model.MappingResponse) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"id":       structpb.NewNumberValue(float64(m.ID)),
			"longUrl":  structpb.NewStringValue(m.LongURL),
			"shortUrl": structpb.NewStringValue(m.ShortURL),
		},
	}
}

// toStatus переводит ошибки usecase в коды gRPC
func (s *Server) toStatus(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrURLNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrAliasConflict):
		return status.Error(codes.AlreadyExists, service.ErrAliasConflict.Error())
	case errors.Is(err, service.ErrGenerationExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		s.logger.Error("gRPC request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}
