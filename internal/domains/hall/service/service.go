package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hall=MockHallService

import (
	"context"
	"errors"
	"fmt"
	"hallbook/config"
	"hallbook/infras/otel"
	"hallbook/internal/domains/hall/model/dto"
	"hallbook/internal/domains/hall/repository"
	"hallbook/shared"
	"hallbook/shared/cache"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllHall = "hall:gets"
)

type Hall interface {
	Create(ctx context.Context, req dto.CreateHallRequest) (int64, error)
	GetAll(ctx context.Context) ([]dto.HallResponse, error)
}

type serviceImpl struct {
	repo  repository.Hall
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hall, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hall {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHallRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hall.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return 0, err //nolint:wrapcheck
	}

	id, err = s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		return 0, fmt.Errorf("failed to create hall: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllHall)

	scope.SetAttribute(constant.OtelHallIDAttributeKey, id)

	return id, nil
}

// GetAll lists every hall in insertion order. A cached list may be stale until its TTL expires.
func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hall.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheEnabled := s.cfg.Cache.TTL > 0

	if cacheEnabled {
		err = s.cache.Get(ctx, cacheGetAllHall, &res)
		if err == nil && res != nil {
			log.Debug().Str("cacheKey", cacheGetAllHall).Msg("cache hit for halls")

			return res, nil
		}

		if err != nil && !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("cacheKey", cacheGetAllHall).Msg("failed to read halls from cache")
		}
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to get halls: %w", err)
	}

	res = dto.NewHallsResponse(models)

	if cacheEnabled {
		if err := s.cache.Save(ctx, cacheGetAllHall, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to save halls to cache")
		}
	}

	return res, nil
}
