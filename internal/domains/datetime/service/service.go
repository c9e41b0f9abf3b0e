package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tempo/infras/otel"
	"tempo/internal/domains/datetime/model"
	"tempo/internal/domains/datetime/model/dto"
	"tempo/shared/constant"
	"tempo/shared/failure"
	"tempo/shared/timezone"

	"github.com/rs/zerolog/log"
)

type DateTime interface {
	Now(ctx context.Context, req dto.NowRequest) (dto.DateTimeResponse, error)
	Build(ctx context.Context, req dto.BuildRequest) (dto.DateTimeResponse, error)
	Zone(ctx context.Context, req dto.ZoneRequest) (dto.ZoneResponse, error)
}

type serviceImpl struct {
	otel     otel.Otel
	provider timezone.Provider
}

func New(otel otel.Otel, provider timezone.Provider) DateTime {
	return &serviceImpl{
		otel:     otel,
		provider: provider,
	}
}

func (s *serviceImpl) Now(ctx context.Context, req dto.NowRequest) (res dto.DateTimeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Now")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	zoneID := req.Zone
	if zoneID == "" {
		zoneID = timezone.GetLocation().String()
	}

	scope.SetAttributes(map[string]any{
		constant.OtelZoneAttributeKey:   zoneID,
		constant.OtelFormatAttributeKey: req.Format,
	})

	format, err := dto.SelectedFormat(req.Format)
	if err != nil {
		log.Error().Err(err).Str("format", req.Format).Msg("failed to select format")

		return res, toFailure(err)
	}

	dateTime, err := model.New(zoneID, model.WithProvider(s.provider))
	if err != nil {
		log.Error().Err(err).Str("zone", zoneID).Msg("failed to get current datetime")

		return res, toFailure(err)
	}

	if err = res.FromModel(dateTime, format); err != nil {
		log.Error().Err(err).Msg("failed to render current datetime")

		return res, toFailure(err)
	}

	return res, nil
}

func (s *serviceImpl) Build(ctx context.Context, req dto.BuildRequest) (res dto.DateTimeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Build")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelZoneAttributeKey:   req.Zone,
		constant.OtelFormatAttributeKey: req.Format,
	})

	format, err := dto.SelectedFormat(req.Format)
	if err != nil {
		log.Error().Err(err).Str("format", req.Format).Msg("failed to select format")

		return res, toFailure(err)
	}

	dateTime, err := model.FromFields(req.Fields, req.Zone, model.WithProvider(s.provider))
	if err != nil {
		log.Error().Err(err).Str("zone", req.Zone).Interface("fields", req.Fields).Msg("failed to build datetime")

		return res, toFailure(err)
	}

	if err = res.FromModel(dateTime, format); err != nil {
		log.Error().Err(err).Msg("failed to render datetime")

		return res, toFailure(err)
	}

	return res, nil
}

func (s *serviceImpl) Zone(ctx context.Context, req dto.ZoneRequest) (res dto.ZoneResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Zone")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelZoneAttributeKey, req.ID)

	dateTime, err := model.New(req.ID, model.WithProvider(s.provider))
	if err != nil {
		log.Error().Err(err).Str("zone", req.ID).Msg("failed to resolve zone")

		return res, toFailure(err)
	}

	res.FromModel(dateTime)

	return res, nil
}

// toFailure maps the value type's input errors to 400 and anything else to 500.
func toFailure(err error) error {
	var (
		zoneErr *model.InvalidZoneError
		dateErr *model.InvalidDateError
		argErr  *model.InvalidArgumentError
	)

	if errors.As(err, &zoneErr) || errors.As(err, &dateErr) || errors.As(err, &argErr) {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	return failure.InternalError(fmt.Errorf("unexpected %s failure: %w", model.EntityName, err)) //nolint:wrapcheck
}
