package service_test

import (
	"context"
	"net/http"
	"tempo/infras/otel/mocks"
	"tempo/internal/domains/datetime/model"
	"tempo/internal/domains/datetime/model/dto"
	"tempo/internal/domains/datetime/service"
	"tempo/shared/failure"
	"tempo/shared/timezone"
	tzMocks "tempo/shared/timezone/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2024, time.September, 16, 4, 12, 12, 125_678_000, time.UTC)

func newService() service.DateTime {
	return service.New(mocks.NewOtel(), tzMocks.Fixed(frozen))
}

func TestDateTimeService_Now(t *testing.T) {
	svc := newService()

	tests := []struct {
		name     string
		req      dto.NowRequest
		wantCode int
		want     dto.DateTimeResponse
	}{
		{
			name: "explicit zone long",
			req:  dto.NowRequest{Zone: "America/Sao_Paulo"},
			want: dto.DateTimeResponse{
				Zone:      "America/Sao_Paulo",
				Format:    "LONG_ISO8601",
				Formatted: "2024-09-16T01:12:12.125-03:00",
				Long:      "2024-09-16T01:12:12.125-03:00",
				Short:     "2024-09-16",
				DayOfWeek: 1,
				UnixMilli: frozen.Truncate(time.Millisecond).UnixMilli(),
			},
		},
		{
			name: "explicit zone short utc+14",
			req:  dto.NowRequest{Zone: "Pacific/Kiritimati", Format: "short"},
			want: dto.DateTimeResponse{
				Zone:      "Pacific/Kiritimati",
				Format:    "SHORT_ISO8601",
				Formatted: "2024-09-16",
				Long:      "2024-09-16T18:12:12.125+14:00",
				Short:     "2024-09-16",
				DayOfWeek: 1,
				UnixMilli: frozen.Truncate(time.Millisecond).UnixMilli(),
			},
		},
		{
			name:     "unknown zone",
			req:      dto.NowRequest{Zone: "Zone/ID"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown format",
			req:      dto.NowRequest{Zone: "UTC", Format: "medium"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Now(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestDateTimeService_Now_ApplicationZone(t *testing.T) {
	require.NoError(t, timezone.Init("Asia/Tokyo"))
	t.Cleanup(func() { _ = timezone.Init("UTC") })

	res, err := newService().Now(context.Background(), dto.NowRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tokyo", res.Zone)
	assert.Equal(t, "2024-09-16T13:12:12.125+09:00", res.Formatted)
}

func TestDateTimeService_Now_InvalidZoneKeepsCause(t *testing.T) {
	_, err := newService().Now(context.Background(), dto.NowRequest{Zone: "Zone/ID"})

	var zoneErr *model.InvalidZoneError
	require.ErrorAs(t, err, &zoneErr)
	assert.Equal(t, "Zone/ID", zoneErr.ZoneID)
	assert.Equal(t, "invalid zone ID: Zone/ID", err.Error())
}

func TestDateTimeService_Build(t *testing.T) {
	svc := newService()

	tests := []struct {
		name      string
		req       dto.BuildRequest
		wantCode  int
		formatted string
		dayOfWeek int
	}{
		{
			name: "caracas long",
			req: dto.BuildRequest{
				Fields: model.Fields{Year: 2024, Month: 1, Day: 1, Hour: 1, Minute: 12, Second: 12, Millisecond: 125},
				Zone:   "America/Caracas",
			},
			formatted: "2024-01-01T01:12:12.125-04:00",
			dayOfWeek: 1,
		},
		{
			name: "utc short",
			req: dto.BuildRequest{
				Fields: model.Fields{Year: 2024, Month: 9, Day: 22, Hour: 1, Minute: 12, Second: 12, Millisecond: 125},
				Zone:   "UTC",
				Format: "short",
			},
			formatted: "2024-09-22",
			dayOfWeek: 7,
		},
		{
			name: "day out of range",
			req: dto.BuildRequest{
				Fields: model.Fields{Year: 2023, Month: 2, Day: 29},
				Zone:   "UTC",
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown zone",
			req: dto.BuildRequest{
				Fields: model.Fields{Year: 2024, Month: 1, Day: 1},
				Zone:   "Zone/ID",
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown format",
			req: dto.BuildRequest{
				Fields: model.Fields{Year: 2024, Month: 1, Day: 1},
				Zone:   "UTC",
				Format: "medium",
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Build(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Zone, res.Zone)
			assert.Equal(t, tt.formatted, res.Formatted)
			assert.Equal(t, tt.dayOfWeek, res.DayOfWeek)
		})
	}
}

func TestDateTimeService_Build_InvalidDateMessage(t *testing.T) {
	_, err := newService().Build(context.Background(), dto.BuildRequest{
		Fields: model.Fields{Year: 2023, Month: 2, Day: 29},
		Zone:   "UTC",
	})

	var dateErr *model.InvalidDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "invalid date: day 29 is out of range for February 2023", err.Error())
}

func TestDateTimeService_Zone(t *testing.T) {
	svc := newService()

	res, err := svc.Zone(context.Background(), dto.ZoneRequest{ID: "Europe/Paris"})
	require.NoError(t, err)

	assert.Equal(t, dto.ZoneResponse{
		Zone:          "Europe/Paris",
		Abbreviation:  "CEST",
		Offset:        "+02:00",
		OffsetSeconds: 7200,
		DST:           true,
	}, res)

	_, err = svc.Zone(context.Background(), dto.ZoneRequest{ID: "Mars/Olympus"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
