package dto_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"tempo/internal/domains/datetime/model"
	"tempo/internal/domains/datetime/model/dto"
	"tempo/shared/validator"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid request",
			body: `{"year": 2024, "month": 1, "day": 1, "hour": 1, "minute": 12, "second": 12, "millisecond": 125, "zone": "America/Caracas", "format": "long"}`,
		},
		{
			name: "format omitted",
			body: `{"year": 2024, "month": 1, "day": 1, "zone": "Asia/Tokyo"}`,
		},
		{
			name:    "month out of range",
			body:    `{"year": 2024, "month": 13, "day": 1, "zone": "UTC"}`,
			wantErr: "month must be less than or equal to 12",
		},
		{
			name:    "unknown zone",
			body:    `{"year": 2024, "month": 1, "day": 1, "zone": "Zone/ID"}`,
			wantErr: "zone must be a valid IANA zone identifier",
		},
		{
			name:    "missing zone",
			body:    `{"year": 2024, "month": 1, "day": 1}`,
			wantErr: "zone is required",
		},
		{
			name:    "unknown format",
			body:    `{"year": 2024, "month": 1, "day": 1, "zone": "UTC", "format": "rfc1123"}`,
			wantErr: "format must be one of long short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.BuildRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildRequest_DecodesFields(t *testing.T) {
	var req dto.BuildRequest
	body := `{"year": 2024, "month": 9, "day": 16, "hour": 1, "minute": 12, "second": 12, "millisecond": 125, "zone": "America/Sao_Paulo"}`

	require.NoError(t, validator.Validate(strings.NewReader(body), &req))

	assert.Equal(t, model.Fields{Year: 2024, Month: 9, Day: 16, Hour: 1, Minute: 12, Second: 12, Millisecond: 125}, req.Fields)
	assert.Equal(t, "America/Sao_Paulo", req.Zone)
}

func TestNowRequest_Validate(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&dto.NowRequest{}))
	assert.NoError(t, validator.ValidateStruct(&dto.NowRequest{Zone: "Europe/Paris", Format: "short"}))
	assert.Error(t, validator.ValidateStruct(&dto.NowRequest{Zone: "Zone/ID"}))
	assert.Error(t, validator.ValidateStruct(&dto.NowRequest{Format: "medium"}))
}

func TestSelectedFormat(t *testing.T) {
	format, err := dto.SelectedFormat("")
	require.NoError(t, err)
	assert.Equal(t, model.LongISO8601, format)

	format, err = dto.SelectedFormat("short")
	require.NoError(t, err)
	assert.Equal(t, model.ShortISO8601, format)

	_, err = dto.SelectedFormat("medium")

	var argErr *model.InvalidArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestDateTimeResponse_FromModel(t *testing.T) {
	dateTime, err := model.Of(2024, 1, 1, 1, 12, 12, 125, "America/Caracas")
	require.NoError(t, err)

	var res dto.DateTimeResponse
	require.NoError(t, res.FromModel(dateTime, model.ShortISO8601))

	assert.Equal(t, "America/Caracas", res.Zone)
	assert.Equal(t, "SHORT_ISO8601", res.Format)
	assert.Equal(t, "2024-01-01", res.Formatted)
	assert.Equal(t, "2024-01-01T01:12:12.125-04:00", res.Long)
	assert.Equal(t, "2024-01-01", res.Short)
	assert.Equal(t, 1, res.DayOfWeek)
	assert.Equal(t, int64(1704085932125), res.UnixMilli)
}

func TestDateTimeResponse_FromModel_InvalidFormat(t *testing.T) {
	dateTime, err := model.Of(2024, 1, 1, 1, 12, 12, 125, "America/Caracas")
	require.NoError(t, err)

	var res dto.DateTimeResponse
	err = res.FromModel(dateTime, 0)

	var argErr *model.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Empty(t, res.Formatted)
}

func TestZoneResponse_FromModel(t *testing.T) {
	tests := []struct {
		name     string
		fields   model.Fields
		zoneID   string
		expected dto.ZoneResponse
	}{
		{
			name:     "utc",
			fields:   model.Fields{Year: 2024, Month: 1, Day: 1},
			zoneID:   "UTC",
			expected: dto.ZoneResponse{Zone: "UTC", Abbreviation: "UTC", Offset: "Z", OffsetSeconds: 0},
		},
		{
			name:     "paris winter",
			fields:   model.Fields{Year: 2024, Month: 1, Day: 1},
			zoneID:   "Europe/Paris",
			expected: dto.ZoneResponse{Zone: "Europe/Paris", Abbreviation: "CET", Offset: "+01:00", OffsetSeconds: 3600},
		},
		{
			name:     "paris summer",
			fields:   model.Fields{Year: 2024, Month: 7, Day: 1},
			zoneID:   "Europe/Paris",
			expected: dto.ZoneResponse{Zone: "Europe/Paris", Abbreviation: "CEST", Offset: "+02:00", OffsetSeconds: 7200, DST: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dateTime, err := model.FromFields(tt.fields, tt.zoneID)
			require.NoError(t, err)

			var res dto.ZoneResponse
			res.FromModel(dateTime)

			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestRequests_FromRequest(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/v1/datetime/now?zone=Asia%2FTokyo&format=short&id=Europe%2FParis", nil)

	var now dto.NowRequest
	now.FromRequest(request)

	assert.Equal(t, dto.NowRequest{Zone: "Asia/Tokyo", Format: "short"}, now)

	var zone dto.ZoneRequest
	zone.FromRequest(request)

	assert.Equal(t, "Europe/Paris", zone.ID)
}
