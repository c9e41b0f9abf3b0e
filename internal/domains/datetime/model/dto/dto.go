package dto

import (
	"fmt"
	"net/http"
	"tempo/internal/domains/datetime/model"
	"tempo/shared/constant"
	"tempo/shared/validator"
)

func init() {
	validator.RegisterValidation("isoformat", func(value string) bool {
		_, err := model.ParseFormat(value)

		return err == nil
	})
}

// NowRequest asks for the current instant. An empty zone means the
// application timezone.
type NowRequest struct {
	Zone   string `json:"zone" validate:"omitempty,ianazone"`
	Format string `json:"format" validate:"omitempty,isoformat"`
}

func (r *NowRequest) FromRequest(request *http.Request) {
	query := request.URL.Query()

	r.Zone = query.Get(constant.RequestParamZone)
	r.Format = query.Get(constant.RequestParamFormat)
}

// BuildRequest describes an explicit instant.
type BuildRequest struct {
	model.Fields
	Zone   string `json:"zone" validate:"required,ianazone"`
	Format string `json:"format" validate:"omitempty,isoformat"`
}

// SelectedFormat returns the requested rendering, LongISO8601 when none was asked for.
func SelectedFormat(name string) (model.Format, error) {
	if name == "" {
		return model.LongISO8601, nil
	}

	return model.ParseFormat(name) //nolint:wrapcheck
}

type DateTimeResponse struct {
	Zone      string `json:"zone"`
	Format    string `json:"format"`
	Formatted string `json:"formatted"`
	Long      string `json:"long"`
	Short     string `json:"short"`
	DayOfWeek int    `json:"day_of_week"`
	UnixMilli int64  `json:"unix_milli"`
}

func (r *DateTimeResponse) FromModel(dateTime model.DateTime, format model.Format) error {
	formatted, err := dateTime.ISO8601(format)
	if err != nil {
		return fmt.Errorf("failed to format datetime: %w", err)
	}

	long, err := dateTime.ISO8601(model.LongISO8601)
	if err != nil {
		return fmt.Errorf("failed to format datetime: %w", err)
	}

	short, err := dateTime.ISO8601(model.ShortISO8601)
	if err != nil {
		return fmt.Errorf("failed to format datetime: %w", err)
	}

	r.Zone = dateTime.ZoneID()
	r.Format = format.String()
	r.Formatted = formatted
	r.Long = long
	r.Short = short
	r.DayOfWeek = dateTime.DayOfWeek()
	r.UnixMilli = dateTime.Time().UnixMilli()

	return nil
}

type ZoneRequest struct {
	ID string `json:"id" validate:"required,ianazone"`
}

func (r *ZoneRequest) FromRequest(request *http.Request) {
	r.ID = request.URL.Query().Get(constant.RequestParamID)
}

type ZoneResponse struct {
	Zone          string `json:"zone"`
	Abbreviation  string `json:"abbreviation"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offset_seconds"`
	DST           bool   `json:"dst"`
}

func (r *ZoneResponse) FromModel(dateTime model.DateTime) {
	instant := dateTime.Time()
	abbreviation, offsetSeconds := instant.Zone()

	r.Zone = dateTime.ZoneID()
	r.Abbreviation = abbreviation
	r.Offset = instant.Format("Z07:00")
	r.OffsetSeconds = offsetSeconds
	r.DST = instant.IsDST()
}
