package utils

import (
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
)

// StrictBinder decodes JSON bodies with unknown fields rejected, so a patch
// payload can only ever touch the fields its DTO enumerates. Non-JSON
// requests fall through to echo's default binder.
type StrictBinder struct {
	fallback echo.DefaultBinder
}

func NewStrictBinder() *StrictBinder {
	return &StrictBinder{}
}

func (b *StrictBinder) Bind(i interface{}, ctx echo.Context) error {
	req := ctx.Request()
	contentType := req.Header.Get(echo.HeaderContentType)
	if req.ContentLength == 0 || !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return b.fallback.Bind(i, ctx)
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		return apperrors.NewValidationError("invalid request body: %v", err)
	}
	return nil
}
