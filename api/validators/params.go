package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/avargas/shoplist-backend/pkg/errors"
)

// ParseIDParam reads a numeric path parameter. Non-numeric values are
// rejected before any store access happens.
func ParseIDParam(r *http.Request, name string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, name+" is required")
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, name+" is not valid").WithDetails(map[string]any{"param": name, "value": raw})
	}
	return uint(value), nil
}
