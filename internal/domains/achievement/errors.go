package achievement

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrAchievementNotFound = errors.New("achievement not found")

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrAchievementNotFound) {
		return http.StatusNotFound
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
