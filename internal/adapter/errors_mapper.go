package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/dkovalev/qr-mint/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if vErr := decodeValidationError(resp.Body()); vErr != nil {
			return vErr
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// decodeValidationError restores a *models.ValidationError from a 400
// response body, or returns nil if the body carries something else.
func decodeValidationError(body []byte) *models.ValidationError {
	var vErr models.ValidationError
	if err := json.Unmarshal(body, &vErr); err != nil {
		return nil
	}
	if vErr.Field == "" || vErr.Reason == "" {
		return nil
	}
	return &vErr
}
