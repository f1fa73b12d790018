package utils_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoinsight-service/internal/pkg/errors"
	"github.com/geoinsight-service/internal/pkg/utils"
	"github.com/geoinsight-service/internal/pkg/validator"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func sendErrorStatus(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return utils.SendError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestSendErrorAppError(t *testing.T) {
	status, body := sendErrorStatus(t, errors.ErrInvalidGeometry)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_GEOMETRY", body.Error.Code)
}

func TestSendErrorValidationFailureIsBadRequest(t *testing.T) {
	req := struct {
		Lon float64 `validate:"longitude_range"`
	}{Lon: 200}

	err := validator.Validate(&req)
	require.Error(t, err)

	status, body := sendErrorStatus(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
}

func TestSendErrorUnknownErrorIsInternal(t *testing.T) {
	status, body := sendErrorStatus(t, fmt.Errorf("boom"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
}
