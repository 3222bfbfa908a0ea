package handler

import (
	"net/http"

	"meetfind/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// TestRequest confirms that the presented token passed authentication.
// The auth middleware has already rejected invalid tokens by the time
// this handler runs.
func TestRequest(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "authorized"}, "Token is valid")
}
