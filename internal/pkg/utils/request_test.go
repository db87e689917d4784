package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newQueryRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest("GET", target, nil)
}
