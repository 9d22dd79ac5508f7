package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusUnauthorized, "unauthorized")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"error","message":"unauthorized"}`, rec.Body.String())
}

func TestJSON_OmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, Envelope{Status: StatusSuccess, Data: map[string]int{"n": 1}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":{"n":1}}`, rec.Body.String())
}
