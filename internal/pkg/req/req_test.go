package req

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcampus/internal/pkg/errs"
)

type bindTarget struct {
	Message string `json:"message"`
}

func TestBindJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"message":"hi"}`))
	r.Header.Set("Content-Type", "application/json")

	var dst bindTarget
	require.Nil(t, BindJSON(r, &dst))
	assert.Equal(t, "hi", dst.Message)
}

func TestBindJSONRejectsMissingContentType(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"message":"hi"}`))

	var dst bindTarget
	customErr := BindJSON(r, &dst)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrUnsupportedMediaType, customErr.Code)
}

func TestBindJSONRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"message":"hi","extra":1}`))
	r.Header.Set("Content-Type", "application/json")

	var dst bindTarget
	customErr := BindJSON(r, &dst)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidJSONFormat, customErr.Code)
}

func TestBindJSONRejectsTrailingContent(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"message":"hi"}{"message":"again"}`))
	r.Header.Set("Content-Type", "application/json")

	var dst bindTarget
	customErr := BindJSON(r, &dst)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrExtraContentInBody, customErr.Code)
}

func TestBindJSONRejectsMalformedBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	r.Header.Set("Content-Type", "application/json")

	var dst bindTarget
	customErr := BindJSON(r, &dst)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidJSONFormat, customErr.Code)
}
