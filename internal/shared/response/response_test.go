package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/shared/validation"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestError_DerivesCodeAndRecordsErr(t *testing.T) {
	c, w := newContext()

	Error(c, http.StatusConflict, "Url handle is already in use", errors.New("duplicate"))

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, CodeConflict, body.Error.Code)
	assert.Equal(t, "Url handle is already in use", body.Error.Message)
	assert.NotContains(t, w.Body.String(), "duplicate")
	require.Len(t, c.Errors, 1)
}

func TestError_UnknownStatusIsInternal(t *testing.T) {
	c, w := newContext()

	Error(c, http.StatusBadGateway, "upstream", nil)

	body := decode(t, w)
	assert.Equal(t, CodeInternal, body.Error.Code)
	assert.Empty(t, c.Errors)
}

func TestValidationProblem(t *testing.T) {
	c, w := newContext()

	errs := validation.New("", "Email or Password Incorrect")
	errs.Add("title", "The Title field is required.")
	ValidationProblem(c, errs)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Error struct {
			Code    string              `json:"code"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeValidationFailed, body.Error.Code)
	assert.Equal(t, []string{"Email or Password Incorrect"}, body.Error.Details[""])
	assert.Equal(t, []string{"The Title field is required."}, body.Error.Details["title"])
}

func TestSuccess(t *testing.T) {
	c, w := newContext()

	Success(c, http.StatusCreated, "created", gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
}
