package server

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venmoq/venmoq/pkg/config"
)

const sampleStatement = ",ID,Datetime,Type,Status,Note,From,To,Amount (total),Amount (fee),Funding Source,Destination,\n" +
	",1,2023-05-01 10:15:00,Payment,Complete,Dinner,Bob,Alice,- $12.50,,,,\n" +
	",,,,,,,,,,,,$250.00\n"

func postStatement(t *testing.T, handler http.Handler, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("statement", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/convert", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func newTestServer() *Server {
	return New(config.Default(), log.Default())
}

func TestHandleConvert(t *testing.T) {
	rec := postStatement(t, newTestServer().Handler(), "may.csv", sampleStatement)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "may_for_Quicken.csv")
	assert.Equal(t, "1", rec.Header().Get("X-Venmoq-Transactions"))
	assert.Equal(t, "1", rec.Header().Get("X-Venmoq-Balances-Skipped"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xef\xbb\xbf"))
	assert.Contains(t, body, "05/01/2023,Alice,,-12.50,,,Venmo,,")
}

func TestHandleConvertRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/convert", nil)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestHandleConvertMissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader("nope"))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConvertBadStatement(t *testing.T) {
	rec := postStatement(t, newTestServer().Handler(), "other.csv", "Date,Amount\n2023-05-01,1.00\n")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to convert statement")
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
