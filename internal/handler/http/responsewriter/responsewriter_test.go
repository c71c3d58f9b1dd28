package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_Defaults(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, 0, rw.BytesWritten())
	assert.False(t, rw.HeaderWritten())
}

func TestWriteHeader_FirstCallWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusConflict)

	assert.Equal(t, http.StatusCreated, rw.StatusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, rw.HeaderWritten())
}

func TestWrite_ImplicitOKAndCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	_, _ = rw.Write([]byte(`{"id":1,`))
	_, _ = rw.Write([]byte(`"slug":"budget-vote"}`))

	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, len(`{"id":1,"slug":"budget-vote"}`), rw.BytesWritten())
	assert.Equal(t, `{"id":1,"slug":"budget-vote"}`, rec.Body.String())
}

func TestWrite_AfterErrorStatus(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())

	rw.WriteHeader(http.StatusNotFound)
	_, _ = rw.Write([]byte("article not found"))

	assert.Equal(t, http.StatusNotFound, rw.StatusCode())
	assert.Equal(t, len("article not found"), rw.BytesWritten())
}

func TestFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, rw.HeaderWritten())
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Same(t, rec, Wrap(rec).Unwrap())
}
