package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/catalog/pkg/errors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", errors.Validation(errors.Issue{Field: "title", Message: "required"}), http.StatusUnprocessableEntity},
		{"bad request", errors.BadRequest("bad page"), http.StatusBadRequest},
		{"not found", errors.NotFound("missing"), http.StatusNotFound},
		{"conflict", errors.Conflict("taken"), http.StatusConflict},
		{"internal", errors.Internal("boom"), http.StatusInternalServerError},
		{"plain", stderrors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("outer: %w", errors.NotFound("inner")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.HTTPStatus(tt.err))
		})
	}
}

func TestValidationIssues(t *testing.T) {
	err := errors.Validation(
		errors.Issue{Field: "title", Message: "must be at least 10 characters"},
		errors.Issue{Field: "slug", Message: "must be a valid slug"},
	)

	assert.True(t, errors.IsValidation(err))
	assert.False(t, errors.IsConflict(err))
	assert.Len(t, errors.IssuesOf(err), 2)
	assert.Contains(t, err.Error(), "title: must be at least 10 characters")
	assert.Contains(t, err.Error(), "slug: must be a valid slug")
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.Wrap(errors.ErrorTypeInternal, "index failed", cause)

	assert.True(t, errors.IsInternal(err))
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, errors.IssuesOf(stderrors.New("other")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, errors.IsDuplicateError(stderrors.New("UNIQUE constraint failed: search_documents.doc_id")))
	assert.True(t, errors.IsDuplicateError(stderrors.New("ERROR: duplicate key value violates unique constraint")))
	assert.False(t, errors.IsDuplicateError(stderrors.New("connection refused")))
	assert.False(t, errors.IsDuplicateError(nil))
}
