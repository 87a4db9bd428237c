package search

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/urandom/feedkeeper/content"
	elastic "gopkg.in/olivere/elastic.v5"
)

func Test_searchError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		invalid bool
	}{
		{"bad request", &elastic.Error{Status: http.StatusBadRequest}, true},
		{"server error", &elastic.Error{Status: http.StatusInternalServerError}, false},
		{"connection", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := searchError(tt.err)

			assert.Error(t, err)
			assert.Equal(t, tt.invalid, content.IsValidation(err))
		})
	}
}
