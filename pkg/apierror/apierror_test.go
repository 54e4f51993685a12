package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := map[Kind]int{
		KindBadRequest:    http.StatusBadRequest,
		KindUnauthorized:  http.StatusUnauthorized,
		KindNotFound:      http.StatusNotFound,
		KindConflict:      http.StatusConflict,
		KindUnprocessable: http.StatusUnprocessableEntity,
		KindInternal:      http.StatusInternalServerError,
	}

	for kind, want := range cases {
		require.Equal(t, want, kind.HTTPStatus())
	}
}

func TestErrorMatchingThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading tweet: %w", New(KindNotFound, "Tweet not available"))

	var apiErr *Error
	require.ErrorAs(t, wrapped, &apiErr)
	require.Equal(t, KindNotFound, apiErr.Kind)
	require.Equal(t, "Tweet not available", apiErr.Message)
}

func TestUnprocessableCarriesFields(t *testing.T) {
	t.Parallel()

	err := Unprocessable(map[string]string{"username": "required"})
	require.Equal(t, KindUnprocessable, err.Kind)
	require.Contains(t, err.Error(), "username")

	var target *Error
	require.True(t, errors.As(err, &target))
}
