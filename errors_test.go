package gemcore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestWrapError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, wrapError("op", nil))
	})

	t.Run("non-api errors keep their identity", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := wrapError("generate content", cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.False(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
	})

	t.Run("categorizes api errors by status code", func(t *testing.T) {
		tests := []struct {
			code     int
			category ErrorCategory
		}{
			{429, ErrorTransient},
			{500, ErrorTransient},
			{503, ErrorTransient},
			{401, ErrorPermanent},
			{403, ErrorPermanent},
			{400, ErrorUserInput},
			{404, ErrorUserInput},
			{422, ErrorUserInput},
			{418, ErrorPermanent},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("status %d", tt.code), func(t *testing.T) {
				apiErr := genai.APIError{Code: tt.code, Message: "boom"}
				err := wrapError("generate content", apiErr)

				var ce *Error
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.category, ce.Category)
				assert.Equal(t, tt.code, ce.Code)
				assert.Equal(t, tt.code, StatusCodeOf(err))
			})
		}
	})

	t.Run("category predicates", func(t *testing.T) {
		transient := wrapError("op", genai.APIError{Code: 429})
		assert.True(t, IsTransient(transient))
		assert.False(t, IsPermanent(transient))

		permanent := wrapError("op", genai.APIError{Code: 401})
		assert.True(t, IsPermanent(permanent))

		userInput := wrapError("op", genai.APIError{Code: 400})
		assert.True(t, IsUserInput(userInput))
	})

	t.Run("underlying api error stays reachable", func(t *testing.T) {
		err := wrapError("op", genai.APIError{Code: 429, Message: "quota"})

		var apiErr genai.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 429, apiErr.Code)
	})
}

func TestBlockedError(t *testing.T) {
	err := &BlockedError{Reason: "SAFETY"}
	assert.Equal(t, "request blocked: SAFETY", err.Error())
}

func TestStatusCodeOfPlainError(t *testing.T) {
	assert.Zero(t, StatusCodeOf(errors.New("nope")))
}
