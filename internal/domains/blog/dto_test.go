package blog

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreatePostRequest{Title: "Hello", Content: "World"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing title names the field", func(t *testing.T) {
		req := CreatePostRequest{Content: "World"}
		err := req.Validate()
		require.Error(t, err)

		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, errs, "title")
	})

	t.Run("missing content names the field", func(t *testing.T) {
		req := CreatePostRequest{Title: "Hello"}
		err := req.Validate()
		require.Error(t, err)

		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, errs, "content")
	})

	t.Run("malformed slug rejected", func(t *testing.T) {
		req := CreatePostRequest{Title: "Hello", Content: "World", Slug: "Not A Slug!"}
		assert.Error(t, req.Validate())
	})

	t.Run("well-formed slug accepted", func(t *testing.T) {
		req := CreatePostRequest{Title: "Hello", Content: "World", Slug: "hello-world-2"}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdatePostRequestValidate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdatePostRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("blank title rejected when present", func(t *testing.T) {
		blank := ""
		req := UpdatePostRequest{Title: &blank}
		assert.Error(t, req.Validate())
	})
}
