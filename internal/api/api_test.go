package api

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.Struct(RegisterRequest{Email: "a@x.com", Password: "pw", Name: "A"}))
	require.Error(t, v.Struct(RegisterRequest{Email: "not-an-email", Password: "pw", Name: "A"}))
	require.Error(t, v.Struct(RegisterRequest{Email: "a@x.com", Name: "A"}))
	require.Error(t, v.Struct(RegisterRequest{Email: "a@x.com", Password: "pw"}))
}

func TestLoginRequestValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.Struct(LoginRequest{Email: "a@x.com", Password: "pw"}))
	require.Error(t, v.Struct(LoginRequest{Email: "a@x.com"}))
	require.Error(t, v.Struct(LoginRequest{Password: "pw"}))
}

func TestPostRequestValidation(t *testing.T) {
	v := validator.New()
	ok := PostRequest{Title: "T", Subtitle: "S", Body: "B", ImageURL: "https://img.example.com/a.png"}
	require.NoError(t, v.Struct(ok))

	bad := ok
	bad.ImageURL = "not a url"
	require.Error(t, v.Struct(bad))

	bad = ok
	bad.Title = strings.Repeat("t", 251)
	require.Error(t, v.Struct(bad))

	bad = ok
	bad.Body = ""
	require.Error(t, v.Struct(bad))
}

func TestCommentRequestValidation(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.Struct(CommentRequest{Text: "hi"}))
	require.Error(t, v.Struct(CommentRequest{}))
	require.Error(t, v.Struct(CommentRequest{Text: strings.Repeat("x", 251)}))
}
