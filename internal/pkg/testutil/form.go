package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// FormFile is a file part of a multipart test request
type FormFile struct {
	Field   string
	Name    string
	Content []byte
}

// CreateMultipartBody writes files and plain fields into a multipart body and
// returns it together with the matching Content-Type header value.
func CreateMultipartBody(t *testing.T, files []FormFile, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		require.NoError(t, err)

		_, err = part.Write(file.Content)
		require.NoError(t, err)
	}

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}
