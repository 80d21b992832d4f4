package helpers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// CreateFileResponse builds a download response with the given content type
// and attachment filename.
func CreateFileResponse(content []byte, filename string, contentType string) *presentationProtocols.HttpResponse {
	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(content)),
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":        contentType,
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
		},
	}
}
