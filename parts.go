package gemcore

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// Text creates a text part. Most calls look like:
//
//	resp, err := client.GenerateContent(ctx, []*genai.Part{gemcore.Text("Hello")})
func Text(text string) *genai.Part {
	return &genai.Part{Text: text}
}

// PartFromBytes wraps raw bytes into an inline data part. The MIME type is
// required because bytes carry no filename to sniff from.
func PartFromBytes(data []byte, mimeType string) (*genai.Part, error) {
	if mimeType == "" {
		return nil, fmt.Errorf("mime type must be provided when passing bytes")
	}
	return &genai.Part{
		InlineData: &genai.Blob{
			Data:     data,
			MIMEType: mimeType,
		},
	}, nil
}

// PartFromFile reads a file from disk and wraps it into an inline data
// part. When mimeType is empty it is guessed from the file extension; an
// unguessable extension is an error.
func PartFromFile(path string, mimeType string) (*genai.Part, error) {
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(path))
		if mimeType == "" {
			return nil, fmt.Errorf("could not guess mime type for %s, specify one explicitly", path)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return PartFromBytes(data, mimeType)
}

// PartFromURL turns a URL into a part. Cloud Storage URIs (gs://) are
// referenced directly; HTTP and HTTPS URLs are fetched and inlined.
func PartFromURL(ctx context.Context, url string, mimeType string) (*genai.Part, error) {
	if strings.HasPrefix(url, "gs://") {
		if mimeType == "" {
			mimeType = inferMIMETypeFromURL(url)
		}
		return &genai.Part{
			FileData: &genai.FileData{
				FileURI:  url,
				MIMEType: mimeType,
			},
		}, nil
	}

	data, fetchedType, err := fetchURL(ctx, url)
	if err != nil {
		return nil, err
	}
	if mimeType == "" {
		mimeType = fetchedType
	}
	return PartFromBytes(data, mimeType)
}

func fetchURL(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	// Some servers reject requests without a User-Agent.
	req.Header.Set("User-Agent", "gemcore/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = inferMIMETypeFromURL(url)
	}

	return data, mimeType, nil
}

func inferMIMETypeFromURL(url string) string {
	if t := mime.TypeByExtension(filepath.Ext(url)); t != "" {
		return t
	}
	return "application/octet-stream"
}
