package llm

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/invoice-orders/constants"
)

// ReadAsDataURL reads path and returns it as a base64 data URL with its MIME type.
func ReadAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		// fallbacks
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		case "pdf":
			mt = "application/pdf"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}

// FileContentPart builds the chat content part carrying the document.
// Images go as image_url; PDFs go as a file part.
func FileContentPart(path string) (map[string]any, error) {
	dataURL, _, err := ReadAsDataURL(path)
	if err != nil {
		return nil, err
	}
	if constants.IsPDF(path) {
		return map[string]any{
			"type": "file",
			"file": map[string]any{
				"filename":  filepath.Base(path),
				"file_data": dataURL,
			},
		}, nil
	}
	return map[string]any{
		"type":      "image_url",
		"image_url": map[string]any{"url": dataURL},
	}, nil
}
