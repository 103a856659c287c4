// File: services/imagehost.go
package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageHost membungkus klien Cloudinary dengan preset upload per jenis
// konten (product, banner, highlighted).
type ImageHost struct {
	cld     *cloudinary.Cloudinary
	presets map[string]string
}

// NewImageHost membuat ImageHost dari CLOUDINARY_URL. URL kosong
// dianggap konfigurasi belum ada; setiap upload akan ditolak.
func NewImageHost(cloudinaryURL string, presets map[string]string) (*ImageHost, error) {
	if cloudinaryURL == "" {
		return &ImageHost{presets: presets}, nil
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("error initializing Cloudinary: %w", err)
	}
	return &ImageHost{cld: cld, presets: presets}, nil
}

// Upload mengunggah file ke Cloudinary dengan preset sesuai kategori
// dan mengembalikan URL publik beserta public ID-nya.
func (h *ImageHost) Upload(ctx context.Context, file io.Reader, category string) (string, string, error) {
	if h.cld == nil {
		return "", "", fmt.Errorf("cloudinary is not configured")
	}
	preset, ok := h.presets[category]
	if !ok || preset == "" {
		return "", "", fmt.Errorf("no upload preset configured for %q", category)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := h.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		UploadPreset: preset,
		Folder:       "snackmart/" + category,
	})
	if err != nil {
		return "", "", fmt.Errorf("upload failed: %w", err)
	}
	if result.Error.Message != "" {
		return "", "", fmt.Errorf("upload failed: %s", result.Error.Message)
	}
	return result.SecureURL, result.PublicID, nil
}

// Delete menghapus gambar remote berdasarkan public ID. Pemanggil
// memperlakukan kegagalan sebagai non-fatal.
func (h *ImageHost) Delete(ctx context.Context, publicID string) error {
	if h.cld == nil || publicID == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if result.Result != "" && result.Result != "ok" {
		return fmt.Errorf("destroy returned %q", result.Result)
	}
	return nil
}

// PublicIDFromURL mengambil public ID dari URL delivery Cloudinary.
// Contoh: .../image/upload/v1712345/snackmart/banner/abc.jpg
// menghasilkan "snackmart/banner/abc". String kosong berarti URL bukan
// URL Cloudinary yang dikenali.
func PublicIDFromURL(rawURL string) string {
	idx := strings.Index(rawURL, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := rawURL[idx+len("/upload/"):]

	parts := strings.Split(rest, "/")
	if len(parts) > 1 && len(parts[0]) > 1 && parts[0][0] == 'v' {
		allDigits := true
		for _, r := range parts[0][1:] {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			parts = parts[1:]
		}
	}
	if len(parts) == 0 {
		return ""
	}

	id := strings.Join(parts, "/")
	if dot := strings.LastIndex(id, "."); dot > strings.LastIndex(id, "/") {
		id = id[:dot]
	}
	return id
}
