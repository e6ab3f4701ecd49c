package middleware

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/investasi/catalogue-api/internal/api/metrics"
	"github.com/investasi/catalogue-api/internal/infrastructure/storage"
)

const (
	coverField   = "cover"
	galleryField = "gallery"

	maxGalleryFiles = 3

	uploadsKey = "uploads"
)

// Uploads carries the stored file descriptors of one request. Cover is nil
// when the request did not include a cover file.
type Uploads struct {
	Cover   *storage.File
	Gallery []storage.File
}

// UploadsFrom returns the Uploads placed in the context by the Upload
// middleware, or an empty set when the middleware did not run.
func UploadsFrom(c echo.Context) *Uploads {
	if u, ok := c.Get(uploadsKey).(*Uploads); ok {
		return u
	}
	return &Uploads{}
}

// Upload parses the multipart form and stores the cover and gallery files
// before the route handler runs. Unsupported formats and oversized files
// fail the request here, so handlers only ever see accepted files.
func Upload(store *storage.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
				return echo.NewHTTPError(http.StatusBadRequest, "multipart form-data required")
			}

			form, err := c.MultipartForm()
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
			}

			covers := form.File[coverField]
			gallery := form.File[galleryField]
			if len(covers) > 1 {
				metrics.UploadsRejectedTotal.WithLabelValues("too_many_files").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "at most one cover file is allowed")
			}
			if len(gallery) > maxGalleryFiles {
				metrics.UploadsRejectedTotal.WithLabelValues("too_many_files").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "at most three gallery files are allowed")
			}

			uploads := &Uploads{}

			stored := make([]string, 0, 1+maxGalleryFiles)
			fail := func(err error) error {
				// Drop anything stored for this request before it fails.
				for _, name := range stored {
					_ = store.Remove(name)
				}
				return err
			}

			if len(covers) == 1 {
				f, err := saveOne(store, covers[0], coverField)
				if err != nil {
					return fail(err)
				}
				uploads.Cover = f
				stored = append(stored, f.Filename)
			}

			for _, fh := range gallery {
				f, err := saveOne(store, fh, galleryField)
				if err != nil {
					return fail(err)
				}
				uploads.Gallery = append(uploads.Gallery, *f)
				stored = append(stored, f.Filename)
			}

			c.Set(uploadsKey, uploads)
			return next(c)
		}
	}
}

func saveOne(store *storage.Store, fh *multipart.FileHeader, field string) (*storage.File, error) {
	f, err := store.Save(fh)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedFormat):
			metrics.UploadsRejectedTotal.WithLabelValues("unsupported_format").Inc()
			return nil, echo.NewHTTPError(http.StatusBadRequest, storage.ErrUnsupportedFormat.Error())
		case errors.Is(err, storage.ErrFileTooLarge):
			metrics.UploadsRejectedTotal.WithLabelValues("too_large").Inc()
			return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, storage.ErrFileTooLarge.Error())
		}
		return nil, err
	}
	metrics.UploadsStoredTotal.WithLabelValues(field).Inc()
	return f, nil
}
