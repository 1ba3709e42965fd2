package handler

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/progress"
	"blogapi/internal/service"
)

// UploadIDHeader lets clients name an upload so they can poll its progress.
const UploadIDHeader = "X-Upload-ID"

// uploadID returns the client supplied progress id, from the header or the form.
func uploadID(c *fiber.Ctx) string {
	if id := strings.TrimSpace(c.Get(UploadIDHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(c.FormValue("uploadId"))
}

// openForm turns a multipart file header into an UploadFile. The caller closes the returned file.
func openForm(fh *multipart.FileHeader) (service.UploadFile, multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return service.UploadFile{}, nil, err
	}
	return service.UploadFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Reader:      f,
	}, f, nil
}

// singleUpload handles one multipart "file" field, recording progress under
// the client's upload id when one is given.
func singleUpload(c *fiber.Ctx, tracker *progress.Tracker, put func(service.UploadFile, func(float64)) error) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}
	file, f, err := openForm(fh)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	defer f.Close()

	id := uploadID(c)
	err = put(file, tracker.Reporter(id))
	if err != nil {
		tracker.Finish(id, err.Error())
		return fail(c, err)
	}
	tracker.Finish(id, "")
	return nil
}

// UploadImage godoc
// @Summary Upload a blog image
// @Description Images only, at most 10MB. Send X-Upload-ID to poll progress.
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} model.UploadResult
// @Failure 400 {object} Result
// @Failure 413 {object} Result
// @Router /admin/uploads [post]
func UploadImage(svc service.UploadService, tracker *progress.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return singleUpload(c, tracker, func(f service.UploadFile, report func(float64)) error {
			opts := service.BlogImageOptions()
			opts.Progress = report
			res, err := svc.Upload(c.UserContext(), f, opts)
			if err != nil {
				return err
			}
			return c.Status(fiber.StatusCreated).JSON(res)
		})
	}
}

// UploadImages godoc
// @Summary Upload several blog images at once
// @Description Files are uploaded concurrently. The response lists successes and failures in input order.
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images"
// @Param prefix formData string false "Key prefix"
// @Success 200 {object} model.BulkUploadResult
// @Router /admin/uploads/bulk [post]
func UploadImages(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil || len(form.File["files"]) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "files are required")
		}

		headers := form.File["files"]
		files := make([]service.UploadFile, 0, len(headers))
		for _, fh := range headers {
			file, f, err := openForm(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			files = append(files, file)
		}

		opts := service.BlogImageOptions()
		if p := strings.Trim(c.FormValue("prefix"), "/ "); p != "" {
			opts.Prefix = p
		}
		return c.JSON(svc.UploadMany(c.UserContext(), files, opts))
	}
}

// UploadProgress godoc
// @Summary Poll upload progress
// @Tags uploads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Upload ID"
// @Success 200 {object} Result
// @Failure 404 {object} Result
// @Router /admin/uploads/progress/{id} [get]
func UploadProgress(tracker *progress.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		p, ok := tracker.Get(id)
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "upload not found")
		}
		return writeOK(c, fiber.StatusOK, id, p)
	}
}

// UploadMetadata godoc
// @Summary Stored object metadata
// @Tags uploads
// @Security BearerAuth
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} Result
// @Failure 404 {object} Result
// @Router /admin/uploads/meta/{key} [get]
func UploadMetadata(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("*")
		meta, err := svc.Metadata(c.UserContext(), key)
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, meta.Key, meta)
	}
}

// DeleteUpload godoc
// @Summary Delete a stored object
// @Tags uploads
// @Security BearerAuth
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} Result
// @Router /admin/uploads/{key} [delete]
func DeleteUpload(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("*")
		if err := svc.Delete(c.UserContext(), key); err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, key, nil)
	}
}

// ServeMedia streams a stored object. It backs public URLs when no external
// base URL is configured.
func ServeMedia(svc service.UploadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("*"))
		if err != nil {
			return fail(c, err)
		}
		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, ct)
		c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, `"`+info.ETag+`"`)
		}
		size := int(info.Size)
		if size <= 0 {
			size = -1
		}
		return c.SendStream(rc, size)
	}
}
