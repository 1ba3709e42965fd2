package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
	"blogapi/internal/progress"
	"blogapi/internal/service"
)

// GetBrand godoc
// @Summary Current brand logo and text
// @Tags brand
// @Produce json
// @Success 200 {object} Result
// @Router /brand [get]
func GetBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeOK(c, fiber.StatusOK, "", svc.Current())
	}
}

// UpdateBrand godoc
// @Summary Change the brand
// @Description Present fields are persisted. An empty string removes the stored value.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param brand body model.BrandUpdate true "Brand fields"
// @Success 200 {object} Result
// @Router /admin/brand [put]
func UpdateBrand(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var u model.BrandUpdate
		if err := decodeStrict(c, &u); err != nil {
			return fail(c, err)
		}
		b, err := svc.Update(c.UserContext(), u)
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, "", b)
	}
}

// UploadLogo godoc
// @Summary Upload a new brand logo
// @Description Images or .svg files, at most 5MB. Send X-Upload-ID to poll progress.
// @Tags admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Logo"
// @Success 201 {object} model.UploadResult
// @Failure 400 {object} Result
// @Failure 413 {object} Result
// @Router /admin/brand/logo [post]
func UploadLogo(svc service.BrandService, tracker *progress.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return singleUpload(c, tracker, func(f service.UploadFile, report func(float64)) error {
			res, err := svc.UploadLogo(c.UserContext(), f, report)
			if err != nil {
				return err
			}
			return c.Status(fiber.StatusCreated).JSON(res)
		})
	}
}

// ClearLogo godoc
// @Summary Remove the persisted logo
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Result
// @Router /admin/brand/logo [delete]
func ClearLogo(svc service.BrandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.ClearLogo(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, "", b)
	}
}
