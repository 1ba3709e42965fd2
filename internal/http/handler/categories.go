package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param q query string false "JSON query {filters,orderBy,limit}"
// @Success 200 {object} Result
// @Router /categories [get]
func ListCategories(svc service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseQuery(c, repository.CategorySchema, categoriesOrder)
		if err != nil {
			return fail(c, err)
		}
		cats, err := svc.List(c.UserContext(), q)
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, "", cats)
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body model.CategoryInput true "Category"
// @Success 201 {object} Result
// @Failure 400 {object} Result
// @Router /admin/categories [post]
func CreateCategory(svc service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.CategoryInput
		if err := decodeStrict(c, &in); err != nil {
			return fail(c, err)
		}
		cat, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusCreated, cat.ID, cat)
	}
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Posts keep their category label.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} Result
// @Router /admin/categories/{id} [delete]
func DeleteCategory(svc service.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, id, nil)
	}
}
