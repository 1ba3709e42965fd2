package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/http/middleware"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

const msgDocumentNotFound = "Document not found"

// ListPublicPosts godoc
// @Summary List visible posts
// @Description Published posts and scheduled posts whose time has come, newest first.
// @Tags posts
// @Produce json
// @Param category query string false "Category label; All or empty for every category"
// @Param search query string false "Case-insensitive match on title or excerpt"
// @Success 200 {object} Result
// @Router /posts [get]
func ListPublicPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.ListVisible(c.UserContext(), service.VisibleFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
		})
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, "", posts)
	}
}

// GetPublicPost godoc
// @Summary Get a visible post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} Result
// @Failure 404 {object} Result
// @Router /posts/{id} [get]
func GetPublicPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetVisible(c.UserContext(), c.Params("id"))
		if err != nil {
			return readFailure(c, err)
		}
		return writeOK(c, fiber.StatusOK, p.ID, p)
	}
}

// ListPosts godoc
// @Summary List posts
// @Description Filters, ordering and limit come from the JSON encoded "q" parameter.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "JSON query {filters,orderBy,limit}"
// @Success 200 {object} Result
// @Router /admin/posts [get]
func ListPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseQuery(c, repository.PostSchema, postsOrder)
		if err != nil {
			return fail(c, err)
		}
		posts, err := svc.List(c.UserContext(), q)
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, "", posts)
	}
}

// GetPost godoc
// @Summary Get a post whatever its status
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} Result
// @Failure 404 {object} Result
// @Router /admin/posts/{id} [get]
func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return readFailure(c, err)
		}
		return writeOK(c, fiber.StatusOK, p.ID, p)
	}
}

// CreatePost godoc
// @Summary Create a post
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param post body model.PostInput true "Post"
// @Success 201 {object} Result
// @Failure 400 {object} Result
// @Router /admin/posts [post]
func CreatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PostInput
		if err := decodeStrict(c, &in); err != nil {
			return fail(c, err)
		}
		p, err := svc.Create(c.UserContext(), in, middleware.UserEmail(c))
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusCreated, p.ID, p)
	}
}

// UpdatePost godoc
// @Summary Partially update a post
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param patch body model.PostPatch true "Fields to change"
// @Success 200 {object} Result
// @Failure 404 {object} Result
// @Router /admin/posts/{id} [patch]
func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.PostPatch
		if err := decodeStrict(c, &patch); err != nil {
			return fail(c, err)
		}
		p, err := svc.Update(c.UserContext(), c.Params("id"), patch, middleware.UserEmail(c))
		if err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, p.ID, p)
	}
}

// DeletePost godoc
// @Summary Delete a post
// @Description Deleting an id that does not exist succeeds.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} Result
// @Router /admin/posts/{id} [delete]
func DeletePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return writeOK(c, fiber.StatusOK, id, nil)
	}
}

// SeedPosts godoc
// @Summary Insert the starter posts into an empty collection
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.SeedResult
// @Router /admin/seed [post]
func SeedPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Seed(c.UserContext(), middleware.UserEmail(c))
		if err != nil {
			status, code := classify(err)
			return c.Status(status).JSON(fiber.Map{
				"success":    false,
				"message":    err.Error(),
				"addedCount": res.AddedCount,
				"code":       code,
			})
		}
		return c.JSON(res)
	}
}

// readFailure reports a missing document with the fixed read message and
// everything else through fail.
func readFailure(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msgDocumentNotFound)
	}
	return fail(c, err)
}
