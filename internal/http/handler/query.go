package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/repository"
)

// parseQuery reads list constraints from the request. The "q" parameter holds
// a JSON encoded repository.Query; "category", "status" and "limit" are
// shorthands appended to it. Without an explicit order, defaultOrder applies.
// The result is checked against schema; rejections wrap repository.ErrInvalidQuery.
func parseQuery(c *fiber.Ctx, schema repository.Schema, defaultOrder ...repository.Order) (repository.Query, error) {
	var q repository.Query
	if raw := strings.TrimSpace(c.Query("q")); raw != "" {
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&q); err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "invalid query: "+err.Error())
		}
	}
	if v := strings.TrimSpace(c.Query("category")); v != "" {
		q = q.Where("category", repository.OpEq, v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("status", repository.OpEq, v)
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return q, fiber.NewError(fiber.StatusBadRequest, "invalid limit")
		}
		q.Limit = n
	}
	if len(q.OrderBy) == 0 && len(defaultOrder) > 0 {
		q.OrderBy = append([]repository.Order(nil), defaultOrder...)
	}
	if err := q.Check(schema); err != nil {
		return q, err
	}
	return q, nil
}

var (
	postsOrder      = repository.Order{Field: "createdAt", Desc: true}
	categoriesOrder = repository.Order{Field: "name"}
)
