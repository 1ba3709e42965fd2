package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/config"
	"blogapi/internal/http/middleware"
	"blogapi/internal/model"
	"blogapi/internal/progress"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	DB         Pinger
	Posts      service.PostService
	Categories service.CategoryService
	Uploads    service.UploadService
	Brand      service.BrandService
	Progress   *progress.Tracker
	Verifier   middleware.TokenVerifier
	Project    config.ProjectConfig
	// Done is closed on shutdown to end open event streams.
	Done <-chan struct{}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/client-config", ClientConfig(d.Project))
	app.Get("/media/*", ServeMedia(d.Uploads))

	apiKey := middleware.APIKey(d.Project.APIKey)
	app.Get("/posts", apiKey, ListPublicPosts(d.Posts))
	app.Get("/posts/:id", apiKey, GetPublicPost(d.Posts))
	app.Get("/categories", apiKey, ListCategories(d.Categories))
	app.Get("/brand", apiKey, GetBrand(d.Brand))

	admin := app.Group("/admin", apiKey, middleware.RequireAuth(d.Verifier))

	admin.Get("/posts", ListPosts(d.Posts))
	admin.Get("/posts/stream", StreamCollection[model.Post](d.Posts, repository.PostSchema, d.Done, postsOrder))
	admin.Post("/posts", CreatePost(d.Posts))
	admin.Get("/posts/:id", GetPost(d.Posts))
	admin.Patch("/posts/:id", UpdatePost(d.Posts))
	admin.Delete("/posts/:id", DeletePost(d.Posts))
	admin.Post("/seed", SeedPosts(d.Posts))

	admin.Get("/categories/stream", StreamCollection[model.Category](d.Categories, repository.CategorySchema, d.Done, categoriesOrder))
	admin.Post("/categories", CreateCategory(d.Categories))
	admin.Delete("/categories/:id", DeleteCategory(d.Categories))

	admin.Post("/uploads", UploadImage(d.Uploads, d.Progress))
	admin.Post("/uploads/bulk", UploadImages(d.Uploads))
	admin.Get("/uploads/progress/:id", UploadProgress(d.Progress))
	admin.Get("/uploads/meta/*", UploadMetadata(d.Uploads))
	admin.Delete("/uploads/*", DeleteUpload(d.Uploads))

	admin.Put("/brand", UpdateBrand(d.Brand))
	admin.Post("/brand/logo", UploadLogo(d.Brand, d.Progress))
	admin.Delete("/brand/logo", ClearLogo(d.Brand))
}
