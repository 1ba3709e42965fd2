package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/config"
)

// clientConfig is the subset of project identifiers a browser client needs.
// The auth secret never leaves the server.
type clientConfig struct {
	APIKey            string   `json:"apiKey"`
	ProjectID         string   `json:"projectId"`
	AuthDomain        string   `json:"authDomain"`
	StorageBucket     string   `json:"storageBucket"`
	MessagingSenderID string   `json:"messagingSenderId"`
	AppID             string   `json:"appId"`
	Configured        bool     `json:"configured"`
	Missing           []string `json:"missing,omitempty"`
}

// ClientConfig godoc
// @Summary Public project identifiers
// @Description Reports which identifiers are still unset or placeholders.
// @Tags config
// @Produce json
// @Success 200 {object} clientConfig
// @Router /client-config [get]
func ClientConfig(p config.ProjectConfig) fiber.Handler {
	missing := p.Missing()
	body := clientConfig{
		APIKey:            p.APIKey,
		ProjectID:         p.ProjectID,
		AuthDomain:        p.AuthDomain,
		StorageBucket:     p.StorageBucket,
		MessagingSenderID: p.MessagingSenderID,
		AppID:             p.AppID,
		Configured:        len(missing) == 0,
		Missing:           missing,
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(body)
	}
}
