package auth

import (
	"errors"
	"strings"

	"multibranch-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SetTabRequest struct {
	Tab Tab `json:"tab"`
}

type SessionResponse struct {
	Token     string       `json:"token,omitempty"`
	User      *models.User `json:"user"`
	ActiveTab Tab          `json:"active_tab"`
	Tabs      []Tab        `json:"tabs"`
}

func sessionResponse(sess Session, token string) SessionResponse {
	res := SessionResponse{Token: token, User: sess.User, ActiveTab: sess.ActiveTab, Tabs: []Tab{}}
	if sess.User != nil {
		res.Tabs = TabsFor(sess.User.Role)
	}
	return res
}

func LoginHandler(secret string, shell *Shell) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		body.Username = strings.TrimSpace(body.Username)

		sess, err := shell.Login(body.Username, body.Password)
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
		}
		if err != nil {
			log.Errorf("Login %s: %v", body.Username, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Session could not be saved")
		}

		token, err := GenerateToken(secret, sess.User)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}

		log.Infof("User %s signed in as %s", sess.User.Username, sess.User.Role)
		return c.JSON(sessionResponse(sess, token))
	}
}

func LogoutHandler(shell *Shell) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not signed in")
		}
		next, err := shell.Logout(sess.User.ID)
		if err != nil {
			log.Errorf("Logout %s: %v", sess.User.ID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Session could not be cleared")
		}
		return c.JSON(sessionResponse(next, ""))
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not signed in")
		}
		return c.JSON(sessionResponse(sess, ""))
	}
}

// PUT /api/session/tab
func SetTabHandler(shell *Shell) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not signed in")
		}
		var body SetTabRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		next, err := shell.SetTab(sess, body.Tab)
		if errors.Is(err, ErrTabNotAllowed) {
			return fiber.NewError(fiber.StatusForbidden, "This screen is not available for your role")
		}
		if err != nil {
			log.Errorf("Save tab for %s: %v", sess.User.ID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Tab could not be saved")
		}
		return c.JSON(sessionResponse(next, ""))
	}
}
