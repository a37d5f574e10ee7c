package handler

import (
	"time"

	"absensi-danton/internal/helpers"
	"absensi-danton/internal/middleware"
	"absensi-danton/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AuthHandler struct {
	usecase *usecase.AuthUsecase
}

func NewAuthHandler(u *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

type loginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Flash": helpers.TakeFlash(c),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		helpers.SetFlash(c, "Username atau password salah")
		return c.Redirect("/")
	}
	if err := validate.Struct(req); err != nil {
		helpers.SetFlash(c, "Username atau password salah")
		return c.Redirect("/")
	}

	result, err := h.usecase.Login(req.Username, req.Password, time.Now())
	if err != nil {
		// Tidak dibedakan antara user tak dikenal dan password salah.
		helpers.SetFlash(c, "Username atau password salah")
		return c.Redirect("/")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})

	if result.DantonToday {
		helpers.SetFlash(c, "Anda ditugaskan sebagai Danton hari ini.")
	}
	return c.Redirect(result.RedirectPath)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSession(c)
	return c.Redirect("/")
}
