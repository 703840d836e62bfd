package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	userDTO "classroom_backend/internals/features/classroom/users/dto"
	"classroom_backend/internals/features/users/auth/dto"
	"classroom_backend/internals/features/users/auth/service"
	helper "classroom_backend/internals/helpers"
)

type AuthController struct {
	Svc *service.AuthService
	Log *zap.Logger

	// SecureCookie marks the session cookie Secure + SameSite=None.
	SecureCookie bool
}

func NewAuthController(svc *service.AuthService, log *zap.Logger, secureCookie bool) *AuthController {
	return &AuthController{Svc: svc, Log: log.Named("auth"), SecureCookie: secureCookie}
}

// POST /auth/sign-up/email
func (ac *AuthController) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, ac.Log, err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, ac.Log, helper.ValidationError(err))
	}

	sess, err := ac.Svc.SignUp(c.UserContext(), req)
	if err != nil {
		return helper.WriteError(c, ac.Log, err)
	}
	ac.setSessionCookie(c, sess.Token, sess.ExpiresAt)
	return helper.JsonOK(c, dto.AuthResponse{Token: sess.Token, User: userDTO.FromModel(sess.User)})
}

// POST /auth/sign-in/email
func (ac *AuthController) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, ac.Log, err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, ac.Log, helper.ValidationError(err))
	}

	sess, err := ac.Svc.SignIn(c.UserContext(), req)
	if err != nil {
		return helper.WriteError(c, ac.Log, err)
	}
	ac.setSessionCookie(c, sess.Token, sess.ExpiresAt)
	return helper.JsonOK(c, dto.AuthResponse{Token: sess.Token, User: userDTO.FromModel(sess.User)})
}

// GET /auth/get-session
func (ac *AuthController) GetSession(c *fiber.Ctx) error {
	sess, err := ac.Svc.GetSession(c.UserContext(), helper.GetRawAccessToken(c))
	if err != nil {
		return helper.WriteError(c, ac.Log, err)
	}
	return helper.JsonOK(c, dto.SessionResponse{
		Session: dto.SessionInfo{ExpiresAt: sess.ExpiresAt},
		User:    userDTO.FromModel(sess.User),
	})
}

// POST /auth/sign-out
func (ac *AuthController) SignOut(c *fiber.Ctx) error {
	if err := ac.Svc.SignOut(c.UserContext(), helper.GetRawAccessToken(c)); err != nil {
		return helper.WriteError(c, ac.Log, err)
	}
	ac.setSessionCookie(c, "", time.Now().UTC().Add(-time.Hour))
	return helper.JsonOK(c, fiber.Map{"success": true})
}

// NotFound answers every other /auth path.
func (ac *AuthController) NotFound(c *fiber.Ctx) error {
	return helper.JsonError(c, fiber.StatusNotFound, "Not found")
}

func (ac *AuthController) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	cookie := &fiber.Cookie{
		Name:     helper.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  expires,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	if ac.SecureCookie {
		cookie.Secure = true
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(cookie)
}
