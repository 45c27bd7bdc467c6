package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"moodify/internal/service"

	"github.com/gin-gonic/gin"
)

// Flash-equivalent messages surfaced through redirect query params.
const (
	msgAllFieldsRequired = "All fields are required!"
	msgFillAllFields     = "Please fill in all fields."
	msgUsernameTaken     = "Username already taken. Please choose another one."
	msgEmailTaken        = "Email already in use. Please log in."
	msgInvalidLogin      = "Invalid email or password."
	msgSignupFailed      = "Signup failed. Please try again later."
	msgLoggedOut         = "Logged out successfully."
)

func redirectWithError(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(msg))
}

// setSessionCookie installs the token as an HttpOnly browser-session cookie;
// the server-side row carries the actual expiry.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// @Summary      Sign up
// @Description  Creates an account and starts a session; redirects to the dashboard.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if username == "" || email == "" || password == "" {
		redirectWithError(c, "/signup", msgAllFieldsRequired)
		return
	}

	token, err := h.services.SignUp(c.Request.Context(), username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			redirectWithError(c, "/signup", msgUsernameTaken)
		case errors.Is(err, service.ErrEmailTaken):
			// the account exists, send them to login like the signup page promises
			redirectWithError(c, "/login", msgEmailTaken)
		case errors.Is(err, service.ErrMissingFields):
			redirectWithError(c, "/signup", msgAllFieldsRequired)
		default:
			if h.log != nil {
				h.log.Errorw("sign_up_failed", "username", username, "err", err)
			}
			redirectWithError(c, "/signup", msgSignupFailed)
		}
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Router       /login [post]
func (h *Handler) signIn(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if email == "" || password == "" {
		redirectWithError(c, "/login", msgFillAllFields)
		return
	}

	token, err := h.services.SignIn(c.Request.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) && !errors.Is(err, service.ErrMissingFields) && h.log != nil {
			h.log.Errorw("sign_in_failed", "email", email, "err", err)
		}
		// one message for every failure; never reveal whether the email exists
		redirectWithError(c, "/login", msgInvalidLogin)
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// @Summary      Log out
// @Description  Revokes the session server-side and clears the cookie.
// @Tags         auth
// @Success      302
// @Router       /logout [get]
// @Security     CookieAuth
func (h *Handler) logout(c *gin.Context) {
	if err := h.services.SignOut(c.Request.Context(), tokenFromContext(c)); err != nil && h.log != nil {
		h.log.Infow("sign_out_failed", "err", err)
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/?message="+url.QueryEscape(msgLoggedOut))
}
