package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staff-portal-backend/controllers"
	sessionhandler "staff-portal-backend/lib/session"
	"staff-portal-backend/middleware"
	apimodels "staff-portal-backend/models/api"
	authapimodels "staff-portal-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
		router.Use(middleware.AuthorizationRequired()).Post("logout", controller.logout)
	})
}

// @Summary Authenticate a staff member
// @Tags Authentication
// @Description Resolves a seeded identity by email with a role fallback
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := sessionhandler.Instance.Login(payload.Email, payload.Role)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Current identity
// @Tags Authentication
// @Description Returns the staff member behind the presented token
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=models.User}
// @Failure 401
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(actor))
}

// @Summary Log out
// @Tags Authentication
// @Description Clears the held identity and its persisted record
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	sessionhandler.Instance.Logout()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
