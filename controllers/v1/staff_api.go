package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"staff-portal-backend/config"
	"staff-portal-backend/controllers"
	prefshandler "staff-portal-backend/lib/prefs"
	staffhandler "staff-portal-backend/lib/staff"
	"staff-portal-backend/middleware"
	apimodels "staff-portal-backend/models/api"
	prefsapimodels "staff-portal-backend/models/api/prefs"
)

type staffApiController struct {
	controllers.BaseAPIController
}

func InitStaffApiRouters(app *fiber.App) {
	controller := staffApiController{}
	app.Route("staff", func(router fiber.Router) {
		router.Get("", controller.directory)
		router.Get("prefs/filters", controller.getFilters)
		router.Put("prefs/filters", controller.saveFilters)
		router.Get("prefs/theme", controller.getTheme)
		router.Put("prefs/theme", controller.saveTheme)
		router.Use(middleware.HRRoleRequired()).Post("report", controller.generateReport)
	})
}

// @Summary Staff directory
// @Tags Staff
// @Description Filter by search term, role and department via query params
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search			query		string	false	"name or email substring"
// @Param   role			query		string	false	"role filter"
// @Param   department		query		string	false	"department filter"
// @Success 200 {object} apimodels.Response{data=[]models.User}
// @router /api/v1/staff [get]
func (c *staffApiController) directory(ctx *fiber.Ctx) error {
	filter := prefsapimodels.DirectoryFilters{
		Search:     ctx.Query("search"),
		Role:       ctx.Query("role"),
		Department: ctx.Query("department"),
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(staffhandler.Instance.Directory(filter)))
}

// @Summary Saved directory filters
// @Tags Staff
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=prefsapimodels.DirectoryFilters}
// @router /api/v1/staff/prefs/filters [get]
func (c *staffApiController) getFilters(ctx *fiber.Ctx) error {
	filters := prefshandler.Instance.GetDirectoryFilters(middleware.GetUserID(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(filters))
}

// @Summary Save directory filters
// @Tags Staff
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		prefsapimodels.DirectoryFilters	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/staff/prefs/filters [put]
func (c *staffApiController) saveFilters(ctx *fiber.Ctx) error {
	var payload prefsapimodels.DirectoryFilters
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	prefshandler.Instance.SaveDirectoryFilters(middleware.GetUserID(ctx), payload)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Saved theme
// @Tags Staff
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=string}
// @router /api/v1/staff/prefs/theme [get]
func (c *staffApiController) getTheme(ctx *fiber.Ctx) error {
	theme := prefshandler.Instance.GetTheme(middleware.GetUserID(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(theme))
}

// @Summary Save theme
// @Tags Staff
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		prefsapimodels.ThemeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/staff/prefs/theme [put]
func (c *staffApiController) saveTheme(ctx *fiber.Ctx) error {
	var payload prefsapimodels.ThemeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	prefshandler.Instance.SaveTheme(middleware.GetUserID(ctx), payload.Theme)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Generate the HR report
// @Tags Staff
// @Description Simulated: waits the configured delay and produces no file
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @router /api/v1/staff/report [post]
func (c *staffApiController) generateReport(ctx *fiber.Ctx) error {
	time.Sleep(time.Duration(config.Conf.Sim.NetworkDelayMs) * time.Millisecond)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
