package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"staff-portal-backend/config"
	"staff-portal-backend/controllers"
	policyhandler "staff-portal-backend/lib/policy"
	"staff-portal-backend/middleware"
	apimodels "staff-portal-backend/models/api"
	policyapimodels "staff-portal-backend/models/api/policy"
)

type policyApiController struct {
	controllers.BaseAPIController
}

func InitPolicyApiRouters(app *fiber.App) {
	controller := policyApiController{}
	app.Route("policies", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.NonStaffRequired()).Post("", controller.publish)
	})
}

// @Summary Published policies
// @Tags Policies
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]models.Policy}
// @router /api/v1/policies [get]
func (c *policyApiController) list(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(policyhandler.Instance.List()))
}

// @Summary One policy
// @Tags Policies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"policy ID"
// @Success 200 {object} apimodels.Response{data=models.Policy}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/policies/{id} [get]
func (c *policyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := policyhandler.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Publish a policy
// @Tags Policies
// @Description The PDF "upload" is simulated: the call waits the configured delay and records metadata only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		policyapimodels.PublishRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=models.Policy}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/policies [post]
func (c *policyApiController) publish(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload policyapimodels.PublishRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	time.Sleep(time.Duration(config.Conf.Sim.NetworkDelayMs) * time.Millisecond)
	rec := policyhandler.Instance.Publish(actor, payload)
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}
