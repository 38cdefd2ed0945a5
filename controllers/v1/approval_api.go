package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"staff-portal-backend/controllers"
	approvalhandler "staff-portal-backend/lib/approval"
	"staff-portal-backend/middleware"
	apimodels "staff-portal-backend/models/api"
	approvalapimodels "staff-portal-backend/models/api/approval"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app *fiber.App) {
	controller := approvalApiController{}
	app.Route("approvals", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.submit)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Use(middleware.NonStaffRequired()).Put("decision", controller.decide)
		})
	})
}

// @Summary Approval queue
// @Tags Approvals
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]models.ApprovalItem}
// @router /api/v1/approvals [get]
func (c *approvalApiController) list(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(approvalhandler.Instance.List()))
}

// @Summary One approval item
// @Tags Approvals
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"approval ID"
// @Success 200 {object} apimodels.Response{data=models.ApprovalItem}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/approvals/{id} [get]
func (c *approvalApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := approvalhandler.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Submit a request
// @Tags Approvals
// @Description Files a pending item and notifies the HR role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		approvalapimodels.SubmitRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=models.ApprovalItem}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/approvals [post]
func (c *approvalApiController) submit(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload approvalapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec := approvalhandler.Instance.Submit(actor, payload)
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Decide a request
// @Tags Approvals
// @Description Terminal transition; document approvals cascade into the document status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"approval ID"
// @Param	body				body		approvalapimodels.DecisionRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/approvals/{id}/decision [put]
func (c *approvalApiController) decide(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.DecisionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := approvalhandler.Instance.Decide(actor, id, payload); err != nil {
		if errors.Is(err, approvalhandler.ErrForbidden) {
			return ctx.SendStatus(fiber.StatusForbidden)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
