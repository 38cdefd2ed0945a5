package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"staff-portal-backend/controllers"
	complainthandler "staff-portal-backend/lib/complaint"
	apimodels "staff-portal-backend/models/api"
	complaintapimodels "staff-portal-backend/models/api/complaint"
)

type complaintApiController struct {
	controllers.BaseAPIController
}

func InitComplaintApiRouters(app *fiber.App) {
	controller := complaintApiController{}
	app.Route("complaints", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("mine", controller.listMine)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("messages", controller.postMessage)
			idRoute.Put("status", controller.setStatus)
			idRoute.Post("resolve", controller.resolve)
			idRoute.Post("escalate", controller.escalate)
		})
	})
}

// @Summary All tickets
// @Tags Help Desk
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]models.Complaint}
// @router /api/v1/complaints [get]
func (c *complaintApiController) list(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(complainthandler.Instance.List()))
}

// @Summary Caller's tickets
// @Tags Help Desk
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]models.Complaint}
// @Failure 401
// @router /api/v1/complaints/mine [get]
func (c *complaintApiController) listMine(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(complainthandler.Instance.ListByCreator(actor.ID)))
}

// @Summary One ticket with its thread
// @Tags Help Desk
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"ticket ID"
// @Success 200 {object} apimodels.Response{data=models.Complaint}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/complaints/{id} [get]
func (c *complaintApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := complainthandler.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Open a ticket
// @Tags Help Desk
// @Description Creates an open ticket and notifies the HR role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		complaintapimodels.CreateRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=models.Complaint}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/complaints [post]
func (c *complaintApiController) create(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload complaintapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec := complainthandler.Instance.Create(actor, payload)
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Reply on a ticket
// @Tags Help Desk
// @Description Appends a message; replying to a resolved ticket reopens it
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"ticket ID"
// @Param	body				body		complaintapimodels.MessageRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=models.Complaint}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/complaints/{id}/messages [post]
func (c *complaintApiController) postMessage(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.MessageRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := complainthandler.Instance.PostMessage(actor, id, payload.Content)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Set ticket status
// @Tags Help Desk
// @Description Direct gated transition with a notification to the creator
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"ticket ID"
// @Param	body				body		complaintapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/complaints/{id}/status [put]
func (c *complaintApiController) setStatus(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload complaintapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.handleTransition(ctx, complainthandler.Instance.SetStatus(actor, id, payload.Status))
}

// @Summary Resolve a ticket
// @Tags Help Desk
// @Description Appends an audit note and closes the dialogue
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"ticket ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/complaints/{id}/resolve [post]
func (c *complaintApiController) resolve(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.handleTransition(ctx, complainthandler.Instance.Resolve(actor, id))
}

// @Summary Escalate a ticket
// @Tags Help Desk
// @Description HR only; an escalated ticket cannot be escalated again
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"ticket ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/complaints/{id}/escalate [post]
func (c *complaintApiController) escalate(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.handleTransition(ctx, complainthandler.Instance.Escalate(actor, id))
}

func (c *complaintApiController) handleTransition(ctx *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	case errors.Is(err, complainthandler.ErrForbidden):
		return ctx.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, complainthandler.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
