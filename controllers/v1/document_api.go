package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"staff-portal-backend/controllers"
	documenthandler "staff-portal-backend/lib/document"
	"staff-portal-backend/middleware"
	apimodels "staff-portal-backend/models/api"
	documentapimodels "staff-portal-backend/models/api/document"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("documents", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("mine", controller.listMine)
		router.Post("", controller.upload)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("versions", controller.uploadVersion)
			idRoute.Use(middleware.NonStaffRequired()).Put("status", controller.setStatus)
		})
	})
}

// @Summary All documents
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]models.Document}
// @router /api/v1/documents [get]
func (c *documentApiController) list(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(documenthandler.Instance.List()))
}

// @Summary Caller's documents
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]models.Document}
// @Failure 401
// @router /api/v1/documents/mine [get]
func (c *documentApiController) listMine(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(documenthandler.Instance.ListByUser(actor.ID)))
}

// @Summary One document with its version history
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Success 200 {object} apimodels.Response{data=models.Document}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/documents/{id} [get]
func (c *documentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := documenthandler.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Upload a document
// @Tags Documents
// @Description Creates version 1 with an empty history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		documentapimodels.UploadRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=models.Document}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/documents [post]
func (c *documentApiController) upload(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload documentapimodels.UploadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec := documenthandler.Instance.Add(actor.ID, payload)
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Upload a new version
// @Tags Documents
// @Description Archives the current record into history and bumps the version
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Param	body				body		documentapimodels.UploadRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=models.Document}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/documents/{id}/versions [post]
func (c *documentApiController) uploadVersion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload documentapimodels.UploadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := documenthandler.Instance.AddVersion(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Approve or reject a document
// @Tags Documents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Param	body				body		documentapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/documents/{id}/status [put]
func (c *documentApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload documentapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := documenthandler.Instance.SetStatus(id, payload.Status); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
