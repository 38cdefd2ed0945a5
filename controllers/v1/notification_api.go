package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"staff-portal-backend/controllers"
	notificationhandler "staff-portal-backend/lib/notification"
	apimodels "staff-portal-backend/models/api"
	notificationapimodels "staff-portal-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("unread-count", controller.unreadCount)
		router.Put("read-all", controller.markAllRead)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Notification feed
// @Tags Notifications
// @Description Notifications visible to the caller, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 401
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	feed := notificationhandler.Instance.VisibleFor(actor)
	now := time.Now()
	result := make([]notificationapimodels.NotificationView, 0, len(feed))
	for _, rec := range feed {
		result = append(result, notificationapimodels.Convert(rec, now))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Unread count
// @Tags Notifications
// @Description Unread notifications within the caller-visible subset
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.UnreadCountView}
// @Failure 401
// @router /api/v1/notifications/unread-count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	count := notificationhandler.Instance.UnreadCount(actor)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notificationapimodels.UnreadCountView{Count: count}))
}

// @Summary Mark one notification read
// @Tags Notifications
// @Description Flips the read flag; unknown ids are a no-op
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"notification ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	notificationhandler.Instance.MarkRead(id)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark all visible notifications read
// @Tags Notifications
// @Description Flips every notification visible to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/notifications/read-all [put]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	notificationhandler.Instance.MarkAllRead(actor)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
