package apiv1

import (
	"github.com/gofiber/fiber/v2"

	staffhandler "staff-portal-backend/lib/staff"
	"staff-portal-backend/middleware"
	"staff-portal-backend/models"
)

// currentActor resolves the authenticated caller against the staff directory.
func currentActor(ctx *fiber.Ctx) (models.User, error) {
	return staffhandler.Instance.GetByID(middleware.GetUserID(ctx))
}
