package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"staff-portal-backend/config"
	"staff-portal-backend/fiberlog"
	approvalhandler "staff-portal-backend/lib/approval"
	complainthandler "staff-portal-backend/lib/complaint"
	documenthandler "staff-portal-backend/lib/document"
	notificationhandler "staff-portal-backend/lib/notification"
	policyhandler "staff-portal-backend/lib/policy"
	prefshandler "staff-portal-backend/lib/prefs"
	sessionhandler "staff-portal-backend/lib/session"
	staffhandler "staff-portal-backend/lib/staff"
	staffstore "staff-portal-backend/lib/staff/store"
	authutils "staff-portal-backend/lib/utils/auth-utils"
	"staff-portal-backend/lib/utils/clock"
	connectionhub "staff-portal-backend/lib/ws/hub/connection-hub"
	"staff-portal-backend/localstore"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()

	storage, err := localstore.Open(config.Conf.Storage.FilePath)
	if err != nil {
		// a broken mirror degrades to memory-only state, never a crash
		log.WithError(err).Error("failed to open local storage, state will not be persisted")
		storage = nil
	}

	clk := clock.NewInstance()
	loginDelay := time.Duration(config.Conf.Sim.NetworkDelayMs) * time.Millisecond
	users := staffstore.NewInstance(staffstore.SeedUsers())

	connectionhub.Init()
	staffhandler.NewHandler(users)
	sessionhandler.NewHandler(storage, users, clk, loginDelay, authutils.GetToken)
	notificationhandler.NewHandler(storage, users, connectionhub.Instance, clk)
	documenthandler.NewHandler(storage, clk)
	policyhandler.NewHandler(storage, clk)
	approvalhandler.NewHandler(storage, users, documenthandler.Instance, notificationhandler.Instance, clk)
	complainthandler.NewHandler(storage, notificationhandler.Instance, clk)
	prefshandler.NewHandler(storage)
}
