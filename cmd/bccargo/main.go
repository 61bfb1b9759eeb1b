package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"

	"github.com/tmbewe/bccargo/internal/auth"
	"github.com/tmbewe/bccargo/internal/compress"
	"github.com/tmbewe/bccargo/internal/config"
	"github.com/tmbewe/bccargo/internal/db"
	"github.com/tmbewe/bccargo/internal/handlers"
	"github.com/tmbewe/bccargo/internal/notify"
	"github.com/tmbewe/bccargo/internal/order"
	"github.com/tmbewe/bccargo/internal/router"
)

func main() {
	// a local .env is a convenience, not a requirement
	_ = godotenv.Load()

	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		panic(err)
	}

	if conf.AdminToken == "" {
		logger.Warning("ADMIN_DASH_TOKEN is not set, admin routes are open to everyone")
	}
	if conf.RegistrationCode == "" {
		logger.Warning("REGISTRATION_CODE is not set, account registration is disabled")
	}

	ctx := context.Background()

	dispatcher := notify.Disabled()
	if conf.NotificationsConfigured() {
		client := notify.NewClient(notify.DefaultBaseURL, conf.TwilioAccountSID,
			conf.TwilioAuthToken, conf.TwilioWhatsAppFrom, conf.TwilioWhatsAppTo)
		dispatcher = notify.NewDispatcher(ctx, client)
	} else {
		logger.Info("Outbound messaging credentials absent, notifications disabled")
	}
	defer dispatcher.Close()

	orders := order.NewService(database, dispatcher)

	var sessionSecret []byte
	if conf.SessionSecret != "" {
		sessionSecret = []byte(conf.SessionSecret)
	}

	handlerSet := handlers.NewHandlerSet(orders, database, database,
		conf.RegistrationCode, sessionSecret,
		time.Duration(conf.SessionTTLSeconds)*time.Second)

	gate := auth.NewAdminGate(conf.AdminToken, sessionSecret, database)

	r := router.NewRouter(conf.RunAddress, handlerSet, gate, compress.RequestUngzipper{})

	logger.Infof("Listening on %s", conf.RunAddress)
	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}
}
