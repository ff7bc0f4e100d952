package integration_test

import (
	"log/slog"
	"os"

	"github.com/alexedwards/scs/v2"
	"github.com/filmtix/ticketing/internal/app"
	"github.com/filmtix/ticketing/internal/mailer"
	"github.com/filmtix/ticketing/internal/repository"
	appvalidator "github.com/filmtix/ticketing/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App            *app.Application
	DB             *pgxpool.Pool
	Mailer         *mailer.MockMailer
	SessionManager *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	ticketRepo := repository.NewPostgresTicketRepository(db)
	catalogRepo := repository.NewPostgresCatalogRepository(db)
	accountRepo := repository.NewPostgresAccountRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		sessionManager,
		ticketRepo,
		catalogRepo,
		accountRepo,
	)

	return &TestApp{
		App:            application,
		DB:             db,
		Mailer:         mockMailer,
		SessionManager: sessionManager,
	}, nil
}
