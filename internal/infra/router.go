package infra

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/adroitdesign/studio-api/internal/cache"
	"github.com/adroitdesign/studio-api/internal/config"
	"github.com/adroitdesign/studio-api/internal/crm"
	"github.com/adroitdesign/studio-api/internal/errors"
	"github.com/adroitdesign/studio-api/internal/handlers"
	"github.com/adroitdesign/studio-api/internal/mail"
	"github.com/adroitdesign/studio-api/internal/middleware"
	"github.com/adroitdesign/studio-api/internal/model/auth"
	"github.com/adroitdesign/studio-api/internal/repository"
	"github.com/adroitdesign/studio-api/internal/service"
	"github.com/adroitdesign/studio-api/internal/validation"
	"github.com/adroitdesign/studio-api/pkg/db/transactor"
)

// Router wires the whole application together. The CRM client is
// constructed once here and injected everywhere it is needed, so its cached
// session is shared process-wide.
func Router(cfg config.Config, pgPool *pgxpool.Pool, redisClient *redis.Client) (*echo.Echo, service.InquiryService, error) {
	e := echo.New()

	e.HTTPErrorHandler = httpErrorHandler(e)

	echoValidator, err := buildValidator()
	if err != nil {
		return nil, nil, err
	}
	e.Validator = echoValidator

	// Config
	jwtCfg := cfg.AuthCfg.JwtCfg
	rfrTokenCfg := cfg.AuthCfg.RefreshTokenCfg

	// Auth primitives
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)
	rfrTokenIssuer := auth.NewRefreshTokenIssuer(rfrTokenCfg.MaxCount, rfrTokenCfg.TimeToLive)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)

	// Collaborators
	crmClient := crm.NewClient(crm.Config{
		BaseURL:  cfg.OdooCfg.URL,
		Database: cfg.OdooCfg.Database,
		Username: cfg.OdooCfg.Username,
		Password: cfg.OdooCfg.Password,
		APIKey:   cfg.OdooCfg.APIKey,
		Timeout:  cfg.OdooCfg.Timeout,
	})
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.EmailCfg.Host,
		Port:     cfg.EmailCfg.Port,
		Secure:   cfg.EmailCfg.Secure,
		Username: cfg.EmailCfg.Username,
		Password: cfg.EmailCfg.Password,
		From:     cfg.EmailCfg.From,
		NotifyTo: cfg.EmailCfg.NotifyTo,
	})

	// Repositories
	pgxTransactor := transactor.NewPgxTransactor(pgPool)
	txExecutor := transactor.NewPgxWithinTransactionExecutor(pgPool)
	userRepo := repository.NewPostgresUserRepository(txExecutor)
	rfrTokenRepo := repository.NewPostgresRefreshTokenRepository(txExecutor)
	inquiryRepo := repository.NewPostgresInquiryRepository(pgPool)
	inquiryCache := cache.NewRedisInquiryCache(redisClient)

	// Services
	authSvc := service.NewAuthService(jwtIssuer, rfrTokenIssuer, pgxTransactor, userRepo, rfrTokenRepo)
	syncSvc := service.NewSyncService(crmClient, inquiryRepo, inquiryCache)
	inquirySvc := service.NewInquiryService(crmClient, inquiryRepo, inquiryCache, mailer)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	inquiryHandler := handlers.NewInquiryHTTPHandler(inquirySvc, syncSvc)
	syncHandler := handlers.NewSyncHTTPHandler(syncSvc)

	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.POST("/refresh", authHandler.Refresh)

	// inquiries: submission is public, the rest is back-office
	inquiriesAPI := api.Group("/inquiries")
	inquiriesAPI.POST("", inquiryHandler.Post)
	inquiriesAPI.GET("", inquiryHandler.GetAll, authorizeMw)
	inquiriesAPI.GET("/:id", inquiryHandler.Get, authorizeMw)
	inquiriesAPI.PATCH("/:id/status", inquiryHandler.PatchStatus, authorizeMw)
	inquiriesAPI.DELETE("/:id", inquiryHandler.Delete, authorizeMw)

	// CRM reconciliation
	odooAPI := api.Group("/odoo", authorizeMw)
	odooAPI.GET("/test", syncHandler.TestConnection)
	odooAPI.GET("/leads", syncHandler.Leads)
	odooAPI.POST("/inquiry/:id/sync", syncHandler.SyncOne)
	odooAPI.POST("/sync-all", syncHandler.SyncAll)

	return e, inquirySvc, nil
}

func buildValidator() (*validation.EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, stderrors.New("missing en translations for validator")
	}
	return validation.Echo(validator.New(), trans), nil
}

// httpErrorHandler translates domain errors into status codes before
// delegating to echo's default rendering.
func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		logrus.Errorf("request failed: %v", err)

		var notFoundErr *errors.EntryNotFoundErr
		if stderrors.As(err, &notFoundErr) {
			err = echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		}

		var businessErr *errors.BusinessErr
		if stderrors.As(err, &businessErr) {
			err = echo.NewHTTPError(http.StatusBadRequest, businessErr.Error())
		}

		var payloadErr *validation.PayloadError
		if stderrors.As(err, &payloadErr) {
			err = echo.NewHTTPError(http.StatusBadRequest, payloadErr)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
