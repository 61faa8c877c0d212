package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/dwlab/visitor-pass-service/internal/config"
	"github.com/dwlab/visitor-pass-service/internal/repo"
	issvc "github.com/dwlab/visitor-pass-service/internal/service"
	"github.com/dwlab/visitor-pass-service/internal/upstream"
)

func Router(store *repo.Store, cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	// the form UI is served from a different origin
	e.Use(middleware.CORS())
	e.Binder = JSONBinder{}
	e.HTTPErrorHandler = DefaultHTTPErrorHandler

	// Swagger UI (enabled with ENABLE_SWAGGER=true)
	if cfg.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	e.GET("/healthz", Healthz)
	e.GET("/readyz", Readyz(store))

	// Business endpoints (DI): build the upstream gateways and service once
	hc := upstream.NewHTTPClient(cfg.UpstreamTimeout)
	issuer := upstream.NewIssuerClient(cfg.IssuerAPIURL, cfg.IssuerAccessToken, cfg.VCTemplateCode, hc)
	verifier := upstream.NewVerifierClient(cfg.VerifierAPIURL, cfg.VerifierAccessToken, cfg.VPCode, cfg.VPRef, hc)
	svc := issvc.New(store, issuer, verifier, issvc.RealClock{}, issvc.UUIDTransactionIDs{})

	api := e.Group("/api")
	api.POST("/issue-credential", IssueCredential(svc))
	api.POST("/whitelist", AddPass(svc))
	api.GET("/whitelist", ListPasses(svc))
	api.DELETE("/whitelist/:id", RemovePass(svc))
	api.POST("/whitelist/sync", SyncPasses(svc))
	api.POST("/verify-whitelist", VerifyPass(svc))
	api.POST("/generate-verification-qr", GenerateVerificationQR(svc))
	api.GET("/verification-result/:transactionId", VerificationResult(svc))

	return e
}
