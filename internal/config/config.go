package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Bind                string
	WhitelistFile       string
	IssuerAPIURL        string
	IssuerAccessToken   string
	VCTemplateCode      string
	VerifierAPIURL      string
	VerifierAccessToken string
	VPCode              string
	VPRef               string
	UpstreamTimeout     time.Duration
	SweepEvery          string // cron spec for the expiry sweeper
	EnableSwagger       bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	timeoutStr := getenv("UPSTREAM_TIMEOUT_S", "10")
	timeoutS, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutS <= 0 {
		timeoutS = 10
	}
	cfg := Config{
		Bind:                getenv("BIND", ":3000"),
		WhitelistFile:       getenv("WHITELIST_FILE", "whitelist.json"),
		IssuerAPIURL:        getenv("ISSUER_API_URL", "https://issuer-sandbox.wallet.gov.tw"),
		IssuerAccessToken:   os.Getenv("ISSUER_ACCESS_TOKEN"),
		VCTemplateCode:      os.Getenv("VC_TEMPLATE_CODE"),
		VerifierAPIURL:      getenv("VERIFIER_API_URL", "https://verifier-sandbox.wallet.gov.tw"),
		VerifierAccessToken: os.Getenv("VERIFIER_ACCESS_TOKEN"),
		VPCode:              os.Getenv("VP_CODE"),
		VPRef:               os.Getenv("VP_REF"),
		UpstreamTimeout:     time.Duration(timeoutS) * time.Second,
		SweepEvery:          getenv("SWEEP_EVERY", "@every 1h"),
		EnableSwagger:       getenv("ENABLE_SWAGGER", "false") == "true",
	}
	log.Info().
		Str("bind", cfg.Bind).
		Str("whitelist_file", cfg.WhitelistFile).
		Str("issuer", cfg.IssuerAPIURL).
		Str("verifier", cfg.VerifierAPIURL).
		Dur("upstream_timeout", cfg.UpstreamTimeout).
		Str("sweep_every", cfg.SweepEvery).
		Bool("swagger", cfg.EnableSwagger).
		Msg("config loaded")
	return cfg
}
