package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chainledger/internal/config"
	"chainledger/internal/core"
	"chainledger/internal/db"
	"chainledger/internal/ethereum"
	"chainledger/internal/events"
	"chainledger/internal/http/handler"
	"chainledger/internal/http/handler/middleware"
	"chainledger/internal/http/payload"
	"chainledger/internal/http/server"
	"chainledger/internal/repository"
	"chainledger/internal/watcher"
	"chainledger/pkg/eip712"
	"chainledger/pkg/jwt"
	"chainledger/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

const sweepIntervalFactor = 6

func Start() error {
	logger := log.NewZapLogger("chainledger", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	err = repo.MigrateAndSeed()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}

	nodeService := ethereum.NewNodeService(client)

	// chain-facing services
	var signer *eip712.Signer
	var verifier *eip712.Verifier
	if cfg.Chain.Enabled {
		signer, err = eip712.NewSigner(
			cfg.Chain.SignerKeyHex,
			cfg.Chain.DomainName,
			cfg.Chain.DomainVersion,
			cfg.Chain.ChainID,
			cfg.Chain.ContractAddress)
		if err != nil {
			logger.Errorw("failed to create eip712 signer", "error", err)
			return err
		}
		verifier = eip712.NewVerifier(
			cfg.Chain.DomainName,
			cfg.Chain.DomainVersion,
			cfg.Chain.ChainID,
			cfg.Chain.ContractAddress,
			signer.Address())
	}

	nonces := core.NewNonceRegistry(logger, repo)
	claims := core.NewClaimService(logger, repo, nonces, repo, signer, verifier, cfg.Chain.TokenDecimals)
	reconciler := core.NewReconciler(logger, repo, cfg.Chain.TokenDecimals)
	tracker := core.NewTracker(logger, repo)
	authService := core.NewAuthService(logger, repo, jwtService)

	syncService := core.NewSyncService(
		logger,
		repo,
		nodeService,
		events.NewDecoder(),
		reconciler,
		cfg.Chain.ContractAddress,
		cfg.Chain.ChainID)

	// handler
	adminHlr := handler.NewAdminHandler(
		logger,
		payload.Decoder{},
		authService,
		syncService,
		claims)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, adminHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetStatus, adminHlr.HandleGetStatus)
	mux.HandleFunc(handler.Resync, adminHlr.HandleResync)
	mux.HandleFunc(handler.IssueClaim, adminHlr.HandleIssueClaim)
	mux.HandleFunc(handler.VerifyClaim, adminHlr.HandleVerifyClaim)

	// background runners
	runners := make([]*watcher.Runner, 0, 2)
	if syncService.Enabled() {
		pollRunner := watcher.NewRunner(
			fmt.Sprintf("log-watcher %s", cfg.Chain.ContractAddress),
			cfg.Chain.PollInterval,
			syncService.Poll,
			logger)
		sweepRunner := watcher.NewRunner(
			"claim-expiry-sweep",
			cfg.Chain.PollInterval*sweepIntervalFactor,
			tracker.Sweep,
			logger)
		runners = append(runners, pollRunner, sweepRunner)
	}

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv, syncService, runners)
}

func run(srv *server.HTTPServer, syncService *core.SyncService, runners []*watcher.Runner) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	ctx := context.Background()
	for _, r := range runners {
		r.Start(ctx)
	}
	if len(runners) > 0 {
		syncService.MarkListening(true)
	}

	errChan := srv.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	for _, r := range runners {
		r.Stop()
	}
	syncService.MarkListening(false)

	sdErr := srv.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
