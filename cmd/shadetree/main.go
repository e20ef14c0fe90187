package main

//	@title						Shadetree API
//	@version					0.1.0
//	@description				CSS theming service: design systems, color presets, theme packs, and per-visitor selection.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/HerbHall/shadetree/api/swagger"
	"github.com/HerbHall/shadetree/internal/auth"
	"github.com/HerbHall/shadetree/internal/config"
	"github.com/HerbHall/shadetree/internal/designsys"
	"github.com/HerbHall/shadetree/internal/event"
	"github.com/HerbHall/shadetree/internal/server"
	"github.com/HerbHall/shadetree/internal/store"
	"github.com/HerbHall/shadetree/internal/theme"
	"github.com/HerbHall/shadetree/internal/version"
	"github.com/HerbHall/shadetree/internal/webassets"
	"github.com/HerbHall/shadetree/internal/ws"
	"github.com/HerbHall/shadetree/pkg/palette"
	"go.uber.org/zap"
)

func main() {
	// Subcommand dispatch (before flag.Parse).
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "backup":
			runBackup(os.Args[2:])
			return
		case "restore":
			runRestore(os.Args[2:])
			return
		case "version":
			fmt.Println(version.Info())
			return
		}
	}

	configPath := flag.String("config", "", "path to configuration file")
	listen := flag.String("listen", "", "listen address (overrides server.host and server.port)")
	dbPath := flag.String("db", "", "SQLite database path (overrides database.dsn)")
	devMode := flag.Bool("dev", false, "enable dev mode (Swagger UI at /swagger/)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Load configuration (before logger, so log level/format can be configured).
	viperCfg, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		viperCfg.Set("database.dsn", *dbPath)
	}
	if *devMode {
		viperCfg.Set("dev_mode", true)
	}

	// Initialize logger from configuration.
	logger, err := config.NewLogger(viperCfg.GetString("logging.level"), viperCfg.GetString("logging.format"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Shadetree server starting", zap.String("version", version.Short()))

	if f := viperCfg.ConfigFileUsed(); f != "" {
		logger.Info("configuration loaded",
			zap.String("component", "config"),
			zap.String("source", f),
		)
	} else {
		logger.Warn("no configuration file found, using defaults",
			zap.String("component", "config"),
		)
	}

	themeCfg, err := config.ThemeFromViper(viperCfg)
	if err != nil {
		logger.Fatal("invalid theme configuration", zap.Error(err))
	}
	authCfg, err := config.AuthFromViper(viperCfg)
	if err != nil {
		logger.Fatal("invalid auth configuration", zap.Error(err))
	}

	// Open database
	dsn := viperCfg.GetString("database.dsn")
	if dsn == "" {
		dsn = "shadetree.db"
	}
	db, err := store.New(dsn)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.CheckVersion(ctx, version.Short()); err != nil {
		logger.Fatal("schema version check failed", zap.Error(err))
	}
	if err := db.Migrate(ctx, "theme", theme.Migrations()); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Info("database initialized",
		zap.String("component", "database"),
		zap.String("path", dsn),
	)

	// Create shared services
	bus := event.NewBus(logger.Named("event"))
	logger.Info("event bus created", zap.String("component", "event"))

	// Assemble the preset registry: built-ins, then operator preset files,
	// then custom themes persisted through the API.
	registry := palette.NewBuiltinRegistry()
	if themeCfg.PresetDir != "" {
		presets, err := palette.LoadDir(themeCfg.PresetDir)
		if err != nil {
			logger.Fatal("failed to load preset directory",
				zap.String("dir", themeCfg.PresetDir),
				zap.Error(err),
			)
		}
		for _, p := range presets {
			if err := registry.Register(p); err != nil {
				logger.Fatal("failed to register operator preset",
					zap.String("preset", p.Name),
					zap.Error(err),
				)
			}
		}
		logger.Info("operator presets loaded",
			zap.String("component", "palette"),
			zap.String("dir", themeCfg.PresetDir),
			zap.Int("count", len(presets)),
		)
	}

	catalog := designsys.NewCatalog()

	themeStore := theme.NewStore(db.DB())
	if err := themeStore.SeedBuiltins(ctx, palette.Builtins()); err != nil {
		logger.Fatal("failed to seed built-in themes", zap.Error(err))
	}

	// Re-register custom themes from previous runs. A stored name that now
	// collides with a built-in is skipped rather than failing startup.
	recs, err := themeStore.ListThemes(ctx)
	if err != nil {
		logger.Fatal("failed to list stored themes", zap.Error(err))
	}
	custom := 0
	for i := range recs {
		if recs[i].BuiltIn {
			continue
		}
		if err := registry.Register(recs[i].Preset()); err != nil {
			logger.Warn("skipping stored theme",
				zap.String("component", "theme"),
				zap.String("theme", recs[i].Name),
				zap.Error(err),
			)
			continue
		}
		custom++
	}
	logger.Info("theme store initialized",
		zap.String("component", "theme"),
		zap.Int("presets", registry.Len()),
		zap.Int("custom", custom),
	)

	manager := theme.NewManager(themeCfg, registry, catalog, themeStore, bus, logger.Named("theme"))
	themeHandler := theme.NewHandler(manager, themeStore, bus, logger.Named("theme"))

	// Periodically drop visitor sessions idle past the TTL.
	sessionTTL := themeCfg.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = 365 * 24 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := themeStore.PruneSessions(ctx, time.Now().Add(-sessionTTL))
				if err != nil {
					logger.Warn("session prune failed", zap.Error(err))
				} else if n > 0 {
					logger.Info("pruned expired sessions",
						zap.String("component", "theme"),
						zap.Int64("count", n),
					)
				}
			}
		}
	}()

	// Create auth service
	jwtSecret := authCfg.JWTSecret
	if jwtSecret == "" {
		// Generate an ephemeral secret -- tokens won't survive restarts.
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			logger.Fatal("failed to generate JWT secret", zap.Error(err))
		}
		jwtSecret = hex.EncodeToString(b)
		logger.Info("using auto-generated JWT secret (normal for first run; set auth.jwt_secret in config to persist tokens across restarts)",
			zap.String("component", "auth"),
		)
	} else {
		logger.Info("JWT secret loaded from configuration", zap.String("component", "auth"))
	}

	tokenTTL := authCfg.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = time.Hour
	}

	tokens := auth.NewTokenService([]byte(jwtSecret), tokenTTL)
	authService := auth.NewService(authCfg.PasswordHash, tokens, logger.Named("auth"))
	authHandler := auth.NewHandler(authService, logger.Named("auth"))
	if authService.Enabled() {
		logger.Info("write API guarded by token auth",
			zap.String("component", "auth"),
			zap.Duration("token_ttl", tokenTTL),
		)
	} else {
		logger.Warn("write API is open; set auth.password_hash to require tokens",
			zap.String("component", "auth"),
		)
	}

	// Create WebSocket handler for live theme updates
	wsHandler := ws.NewHandler(bus, logger.Named("ws"))
	logger.Info("websocket handler initialized", zap.String("component", "ws"))

	// Create and start HTTP server
	addr := fmt.Sprintf("%s:%d", viperCfg.GetString("server.host"), viperCfg.GetInt("server.port"))
	if *listen != "" {
		addr = *listen
	}
	logger.Info("HTTP server configured",
		zap.String("component", "server"),
		zap.String("addr", addr),
	)
	dev := viperCfg.GetBool("dev_mode")
	readOnly := viperCfg.GetBool("server.read_only")
	readyCheck := server.ReadinessChecker(func(ctx context.Context) error {
		return db.DB().PingContext(ctx)
	})
	extraRoutes := []server.SimpleRouteRegistrar{themeHandler, wsHandler, assetRoutes{}}
	srv := server.New(addr, logger, readyCheck, authHandler, dev, readOnly, extraRoutes...)

	// Start server in background
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("Shadetree server ready", zap.String("addr", addr))

	// Print human-readable banner for users watching docker logs.
	fmt.Fprintf(os.Stderr, "\n  Shadetree %s is ready!\n  Stylesheet at http://%s/theme.css\n\n", version.Short(), addr)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("Shadetree server stopped")
}

// assetRoutes adapts the webassets package functions to the server's route
// registrar interface. Lives in the composition root to keep webassets free
// of server types.
type assetRoutes struct{}

func (assetRoutes) RegisterRoutes(mux *http.ServeMux) {
	webassets.RegisterRoutes(mux)
}
