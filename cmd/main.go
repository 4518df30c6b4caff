package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createPrenotazioneHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/create_prenotazione"
	deletePrenotazioneHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/delete_prenotazione"
	getDatiCaricoHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/get_dati_carico"
	getPrenotazioneHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/get_prenotazione"
	getTempiCicloHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/get_tempi_ciclo"
	listPrenotazioniHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/list_prenotazioni"
	registraCaricoHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/registra_carico"
	transizioneStatoHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/transizione_stato"
	updateDatiCaricoHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/update_dati_carico"
	updatePrenotazioneHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/update_prenotazione"
	updateTempiCicloHandler "github.com/molinoferri/MFP-PrenotazioniService/internal/api/handlers/update_tempi_ciclo"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/api/middleware"
	"github.com/molinoferri/MFP-PrenotazioniService/internal/config"
	datiCaricoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/daticarico"
	prenotazioneRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/prenotazione"
	storicoRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/storico"
	tempiCicloRepo "github.com/molinoferri/MFP-PrenotazioniService/internal/infra/storage/tempiciclo"
	datiCaricoService "github.com/molinoferri/MFP-PrenotazioniService/internal/service/daticarico"
	prenotazioniService "github.com/molinoferri/MFP-PrenotazioniService/internal/service/prenotazioni"
	tempiCicloService "github.com/molinoferri/MFP-PrenotazioniService/internal/service/tempiciclo"
	createPrenotazioneUC "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/create_prenotazione"
	registraCaricoUC "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/registra_carico"
	transizioneStatoUC "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/transizione_stato"
	updatePrenotazioneUC "github.com/molinoferri/MFP-PrenotazioniService/internal/usecase/update_prenotazione"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/dbmetrics"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/logger"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/metrics"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/simpletxmanager"
	"github.com/molinoferri/MFP-PrenotazioniService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting MFP-PrenotazioniService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		prenotazioneRepository *prenotazioneRepo.Repository
		storicoRepository      *storicoRepo.Repository
		datiCaricoRepository   *datiCaricoRepo.Repository
		tempiCicloRepository   *tempiCicloRepo.Repository
	)

	// Общий интерфейс обоих менеджеров транзакций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		prenotazioneRepository = prenotazioneRepo.NewRepository(wrappedDB)
		storicoRepository = storicoRepo.NewRepository(wrappedDB)
		datiCaricoRepository = datiCaricoRepo.NewRepository(wrappedDB)
		tempiCicloRepository = tempiCicloRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		prenotazioneRepository = prenotazioneRepo.NewRepository(db)
		storicoRepository = storicoRepo.NewRepository(db)
		datiCaricoRepository = datiCaricoRepo.NewRepository(db)
		tempiCicloRepository = tempiCicloRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	tempiCicloSvc := tempiCicloService.NewService(tempiCicloRepository, log)
	prenotazioniSvc := prenotazioniService.NewService(
		prenotazioneRepository,
		storicoRepository,
		datiCaricoRepository,
		txMgr,
		log,
	)
	datiCaricoSvc := datiCaricoService.NewService(
		datiCaricoRepository,
		prenotazioneRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createPrenotazioneUseCase := createPrenotazioneUC.NewUseCase(
		prenotazioneRepository,
		storicoRepository,
		tempiCicloSvc,
		txMgr,
		log,
	)
	updatePrenotazioneUseCase := updatePrenotazioneUC.NewUseCase(
		prenotazioneRepository,
		tempiCicloSvc,
		txMgr,
		log,
	)
	transizioneStatoUseCase := transizioneStatoUC.NewUseCase(
		prenotazioneRepository,
		storicoRepository,
		txMgr,
		log,
	)
	registraCaricoUseCase := registraCaricoUC.NewUseCase(
		prenotazioneRepository,
		datiCaricoRepository,
		storicoRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createPrenotazione := createPrenotazioneHandler.NewHandler(createPrenotazioneUseCase, log)
	getPrenotazione := getPrenotazioneHandler.NewHandler(prenotazioniSvc, log)
	listPrenotazioni := listPrenotazioniHandler.NewHandler(prenotazioniSvc, log)
	updatePrenotazione := updatePrenotazioneHandler.NewHandler(updatePrenotazioneUseCase, log)
	deletePrenotazione := deletePrenotazioneHandler.NewHandler(prenotazioniSvc, log)
	transizioneStato := transizioneStatoHandler.NewHandler(transizioneStatoUseCase, log)
	registraCarico := registraCaricoHandler.NewHandler(registraCaricoUseCase, log)
	getDatiCarico := getDatiCaricoHandler.NewHandler(datiCaricoSvc, log)
	updateDatiCarico := updateDatiCaricoHandler.NewHandler(datiCaricoSvc, log)
	getTempiCiclo := getTempiCicloHandler.NewHandler(tempiCicloSvc, log)
	updateTempiCiclo := updateTempiCicloHandler.NewHandler(tempiCicloSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Чтение ---
	api.HandleFunc("/prenotazioni", listPrenotazioni.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prenotazioni/{id}", getPrenotazione.Handle).Methods(http.MethodGet)
	api.HandleFunc("/prenotazioni/{id}/dati-carico", getDatiCarico.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tempi-ciclo", getTempiCiclo.Handle).Methods(http.MethodGet)

	// --- Изменяющие операции: требуют уровень доступа modifica ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireModifica)

	// Жизненный цикл бронирований
	protected.HandleFunc("/prenotazioni", createPrenotazione.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/prenotazioni/{id}", updatePrenotazione.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/prenotazioni/{id}", deletePrenotazione.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/prenotazioni/{id}/stato", transizioneStato.Handle).Methods(http.MethodPatch)

	// Данные карико
	protected.HandleFunc("/prenotazioni/{id}/dati-carico", registraCarico.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/prenotazioni/{id}/dati-carico", updateDatiCarico.Handle).Methods(http.MethodPatch)

	// Администрирование tempi ciclo
	protected.HandleFunc("/tempi-ciclo/{categoria}", updateTempiCiclo.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
