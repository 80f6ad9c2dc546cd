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

	generateShortlistHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/generate_shortlist"
	getAvailableSlotsHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/get_available_slots"
	getVacancyInterviewsHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/get_vacancy_interviews"
	getVacancyShortlistHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/get_vacancy_shortlist"
	runSchedulingHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/run_scheduling"
	scoreApplicationsHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/score_applications"
	updateInterviewStatusHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/update_interview_status"
	upsertIntegrationHandler "github.com/m04kA/SMC-InterviewService/internal/api/handlers/upsert_calendar_integration"
	"github.com/m04kA/SMC-InterviewService/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewService/internal/config"
	applicationRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/application"
	integrationRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/calendarintegration"
	interviewRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/interview"
	shortlistRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/shortlist"
	vacancyRepo "github.com/m04kA/SMC-InterviewService/internal/infra/storage/vacancy"
	calendarServiceClient "github.com/m04kA/SMC-InterviewService/internal/integrations/calendarservice"
	notifyServiceClient "github.com/m04kA/SMC-InterviewService/internal/integrations/notifyservice"
	scoringServiceClient "github.com/m04kA/SMC-InterviewService/internal/integrations/scoringservice"
	"github.com/m04kA/SMC-InterviewService/internal/scheduler"
	interviewsService "github.com/m04kA/SMC-InterviewService/internal/service/interviews"
	generateShortlistUC "github.com/m04kA/SMC-InterviewService/internal/usecase/generate_shortlist"
	getAvailableSlotsUC "github.com/m04kA/SMC-InterviewService/internal/usecase/get_available_slots"
	requestFeedbackUC "github.com/m04kA/SMC-InterviewService/internal/usecase/request_feedback"
	scheduleInterviewsUC "github.com/m04kA/SMC-InterviewService/internal/usecase/schedule_interviews"
	scoreApplicationsUC "github.com/m04kA/SMC-InterviewService/internal/usecase/score_applications"
	"github.com/m04kA/SMC-InterviewService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewService/pkg/logger"
	"github.com/m04kA/SMC-InterviewService/pkg/metrics"
	"github.com/m04kA/SMC-InterviewService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-InterviewService/pkg/txmanager"
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

	log.Info("Starting SMC-InterviewService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New()
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

	// Инициализируем интеграционных клиентов
	scoringClient := scoringServiceClient.NewClient(
		cfg.ScoringService.URL,
		time.Duration(cfg.ScoringService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	calendarFactory := calendarServiceClient.NewFactory(
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ScoringService=%s timeout=%ds, NotifyService=%s timeout=%ds, CalDAV timeout=%ds)",
		cfg.ScoringService.URL, cfg.ScoringService.Timeout,
		cfg.NotifyService.URL, cfg.NotifyService.Timeout, cfg.Calendar.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		vacancies    *vacancyRepo.Repository
		applications *applicationRepo.Repository
		shortlists   *shortlistRepo.Repository
		interviews   *interviewRepo.Repository
		integrations *integrationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		vacancies = vacancyRepo.NewRepository(wrappedDB)
		applications = applicationRepo.NewRepository(wrappedDB)
		shortlists = shortlistRepo.NewRepository(wrappedDB)
		interviews = interviewRepo.NewRepository(wrappedDB)
		integrations = integrationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		vacancies = vacancyRepo.NewRepository(db)
		applications = applicationRepo.NewRepository(db)
		shortlists = shortlistRepo.NewRepository(db)
		interviews = interviewRepo.NewRepository(db)
		integrations = integrationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	interviewSvc := interviewsService.NewService(
		interviews,
		vacancies,
		shortlists,
		integrations,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		vacancies,
		integrations,
		calendarFactory,
		log,
	)

	var schedulingMetrics scheduleInterviewsUC.Metrics = scheduleInterviewsUC.NopMetrics{}
	if cfg.Metrics.Enabled {
		schedulingMetrics = metricsCollector
	}

	scheduleInterviewsUseCase := scheduleInterviewsUC.NewUseCase(
		vacancies,
		shortlists,
		interviews,
		getAvailableSlotsUseCase,
		notifyClient,
		txMgr,
		schedulingMetrics,
		log,
	)

	scoreApplicationsUseCase := scoreApplicationsUC.NewUseCase(
		vacancies,
		applications,
		scoringClient,
		log,
	)

	generateShortlistUseCase := generateShortlistUC.NewUseCase(
		vacancies,
		applications,
		shortlists,
		txMgr,
		log,
	)

	requestFeedbackUseCase := requestFeedbackUC.NewUseCase(
		interviews,
		notifyClient,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	runScheduling := runSchedulingHandler.NewHandler(scheduleInterviewsUseCase, log)
	scoreApplications := scoreApplicationsHandler.NewHandler(scoreApplicationsUseCase, log)
	generateShortlist := generateShortlistHandler.NewHandler(generateShortlistUseCase, log)
	getVacancyInterviews := getVacancyInterviewsHandler.NewHandler(interviewSvc, log)
	getVacancyShortlist := getVacancyShortlistHandler.NewHandler(interviewSvc, log)
	updateInterviewStatus := updateInterviewStatusHandler.NewHandler(interviewSvc, log)
	upsertIntegration := upsertIntegrationHandler.NewHandler(interviewSvc, log)

	// Запускаем фоновый планировщик (если включен)
	var cronScheduler *scheduler.Scheduler
	if cfg.Scheduling.Enabled {
		cronScheduler = scheduler.New(scheduleInterviewsUseCase, requestFeedbackUseCase, log)
		if err := cronScheduler.Start(cfg.Scheduling.ScheduleCron, cfg.Scheduling.FeedbackCron); err != nil {
			log.Fatal("Failed to start scheduler: %v", err)
		}
	}

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты менеджера вакансии
	api.HandleFunc("/vacancies/{vacancyId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Планирование ---
	// Ручной запуск ежедневного прогона планирования
	protected.HandleFunc("/scheduling/run", runScheduling.Handle).Methods(http.MethodPost)

	// --- Обработка откликов ---
	// AI-скоринг откликов вакансии
	protected.HandleFunc("/vacancies/{vacancyId}/score", scoreApplications.Handle).Methods(http.MethodPost)

	// Генерация шорт-листа из оцененных откликов
	protected.HandleFunc("/vacancies/{vacancyId}/shortlist", generateShortlist.Handle).Methods(http.MethodPost)

	// Шорт-лист вакансии
	protected.HandleFunc("/vacancies/{vacancyId}/shortlist", getVacancyShortlist.Handle).Methods(http.MethodGet)

	// --- Интервью ---
	// Интервью вакансии
	protected.HandleFunc("/vacancies/{vacancyId}/interviews", getVacancyInterviews.Handle).Methods(http.MethodGet)

	// Смена статуса интервью
	protected.HandleFunc("/interviews/{interviewId}/status", updateInterviewStatus.Handle).Methods(http.MethodPatch)

	// --- Интеграции ---
	// Привязка календаря менеджера
	protected.HandleFunc("/integrations/calendar", upsertIntegration.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновый планировщик
	if cronScheduler != nil {
		cronScheduler.Stop()
	}

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
