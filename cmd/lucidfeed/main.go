package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/text/language"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/config"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/database"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/gateway"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/infra/repository"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/present/rest"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/present/rest/middleware"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/service"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/usecase"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/ranking"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/scoring"
	"github.com/lucidfeed-wq/Lucid-Feed-sub003/taxonomy"
)

func main() {
	configPath := flag.String("c", "/etc/lucidfeed/config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	vocab, err := taxonomy.LoadVocabularyFile(conf.VocabularyPath)
	if err != nil {
		panic(err)
	}

	locale, err := language.Parse(conf.Ranking.Locale)
	if err != nil {
		panic(err)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	if conf.Server.EnableTrace {
		shutdown, err := setupTrace(conf.Server.TraceEndpoint)
		if err != nil {
			panic(err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("failed to shutdown tracer", slog.String("error", err.Error()))
			}
		}()
	}

	itemRepo := repository.NewItemRepository(db, mc)
	folderRepo := repository.NewFolderRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	digestRepo := repository.NewDigestRepository(db)

	signal := service.NewSignalService(rdb)
	folderViews := gateway.NewFolderViewCache()

	weights := scoring.Weights(conf.Scoring.Weights)
	sorter := ranking.NewSorter(locale)
	resolver := usecase.NewScopeResolver(folderRepo)

	retrievalUC := usecase.NewRetrievalUsecase(resolver, itemRepo, sorter, signal)
	ingestUC := usecase.NewIngestUsecase(vocab, weights, itemRepo)
	folderUC := usecase.NewFolderUsecase(folderRepo, folderViews)
	bookmarkUC := usecase.NewBookmarkUsecase(bookmarkRepo)
	catalogUC := usecase.NewCatalogUsecase(vocab, feedRepo)
	digestUC := usecase.NewDigestUsecase(digestRepo)

	handler := rest.NewHandler(retrievalUC, ingestUC, folderUC, bookmarkUC, catalogUC, digestUC, signal)
	requester := middleware.NewRequesterMiddleware()

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("lucidfeed"))
	}
	e.Use(requester.IdentifyRequester)

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}

func setupTrace(endpoint string) (func(context.Context) error, error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(sdkresource.Default()),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
