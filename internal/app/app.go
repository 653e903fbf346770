package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/aqua-plant/config"
	"github.com/niksmo/aqua-plant/internal/adapter"
	"github.com/niksmo/aqua-plant/internal/adapter/httphandler"
	"github.com/niksmo/aqua-plant/internal/adapter/kafka"
	"github.com/niksmo/aqua-plant/internal/adapter/metrics"
	"github.com/niksmo/aqua-plant/internal/adapter/storage"
	"github.com/niksmo/aqua-plant/internal/core/catalog"
	"github.com/niksmo/aqua-plant/internal/core/port"
	"github.com/niksmo/aqua-plant/internal/core/service"
	"github.com/niksmo/aqua-plant/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    catalog.Catalog
	metrics    *metrics.Collector
	producer   *kafka.CartEventsProducer
	storefront *service.Storefront
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	if app.cfg.Catalog.Source != config.CatalogSourcePostgres {
		app.catalog = catalog.Default()
		slog.Info("builtin catalog", "op", op, "nPlants", app.catalog.Len())
		return
	}

	db, err := storage.NewSQLDB(app.ctx, app.cfg.Catalog.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	defer db.Close()

	ps, err := storage.NewPlantsRepository(db).LoadPlants(app.ctx)
	if err != nil {
		app.fallDown(op, err)
	}

	c, err := catalog.New(ps)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = c
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	app.metrics = metrics.New()

	if !app.cfg.BrokerEnabled() {
		slog.Info("broker is not configured, cart events are off", "op", op)
		return
	}

	var tlsConfig *tls.Config
	if app.cfg.TLSEnabled() {
		t := app.cfg.Broker.TLS
		c, err := adapter.BrokerTLSConfig(t.CA, t.Cert, t.Key)
		if err != nil {
			app.fallDown(op, err)
		}
		tlsConfig = c
	}

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	topic := app.cfg.Broker.Topics.CartEvents
	cartEventSerde, err := schema.NewSerdeCartEventV1(
		app.ctx,
		schema.SubjectOpt(schema.TopicValueSubject(topic)),
		schema.SchemaIdentifierOpt(schema.NewRegistryIdentifier(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	p, err := kafka.NewCartEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx, app.cfg.Broker.SeedBrokers, topic, tlsConfig,
		),
		kafka.ProducerEncoderOpt(cartEventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = &p
}

func (app *App) initCoreService() {
	var publisher port.CartEventsPublisher
	if app.producer != nil {
		publisher = app.producer
	}

	app.storefront = service.New(
		catalog.NewEngine(app.catalog),
		publisher,
		app.metrics,
	)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.storefront, app.storefront)
	httphandler.RegisterCart(mux, app.storefront)
	app.metrics.Register(mux)

	handler := httphandler.LogRequests(httphandler.AllowJSON(mux), app.metrics)
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServer.Addr, handler, app.cfg.HTTPServer.HandlerTimeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.producer != nil {
		app.producer.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
