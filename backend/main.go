package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	handler "github.com/okhrin/meta-tracker/backend/internal/handler/v1"
	"github.com/okhrin/meta-tracker/backend/internal/service"
	"github.com/okhrin/meta-tracker/backend/internal/worker"
	"github.com/okhrin/meta-tracker/pkg/envutils"
	"github.com/okhrin/meta-tracker/pkg/httputils"
	"github.com/okhrin/meta-tracker/pkg/natsinfo"
)

type DatabaseConfig struct {
	Username string
	Password string
	Database string
	Host     string
	Port     string
	Driver   string
}

func (dconf *DatabaseConfig) GetURI() string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s",
		dconf.Driver,
		dconf.Username,
		dconf.Password,
		dconf.Host,
		dconf.Port,
		dconf.Database,
	)
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:   "postgres",
		Username: envutils.Env("DATABASE_USERNAME", "admin"),
		Password: envutils.Env("DATABASE_PASSWORD", "admin"),
		Host:     envutils.Env("DATABASE_HOST", "postgres"),
		Port:     envutils.Env("DATABASE_PORT", "5432"),
		Database: envutils.Env("DATABASE_NAME", "postgres"),
	}
}

type NewDatabaseConnectionParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *DatabaseConfig
}

func NewDatabaseConnection(params NewDatabaseConnectionParams) (*sql.DB, error) {
	conn, err := sql.Open(params.Config.Driver, params.Config.GetURI()+"?sslmode=disable")
	if err != nil {
		return nil, err
	}
	params.Lifecycle.Append(fx.StopHook(conn.Close))
	return conn, nil
}

func NewPageCountKeyValue(js nats.JetStreamContext) (nats.KeyValue, error) {
	kv, err := js.KeyValue(natsinfo.PAGE_COUNT_BUCKET_NAME)
	if errors.Is(err, nats.ErrBucketNotFound) {
		return js.CreateKeyValue(&natsinfo.PAGE_COUNT_KEY_VALUE_CONFIG)
	}
	return kv, err
}

type HTTPConfig struct {
	Host string
	Port string
}

func (c *HTTPConfig) GetAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Host: envutils.Env("HTTP_HOST", "0.0.0.0"),
		Port: envutils.Env("HTTP_PORT", "8080"),
	}
}

type NewRouterParams struct {
	fx.In

	Handlers []httputils.Handler `group:"http.handler"`
}

func NewRouter(params NewRouterParams) *chi.Mux {
	router := chi.NewRouter()
	for _, handler := range params.Handlers {
		handler.OnRouter(router)
	}
	return router
}

type StartServerParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *HTTPConfig
	Router *chi.Mux
	Log    *zap.Logger
}

func StartServer(params StartServerParams) {
	server := &http.Server{
		Addr:    params.Config.GetAddr(),
		Handler: params.Router,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			params.Log.Info("Start http server", zap.String("addr", server.Addr))
			go server.Serve(listener)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}

func main() {
	fx.New(
		fx.Provide(
			zap.NewProduction,

			natsinfo.NewNatsConfig,
			natsinfo.NewNatsConnection,
			NewPageCountKeyValue,

			NewDatabaseConfig,
			NewDatabaseConnection,

			service.NewPageService,

			httputils.AsHandler(`group:"http.handler"`, handler.NewPageHandler),

			NewHTTPConfig,
			NewRouter,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			worker.StartSnapshotConsumerWorker,
			StartServer,
		),
	).Run()
}
