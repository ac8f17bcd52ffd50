package protocal

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-api/configs"
	httpAdapter "todo-api/internal/adapters/input/http"
	"todo-api/internal/adapters/output/memory"
	mongoAdapter "todo-api/internal/adapters/output/mongo"
	"todo-api/internal/adapters/output/postgres"
	"todo-api/internal/application"
	"todo-api/internal/ports/output"
	"todo-api/pkg/database_driver/gorm"
	"todo-api/pkg/database_driver/mongo"
	"todo-api/pkg/logger"
	"todo-api/pkg/validator"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	logger.Init(conf.App.LogLevel, conf.App.LogFormat)
	logrus.WithFields(logrus.Fields{
		"env":     conf.App.Env,
		"storage": conf.Storage.Driver,
	}).Info("Starting todo server")

	// Output adapter (repository)
	repo, closeRepo, err := newRepository(conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	// Application service (use case)
	srv := application.NewTodoService(repo)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, repo, validator.New())

	opts := httpAdapter.Options{
		Debug:       conf.App.Debug,
		MaxPageSize: conf.App.MaxPageSize,
	}
	app := httpAdapter.NewApp(opts)
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	httpAdapter.RegisterRoutes(app, hdl, opts)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logrus.Println("Gracefull shut down ...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logrus.Println("Error when shutdown server: ", err)
		}
	}()

	logrus.Println("Listerning on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}

// newRepository connects the configured store. The returned func releases
// the connection and is safe to call once the server has stopped.
func newRepository(conf *configs.Config) (output.TodoRepository, func(), error) {
	switch conf.Storage.Driver {
	case configs.StorageMongo:
		ctx, cancel := context.WithTimeout(context.Background(), conf.Mongo.ServerSelectionTimeout+time.Second)
		defer cancel()
		db, err := mongo.ConnectToMongo(ctx, mongo.Options{
			URI:                    conf.Mongo.URI,
			Database:               conf.Mongo.Database,
			ServerSelectionTimeout: conf.Mongo.ServerSelectionTimeout,
			SocketTimeout:          conf.Mongo.SocketTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		repo, err := mongoAdapter.NewTodoRepository(ctx, db.Client, db.Database.Collection(conf.Mongo.Collection))
		if err != nil {
			mongo.DisconnectMongo(context.Background(), db.Client)
			return nil, nil, err
		}
		return repo, func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			mongo.DisconnectMongo(ctx, db.Client)
		}, nil
	case configs.StoragePostgres:
		db, err := gorm.ConnectToPostgreSQL(gorm.Options{
			Host:         conf.Postgres.Host,
			Port:         conf.Postgres.Port,
			Username:     conf.Postgres.Username,
			Password:     conf.Postgres.Password,
			DbName:       conf.Postgres.DbName,
			SSLMode:      conf.Postgres.SSLMode,
			MaxIdleConns: conf.Postgres.MaxIdleConns,
			MaxOpenConns: conf.Postgres.MaxOpenConns,
			Debug:        conf.App.Debug,
		})
		if err != nil {
			return nil, nil, err
		}
		repo, err := postgres.NewTodoRepository(db.Postgres)
		if err != nil {
			gorm.DisconnectPostgres(db.Postgres)
			return nil, nil, err
		}
		return repo, func() { gorm.DisconnectPostgres(db.Postgres) }, nil
	case configs.StorageMemory:
		return memory.NewTodoRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
