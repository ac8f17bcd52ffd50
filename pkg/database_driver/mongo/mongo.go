package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB struct
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Options struct - connection settings of ConnectToMongo
type Options struct {
	URI                    string
	Database               string
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
}

// ConnectToMongo func
// Connects and pings the primary so a bad URI fails at startup rather than
// on the first request.
func ConnectToMongo(ctx context.Context, opts Options) (*DB, error) {
	if opts.URI == "" || opts.Database == "" {
		return nil, errors.New("cannot estabished the connection")
	}
	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.ServerSelectionTimeout > 0 {
		clientOpts.SetServerSelectionTimeout(opts.ServerSelectionTimeout)
	}
	if opts.SocketTimeout > 0 {
		clientOpts.SetSocketTimeout(opts.SocketTimeout)
	}
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logrus.Error(err)
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logrus.WithField("database", opts.Database).Info("Connected with mongo")
	return &DB{
		Client:   client,
		Database: client.Database(opts.Database),
	}, nil
}

// DisconnectMongo func
func DisconnectMongo(ctx context.Context, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		logrus.Error(err)
		return
	}
	logrus.Println("Connected with mongo has closed")
}
