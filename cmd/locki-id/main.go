package main

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/locki-io/locki-id-addon/adapters/events"
	"github.com/locki-io/locki-id-addon/adapters/identity"
	"github.com/locki-io/locki-id-addon/adapters/ledger"
	"github.com/locki-io/locki-id-addon/adapters/store"
	"github.com/locki-io/locki-id-addon/config"
	"github.com/locki-io/locki-id-addon/service"
	httptransport "github.com/locki-io/locki-id-addon/transport/http"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	profilePath := cfg.ProfilePath
	if profilePath == "" {
		profilePath, err = store.DefaultPath()
		if err != nil {
			logger.Fatal("failed to resolve profile path", zap.Error(err))
		}
	}

	profileStore := store.NewFileStore(profilePath, logger)
	identityClient := identity.NewClient(cfg.IdentityEndpoint, cfg.HTTPTimeout)
	ledgerClient := ledger.NewClient(cfg.LedgerEndpoint, cfg.HTTPTimeout)

	publisher, err := newPublisher(cfg)
	if err != nil {
		logger.Fatal("failed to create event publisher", zap.Error(err))
	}

	eventPub := events.NewWatermillPublisher(publisher)
	sessions := service.NewSessionService(identityClient, ledgerClient, profileStore, eventPub, logger)

	router := httptransport.SetupRouter(sessions, logger)

	logger.Info("panel listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("identity", identityClient.Endpoint()),
		zap.String("profile", profilePath),
	)

	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newPublisher picks Redis Streams when REDIS_URL is configured, so other
// processes can observe session transitions; otherwise events stay
// in-process on a gochannel pub/sub.
func newPublisher(cfg config.Config) (message.Publisher, error) {
	wmLogger := watermill.NewStdLogger(false, false)

	if cfg.RedisURL == "" {
		return gochannel.NewGoChannel(gochannel.Config{}, wmLogger), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return redisstream.NewPublisher(
		redisstream.PublisherConfig{Client: redis.NewClient(opts)},
		wmLogger,
	)
}
