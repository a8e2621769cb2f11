package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	promreporter "github.com/uber-go/tally/prometheus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/vitals-api/api"
	"github.com/bitmark-inc/vitals-api/store"
	"github.com/bitmark-inc/vitals-api/trend"
	"github.com/bitmark-inc/vitals-api/utils"
)

var (
	server      *api.Server
	ormStore    *store.VitalsStore
	mongoStore  store.MongoStore
	scopeCloser io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("vitals")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("mongo.pool", 100)
	viper.SetDefault("trend.direction_band", trend.DefaultDirectionBand)
	viper.SetDefault("trend.moderate_variability", trend.DefaultModerateVariability)
	viper.SetDefault("trend.high_variability", trend.DefaultHighVariability)
	viper.SetDefault("trend.trajectory_window", trend.DefaultTrajectoryWindow)
}

// loadPolicy reads the trend thresholds, keeping defaults for anything
// that is not configured
func loadPolicy() trend.Policy {
	return trend.Policy{
		DirectionBand:       viper.GetFloat64("trend.direction_band"),
		ModerateVariability: viper.GetFloat64("trend.moderate_variability"),
		HighVariability:     viper.GetFloat64("trend.high_variability"),
		TrajectoryWindow:    viper.GetInt("trend.trajectory_window"),
	}
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormStore != nil {
			log.Info("Shutting down db store")
			if err := ormStore.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoStore != nil {
			mongoStore.Close()
		}

		if scopeCloser != nil {
			if err := scopeCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load the public key of the identity provider
	jwtPubKeyByte, err := ioutil.ReadFile(viper.GetString("jwt.pubkeyfile"))
	if err != nil {
		log.Panic(err)
	}
	jwtPublicKey, err := jwt.ParseRSAPublicKeyFromPEM(jwtPubKeyByte)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded jwt public key")

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	ormStore = store.NewVitalsStore(ormDB)

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"), store.BreakerConfig{
		MaxRequests:         viper.GetUint32("mongo.breaker.max_requests"),
		Interval:            viper.GetDuration("mongo.breaker.interval"),
		Timeout:             viper.GetDuration("mongo.breaker.timeout"),
		ConsecutiveFailures: viper.GetUint32("mongo.breaker.failures"),
	})
	reportStore := store.NewCachedReport(mongoStore,
		viper.GetInt("cache.reports.size"),
		viper.GetDuration("cache.reports.ttl"))
	log.WithField("prefix", "init").Info("Initialized mongo store")

	// Metrics
	reporter := promreporter.NewReporter(promreporter.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:         "vitals",
		Tags:           map[string]string{},
		CachedReporter: reporter,
		Separator:      promreporter.DefaultSeparator,
	}, time.Second)
	scopeCloser = closer

	bundle, err := utils.NewI18NBundle(viper.GetString("i18n.dir"), trend.AdviceMessages...)
	if err != nil {
		log.Panic(err)
	}

	trendService := trend.NewService(reportStore, mongoStore, loadPolicy(), trend.NewAdvisor(bundle), scope)

	// Init http server
	server = api.NewServer(
		ormStore,
		mongoStore,
		trendService,
		jwtPublicKey,
		reporter.HTTPHandler())
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
