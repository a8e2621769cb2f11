package api

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/vitals-api/logmodule"
	"github.com/bitmark-inc/vitals-api/store"
	"github.com/bitmark-inc/vitals-api/trend"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.VitalsCore
	mongoStore store.MongoStore

	trend *trend.Service

	// JWT public key of the identity provider
	jwtPublicKey *rsa.PublicKey

	// prometheus exposition of the tally scope
	metricsHandler http.Handler

	limiter *requesterLimiter
}

// NewServer new instance of server
func NewServer(
	ormStore store.VitalsCore,
	mongoStore store.MongoStore,
	trendService *trend.Service,
	jwtKey *rsa.PublicKey,
	metricsHandler http.Handler) *Server {
	return &Server{
		store:          ormStore,
		mongoStore:     mongoStore,
		trend:          trendService,
		jwtPublicKey:   jwtKey,
		metricsHandler: metricsHandler,
		limiter: newRequesterLimiter(
			viper.GetFloat64("server.ratelimit.rps"),
			viper.GetInt("server.ratelimit.burst"),
		),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.rateLimitMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateMetadata)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	patientRoute := apiRoute.Group("/patients/:patientID")
	patientRoute.Use(s.recognizeAccountMiddleware())
	patientRoute.Use(s.patientAccessMiddleware())
	{
		patientRoute.GET("/series", s.getTimeSeries)
		patientRoute.GET("/trend", s.getTrend)
		patientRoute.GET("/dashboard", s.getDashboard)
		patientRoute.GET("/advice", s.getAdvice)
		patientRoute.GET("/tracked-metrics", s.getTrackedMetrics)
	}

	// only the patient may change what is tracked or who can read it
	ownerRoute := patientRoute.Group("", s.patientOwnerMiddleware())
	{
		ownerRoute.POST("/tracked-metrics", s.addTrackedMetric)
		ownerRoute.PUT("/tracked-metrics", s.replaceTrackedMetrics)
		ownerRoute.DELETE("/tracked-metrics", s.removeTrackedMetric)

		ownerRoute.POST("/institutions", s.grantInstitution)
		ownerRoute.DELETE("/institutions/:institutionID", s.revokeInstitution)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", s.metrics)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

// abortWithStoreError maps errors coming out of the stores and the trend
// service onto responses
func abortWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrProfileNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound, err)
	case errors.Is(err, trend.ErrInvalidLookback):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLookback, err)
	case errors.Is(err, trend.ErrEmptyBiomarker):
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyBiomarker, err)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		abortWithEncoding(c, http.StatusServiceUnavailable, errorRecordStoreUnhealthy, err)
	default:
		log.WithError(err).Error("store failure")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) metrics(c *gin.Context) {
	if s.metricsHandler == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	s.metricsHandler.ServeHTTP(c.Writer, c.Request)
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
