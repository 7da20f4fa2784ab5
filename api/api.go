package api

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"iposcreener/internal/db/models/postgres/public/model"
	"iposcreener/internal/domain"
	"iposcreener/internal/logger"
	"iposcreener/internal/repository"
	l1_service "iposcreener/internal/service/l1"
	l2_service "iposcreener/internal/service/l2"
	l3_service "iposcreener/internal/service/l3"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                        *sql.DB
	Logger                    *zap.SugaredLogger
	ApiRequestRepository      repository.ApiRequestRepository
	LatencyTrackingRepository repository.LatencyTrackingRepository
	QueryService              l3_service.QueryService
	AlertService              l3_service.AlertService
	DashboardService          l2_service.DashboardService
	SectorBaselineService     l1_service.SectorBaselineService
	JwtDecodeToken            string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the ipo screener"})
	})
	router.GET("/health", m.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ipo := router.Group("/ipo")
	ipo.POST("/query", m.queryIpo)
	ipo.GET("/queries", m.getQueries)
	ipo.GET("/sector-averages", m.getSectorAverages)
	ipo.GET("/dashboard", m.getDashboard)
	ipo.GET("/dashboard/points/:queryID", m.getDashboardPoint)
	ipo.POST("/alerts/send", m.requireOperator, m.sendHighRiskAlerts)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		log.Infof("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddlware puts a logger and a latency profile on the request
// ctx, and persists the request and its response when a db is wired
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	log := m.Logger
	if log == nil {
		log = logger.New()
	}
	log = log.With("method", ctx.Request.Method, "route", ctx.FullPath())

	profile, endProfile := domain.NewProfile()
	reqCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, log)
	reqCtx = domain.NewCtxWithProfile(reqCtx, profile)
	ctx.Request = ctx.Request.WithContext(reqCtx)

	if m.Db == nil || m.ApiRequestRepository == nil {
		ctx.Next()
		return
	}

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warn(err)
	}

	ctx.Next()
	endProfile()

	if req == nil {
		return
	}

	req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
	req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
	req.ResponseBody = strPtr(w.body.String())

	err = m.ApiRequestRepository.Update(m.Db, *req)
	if err != nil {
		log.Warn(err)
	}

	if m.LatencyTrackingRepository != nil && len(profile.Spans) > 0 {
		err = m.LatencyTrackingRepository.Add(profile, &req.RequestID)
		if err != nil {
			log.Warn(err)
		}
	}
}
