package api

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"time"

	"papertrade/internal"
	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/logger"
	"papertrade/internal/quotecache"
	"papertrade/internal/repository"
	"papertrade/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                   *sql.DB
	QuoteCache           quotecache.QuoteCache
	PortfolioService     service.PortfolioService
	TradingService       service.TradingService
	ApiRequestRepository repository.ApiRequestRepository
	JwtDecodeToken       string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(attachLogger(logger.New()))
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to papertrade"})
	})
	router.GET("/quote/:symbol", m.getQuote)
	router.POST("/quote/:symbol/refresh", m.refreshQuote)
	router.POST("/quotes", m.getQuotes)
	router.GET("/cache/stats", m.getCacheStats)
	router.POST("/buyStock", m.buyStock)
	router.GET("/portfolio", m.getPortfolio)
	router.GET("/portfolio/export", m.exportPortfolio)
	router.GET("/trades", m.listTrades)

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
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// attachLogger stores the shared logger on the request context so everything
// downstream can retrieve it with logger.FromContext.
func attachLogger(lg *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request = ctx.Request.WithContext(
			context.WithValue(ctx.Request.Context(), logger.ContextKey, lg),
		)
		ctx.Next()
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	if m.ApiRequestRepository == nil || m.Db == nil {
		ctx.Next()
		return
	}

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	var userID *uuid.UUID
	if parsedJWT, err := m.parseAuthHeader(ctx); err == nil {
		if id, err := uuid.Parse(parsedJWT.Subject); err == nil {
			userID = &id
		}
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		UserID:      userID,
		IPAddress:   internal.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: internal.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = internal.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = internal.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = internal.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
