package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"investingmenu/internal/domain"
	"investingmenu/internal/repository"
)

// ApiHandler carries the dependencies for the menu API.
type ApiHandler struct {
	DatasetRepository repository.DatasetRepository
	QuestionStore     repository.QuestionStore
	Logger            *zap.SugaredLogger
}

// InitializeRouterEngine builds the gin engine with all routes mounted.
// Kept separate from StartApi so the lambda adapter can reuse it.
func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the investing menu"})
	})
	router.POST("/strategies", m.screenStrategies)
	router.POST("/allocationMatrix", m.allocationMatrix)
	router.GET("/sortOrders", m.sortOrders)
	router.POST("/questions", m.submitQuestion)
	router.GET("/questions", m.listQuestions)
	router.POST("/questions/status", m.updateQuestionStatus)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	m.Logger.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"elapsedMs", time.Since(start).Milliseconds(),
	)
}

// returnErrorJson maps domain errors onto status codes: validation -> 400,
// not found -> 404, everything else -> 500.
func (m ApiHandler) returnErrorJson(err error, c *gin.Context) {
	code := 500
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	if errors.As(err, &validationErr) {
		code = 400
	} else if errors.As(err, &notFoundErr) {
		code = 404
	}
	m.returnErrorJsonCode(err, c, code)
}

func (m ApiHandler) returnErrorJsonCode(err error, c *gin.Context, code int) {
	m.Logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
