package middleware

import (
	"strings"
	"time"

	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/errs"
	"book-courier/internal/pkg/logctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ctxRequestIDKey = "request_id"
	headerRequestID = "X-Request-ID"

	stackLines = 12
)

// NewLogger builds the root logger: JSON in release mode, console otherwise,
// unless LOG_FORMAT says which.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "console"
		if gin.Mode() == gin.ReleaseMode {
			format = "json"
		}
	}

	var zc zap.Config
	if format == "json" {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "time"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// RequestLogger tags every request with a request id and the incoming trace id,
// and stores the tagged logger on the request context.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(headerRequestID, requestID)

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}

		reqLogger := logger.With(fields...)
		c.Request = c.Request.WithContext(logctx.With(ctx, reqLogger))

		c.Next()

		statusCode := c.Writer.Status()
		resFields := []zap.Field{
			zap.Int("status_code", statusCode),
			zap.Duration("duration", time.Since(startTime)),
		}
		if email, ok := GetUserEmail(c); ok {
			resFields = append(resFields, zap.String("user_email", email))
		}
		if size := c.Writer.Size(); size > 0 {
			resFields = append(resFields, zap.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			resFields = append(resFields, zap.String("errors", c.Errors.String()))
			if statusCode >= 500 {
				resFields = append(resFields, zap.Strings("stack", errs.ExtractStackLines(c.Errors.Last().Err, stackLines)))
			}
		}

		switch {
		case statusCode >= 500:
			reqLogger.Error("Request completed", resFields...)
		case statusCode >= 400:
			reqLogger.Warn("Request completed", resFields...)
		default:
			reqLogger.Info("Request completed", resFields...)
		}
	}
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(ctxRequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
