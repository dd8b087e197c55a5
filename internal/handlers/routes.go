package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"db-console-api/internal/models"
	"db-console-api/pkg/lambda"
)

// HealthChecker reports database reachability
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Records *Dispatcher
	Catalog *Dispatcher
	Health  HealthChecker
	Version string
}

// SetupRoutes mounts both dispatchers on the development router
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	router.GET("/health", healthHandler(config))

	records := router.Group("/records")
	{
		records.Any("", DispatchGin(config.Records))
		records.Any("/:id", DispatchGin(config.Records))
	}

	catalog := router.Group("/catalog")
	{
		catalog.Any("", DispatchGin(config.Catalog))
		catalog.Any("/:id", DispatchGin(config.Catalog))
	}
}

// DispatchGin adapts a gin request into a lambda.Request and writes the
// dispatcher's response. Unhandled errors are attached to the gin context.
func DispatchGin(d *Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := RequestFromHTTP(c.Request, c.Param("id"))
		if err != nil {
			writeResponse(c, errorResponse(http.StatusBadRequest, InvalidBodyMessage))
			return
		}

		resp, err := d.Handle(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			resp = InternalErrorResponse()
		}
		writeResponse(c, resp)
	}
}

// InvalidBodyMessage is returned when the HTTP body cannot be read
const InvalidBodyMessage = "Invalid request body"

// RequestFromHTTP converts a plain HTTP request into the invocation event shape
func RequestFromHTTP(r *http.Request, id string) (*lambda.Request, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(r.Header))
	for name, values := range r.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	query := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	pathParams := make(map[string]string)
	if id != "" {
		pathParams["id"] = id
	}

	return &lambda.Request{
		HTTPMethod:  r.Method,
		Path:        r.URL.Path,
		Headers:     headers,
		QueryParams: query,
		PathParams:  pathParams,
		Body:        string(body),
	}, nil
}

func writeResponse(c *gin.Context, resp *lambda.Response) {
	for name, value := range resp.Headers {
		c.Header(name, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
}

func healthHandler(config *RouterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := models.HealthCheck{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   config.Version,
			Services:  map[string]string{"database": "healthy"},
		}

		status := http.StatusOK
		if config.Health != nil {
			if err := config.Health.HealthCheck(c.Request.Context()); err != nil {
				health.Status = "unhealthy"
				health.Services["database"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}

		c.JSON(status, health)
	}
}
