package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"db-console-api/internal/database"
	"db-console-api/internal/models"
	"db-console-api/internal/repositories"
	"db-console-api/internal/repositories/sqldb"
	"db-console-api/internal/services"
	"db-console-api/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// SessionOpener opens the per-invocation database session
type SessionOpener interface {
	BeginSession(ctx context.Context) (*database.Session, error)
}

// tableResolver picks the service for a request. A nil response means the
// service was resolved; otherwise the response is returned as is.
type tableResolver func(req *lambda.Request) (services.EntityService, *lambda.Response)

// Dispatcher routes one invocation to the service of its table by HTTP method
type Dispatcher struct {
	name         string
	db           SessionOpener
	resolve      tableResolver
	allowHeaders string
	logger       *logrus.Logger
}

// NewRecordsDispatcher creates the dispatcher of the records variant
func NewRecordsDispatcher(db SessionOpener, svcs *services.ServiceContainer, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		name: "records",
		db:   db,
		resolve: func(*lambda.Request) (services.EntityService, *lambda.Response) {
			return svcs.RecordService, nil
		},
		allowHeaders: "Content-Type, X-User-Id",
		logger:       defaultLogger(logger),
	}
}

// NewCatalogDispatcher creates the dispatcher of the catalog variant. The
// table comes from the X-Table-Name header; unknown names are rejected unless
// fallback is set, in which case they select materials.
func NewCatalogDispatcher(db SessionOpener, svcs *services.ServiceContainer, fallback bool, logger *logrus.Logger) *Dispatcher {
	logger = defaultLogger(logger)
	return &Dispatcher{
		name: "catalog",
		db:   db,
		resolve: func(req *lambda.Request) (services.EntityService, *lambda.Response) {
			name := req.Header("X-Table-Name")
			table, ok := models.ParseCatalogTable(name)
			if !ok {
				if !fallback {
					return nil, errorResponse(http.StatusBadRequest, "Unknown table: "+strings.TrimSpace(name))
				}
				logger.WithField("table_name", name).Warn("Unknown table requested, falling back to materials")
			}

			svc, err := svcs.ForTable(table)
			if err != nil {
				return nil, errorResponse(http.StatusBadRequest, "Unknown table: "+strings.TrimSpace(name))
			}
			return svc, nil
		},
		allowHeaders: "Content-Type, X-Table-Name",
		logger:       logger,
	}
}

func defaultLogger(logger *logrus.Logger) *logrus.Logger {
	if logger == nil {
		return logrus.New()
	}
	return logger
}

// Handle processes one invocation. Client errors become 4xx responses;
// unexpected failures are returned as errors after the session is released.
func (d *Dispatcher) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	start := time.Now()
	method := req.Method()
	if method == "" {
		method = http.MethodGet
	}

	resp, table, err := d.dispatch(ctx, method, req)

	fields := logrus.Fields{
		"dispatcher": d.name,
		"method":     method,
		"table":      table,
		"duration":   time.Since(start),
	}
	if err != nil {
		entry := d.logger.WithFields(fields).WithError(err)
		if repositories.IsConnection(err) {
			entry.Error("Database unavailable")
		} else {
			entry.Error("Request failed")
		}
		return nil, err
	}

	fields["status_code"] = resp.StatusCode
	d.logger.WithFields(fields).Info("Request handled")
	return resp, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, method string, req *lambda.Request) (*lambda.Response, string, error) {
	if method == http.MethodOptions {
		return preflightResponse(d.allowHeaders), "", nil
	}

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return errorResponse(http.StatusMethodNotAllowed, MethodNotAllowedMessage), "", nil
	}

	svc, resp := d.resolve(req)
	if resp != nil {
		return resp, "", nil
	}
	table := svc.Table()
	entity := table.Entity()

	rawID := req.PathParam("id")
	id, hasID, err := parseID(entity, rawID)
	if err != nil {
		return clientError(err, kindValidation), table.String(), nil
	}
	if !hasID && (method == http.MethodPut || method == http.MethodDelete) {
		return errorResponse(http.StatusBadRequest, entity+" ID is required"), table.String(), nil
	}

	session, err := d.db.BeginSession(ctx)
	if err != nil {
		return nil, table.String(), fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	repos := sqldb.ForSession(session, d.logger)

	var (
		result interface{}
		status = http.StatusOK
	)
	switch method {
	case http.MethodGet:
		if hasID {
			result, err = svc.Get(ctx, repos, id)
		} else {
			result, err = svc.List(ctx, repos, repositories.NewListFilter(req.QueryParams))
		}
	case http.MethodPost:
		result, err = svc.Create(ctx, repos, req.Body)
		status = http.StatusCreated
	case http.MethodPut:
		result, err = svc.Update(ctx, repos, id, req.Body)
	case http.MethodDelete:
		err = svc.Delete(ctx, repos, id)
		result = DeleteResponse{Success: true, ID: rawID}
	}

	if err != nil {
		switch kind := classify(err); kind {
		case kindNotFound:
			if rbErr := session.Rollback(); rbErr != nil {
				return nil, table.String(), rbErr
			}
			return clientError(err, kind), table.String(), nil
		case kindValidation:
			return clientError(err, kind), table.String(), nil
		default:
			return nil, table.String(), err
		}
	}

	resp, err = jsonResponse(status, result)
	if err != nil {
		return nil, table.String(), fmt.Errorf("failed to encode response: %w", err)
	}

	if err := session.Commit(); err != nil {
		return nil, table.String(), err
	}

	return resp, table.String(), nil
}

// parseID reads the id path parameter. An absent id is not an error.
func parseID(entity, raw string) (int64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, repositories.InvalidIDError(entity, raw, entity+" ID must be a positive integer")
	}
	return id, true, nil
}
