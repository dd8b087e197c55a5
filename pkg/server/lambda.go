package server

import (
	"context"

	"db-console-api/internal/handlers"
	"db-console-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// DispatcherSelector picks the dispatcher a Lambda function serves
type DispatcherSelector func(c *Container) *handlers.Dispatcher

// RecordsDispatcher selects the records variant
func RecordsDispatcher(c *Container) *handlers.Dispatcher { return c.Records }

// CatalogDispatcher selects the catalog variant
func CatalogDispatcher(c *Container) *handlers.Dispatcher { return c.Catalog }

// LambdaHandler returns the Lambda handler of one dispatcher. The runtime
// decodes the event through lambda.Request, which reads both pathParams and
// the API Gateway pathParameters key, and encodes the lambda.Response back.
// Unhandled dispatcher errors are logged and answered with a 500.
func LambdaHandler(cm *ConnectionManager, selectDispatcher DispatcherSelector) func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
		container, err := cm.GetContainer(ctx)
		if err != nil {
			logrus.WithError(err).Error("Failed to initialize container")
			return handlers.InternalErrorResponse(), nil
		}

		if req == nil {
			req = &lambda.Request{}
		}

		fields := logrus.Fields{
			"method": req.HTTPMethod,
			"path":   req.Path,
		}
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			fields["request_id"] = lc.AwsRequestID
		}
		logger := container.Logger.WithFields(fields)

		resp, err := selectDispatcher(container).Handle(ctx, req)
		if err != nil {
			logger.WithError(err).Error("Unhandled error")
			return handlers.InternalErrorResponse(), nil
		}

		logger.WithField("status_code", resp.StatusCode).Debug("Invocation completed")
		return resp, nil
	}
}
