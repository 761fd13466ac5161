// Command lambda runs the Bedrock prompt service as an AWS Lambda function
// behind API Gateway.
//
// Purpose:
//   Cold start initializes configuration, the logger, and the Bedrock client
//   once; each invocation converts the API Gateway proxy event into the
//   handler's generic event and maps the result back. All request logic
//   lives in internal/api/public, shared with cmd/server.
//
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/johngiles12345/BedrockMicroservice/internal/api/public"
	"github.com/johngiles12345/BedrockMicroservice/internal/bedrock"
	"github.com/johngiles12345/BedrockMicroservice/internal/config"
	"github.com/johngiles12345/BedrockMicroservice/internal/logging"
)

var handler *public.Handler

func init() {
	cfg := config.MustLoad()

	logger := logging.MustNew(logging.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		LogLevel:    cfg.LogLevel,
	})

	client, err := bedrock.New(context.Background(), cfg, logger.Logger)
	if err != nil {
		logger.Fatal("failed to initialize bedrock client", zap.Error(err))
	}

	handler = public.NewHandler(cfg, client, logger)
}

func handleRequest(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := make(map[string]string, len(event.Headers)+1)
	for name, value := range event.Headers {
		headers[name] = value
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok && headers["X-Request-Id"] == "" {
		headers["X-Request-Id"] = lc.AwsRequestID
	}

	result := handler.HandleEvent(ctx, public.Event{
		Method:  event.HTTPMethod,
		Body:    event.Body,
		Headers: headers,
	})

	// Failures are already translated into HTTP-shaped results; returning a
	// non-nil error here would produce an untyped platform error response.
	return events.APIGatewayProxyResponse{
		StatusCode: result.StatusCode,
		Headers:    result.Headers,
		Body:       result.Body,
	}, nil
}

func main() {
	lambda.Start(handleRequest)
}
