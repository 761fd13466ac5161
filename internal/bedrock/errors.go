package bedrock

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"

	"github.com/johngiles12345/BedrockMicroservice/internal/api"
)

// translateError is the single mapping step from the AWS SDK error taxonomy
// into the service's closed category set. The SDK signals service faults as
// typed modeled exceptions, but the exact type can vary across SDK versions
// and model providers, so the string error code from smithy.APIError is
// checked as a fallback. Anything unmapped lands in the unknown bucket.
func translateError(err error) *api.APIError {
	var accessDenied *types.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return api.NewError(api.ErrCodeInferenceAccessDenied, accessDenied.ErrorCode())
	}

	var throttled *types.ThrottlingException
	if errors.As(err, &throttled) {
		return api.NewError(api.ErrCodeInferenceThrottled, throttled.ErrorCode())
	}

	var validation *types.ValidationException
	if errors.As(err, &validation) {
		return api.NewError(api.ErrCodeInferenceRejected, validation.ErrorCode())
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException":
			return api.NewError(api.ErrCodeInferenceAccessDenied, apiErr.ErrorCode())
		case "ThrottlingException", "TooManyRequestsException":
			return api.NewError(api.ErrCodeInferenceThrottled, apiErr.ErrorCode())
		case "ValidationException":
			return api.NewError(api.ErrCodeInferenceRejected, apiErr.ErrorCode())
		default:
			return api.NewError(api.ErrCodeInferenceUnknown, apiErr.ErrorCode())
		}
	}

	// No modeled service response: the failure happened reaching the service
	// (connection, DNS, TLS, credentials resolution, or the invoke timeout).
	return api.NewError(api.ErrCodeInferenceTransport, err.Error())
}
