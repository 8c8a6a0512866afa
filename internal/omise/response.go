package omise

import (
	"fmt"

	"github.com/paykit/omise-gateway/internal/gateway"
)

// invalidResponseMessage is the fixed diagnostic used when the
// provider hands back something that is not JSON at all.
const invalidResponseMessage = "Invalid response received from Omise API. " +
	"Please contact support@omise.co if you continue to receive this message."

// standardErrorCodes maps provider error codes onto the shared
// taxonomy. Unmapped codes propagate as an empty ErrorCode with the
// provider message only.
var standardErrorCodes = map[string]gateway.ErrorCode{
	"invalid_security_code": gateway.ErrCodeInvalidCVC,
}

// successful reports whether a parsed provider body represents a
// succeeded call: it must carry an "object" discriminator, that object
// must not be "error", and "failure_code" must be null or absent. A
// well-formed charge with a non-null failure_code is a failure even
// though it is not an error object.
func successful(resp map[string]any) bool {
	obj, ok := resp["object"]
	return ok && obj != "error" && resp["failure_code"] == nil
}

func messageFrom(resp map[string]any) string {
	if successful(resp) {
		return "Success"
	}
	if msg, ok := resp["message"].(string); ok && msg != "" {
		return msg
	}
	msg, _ := resp["failure_message"].(string)
	return msg
}

func authorizationFrom(resp map[string]any) string {
	if !successful(resp) {
		return ""
	}
	id, _ := resp["id"].(string)
	return id
}

// errorCodeFrom reads "code" from explicit error objects and
// "failure_code" from everything else.
func errorCodeFrom(resp map[string]any) string {
	if resp["object"] == "error" {
		code, _ := resp["code"].(string)
		return code
	}
	code, _ := resp["failure_code"].(string)
	return code
}

// jsonError substitutes a synthetic error object for an unparseable
// body, so the classifier can treat it like any other failure.
func jsonError(raw string) map[string]any {
	return map[string]any{
		"message": fmt.Sprintf("%s (The raw response returned by the API was %q)", invalidResponseMessage, raw),
	}
}
