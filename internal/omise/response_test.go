package omise

import (
	"encoding/json"
	"testing"

	"github.com/paykit/omise-gateway/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBody(t *testing.T, body string) map[string]any {
	t.Helper()
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	return parsed
}

func TestSuccessful(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "charge with null failure code",
			body: `{"object":"charge","id":"chrg_1","failure_code":null}`,
			want: true,
		},
		{
			name: "charge without failure code key",
			body: `{"object":"charge","id":"chrg_1"}`,
			want: true,
		},
		{
			name: "missing object key",
			body: `{"id":"chrg_1"}`,
			want: false,
		},
		{
			name: "explicit error object",
			body: `{"object":"error","code":"failed_fraud_check","message":"failed fraud check"}`,
			want: false,
		},
		{
			name: "authorized charge with failure code",
			body: `{"object":"charge","id":"chrg_1","authorized":true,"failure_code":"insufficient_fund"}`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, successful(parseBody(t, tt.body)))
		})
	}
}

func TestMessageFrom(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "success ignores any message field",
			body: `{"object":"charge","id":"chrg_1","message":"should not surface"}`,
			want: "Success",
		},
		{
			name: "error object message",
			body: `{"object":"error","code":"failed_fraud_check","message":"failed fraud check"}`,
			want: "failed fraud check",
		},
		{
			name: "failure message fallback",
			body: `{"object":"charge","failure_code":"insufficient_fund","failure_message":"insufficient funds"}`,
			want: "insufficient funds",
		},
		{
			name: "message preferred over failure message",
			body: `{"object":"error","message":"primary","failure_message":"secondary"}`,
			want: "primary",
		},
		{
			name: "no message at all",
			body: `{"object":"error"}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFrom(parseBody(t, tt.body)))
		})
	}
}

func TestAuthorizationFrom(t *testing.T) {
	success := parseBody(t, `{"object":"charge","id":"chrg_test_4zgf1d2wbstl173k99v","failure_code":null}`)
	assert.Equal(t, "chrg_test_4zgf1d2wbstl173k99v", authorizationFrom(success))

	failure := parseBody(t, `{"object":"error","id":"chrg_test_4zgf1d2wbstl173k99v"}`)
	assert.Empty(t, authorizationFrom(failure))
}

func TestErrorCodeFrom(t *testing.T) {
	errObj := parseBody(t, `{"object":"error","code":"invalid_security_code","failure_code":"should_be_ignored"}`)
	assert.Equal(t, "invalid_security_code", errorCodeFrom(errObj))

	charge := parseBody(t, `{"object":"charge","failure_code":"insufficient_fund"}`)
	assert.Equal(t, "insufficient_fund", errorCodeFrom(charge))
}

func TestStandardErrorCodes(t *testing.T) {
	assert.Equal(t, gateway.ErrCodeInvalidCVC, standardErrorCodes["invalid_security_code"])
	assert.Empty(t, standardErrorCodes["failed_fraud_check"])
}

func TestJSONError(t *testing.T) {
	resp := jsonError("<html>bad gateway</html>")

	assert.False(t, successful(resp))
	msg := messageFrom(resp)
	assert.Contains(t, msg, invalidResponseMessage)
	assert.Contains(t, msg, "<html>bad gateway</html>")
}
