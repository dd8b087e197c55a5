package lambda

import (
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Request is the invocation event handed to the dispatchers
type Request struct {
	HTTPMethod  string            `json:"httpMethod"`
	Path        string            `json:"path,omitempty"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"queryStringParameters"`
	PathParams  map[string]string `json:"pathParams"`
	Body        string            `json:"body"`
}

// UnmarshalJSON decodes an invocation event. Fields absent from the event
// are filled from their API Gateway proxy equivalents: pathParameters, and
// the multi-value headers and query string parameters.
func (r *Request) UnmarshalJSON(data []byte) error {
	type plain Request
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	// Proxy-only fields are best effort; the event already decoded above
	var event events.APIGatewayProxyRequest
	_ = json.Unmarshal(data, &event)

	*r = Request(p)
	if r.PathParams == nil {
		r.PathParams = event.PathParameters
	}
	if r.Headers == nil {
		r.Headers = firstValues(event.MultiValueHeaders)
	}
	if r.QueryParams == nil {
		r.QueryParams = firstValues(event.MultiValueQueryStringParameters)
	}
	return nil
}

func firstValues(multi map[string][]string) map[string]string {
	if multi == nil {
		return nil
	}
	single := make(map[string]string, len(multi))
	for k, v := range multi {
		if len(v) > 0 {
			single[k] = v[0]
		}
	}
	return single
}

// Method returns the upper-cased HTTP method
func (r *Request) Method() string {
	return strings.ToUpper(strings.TrimSpace(r.HTTPMethod))
}

// Header returns a header value, matching the name case-insensitively
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// PathParam returns a path parameter, or "" when absent
func (r *Request) PathParam(name string) string {
	return r.PathParams[name]
}

// QueryParam returns a query string parameter, or "" when absent
func (r *Request) QueryParam(name string) string {
	return r.QueryParams[name]
}

// Response is the structured HTTP response returned by the dispatchers.
// Its JSON form is the API Gateway proxy response.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}
