package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

type HTTPRequestInput struct {
	URL     string            `json:"url" jsonschema_description:"Target URL."`
	Method  string            `json:"method,omitempty" jsonschema:"enum=GET,enum=POST,enum=PUT,enum=DELETE,default=GET" jsonschema_description:"HTTP method (default GET)."`
	Headers map[string]string `json:"headers,omitempty" jsonschema_description:"Request headers."`
	Body    string            `json:"body,omitempty" jsonschema_description:"Request body."`
}

var HTTPRequestDefinition = ToolDefinition{
	Name:        "http_request",
	Description: "Issue an HTTP request and return the response status, headers and body as text. Non-2xx statuses are reported, not treated as failures.",
	InputSchema: HTTPRequestInputSchema,
	Handler:     HTTPRequest,
}

var HTTPRequestInputSchema = GenerateSchema[HTTPRequestInput]()

// httpClient carries no timeout: a hung request blocks only its own call.
var httpClient = &http.Client{}

type httpResponse struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

// HTTPRequest performs the request and renders the response as pretty-printed
// JSON. Only transport-level failures (DNS, connection refused, TLS) return
// an error; the HTTP status code is part of the normal result.
func HTTPRequest(ctx context.Context, args Arguments) (string, error) {
	method := args.String("method")
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if b := args.String("body"); b != "" {
		body = strings.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, args.String("url"), body)
	if err != nil {
		return "", err
	}
	for k, v := range args.StringMap("headers") {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	headers := make(map[string]string, len(resp.Header))
	for k, vals := range resp.Header {
		headers[k] = strings.Join(vals, ", ")
	}

	out, err := json.MarshalIndent(httpResponse{
		Status:  resp.StatusCode,
		Headers: headers,
		Body:    string(data),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
