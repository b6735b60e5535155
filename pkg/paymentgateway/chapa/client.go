// Package chapa provides a paymentgateway.Client backed by the Chapa REST API.
package chapa

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
	"travel/pkg/metrics"
	"travel/pkg/paymentgateway"
	"travel/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DefaultBaseURL is the production Chapa API root.
const DefaultBaseURL = "https://api.chapa.co/v1"

// Client talks to the Chapa API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	timeout    time.Duration
}

// Options configures a Client.
type Options struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL   string
	SecretKey string
	// Timeout bounds a single request. Zero disables the per-request deadline.
	Timeout time.Duration
}

// New constructs a Client using the given http.Client.
func New(httpClient *http.Client, options Options) *Client {
	baseURL := strings.TrimRight(options.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		secretKey:  options.SecretKey,
		timeout:    options.Timeout,
	}
}

var _ paymentgateway.Client = (*Client)(nil)

func encodeInitialize(req paymentgateway.InitializeRequest) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	str := func(name, v string) {
		e.FieldStart(name)
		e.Str(v)
	}

	e.ObjStart()
	str("amount", req.Amount.StringFixed(2))
	str("currency", req.Currency)
	str("email", req.Email)
	str("first_name", req.FirstName)
	str("last_name", req.LastName)
	str("phone_number", req.PhoneNumber)
	str("tx_ref", req.TxRef)
	str("callback_url", req.CallbackURL)
	str("return_url", req.ReturnURL)
	if req.Description != "" {
		str("description", req.Description)
	}
	if req.WebhookURL != "" {
		str("webhook", req.WebhookURL)
	}
	if len(req.Meta) > 0 {
		keys := make([]string, 0, len(req.Meta))
		for k := range req.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		e.FieldStart("meta")
		e.ObjStart()
		for _, k := range keys {
			str(k, req.Meta[k])
		}
		e.ObjEnd()
	}
	e.ObjEnd()

	return append([]byte(nil), e.Bytes()...)
}

// Initialize opens a checkout session with POST /transaction/initialize.
func (c *Client) Initialize(ctx context.Context,
	req paymentgateway.InitializeRequest,
) (*paymentgateway.InitializeResponse, error) {
	b, err := c.do(ctx, "initialize", http.MethodPost, "/transaction/initialize", encodeInitialize(req))
	if err != nil {
		return nil, err
	}

	out := &paymentgateway.InitializeResponse{}
	if err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "status":
			return decodeString(d, &out.Status)
		case "message":
			return decodeString(d, &out.Message)
		case "data":
			if d.Next() != jx.Object {
				return d.Skip()
			}

			return d.Obj(func(d *jx.Decoder, key string) error {
				if key == "checkout_url" {
					return decodeString(d, &out.CheckoutURL)
				}

				return d.Skip()
			})
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, errors.Wrap(err, "decode initialize response")
	}

	return out, nil
}

// Verify fetches a transaction with GET /transaction/verify/{tx_ref}.
func (c *Client) Verify(ctx context.Context, txRef string) (*paymentgateway.Verification, error) {
	b, err := c.do(ctx, "verify", http.MethodGet, "/transaction/verify/"+url.PathEscape(txRef), nil)
	if err != nil {
		return nil, err
	}

	out := &paymentgateway.Verification{Raw: json.RawMessage(b)}
	if err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "status":
			return decodeString(d, &out.Status)
		case "message":
			return decodeString(d, &out.Message)
		case "data":
			if d.Next() != jx.Object {
				return d.Skip()
			}

			return decodeTransaction(d, out)
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, errors.Wrap(err, "decode verify response")
	}

	return out, nil
}

func decodeTransaction(d *jx.Decoder, out *paymentgateway.Verification) error {
	var reference string
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "status":
			return decodeString(d, &out.TransactionStatus)
		case "id":
			return decodeString(d, &out.TransactionID)
		case "reference":
			return decodeString(d, &reference)
		case "method":
			return decodeString(d, &out.Method)
		case "failure_reason":
			return decodeString(d, &out.FailureReason)
		case "created_at":
			var raw string
			if err := decodeString(d, &raw); err != nil {
				return err
			}
			if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
				out.CreatedAt = t
			}

			return nil
		default:
			return d.Skip()
		}
	})
	if out.TransactionID == "" {
		out.TransactionID = reference
	}

	return err
}

// decodeString reads a string, number or null value into dst.
func decodeString(d *jx.Decoder, dst *string) error {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return err
		}
		*dst = s
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return err
		}
		*dst = n.String()
	default:
		return d.Skip()
	}

	return nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(operation, "error").Observe(time.Since(start).Seconds())
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "payment gateway %s timed out", operation)
		}

		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	metrics.GatewayRequestDuration.
		WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).
		Observe(time.Since(start).Seconds())

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusNotFound && operation == "verify":
		return nil, serrors.With(serrors.ErrNotFound, "transaction not found: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("%s failed with status %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}
