package client

import (
	"context"
	"net/http"
	"net/url"

	"classbook/pkg/model"
)

const idempotencyHeader = "Idempotency-Key"

// ClassbookClient is a typed client for the booking API.
type ClassbookClient struct {
	httpClient *HttpClient
}

func NewClassbookClient(baseURL string) *ClassbookClient {
	return &ClassbookClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *ClassbookClient) ListClasses(ctx context.Context, timezone string) ([]model.ClassView, error) {
	path := "/classes"
	if timezone != "" {
		path += "?" + url.Values{"timezone": {timezone}}.Encode()
	}

	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		return nil, err
	}

	var views []model.ClassView
	if err := decodeOrError(resp, http.StatusOK, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// Book reserves a slot. A non-empty idempotencyKey makes retries safe.
func (c *ClassbookClient) Book(ctx context.Context, req model.BookingRequest, idempotencyKey string) (*model.Booking, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{idempotencyHeader: idempotencyKey}
	}

	resp, err := c.httpClient.POSTWithHeaders(ctx, "/book", req, headers)
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := decodeOrError(resp, http.StatusCreated, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *ClassbookClient) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	resp, err := c.httpClient.GET(ctx, "/bookings?"+url.Values{"email": {email}}.Encode())
	if err != nil {
		return nil, err
	}

	var bookings []model.Booking
	if err := decodeOrError(resp, http.StatusOK, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *ClassbookClient) WaitForHealthy(ctx context.Context) error {
	return c.httpClient.WaitForHealthy(ctx, c.httpClient.HTTPClient.Timeout)
}
