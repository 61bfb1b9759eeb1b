package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.twilio.com"

	requestTimeout = 10 * time.Second
)

var ErrBadCredentials = errors.New("messaging credentials rejected")

type ThrottleError struct {
	RetryAfter int
}

func (e *ThrottleError) Error() string {
	return fmt.Sprintf("Too many requests, retry after %d seconds", e.RetryAfter)
}

// Client delivers WhatsApp messages through the Twilio messaging API.
type Client struct {
	accountSID string
	from       string
	to         string
	http       *resty.Client
}

func NewClient(baseURL string, accountSID string, authToken string, from string, to string) *Client {
	return &Client{
		accountSID: accountSID,
		from:       from,
		to:         to,
		http: resty.New().
			SetBaseURL(baseURL).
			SetBasicAuth(accountSID, authToken).
			SetTimeout(requestTimeout),
	}
}

func (c *Client) SendWhatsApp(ctx context.Context, body string) error {

	response, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"From": c.from,
			"To":   c.to,
			"Body": body,
		}).
		Post(fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", c.accountSID))
	if err != nil {
		return err
	}

	switch response.StatusCode() {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("%w", ErrBadCredentials)
	case http.StatusTooManyRequests:
		retryAfter, err := strconv.Atoi(response.Header().Get("Retry-After"))
		if err != nil {
			retryAfter = 0
		}
		return fmt.Errorf("%w", &ThrottleError{RetryAfter: retryAfter})
	default:
		return fmt.Errorf("Unexpected status %d", response.StatusCode())
	}
}
