package e2etest

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a cookie-aware HTTP client for the configurator at url.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, errors.Wrap(err, "create unsafe cookie jar")
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetDoc fetches a URL and returns a goquery document.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (*goquery.Document, error) {
	var (
		err  error
		resp *http.Response
		doc  *goquery.Document
	)
	if resp, err = c.Get(ctx, urlPath); err != nil {
		return nil, errors.Wrap(err, "client get")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return nil, errors.New("unexpected status code", slog.Int("status", resp.StatusCode))
	}
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, errors.Wrap(err, "create document from reader")
	}
	return doc, nil
}

// PostForm posts url encoded form values. Redirects are followed.
func (c *Client) PostForm(ctx context.Context, urlPath string, values neturl.Values) (*http.Response, error) {
	return c.postForm(ctx, urlPath, values, nil)
}

// PostHTMX posts form values the way htmx does so that the server answers with a partial.
func (c *Client) PostHTMX(ctx context.Context, urlPath string, values neturl.Values) (*http.Response, error) {
	return c.postForm(ctx, urlPath, values, http.Header{"Hx-Request": []string{"true"}})
}

func (c *Client) postForm(
	ctx context.Context,
	urlPath string,
	values neturl.Values,
	header http.Header,
) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodPost, urlPath, strings.NewReader(values.Encode())); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, vals := range header {
		for _, v := range vals {
			req.Header.Add(key, v)
		}
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request", slog.String("path", urlPath))
	}
	return resp, nil
}

// CSRFToken loads the page at formURLPath and returns the CSRF token of the form posting to formActionURLPath.
func (c *Client) CSRFToken(ctx context.Context, formURLPath string, formActionURLPath string) (string, error) {
	doc, err := c.GetDoc(ctx, formURLPath)
	if err != nil {
		return "", errors.Wrap(err, "get document")
	}
	return c.extractCSRFToken(doc, formActionURLPath)
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)
	if req, err = http.NewRequest(method, c.url+urlPath, body); err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	return req.WithContext(ctx), nil
}

func (c *Client) extractCSRFToken(doc *goquery.Document, formActionURLPath string) (string, error) {
	formSelector := fmt.Sprintf("form[action='%s']", formActionURLPath)
	form := doc.Find(formSelector).First()
	csrfToken, ok := form.Find("input[name=csrf_token]").Attr("value")
	if !ok {
		return "", errors.New("csrf_token not found in form", slog.String("form", formSelector))
	}
	return csrfToken, nil
}

// SubmitForm loads the page at formURLPath, submits values to the form with action formActionURLPath and returns
// the status code and document of the final response.
func (c *Client) SubmitForm(
	ctx context.Context,
	formURLPath string,
	formActionURLPath string,
	values neturl.Values,
) (*goquery.Document, int, error) {
	var (
		doc       *goquery.Document
		csrfToken string
		resp      *http.Response
		err       error
	)
	if doc, err = c.GetDoc(ctx, formURLPath); err != nil {
		return nil, 0, errors.Wrap(err, "get document")
	}
	if csrfToken, err = c.extractCSRFToken(doc, formActionURLPath); err != nil {
		return nil, 0, errors.Wrap(err, "extract CSRF token")
	}

	formData := neturl.Values{}
	for key, vals := range values {
		formData[key] = vals
	}
	formData.Set("csrf_token", csrfToken)

	if resp, err = c.PostForm(ctx, formActionURLPath, formData); err != nil {
		return nil, 0, errors.Wrap(err, "post form")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, 0, errors.Wrap(err, "create document from reader")
	}
	return doc, resp.StatusCode, nil
}
