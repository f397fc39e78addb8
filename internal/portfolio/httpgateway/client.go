// Package httpgateway implements portfolio.Gateway against a running
// server's REST API.
package httpgateway

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/portfolio"
	"github.com/fastygo/portfolio/usecase"
)

const pageSize = 100

// Doer is the part of *fasthttp.Client the gateway needs.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type Option func(*Client)

// WithDoer swaps the underlying HTTP client.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    Doer
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 10 * time.Second,
		http: &fasthttp.Client{
			Name:         "portfolioctl",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portfolio.Gateway = (*Client)(nil)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

type pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Login exchanges credentials for a token and uses it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	var token domain.Token
	body := map[string]string{"email": email, "password": password}
	if _, err := c.do(ctx, fasthttp.MethodPost, "/api/auth/login", body, &token); err != nil {
		return nil, err
	}
	c.token = token.AccessToken
	return &token, nil
}

func (c *Client) Hero(ctx context.Context) (*domain.Hero, error) {
	var hero domain.Hero
	if _, err := c.do(ctx, fasthttp.MethodGet, "/api/hero", nil, &hero); err != nil {
		return nil, err
	}
	if hero.ID == "" {
		return nil, nil
	}
	return &hero, nil
}

func (c *Client) About(ctx context.Context) (*domain.About, error) {
	var about domain.About
	if _, err := c.do(ctx, fasthttp.MethodGet, "/api/about", nil, &about); err != nil {
		return nil, err
	}
	if about.ID == "" {
		return nil, nil
	}
	return &about, nil
}

func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var all []domain.Project
	for {
		var page struct {
			Projects   []domain.Project `json:"projects"`
			Pagination pagination       `json:"pagination"`
		}
		if _, err := c.do(ctx, fasthttp.MethodGet, pagedPath("/api/projects", len(all)), nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Projects...)
		if len(page.Projects) == 0 || len(all) >= page.Pagination.Total {
			return all, nil
		}
	}
}

func (c *Client) Blogs(ctx context.Context) ([]domain.Blog, error) {
	var all []domain.Blog
	for {
		var page struct {
			Blogs      []domain.Blog `json:"blogs"`
			Pagination pagination    `json:"pagination"`
		}
		if _, err := c.do(ctx, fasthttp.MethodGet, pagedPath("/api/blogs", len(all)), nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Blogs...)
		if len(page.Blogs) == 0 || len(all) >= page.Pagination.Total {
			return all, nil
		}
	}
}

func (c *Client) Certificates(ctx context.Context) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	_, err := c.do(ctx, fasthttp.MethodGet, "/api/certificates", nil, &certs)
	return certs, err
}

func (c *Client) Stats(ctx context.Context) ([]domain.Stat, error) {
	var stats []domain.Stat
	_, err := c.do(ctx, fasthttp.MethodGet, "/api/stats", nil, &stats)
	return stats, err
}

func (c *Client) SaveHero(ctx context.Context, hero *domain.Hero) (usecase.UpsertResult[domain.Hero], error) {
	return post(ctx, c, "/api/hero", hero)
}

func (c *Client) SaveAbout(ctx context.Context, about *domain.About) (usecase.UpsertResult[domain.About], error) {
	return post(ctx, c, "/api/about", about)
}

func (c *Client) SaveProject(ctx context.Context, project *domain.Project) (usecase.UpsertResult[domain.Project], error) {
	return post(ctx, c, "/api/projects", project)
}

func (c *Client) SaveCertificate(ctx context.Context, cert *domain.Certificate) (usecase.UpsertResult[domain.Certificate], error) {
	return post(ctx, c, "/api/certificates", cert)
}

func (c *Client) SaveBlog(ctx context.Context, blog *domain.Blog) (usecase.UpsertResult[domain.Blog], error) {
	return post(ctx, c, "/api/blogs", blog)
}

// SaveStats posts every stat as its own one-element batch so each result can
// be told apart. A multi-status answer or an error message alongside data
// counts as a failure of that element.
func (c *Client) SaveStats(ctx context.Context, stats []domain.Stat) []usecase.BatchResult[domain.Stat] {
	results := make([]usecase.BatchResult[domain.Stat], 0, len(stats))
	for i := range stats {
		result := usecase.BatchResult[domain.Stat]{Index: i}
		var saved []domain.Stat
		rep, err := c.send(ctx, fasthttp.MethodPost, "/api/stats", []domain.Stat{stats[i]}, &saved)
		switch {
		case err != nil:
			result.Err = err
		case rep.status == fasthttp.StatusMultiStatus || rep.message != "" || len(saved) == 0:
			result.Err = partialError(rep)
		default:
			result.Record = &saved[0]
			result.Created = saved[0].ID != stats[i].ID
		}
		results = append(results, result)
	}
	return results
}

// GetDocument and PutDocument use the server's aggregate endpoints directly.
func (c *Client) GetDocument(ctx context.Context) (domain.Portfolio, error) {
	var doc domain.Portfolio
	_, err := c.do(ctx, fasthttp.MethodGet, "/api/portfolio", nil, &doc)
	return doc, err
}

func (c *Client) PutDocument(ctx context.Context, doc domain.Portfolio) (portfolio.Report, error) {
	var report portfolio.Report
	_, err := c.do(ctx, fasthttp.MethodPut, "/api/portfolio", doc, &report)
	return report, err
}

func post[T any](ctx context.Context, c *Client, path string, record *T) (usecase.UpsertResult[T], error) {
	var stored T
	status, err := c.do(ctx, fasthttp.MethodPost, path, record, &stored)
	if err != nil {
		return usecase.UpsertResult[T]{}, err
	}
	return usecase.UpsertResult[T]{Record: &stored, Created: status == fasthttp.StatusCreated}, nil
}

func pagedPath(path string, offset int) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("offset", strconv.Itoa(offset))
	return path + "?" + q.Encode()
}

// reply is what send keeps of an answer besides its data.
type reply struct {
	status  int
	message string
}

// do sends one request and decodes the envelope's data into out. Non-2xx
// answers become domain errors carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	rep, err := c.send(ctx, method, path, body, out)
	return rep.status, err
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) (reply, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.token)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return reply{}, errors.Wrap(err, "encode request")
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return reply{}, domain.WrapError(domain.ErrCodeInternal, "request cancelled", err)
	}
	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return reply{}, domain.WrapError(domain.ErrCodeInternal, method+" "+path+" failed", err)
	}

	status := resp.StatusCode()
	rep := reply{status: status}
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return rep, domain.WrapError(domain.ErrCodeInternal, "unexpected response from "+path, errors.Wrapf(err, "status %d", status))
	}
	// A multi-status answer still carries the report in data.
	if status >= 300 || (!env.Success && status != fasthttp.StatusMultiStatus) {
		return rep, statusError(status, env.Error)
	}
	rep.message = env.Error
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return rep, domain.WrapError(domain.ErrCodeInternal, "decode "+path, err)
		}
	}
	return rep, nil
}

// partialError describes an answer that succeeded without storing what was sent.
func partialError(rep reply) error {
	message := rep.message
	if message == "" {
		message = "stat was not stored"
	}
	return domain.NewError(domain.ErrCodeInvalid, message)
}

func statusError(status int, message string) error {
	if message == "" {
		message = fasthttp.StatusMessage(status)
	}
	switch status {
	case fasthttp.StatusUnprocessableEntity, fasthttp.StatusBadRequest:
		return domain.NewError(domain.ErrCodeInvalid, message)
	case fasthttp.StatusUnauthorized:
		return domain.NewError(domain.ErrCodeUnauthorized, message)
	case fasthttp.StatusNotFound:
		return domain.NewError(domain.ErrCodeNotFound, message)
	case fasthttp.StatusConflict:
		return domain.NewError(domain.ErrCodeConflict, message)
	case fasthttp.StatusTooManyRequests:
		return domain.NewError(domain.ErrCodeRateLimited, message)
	default:
		return domain.NewError(domain.ErrCodeInternal, message)
	}
}
