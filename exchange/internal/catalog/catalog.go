package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Astemirdum/book-exchange/exchange/internal/errs"
	"github.com/Astemirdum/book-exchange/exchange/internal/model"
	"github.com/Astemirdum/book-exchange/pkg/breaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	volumeFields = "id,volumeInfo(title,authors,publisher,publishedDate,description,pageCount,imageLinks/thumbnail)"
	searchFields = "items(" + volumeFields + ")"
)

type Config struct {
	BaseURL string        `envconfig:"CATALOG_BASE_URL" default:"https://www.googleapis.com/books/v1"`
	APIKey  string        `envconfig:"CATALOG_API_KEY"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
	Breaker breaker.Config
}

var (
	errNotFound  = errors.New("volume not found")
	errAbandoned = errors.New("request abandoned by caller")
)

// Client looks books up in the Google Books volumes API.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	apiKey  string
	cb      breaker.CircuitBreaker
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		log:     log.Named("catalog"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		cb: breaker.New(cfg.Breaker, breaker.WithSuccessful(func(err error) bool {
			return err == nil || errors.Is(err, errNotFound) || errors.Is(err, errAbandoned)
		})),
	}
}

type volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title         string   `json:"title"`
		Authors       []string `json:"authors"`
		Publisher     *string  `json:"publisher"`
		PublishedDate *string  `json:"publishedDate"`
		Description   *string  `json:"description"`
		PageCount     *int32   `json:"pageCount"`
		ImageLinks    *struct {
			Thumbnail *string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

func (v volume) toModel() model.CatalogBook {
	info := v.VolumeInfo
	book := model.CatalogBook{
		ExternalID:    v.ID,
		Title:         info.Title,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		Description:   info.Description,
		PageCount:     info.PageCount,
	}
	if info.Authors != nil {
		authors := strings.Join(info.Authors, ", ")
		book.Authors = &authors
	}
	if info.ImageLinks != nil {
		book.ImageURL = info.ImageLinks.Thumbnail
	}
	return book
}

func (c *Client) Search(ctx context.Context, query string) ([]model.CatalogBook, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errs.Validation("search query must not be empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", searchFields)

	var resp struct {
		Items []volume `json:"items"`
	}
	if err := c.get(ctx, "/volumes", params, &resp); err != nil {
		return nil, c.mapErr("Search", err)
	}

	books := make([]model.CatalogBook, 0, len(resp.Items))
	for _, item := range resp.Items {
		books = append(books, item.toModel())
	}
	return books, nil
}

func (c *Client) FindByID(ctx context.Context, externalID string) (model.CatalogBook, error) {
	params := url.Values{}
	params.Set("fields", volumeFields)

	var v volume
	if err := c.get(ctx, "/volumes/"+url.PathEscape(externalID), params, &v); err != nil {
		if errors.Is(err, errNotFound) {
			return model.CatalogBook{}, errs.NotFound("book with id %s not found", externalID)
		}
		return model.CatalogBook{}, c.mapErr("FindByID", err)
	}
	return v.toModel(), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	u := c.baseURL + path + "?" + params.Encode()

	return c.cb.Call(func() error {
		err := c.do(ctx, u, dst)
		if err != nil && ctx.Err() != nil && !errors.Is(err, errNotFound) {
			// a caller that went away says nothing about upstream health
			return fmt.Errorf("%w: %w", errAbandoned, err)
		}
		return err
	})
}

func (c *Client) do(ctx context.Context, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode >= http.StatusInternalServerError,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("catalog responded %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		// unknown volume ids are not always answered with a 404
		return errors.Wrapf(errNotFound, "status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (c *Client) mapErr(op string, err error) error {
	c.log.Error(op, zap.Error(err))
	if errors.Is(err, breaker.ErrOpen) {
		return errs.Internalf(err, "catalog is unavailable")
	}
	return errs.Internalf(err, "catalog request failed")
}
