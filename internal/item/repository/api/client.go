package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"item-gallery/pkg/transport"
)

// Client is the HTTP wrapper for the items REST API.
type Client struct {
	apiURL    string
	transport transport.Transport
}

// NewClient creates a new items API client rooted at apiURL (e.g. http://localhost:8000/api/v1).
func NewClient(apiURL string, t transport.Transport) *Client {
	return &Client{
		apiURL:    strings.TrimRight(apiURL, "/"),
		transport: t,
	}
}

// ListItems lists items via GET /items/. Zero skip/limit are not sent.
func (c *Client) ListItems(ctx context.Context, skip, limit int) ([]ItemPayload, error) {
	u := fmt.Sprintf("%s/items/", c.apiURL)
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, u, "", nil)
	if err != nil {
		return nil, err
	}

	var items []ItemPayload
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items list response: %w", err)
	}
	return items, nil
}

// GetItem fetches a single item via GET /items/{id}.
func (c *Client) GetItem(ctx context.Context, id int) (*ItemPayload, error) {
	resp, err := c.do(ctx, http.MethodGet, c.itemURL(id), "", nil)
	if err != nil {
		return nil, err
	}
	return decodeItem(resp.Body, "get")
}

// CreateItem creates an item via multipart POST /items/.
func (c *Client) CreateItem(ctx context.Context, form ItemForm) (*ItemPayload, error) {
	contentType, body, err := encodeForm(form)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/items/", c.apiURL), contentType, body)
	if err != nil {
		return nil, err
	}
	return decodeItem(resp.Body, "create")
}

// UpdateItem replaces an item via multipart PUT /items/{id}.
// A form without a file leaves the stored image untouched.
func (c *Client) UpdateItem(ctx context.Context, id int, form ItemForm) (*ItemPayload, error) {
	contentType, body, err := encodeForm(form)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPut, c.itemURL(id), contentType, body)
	if err != nil {
		return nil, err
	}
	return decodeItem(resp.Body, "update")
}

// DeleteItem deletes an item via DELETE /items/{id}. The response body is ignored.
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, c.itemURL(id), "", nil)
	return err
}

func (c *Client) itemURL(id int) string {
	return fmt.Sprintf("%s/items/%d", c.apiURL, id)
}

func (c *Client) do(ctx context.Context, method, u, contentType string, body []byte) (transport.Response, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	resp, err := c.transport.Do(ctx, transport.Request{
		Method: method,
		URL:    u,
		Header: header,
		Body:   body,
	})
	if err != nil {
		return transport.Response{}, err
	}
	if !resp.OK() {
		return resp, &StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return resp, nil
}

func decodeItem(raw []byte, op string) (*ItemPayload, error) {
	var it ItemPayload
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, fmt.Errorf("failed to decode items %s response: %w", op, err)
	}
	return &it, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeForm writes name, description and, when present and non-empty, the file part.
func encodeForm(form ItemForm) (string, []byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("name", form.Name); err != nil {
		return "", nil, fmt.Errorf("failed to write name field: %w", err)
	}
	if err := w.WriteField("description", form.Description); err != nil {
		return "", nil, fmt.Errorf("failed to write description field: %w", err)
	}

	if form.File != nil && len(form.File.Data) > 0 {
		contentType := form.File.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(form.File.Filename)))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return "", nil, fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(form.File.Data); err != nil {
			return "", nil, fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to close multipart body: %w", err)
	}
	return w.FormDataContentType(), buf.Bytes(), nil
}
