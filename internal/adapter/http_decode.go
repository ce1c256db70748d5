package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-site-client/models"
)

func decodeJSON(body []byte, dst any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, dst)
}

// decodeData accepts both a bare value and a {"data": value} envelope.
func decodeData[T any](body []byte) (T, error) {
	var out T

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := decodeJSON(body, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		err = json.Unmarshal(envelope.Data, &out)
		return out, err
	}

	err := decodeJSON(body, &out)
	return out, err
}

func execute(ctx context.Context, req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	return resp, nil
}

func setListQuery(req *resty.Request, q models.ListQuery) *resty.Request {
	if q.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		req.SetQueryParam("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Search != "" {
		req.SetQueryParam("q", q.Search)
	}
	if q.Category != "" {
		req.SetQueryParam("category", q.Category)
	}
	return req
}

func idParam(id int64) string {
	return strconv.FormatInt(id, 10)
}
