package listclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SystemBuilders/ChainList/internal/dlist"
	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/oklog/ulid"
)

const requestTimeout = 10 * time.Second

var _ Config = (*listservice.SimpleConfig)(nil)

var _ Client = (*SimpleClient)(nil)

// SimpleClient implements Client.
type SimpleClient struct {
	config Config
	client *http.Client
}

// NewSimpleClient returns a new SimpleClient for the server described
// by the given config.
func NewSimpleClient(config Config) *SimpleClient {
	return &SimpleClient{
		config: config,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Create makes a HTTP call to the list server and creates a list.
func (sc *SimpleClient) Create() (ulid.ULID, error) {
	var res listservice.CreateResponse
	if err := sc.do(http.MethodPost, "/lists", nil, &res); err != nil {
		return ulid.ULID{}, err
	}
	return listservice.ParseID(res.ListID)
}

// Delete makes a HTTP call to the list server and deletes a list.
func (sc *SimpleClient) Delete(id ulid.ULID) error {
	return sc.do(http.MethodDelete, listPath(id), nil, nil)
}

// PushHead makes a HTTP call to push a value at the head of a list.
func (sc *SimpleClient) PushHead(id ulid.ULID, value string) error {
	return sc.do(http.MethodPost, listPath(id)+"/head", &listservice.PushRequest{Value: value}, nil)
}

// PushTail makes a HTTP call to push a value at the tail of a list.
func (sc *SimpleClient) PushTail(id ulid.ULID, value string) error {
	return sc.do(http.MethodPost, listPath(id)+"/tail", &listservice.PushRequest{Value: value}, nil)
}

// PopHead makes a HTTP call to pop the head of a list.
func (sc *SimpleClient) PopHead(id ulid.ULID) (string, bool, error) {
	var res listservice.PopResponse
	err := sc.do(http.MethodDelete, listPath(id)+"/head", nil, &res)
	return res.Value, res.Present, err
}

// PopTail makes a HTTP call to pop the tail of a list.
func (sc *SimpleClient) PopTail(id ulid.ULID) (string, bool, error) {
	var res listservice.PopResponse
	err := sc.do(http.MethodDelete, listPath(id)+"/tail", nil, &res)
	return res.Value, res.Present, err
}

// PushAt makes a HTTP call to push a value at an index of a list.
func (sc *SimpleClient) PushAt(id ulid.ULID, index int, value string) error {
	return sc.do(http.MethodPost, elementPath(id, index), &listservice.PushRequest{Value: value}, nil)
}

// PopAt makes a HTTP call to pop the value at an index of a list.
func (sc *SimpleClient) PopAt(id ulid.ULID, index int) (string, error) {
	var res listservice.ValueResponse
	err := sc.do(http.MethodDelete, elementPath(id, index), nil, &res)
	return res.Value, err
}

// ElementAt makes a HTTP call to read the value at an index of a list.
func (sc *SimpleClient) ElementAt(id ulid.ULID, index int) (string, error) {
	var res listservice.ValueResponse
	err := sc.do(http.MethodGet, elementPath(id, index), nil, &res)
	return res.Value, err
}

// Size makes a HTTP call to read the size of a list.
func (sc *SimpleClient) Size(id ulid.ULID) (int, error) {
	var res listservice.SizeResponse
	err := sc.do(http.MethodGet, listPath(id)+"/size", nil, &res)
	return res.Size, err
}

// Clear makes a HTTP call to empty a list.
func (sc *SimpleClient) Clear(id ulid.ULID) error {
	return sc.do(http.MethodPost, listPath(id)+"/clear", nil, nil)
}

// Values makes a HTTP call to read every value of a list.
func (sc *SimpleClient) Values(id ulid.ULID) ([]string, error) {
	var res listservice.ValuesResponse
	err := sc.do(http.MethodGet, listPath(id), nil, &res)
	return res.Values, err
}

func listPath(id ulid.ULID) string {
	return "/lists/" + id.String()
}

func elementPath(id ulid.ULID, index int) string {
	return listPath(id) + "/elements/" + strconv.Itoa(index)
}

// do sends the request, decodes a successful response into out when it
// is non-nil, and turns a failed one back into a sentinel error.
func (sc *SimpleClient) do(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	endPoint := sc.config.IP() + ":" + sc.config.Port() + path
	req, err := http.NewRequest(method, endPoint, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := sc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := ioutil.ReadAll(resp.Body)
		return statusError(resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(status int, msg string) error {
	switch status {
	case http.StatusNotFound:
		return listservice.ErrListDoesntExist
	case http.StatusRequestedRangeNotSatisfiable:
		return fmt.Errorf("%w: %s", dlist.ErrIndexOutOfRange, strings.TrimPrefix(msg, dlist.ErrIndexOutOfRange.Error()+": "))
	case http.StatusBadRequest:
		if msg == listservice.ErrInvalidListID.Error() {
			return listservice.ErrInvalidListID
		}
	}
	return fmt.Errorf("list server responded %d: %s", status, msg)
}
