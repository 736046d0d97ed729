package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
)

type (
	// Record is a stored JSON object.
	Record = map[string]interface{}

	// Request is what the backend saw of one incoming request.
	Request struct {
		Method    string
		Path      string
		Query     url.Values
		RequestID string
		Body      Record
	}

	collection struct {
		listKey  string
		idFields []string
		items    []Record
	}

	// Backend is an in-memory REST backend speaking the same contract as the real one.
	Backend struct {
		t   *testing.T
		app *echo.Echo
		srv *httptest.Server

		mu          sync.Mutex
		collections map[string]*collection
		objects     map[string]Record
		failures    map[string]int
		requests    []Request
	}
)

// NewBackend starts an empty backend, stopped when the test ends.
func NewBackend(t *testing.T) *Backend {
	b := &Backend{
		t:           t,
		app:         echo.New(),
		collections: make(map[string]*collection),
		objects:     make(map[string]Record),
		failures:    make(map[string]int),
	}
	b.app.HideBanner = true
	b.app.Logger.SetLevel(log.OFF)
	b.app.Use(b.record)

	b.srv = httptest.NewServer(b.app)
	t.Cleanup(b.srv.Close)
	return b
}

// URL is the base URL of the backend.
func (b *Backend) URL() string { return b.srv.URL }

// Config returns a configuration pointing at the backend.
func (b *Backend) Config() *core.Config {
	conf := &core.Config{Env: "TEST", TestMode: true, AppName: "SchoolHub"}
	conf.Backend.BaseURL = b.srv.URL
	conf.Currency.Symbol = "৳"
	conf.Currency.Locale = "en"
	return conf
}

// AddCollection serves res as a CRUD collection keyed by idFields (in path order).
// Items are stored as given.
func (b *Backend) AddCollection(res resource.Resource, idFields []string, items ...interface{}) {
	col := &collection{listKey: res.ListKey, idFields: idFields}
	for _, item := range items {
		col.items = append(col.items, b.toRecord(item))
	}

	b.mu.Lock()
	b.collections[res.Path] = col
	b.mu.Unlock()

	base := "/" + res.Path
	keyPath := base
	for i := range idFields {
		keyPath += fmt.Sprintf("/:k%d", i)
	}
	b.app.GET(base, b.list(res.Path))
	b.app.POST(base, b.create(res.Path))
	b.app.PUT(keyPath, b.update(res.Path))
	b.app.DELETE(keyPath, b.remove(res.Path))
}

// AddObject serves obj as a single read-only object.
func (b *Backend) AddObject(res resource.Resource, obj interface{}) {
	b.mu.Lock()
	b.objects[res.Path] = b.toRecord(obj)
	b.mu.Unlock()

	b.app.GET("/"+res.Path, func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		return c.JSON(http.StatusOK, b.objects[res.Path])
	})
}

// Serve registers a raw GET handler returning body as is.
func (b *Backend) Serve(path, body string) {
	b.app.GET("/"+path, func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(body))
	})
}

// Fail makes every request with method on path answer status until Recover is called.
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = status
}

func (b *Backend) Recover() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = make(map[string]int)
}

// Items returns the stored records of the collection at path.
func (b *Backend) Items(path string) []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	col, ok := b.collections[path]
	if !ok {
		return nil
	}
	return append([]Record(nil), col.items...)
}

// Requests returns the requests received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// CountRequests counts the requests with the given method (any when empty).
func (b *Backend) CountRequests(method string) int {
	n := 0
	for _, req := range b.Requests() {
		if method == "" || req.Method == method {
			n++
		}
	}
	return n
}

func (b *Backend) ResetRequests() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

// record logs the request and applies injected failures.
func (b *Backend) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		req := Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.Query(),
			RequestID: r.Header.Get(resource.RequestIDHeader),
		}
		if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut) {
			var body Record
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			req.Body = body
			c.Set("body", body)
		}

		b.mu.Lock()
		b.requests = append(b.requests, req)
		status := b.failure(r.Method, r.URL.Path)
		b.mu.Unlock()

		if status != 0 {
			return c.JSON(status, echo.Map{"error": http.StatusText(status)})
		}
		return next(c)
	}
}

// failure must be called with mu held.
func (b *Backend) failure(method, path string) int {
	path = strings.TrimPrefix(path, "/")
	for p := range b.collections {
		if path == p || strings.HasPrefix(path, p+"/") {
			return b.failures[method+" "+p]
		}
	}
	return b.failures[method+" "+path]
}

func (b *Backend) list(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		col := b.collections[path]

		items := make([]Record, 0, len(col.items))
		for _, item := range col.items {
			if matchQuery(item, c.QueryParams()) {
				items = append(items, item)
			}
		}
		if col.listKey == "" {
			return c.JSON(http.StatusOK, items)
		}
		return c.JSON(http.StatusOK, echo.Map{col.listKey: items})
	}
}

func (b *Backend) create(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, _ := c.Get("body").(Record)
		if body == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing body"})
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		col := b.collections[path]
		if len(col.idFields) == 1 {
			if id, _ := body[col.idFields[0]].(string); id == "" {
				body[col.idFields[0]] = uuid.New().String()
			}
		}
		if _, ok := col.find(col.key(body)); ok {
			return c.JSON(http.StatusConflict, echo.Map{"error": "already exists"})
		}
		col.items = append(col.items, body)
		return c.JSON(http.StatusCreated, body)
	}
}

func (b *Backend) update(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, _ := c.Get("body").(Record)

		b.mu.Lock()
		defer b.mu.Unlock()
		col := b.collections[path]
		i, ok := col.find(pathKey(c, len(col.idFields)))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		item := make(Record, len(col.items[i]))
		for k, v := range col.items[i] {
			item[k] = v
		}
		for k, v := range body {
			item[k] = v
		}
		col.items[i] = item
		return c.JSON(http.StatusOK, item)
	}
}

func (b *Backend) remove(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		col := b.collections[path]
		i, ok := col.find(pathKey(c, len(col.idFields)))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		col.items = append(col.items[:i], col.items[i+1:]...)
		return c.NoContent(http.StatusNoContent)
	}
}

func (b *Backend) toRecord(item interface{}) Record {
	data, err := json.Marshal(item)
	if err != nil {
		b.t.Fatalf("toRecord(): %v", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		b.t.Fatalf("toRecord(): %v", err)
	}
	return rec
}

func (col *collection) key(rec Record) []string {
	key := make([]string, len(col.idFields))
	for i, f := range col.idFields {
		key[i] = fmt.Sprint(rec[f])
	}
	return key
}

func (col *collection) find(key []string) (int, bool) {
	for i, item := range col.items {
		if strings.Join(col.key(item), "/") == strings.Join(key, "/") {
			return i, true
		}
	}
	return 0, false
}

func pathKey(c echo.Context, n int) []string {
	key := make([]string, n)
	for i := range key {
		v := c.Param(fmt.Sprintf("k%d", i))
		if unescaped, err := url.PathUnescape(v); err == nil {
			v = unescaped
		}
		key[i] = v
	}
	return key
}

// matchQuery keeps items whose string fields equal every non-empty query value.
func matchQuery(item Record, query url.Values) bool {
	for name := range query {
		want := query.Get(name)
		if want == "" {
			continue
		}
		if got, ok := item[name].(string); ok && got != want {
			return false
		}
	}
	return true
}
