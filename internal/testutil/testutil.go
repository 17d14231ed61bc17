package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bloglist/internal/entity"
)

// TestBlog is a single blog for handler tests.
var TestBlog = entity.Blog{
	ID:        "5a422a851b54a676234d17f7",
	Title:     "React patterns",
	Author:    "Michael Chan",
	URL:       "https://reactpatterns.com/",
	Likes:     7,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// ReferenceBlogs returns a fresh copy of the six-blog reference list.
// Likes sum to 36 and "Canonical string reduction" has the most.
func ReferenceBlogs() []entity.Blog {
	return []entity.Blog{
		{
			ID:     "5a422a851b54a676234d17f7",
			Title:  "React patterns",
			Author: "Michael Chan",
			URL:    "https://reactpatterns.com/",
			Likes:  7,
		},
		{
			ID:     "5a422aa71b54a676234d17f8",
			Title:  "Go To Statement Considered Harmful",
			Author: "Edsger W. Dijkstra",
			URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
			Likes:  5,
		},
		{
			ID:     "5a422b3a1b54a676234d17f9",
			Title:  "Canonical string reduction",
			Author: "Edsger W. Dijkstra",
			URL:    "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html",
			Likes:  12,
		},
		{
			ID:     "5a422b891b54a676234d17fa",
			Title:  "First class tests",
			Author: "Robert C. Martin",
			URL:    "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll",
			Likes:  10,
		},
		{
			ID:     "5a422ba71b54a676234d17fb",
			Title:  "TDD harms architecture",
			Author: "Robert C. Martin",
			URL:    "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html",
			Likes:  0,
		},
		{
			ID:     "5a422bc61b54a676234d17fc",
			Title:  "Type wars",
			Author: "Robert C. Martin",
			URL:    "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html",
			Likes:  2,
		},
	}
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// DataList returns the "data" field of an envelope body as a list of objects.
func DataList(body map[string]interface{}) []map[string]interface{} {
	raw, _ := body["data"].([]interface{})
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// DataObject returns the "data" field of an envelope body as an object.
func DataObject(body map[string]interface{}) map[string]interface{} {
	m, _ := body["data"].(map[string]interface{})
	return m
}
