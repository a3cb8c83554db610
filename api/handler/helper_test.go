package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type GinTester struct {
	ginHandler gin.HandlerFunc
	gctx       *gin.Context
	ctx        context.Context
	response   *httptest.ResponseRecorder
	_executed  bool
}

func NewGinTester() *GinTester {
	gin.SetMode(gin.TestMode)
	response := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(response)
	ctx.Request = &http.Request{
		URL:    &url.URL{},
		Header: http.Header{},
	}

	return &GinTester{
		ginHandler: nil,
		gctx:       ctx,
		ctx:        ctx.Request.Context(),
		response:   response,
	}
}

func (g *GinTester) Handler(handler gin.HandlerFunc) {
	g.ginHandler = handler
}

// Execute runs the handler and flushes the status the way gin does after
// the handler chain.
func (g *GinTester) Execute() {
	g.ginHandler(g.gctx)
	g.gctx.Writer.WriteHeaderNow()
	g._executed = true
}

func (g *GinTester) WithMethod(method string) *GinTester {
	g.gctx.Request.Method = method
	return g
}

func (g *GinTester) WithBody(t *testing.T, body any) *GinTester {
	b, err := json.Marshal(body)
	require.Nil(t, err)
	g.gctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	return g
}

// WithRawBody sets a body that is not produced by json.Marshal, used for
// malformed payloads.
func (g *GinTester) WithRawBody(body string) *GinTester {
	g.gctx.Request.Body = io.NopCloser(strings.NewReader(body))
	return g
}

func (g *GinTester) SetPath(path string) *GinTester {
	g.gctx.Request.URL.Path = path
	return g
}

func (g *GinTester) WithHeader(key, value string) *GinTester {
	g.gctx.Request.Header.Add(key, value)
	return g
}

func (g *GinTester) ResponseEqSimple(t *testing.T, code int, expected any) {
	if !g._executed {
		require.FailNow(t, "call Execute method first")
	}
	b, err := json.Marshal(expected)
	require.NoError(t, err)
	require.Equal(t, code, g.response.Code, g.response.Body.String())
	require.JSONEq(t, string(b), g.response.Body.String())
}

// ResponseEmpty asserts the status code and an empty body.
func (g *GinTester) ResponseEmpty(t *testing.T, code int) {
	if !g._executed {
		require.FailNow(t, "call Execute method first")
	}
	require.Equal(t, code, g.response.Code, g.response.Body.String())
	require.Empty(t, g.response.Body.String())
}
