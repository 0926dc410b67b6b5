// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExecutionStatusCode(t *testing.T) {
	e := &Execution{}
	assert.Equal(t, 0, e.StatusCode())
	e.Response = &http.Response{StatusCode: 503}
	assert.Equal(t, 503, e.StatusCode())
}

func TestExecutionHeader(t *testing.T) {
	e := &Execution{}
	assert.Nil(t, e.Header())
	assert.Equal(t, "", e.Header().Get("X-Anything"))
	h := http.Header{"X-Foo": []string{"bar"}}
	e.Response = &http.Response{Header: h}
	assert.Equal(t, "bar", e.Header().Get("X-Foo"))
}

func TestExecutionDuration(t *testing.T) {
	e := &Execution{}
	assert.False(t, e.Started())
	assert.False(t, e.Ended())
	assert.Equal(t, time.Duration(0), e.Duration())

	e.Start = time.Now().Add(-time.Second)
	assert.True(t, e.Started())
	assert.False(t, e.Ended())
	assert.GreaterOrEqual(t, e.Duration(), time.Second)

	e.End = e.Start.Add(1500 * time.Millisecond)
	assert.True(t, e.Ended())
	assert.Equal(t, 1500*time.Millisecond, e.Duration())
}

func TestExecutionValue(t *testing.T) {
	type keyA struct{}
	type keyB struct{}
	e := &Execution{}
	assert.Nil(t, e.Value(keyA{}))
	e.SetValue(keyA{}, "first")
	e.SetValue(keyB{}, 2)
	assert.Equal(t, "first", e.Value(keyA{}))
	assert.Equal(t, 2, e.Value(keyB{}))
	assert.Nil(t, e.Value("missing"))
	e.SetValue(keyA{}, "replaced")
	assert.Equal(t, "replaced", e.Value(keyA{}))
}
