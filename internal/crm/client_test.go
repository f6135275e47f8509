package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCall struct {
	Service string
	Method  string
	Args    []any
	Kwargs  map[string]any
}

type fakeReply struct {
	result any
	errMsg string
}

// newFakeOdoo spins up a JSON-RPC endpoint dispatching decoded calls to fn.
func newFakeOdoo(t *testing.T, fn func(call fakeCall) fakeReply) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, rpcPath, r.URL.Path)

		var req struct {
			Params struct {
				Service string         `json:"service"`
				Method  string         `json:"method"`
				Args    []any          `json:"args"`
				Kwargs  map[string]any `json:"kwargs"`
			} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		reply := fn(fakeCall{
			Service: req.Params.Service,
			Method:  req.Params.Method,
			Args:    req.Params.Args,
			Kwargs:  req.Params.Kwargs,
		})

		resp := map[string]any{"jsonrpc": "2.0"}
		if reply.errMsg != "" {
			resp["error"] = map[string]any{
				"message": "Odoo Server Error",
				"data":    map[string]any{"message": reply.errMsg},
			}
		} else {
			resp["result"] = reply.result
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))

	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:  srv.URL,
		Database: "test_db",
		Username: "admin",
		Password: "secret",
	})
}

func TestAuthenticateSuccessful(t *testing.T) {
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		require.Equal(t, "common", call.Service)
		require.Equal(t, "authenticate", call.Method)
		require.Equal(t, "test_db", call.Args[0])
		return fakeReply{result: 7}
	})

	uid, err := testClient(srv).Authenticate(context.Background())
	assert.NoError(t, err, "no error must be raised")
	assert.Equal(t, 7, uid, "uid from the endpoint must be returned")
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		// bad logins answer with result=false, not an error payload
		return fakeReply{result: false}
	})

	_, err := testClient(srv).Authenticate(context.Background())
	require.Error(t, err, "false result must be rejected")
	assert.IsType(t, &AuthError{}, err, "it must be auth error")
}

func TestAuthenticateRemoteError(t *testing.T) {
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		return fakeReply{errMsg: "database does not exist"}
	})

	_, err := testClient(srv).Authenticate(context.Background())
	require.Error(t, err, "remote error must be surfaced")
	assert.IsType(t, &AuthError{}, err, "it must be auth error")
	assert.Contains(t, err.Error(), "database does not exist")
}

func TestCreateAuthenticatesLazily(t *testing.T) {
	var logins int
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		if call.Service == "common" {
			logins++
			return fakeReply{result: 2}
		}

		require.Equal(t, "object", call.Service)
		require.Equal(t, "execute", call.Method)
		// args lead with db, uid, password, model, method
		require.Equal(t, float64(2), call.Args[1])
		require.Equal(t, ModelLead, call.Args[3])
		require.Equal(t, "create", call.Args[4])
		return fakeReply{result: 501}
	})

	client := testClient(srv)
	ctx := context.Background()

	for range [2]struct{}{} {
		id, err := client.Create(ctx, ModelLead, map[string]any{"name": "Office fitout"})
		require.NoError(t, err, "no error must be raised")
		assert.Equal(t, 501, id)
	}

	assert.Equal(t, 1, logins, "session must be cached across calls")
}

func TestCallFailureInvalidatesSession(t *testing.T) {
	var logins, executes int
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		if call.Service == "common" {
			logins++
			return fakeReply{result: 2}
		}

		executes++
		if executes == 1 {
			return fakeReply{errMsg: "Session expired"}
		}
		return fakeReply{result: 502}
	})

	client := testClient(srv)
	ctx := context.Background()

	_, err := client.Create(ctx, ModelLead, map[string]any{"name": "first"})
	require.Error(t, err, "first call must fail")

	var callErr *CallError
	require.ErrorAs(t, err, &callErr, "it must be call error")
	assert.Equal(t, ModelLead, callErr.Model)
	assert.Equal(t, "create", callErr.Method)
	assert.Contains(t, callErr.Message, "Session expired")

	_, err = client.Create(ctx, ModelLead, map[string]any{"name": "second"})
	require.NoError(t, err, "second call must succeed")

	assert.Equal(t, 2, logins, "failed call must force re-authentication on the next one")
}

func TestSearchSendsOptions(t *testing.T) {
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		if call.Service == "common" {
			return fakeReply{result: 2}
		}

		require.Equal(t, "search", call.Args[4])
		assert.Equal(t, float64(25), call.Kwargs["limit"])
		assert.Equal(t, "id desc", call.Kwargs["order"])
		_, hasOffset := call.Kwargs["offset"]
		assert.False(t, hasOffset, "zero offset must be omitted")
		return fakeReply{result: []int{3, 2, 1}}
	})

	ids, err := testClient(srv).Search(context.Background(), ModelLead, nil, SearchOptions{Limit: 25, Order: "id desc"})
	require.NoError(t, err, "no error must be raised")
	assert.Equal(t, []int{3, 2, 1}, ids)
}

func TestWriteDecodesBool(t *testing.T) {
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		if call.Service == "common" {
			return fakeReply{result: 2}
		}
		return fakeReply{result: true}
	})

	ok, err := testClient(srv).Write(context.Background(), ModelLead, []int{9}, map[string]any{"stage_id": 4})
	require.NoError(t, err, "no error must be raised")
	assert.True(t, ok, "write must report success")
}

func TestUnlinkRemoteError(t *testing.T) {
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		if call.Service == "common" {
			return fakeReply{result: 2}
		}
		return fakeReply{errMsg: "Record does not exist or has been deleted"}
	})

	_, err := testClient(srv).Unlink(context.Background(), ModelLead, []int{999})
	require.Error(t, err, "error must be raised")

	var callErr *CallError
	require.ErrorAs(t, err, &callErr, "it must be call error")
	assert.Equal(t, "unlink", callErr.Method)
}

func TestCreateUnexpectedResultShape(t *testing.T) {
	srv := newFakeOdoo(t, func(call fakeCall) fakeReply {
		if call.Service == "common" {
			return fakeReply{result: 2}
		}
		return fakeReply{result: "not-an-id"}
	})

	_, err := testClient(srv).Create(context.Background(), ModelLead, map[string]any{"name": "bad"})
	require.Error(t, err, "error must be raised")
	assert.IsType(t, &CallError{}, err, "it must be call error")
}
