package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fakeBackend(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer cli-token", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/EquipmentDispatch":
			_, _ = io.WriteString(w, `[
				{"id":1,"medicalEquipmentId":7,"beneficiary":"Salma","dispatchDate":"2024-05-01T00:00:00","returnDate":null},
				{"id":2,"medicalEquipmentId":8,"beneficiary":"Karim","dispatchDate":"2024-04-01T00:00:00","returnDate":"2024-04-20T00:00:00"}
			]`)
		case r.Method == http.MethodPatch && r.URL.Path == "/EquipmentDispatch/1/return":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			_, _ = io.WriteString(w, `{"id":1,"medicalEquipmentId":7,"dispatchDate":"2024-05-01T00:00:00","returnDate":"`+body["returnDate"]+`"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/sessions/pending":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	token, backendURL, verbose = "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDispatchesList_Ongoing(t *testing.T) {
	srv, _ := fakeBackend(t)

	out, err := execute(t, "dispatches", "list", "--view", "ongoing", "--token", "cli-token", "--backend", srv.URL)
	require.NoError(t, err)

	var list []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Salma", list[0]["beneficiary"])
}

func TestDispatchesReturn(t *testing.T) {
	srv, calls := fakeBackend(t)

	out, err := execute(t, "dispatches", "return", "1", "--date", "2024-05-03", "--token", "cli-token", "--backend", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, *calls, "PATCH /EquipmentDispatch/1/return")
	assert.Contains(t, out, "2024-05-03T00:00:00")
}

func TestSessionsPending_None(t *testing.T) {
	srv, _ := fakeBackend(t)

	_, err := execute(t, "sessions", "pending", "--token", "cli-token", "--backend", srv.URL)
	assert.Error(t, err)
}

func TestMissingToken(t *testing.T) {
	t.Setenv("CONSOLE_TOKEN", "")
	_, err := execute(t, "sessions", "pending", "--backend", "http://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestPrintYAML_UsesJSONKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printYAML(&buf, struct {
		Beneficiary string `json:"beneficiary"`
	}{"Salma"}))
	assert.Equal(t, "beneficiary: Salma\n", buf.String())
}
