// test/e2e/e2e_test.go
package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/server"
	"mergington-activities/pkg/registry"
)

var testServer *httptest.Server

func TestMain(m *testing.M) {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.NewNoOpLogger()
	obs := observability.New(cfg.App.Name)

	seed, err := registry.DefaultSeed()
	if err != nil {
		panic(fmt.Sprintf("failed to load default seed: %v", err))
	}

	reg, err := registry.New(seed)
	if err != nil {
		panic(fmt.Sprintf("failed to build registry: %v", err))
	}

	srv := server.New(cfg.Server, reg, log, obs)
	testServer = httptest.NewServer(srv.Handler())

	code := m.Run()

	testServer.Close()
	os.Exit(code)
}

func TestFullE2E(t *testing.T) {
	t.Run("list-seeded-activities", testListSeededActivities)
	t.Run("signup-flow", testSignupFlow)
	t.Run("duplicate-signup-rejected", testDuplicateSignupRejected)
	t.Run("unregister-flow", testUnregisterFlow)
	t.Run("unknown-activity", testUnknownActivity)
	t.Run("missing-email", testMissingEmail)
	t.Run("health-and-metrics", testHealthAndMetrics)
}

func testListSeededActivities(t *testing.T) {
	activities := fetchActivities(t)
	assert.Len(t, activities, 9)

	chess, ok := activities["Chess Club"]
	require.True(t, ok, "Chess Club should be in the seeded registry")
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Contains(t, chess.Participants, "michael@mergington.edu")
	assert.Contains(t, chess.Participants, "daniel@mergington.edu")
	assert.NotEmpty(t, chess.Description)
	assert.NotEmpty(t, chess.Schedule)
}

func testSignupFlow(t *testing.T) {
	email := "e2e-signup@mergington.edu"

	status, body := post(t, signupURL("Soccer", email))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, fmt.Sprintf("Signed up %s for Soccer", email), body["message"])

	activities := fetchActivities(t)
	assert.Contains(t, activities["Soccer"].Participants, email)
}

func testDuplicateSignupRejected(t *testing.T) {
	email := "e2e-duplicate@mergington.edu"

	status, _ := post(t, signupURL("Art Club", email))
	require.Equal(t, http.StatusOK, status)

	before := len(fetchActivities(t)["Art Club"].Participants)

	status, body := post(t, signupURL("Art Club", email))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Student is already signed up for this activity", body["detail"])

	after := len(fetchActivities(t)["Art Club"].Participants)
	assert.Equal(t, before, after, "failed signup must not change the roster")
}

func testUnregisterFlow(t *testing.T) {
	email := "e2e-unregister@mergington.edu"

	status, _ := post(t, signupURL("Debate Team", email))
	require.Equal(t, http.StatusOK, status)

	status, body := del(t, unregisterURL("Debate Team", email))
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["message"], email)
	assert.Contains(t, body["message"], "désinscrit")

	activities := fetchActivities(t)
	assert.NotContains(t, activities["Debate Team"].Participants, email)

	// Unregistering again reports the participant as gone.
	status, body = del(t, unregisterURL("Debate Team", email))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Participant not found in this activity", body["detail"])

	// The slot is free for a fresh signup.
	status, _ = post(t, signupURL("Debate Team", email))
	assert.Equal(t, http.StatusOK, status)
}

func testUnknownActivity(t *testing.T) {
	status, body := post(t, signupURL("Cooking Club", "someone@mergington.edu"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Activity not found", body["detail"])

	status, body = del(t, unregisterURL("Cooking Club", "someone@mergington.edu"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Activity not found", body["detail"])
}

func testMissingEmail(t *testing.T) {
	status, body := post(t, testServer.URL+"/activities/"+url.PathEscape("Chess Club")+"/signup")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "email query parameter is required", body["detail"])
}

func testHealthAndMetrics(t *testing.T) {
	for _, path := range []string{"/health", "/ready", "/metrics"} {
		resp, err := http.Get(testServer.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "endpoint %s", path)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

// ==========================
// Helpers
// ==========================

func fetchActivities(t *testing.T) map[string]registry.Activity {
	t.Helper()

	resp, err := http.Get(testServer.URL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities map[string]registry.Activity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	return activities
}

func post(t *testing.T, target string) (int, map[string]string) {
	t.Helper()

	resp, err := http.Post(target, "application/json", nil)
	require.NoError(t, err)
	return decode(t, resp)
}

func del(t *testing.T, target string) (int, map[string]string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, target, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) (int, map[string]string) {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func signupURL(activity, email string) string {
	return fmt.Sprintf("%s/activities/%s/signup?email=%s",
		testServer.URL, url.PathEscape(activity), url.QueryEscape(email))
}

func unregisterURL(activity, email string) string {
	return fmt.Sprintf("%s/activities/%s/unregister?email=%s",
		testServer.URL, url.PathEscape(activity), url.QueryEscape(email))
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkListActivities(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp, err := http.Get(testServer.URL + "/activities")
		if err != nil {
			b.Fatal(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

func BenchmarkSignupUnregister(b *testing.B) {
	email := "bench@mergington.edu"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp, err := http.Post(signupURL("Gym Class", email), "application/json", nil)
		if err != nil {
			b.Fatal(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		req, _ := http.NewRequest(http.MethodDelete, unregisterURL("Gym Class", email), nil)
		resp, err = http.DefaultClient.Do(req)
		if err != nil {
			b.Fatal(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
