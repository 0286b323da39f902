package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/mongodb"
	"github.com/lealre/cafes-backend/internal/server"
	"github.com/lealre/cafes-backend/internal/services/users"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	testClient *mongo.Client
	testServer *httptest.Server
)

const TEST_DB_NAME = "testDb"

func TestMain(m *testing.M) {
	ctx := context.Background()

	os.Setenv("MONGODB_DB", TEST_DB_NAME)
	os.Setenv("TOKEN_SECRET", "test-secret")
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("failed to start mongo container: %v", err)
	}

	endpoint, err := mongoC.Endpoint(ctx, "")
	if err != nil {
		log.Fatalf("failed to get mongo endpoint: %v", err)
	}
	uri := "mongodb://" + endpoint

	testClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to test mongo: %v", err)
	}

	handler := server.NewServer(testClient)
	testServer = httptest.NewServer(handler)

	code := m.Run()

	testServer.Close()
	_ = testClient.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)

	collections, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		t.Fatalf("failed to list collections: %v", err)
	}

	for _, coll := range collections {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			t.Fatalf("failed to drop collection %s: %v", coll, err)
		}
	}

	// Dropping a collection drops its indexes; the duplicate checks need the
	// unique indexes back.
	if err := mongodb.CreateAllIndexes(ctx, db, false); err != nil {
		t.Fatalf("failed to recreate indexes: %v", err)
	}
}

func seedCafes(t *testing.T, cafes []interface{}) {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.CafesCollection)

	if _, err := coll.InsertMany(ctx, cafes); err != nil {
		t.Fatalf("failed to insert seed cafes: %v", err)
	}
}

// signupAndLogin creates a user through the API and returns its id and a
// valid bearer token.
func signupAndLogin(t *testing.T, username, email, password string) (string, string) {
	t.Helper()

	newUser := users.NewUserRequest{
		Username: username,
		Name:     username,
		Email:    email,
		Password: password,
	}
	postBody, err := json.Marshal(newUser)
	if err != nil {
		t.Fatalf("failed to marshal signup request: %v", err)
	}

	resp, err := http.Post(testServer.URL+"/users", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("signup returned status %d: %s", resp.StatusCode, body)
	}

	var createdUser users.UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&createdUser); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}

	loginBody, err := json.Marshal(auth.LoginRequest{Username: username, Password: password})
	if err != nil {
		t.Fatalf("failed to marshal login request: %v", err)
	}

	loginResp, err := http.Post(testServer.URL+"/login", "application/json", bytes.NewBuffer(loginBody))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer loginResp.Body.Close()
	if loginResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(loginResp.Body)
		t.Fatalf("login returned status %d: %s", loginResp.StatusCode, body)
	}

	var loginResponse auth.LoginResponse
	if err := json.NewDecoder(loginResp.Body).Decode(&loginResponse); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return createdUser.Id, loginResponse.AccessToken
}

// loginAgain fetches a fresh token, useful after a role change.
func loginAgain(t *testing.T, username, password string) (string, string) {
	t.Helper()

	loginBody, err := json.Marshal(auth.LoginRequest{Username: username, Password: password})
	if err != nil {
		t.Fatalf("failed to marshal login request: %v", err)
	}

	resp, err := http.Post(testServer.URL+"/login", "application/json", bytes.NewBuffer(loginBody))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("login returned status %d: %s", resp.StatusCode, body)
	}

	var loginResponse auth.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResponse); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return loginResponse.Id, loginResponse.AccessToken
}

// setRole updates a user's role directly in the database, bypassing the
// admin-only endpoint, so tests can mint admins and owners.
func setRole(t *testing.T, userId, role string) {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.UsersCollection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		t.Fatalf("failed to update role: %v", err)
	}
	if res.MatchedCount == 0 {
		t.Fatalf("no user with id %s", userId)
	}
}

// doRequest performs an authenticated JSON request against the test server.
func doRequest(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, testServer.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	return resp
}

func getCafeDoc(t *testing.T, cafeId string) bson.M {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.CafesCollection)

	var doc bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": cafeId}).Decode(&doc); err != nil {
		t.Fatalf("failed to fetch cafe %s: %v", cafeId, err)
	}

	return doc
}
