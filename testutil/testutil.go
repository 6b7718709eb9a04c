// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/quiz-responses/cliparse"
	"github.com/danielhkuo/quiz-responses/db"
)

// PostgresURLEnv names the variable that switches tests to a live Postgres.
const PostgresURLEnv = "QUIZ_TEST_POSTGRES_URL"

// SetupTestDB creates a fresh test database with the full schema.
// Without QUIZ_TEST_POSTGRES_URL it is a throwaway SQLite file.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if url := os.Getenv(PostgresURLEnv); url != "" {
		return setupPostgres(t, url)
	}

	path := filepath.Join(t.TempDir(), "quiz.db")
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn, db.DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func setupPostgres(t *testing.T, url string) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DriverPostgres, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	_, err = conn.Exec(`
		DROP TABLE IF EXISTS responses CASCADE;
		DROP TABLE IF EXISTS questions CASCADE;
		DROP TABLE IF EXISTS quiz CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn, db.DriverPostgres); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         cliparse.DefaultPort,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.DriverSQLite,
		CORSOrigins:  []string{"*"},
	}
}

// NewParticipantID returns a unique participant id for a test submission.
func NewParticipantID() string {
	return "participant-" + uuid.NewString()
}

// CreateTestQuiz inserts a quiz row with the given stored name and returns its ID
func CreateTestQuiz(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`INSERT INTO quiz (quiz) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test quiz: %v", err)
	}

	return id
}

// AddTestQuestion adds a question to a quiz and returns the question ID.
// A nil answer is stored as NULL.
func AddTestQuestion(t *testing.T, conn *sql.DB, quizID int64, text string, answer *bool) int64 {
	t.Helper()

	stored := sql.NullBool{}
	if answer != nil {
		stored = sql.NullBool{Bool: *answer, Valid: true}
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO questions (quiz_id, question, answer)
		VALUES ($1, $2, $3)
		RETURNING id
	`, quizID, text, stored).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CountResponses returns how many response rows exist for a quiz
func CountResponses(t *testing.T, conn *sql.DB, quizID int64) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM responses WHERE quiz_id = $1`, quizID).Scan(&n); err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}

	return n
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}

// Int64 returns a pointer to n
func Int64(n int64) *int64 {
	return &n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
