package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeGitHub serves alice's profile, one repository page, and an empty
// page after it. When failSecondPage is set, page 2 answers with 503.
func newFakeGitHub(failSecondPage bool) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/alice", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login":"alice","name":"Alice A.","public_repos":2}`)
	})
	mux.HandleFunc("/users/alice/repos", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `[
				{"name":"tool","full_name":"alice/tool","fork":false,"language":"Go","stargazers_count":5,"topics":["cli"]},
				{"name":"mirror","full_name":"alice/mirror","fork":true,"language":"C","stargazers_count":9}
			]`)
		case "2":
			if failSecondPage {
				w.WriteHeader(http.StatusServiceUnavailable)
				fmt.Fprint(w, `{"message":"unavailable"}`)
				return
			}
			fmt.Fprint(w, `[]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	})
	return httptest.NewServer(mux)
}

// extractArgs always passes every extract flag because cobra keeps flag
// values between executions of the shared root command.
func extractArgs(apiURL, output string, extra ...string) []string {
	args := []string{
		"extract",
		"--user", "alice",
		"--api-url", apiURL,
		"--output", output,
		"--max-pages", "100",
		"--timeout", "5s",
	}
	return append(args, extra...)
}

func setupCommandEnv(t *testing.T) string {
	dir := t.TempDir()
	chdirForTest(t, dir)
	t.Setenv("GITHUB_TOKEN", "secret")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("RESUME_TIMEOUT", "")
	t.Setenv("RESUME_MAX_PAGES", "")
	return dir
}

func TestExtractCommand(t *testing.T) {
	testCases := []struct {
		name           string
		failSecondPage bool
		extraArgs      []string
		expectedCode   int
		expectedStderr string
		expectFile     bool
	}{
		{
			name:         "success writes the snapshot and exits 0",
			expectedCode: 0,
			expectFile:   true,
		},
		{
			name:           "failure on page 2 exits 1 and writes nothing",
			failSecondPage: true,
			expectedCode:   1,
			expectedStderr: "Error: failed to fetch repositories (page 2)",
			expectFile:     false,
		},
		{
			name:           "invalid configuration exits 1 before any request",
			extraArgs:      []string{"--max-pages=-1"},
			expectedCode:   1,
			expectedStderr: "Error: RESUME_MAX_PAGES: must not be negative",
			expectFile:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := setupCommandEnv(t)
			server := newFakeGitHub(tc.failSecondPage)
			defer server.Close()

			var stdout, stderr bytes.Buffer
			code := run(extractArgs(server.URL, "snapshot.json", tc.extraArgs...), &stdout, &stderr)

			assert.Equal(t, tc.expectedCode, code, stderr.String())
			if tc.expectedStderr != "" {
				assert.Contains(t, stderr.String(), tc.expectedStderr)
			}
			if tc.expectFile {
				assert.FileExists(t, filepath.Join(dir, "snapshot.json"))
			} else {
				assert.NoFileExists(t, filepath.Join(dir, "snapshot.json"))
			}
		})
	}
}

func TestSummaryCommand(t *testing.T) {
	setupCommandEnv(t)
	server := newFakeGitHub(false)
	defer server.Close()

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(extractArgs(server.URL, "snapshot.json"), &stdout, &stderr), stderr.String())

	stdout.Reset()
	stderr.Reset()
	code := run([]string{"summary", "snapshot.json", "--top", "5"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "Alice A. (alice): 1 repositories, 5 stars, 0 forks")
	assert.Contains(t, out, "LANGUAGE") // tablewriter upper-cases headers
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "cli")
}

func TestSummaryCommand_MissingSnapshot(t *testing.T) {
	setupCommandEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"summary", "nope.json"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: failed to read snapshot")
}

// chdirForTest changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
