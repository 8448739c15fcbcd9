package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-profile/internal/config"
	"github.com/jonathan/linkedin-profile/internal/profile"
)

// fakeSearchAPI answers like the Custom Search API, keyed by the q parameter.
func fakeSearchAPI(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		body, ok := bodies[r.URL.Query().Get("q")]
		if !ok {
			body = `{"items":[]}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const janeBody = `{"items":[
	{"formattedUrl":"linkedin.com/in/janedoe"},
	{"formattedUrl":"linkedin.com/company/doe-bakery"},
	{"formattedUrl":"linkedin.com/in/jane-doe-2"}
]}`

const acmeBody = `{"items":[
	{"formattedUrl":"linkedin.com/in/acme-founder"},
	{"formattedUrl":"linkedin.com/company/acme"},
	{"formattedUrl":"linkedin.com/company/acme-labs"}
]}`

func runCLI(t *testing.T, serverURL string, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvSearchEngineID, "")
	t.Setenv(config.EnvBaseURL, serverURL)
	t.Setenv(config.EnvTimeout, "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--api-key", "test-key", "--cx", "test-cx"))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestFind_FirstIndividual(t *testing.T) {
	server := fakeSearchAPI(t, map[string]string{"Jane Doe": janeBody})

	out, err := runCLI(t, server.URL, "", "find", "Jane", "Doe", "--company=false", "--index", "1", "--json=false")
	require.NoError(t, err)
	assert.Equal(t, "linkedin.com/in/janedoe\n", out)
}

func TestFind_AllCompaniesJSON(t *testing.T) {
	server := fakeSearchAPI(t, map[string]string{"Acme Corp": acmeBody})

	out, err := runCLI(t, server.URL, "", "find", "Acme Corp", "--company", "--index", "0", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": "Acme Corp",
		"type": "company",
		"index": 0,
		"matches": ["1. linkedin.com/company/acme", "2. linkedin.com/company/acme-labs"],
		"found": true
	}`, out)
}

func TestFind_NoResults(t *testing.T) {
	server := fakeSearchAPI(t, nil)

	_, err := runCLI(t, server.URL, "", "find", "NoSuchPerson", "--company=false", "--index", "1", "--json=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no results")
}

func TestFind_NegativeIndex(t *testing.T) {
	server := fakeSearchAPI(t, nil)

	_, err := runCLI(t, server.URL, "", "find", "Y", "--company=false", "--index=-1", "--json=false")
	require.Error(t, err)

	var idxErr *profile.InvalidIndexError
	assert.True(t, errors.As(err, &idxErr))
}

func TestFind_OutOfRangePrintsNotFound(t *testing.T) {
	server := fakeSearchAPI(t, map[string]string{"X": janeBody})

	out, err := runCLI(t, server.URL, "", "find", "X", "--company=false", "--index", "5", "--json=false")
	require.NoError(t, err)
	assert.Equal(t, profile.NotFound+"\n", out)
}

func TestBatch_FromFile(t *testing.T) {
	server := fakeSearchAPI(t, map[string]string{"Jane Doe": janeBody, "Acme": acmeBody})

	input := filepath.Join(t.TempDir(), "queries.txt")
	require.NoError(t, os.WriteFile(input, []byte("Jane Doe\n\nNobody\nAcme\n"), 0644))

	out, err := runCLI(t, server.URL, "", "batch", input, "--company=false", "--index", "1", "--concurrency", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Jane Doe\tlinkedin.com/in/janedoe", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Nobody\tERROR: "), lines[1])
	assert.Equal(t, "Acme\tlinkedin.com/in/acme-founder", lines[2])
}

func TestBatch_FromStdinAll(t *testing.T) {
	server := fakeSearchAPI(t, map[string]string{"Acme": acmeBody})

	out, err := runCLI(t, server.URL, "Acme\n", "batch", "--company", "--index", "0", "--concurrency", "1")
	require.NoError(t, err)
	assert.Equal(t, "Acme\t1. linkedin.com/company/acme; 2. linkedin.com/company/acme-labs\n", out)
}

func TestReadLookups_SkipsBlankLines(t *testing.T) {
	lookups, err := readLookups(strings.NewReader("  a \n\n\tb\n"), true, 2)
	require.NoError(t, err)
	assert.Equal(t, []profile.Lookup{
		{Query: "a", Company: true, Index: 2},
		{Query: "b", Company: true, Index: 2},
	}, lookups)
}

func TestWriteSelection_Lines(t *testing.T) {
	var buf bytes.Buffer
	err := writeSelection(&buf, &profile.Selection{
		Index:   0,
		Matches: []string{"1. a/in/x", "2. a/in/y"},
		Found:   true,
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "1. a/in/x\n2. a/in/y\n", buf.String())
}
