// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	stdhttp "net/http"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/wneessen/hydro/internal/scrape"
	"github.com/wneessen/hydro/internal/testhelper"
)

const (
	stationsFile     = "../../testdata/stations.html"
	temperaturesFile = "../../testdata/temperatures.html"
)

type result struct {
	code    int
	stdout  string
	stderr  string
	fetches int
}

// run executes hydro with args against the fixture pages and an isolated config directory.
func run(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")
	if os.Getenv("HYDRO_FAVORITES_FILE") == "" {
		t.Setenv("HYDRO_FAVORITES_FILE", filepath.Join(t.TempDir(), "hydro", "favorites.json"))
	}
	return runWith(t, args...)
}

func runWith(t *testing.T, args ...string) result {
	t.Helper()
	var res result
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	app := &App{
		stdout:  stdout,
		stderr:  stderr,
		version: "test",
		transport: testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
			res.fetches++
			switch filepath.Base(req.URL.Path) {
			case scrape.IndexPage.Path:
				return testhelper.FileResponse(t, stationsFile), nil
			case scrape.TemperaturePage.Path:
				return testhelper.FileResponse(t, temperaturesFile), nil
			}
			return testhelper.Response(stdhttp.StatusNotFound, ""), nil
		}},
	}
	res.code = app.run(t.Context(), args)
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func readFavorites(t *testing.T) []uint16 {
	t.Helper()
	data, err := os.ReadFile(os.Getenv("HYDRO_FAVORITES_FILE"))
	if err != nil {
		t.Fatalf("failed to read favorites file: %s", err)
	}
	var ids []uint16
	if err = json.Unmarshal(data, &ids); err != nil {
		t.Fatalf("failed to decode favorites file: %s", err)
	}
	return ids
}

func TestExecute_List(t *testing.T) {
	t.Run("list prints all stations", func(t *testing.T) {
		res := run(t, "list")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		for _, want := range []string{"| ID ", "| 2416 |", "| 6572 |", "Vierwaldstättersee - Seedamm"} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, res.stdout)
			}
		}
		if strings.Contains(res.stdout, "\x1b[1m") {
			t.Error("did not expect bold output when stdout is not a terminal")
		}
	})
	t.Run("list applies filters", func(t *testing.T) {
		res := run(t, "list", "--water", "lauerz", "-u")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stdout, "| 2004 |") || strings.Contains(res.stdout, "| 2416 |") {
			t.Errorf("expected only station 2004, got:\n%s", res.stdout)
		}
		if !strings.Contains(res.stdout, "https://www.hydrodaten.admin.ch/de/2004.html") {
			t.Errorf("expected station URL in output, got:\n%s", res.stdout)
		}
	})
	t.Run("list with first 0 prints only the header", func(t *testing.T) {
		res := run(t, "list", "--first", "0")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		want := strings.Join([]string{
			"+----+------+-------+",
			"| ID | Name | Water |",
			"+----+------+-------+",
			"+----+------+-------+",
			"",
		}, "\n")
		if res.stdout != want {
			t.Errorf("unexpected output:\n%s\nwant:\n%s", res.stdout, want)
		}
	})
	t.Run("list temperatures shows measurements", func(t *testing.T) {
		res := run(t, "list", "-t")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		for _, want := range []string{"Measurement", "Max 24h", "14.2 °C"} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, res.stdout)
			}
		}
	})
	t.Run("list fails on negative first", func(t *testing.T) {
		res := run(t, "list", "--first", "-1")
		if res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
		if res.fetches != 0 {
			t.Errorf("expected no fetches, got %d", res.fetches)
		}
	})
}

func TestExecute_Get(t *testing.T) {
	t.Run("get prints the station details", func(t *testing.T) {
		res := run(t, "get", "2152", "-t")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		for _, want := range []string{"Reuss", "14.2 °C", "https://www.hydrodaten.admin.ch/de/2152.html"} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, res.stdout)
			}
		}
	})
	t.Run("get reports a missing station", func(t *testing.T) {
		res := run(t, "get", "1")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if res.stdout != "" {
			t.Errorf("expected no output, got:\n%s", res.stdout)
		}
		if !strings.Contains(res.stderr, "Station 1 not found.") {
			t.Errorf("expected not found message, got: %s", res.stderr)
		}
	})
	t.Run("get rejects an invalid id before fetching", func(t *testing.T) {
		for _, arg := range []string{"abc", "70000"} {
			res := run(t, "get", arg)
			if res.code != 1 {
				t.Errorf("expected exit code 1 for %q, got %d", arg, res.code)
			}
			if res.fetches != 0 {
				t.Errorf("expected no fetches for %q, got %d", arg, res.fetches)
			}
		}
	})
	t.Run("get requires exactly one id", func(t *testing.T) {
		if res := run(t, "get"); res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
		if res := run(t, "get", "1", "2"); res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
	})
}

func TestExecute_Fav(t *testing.T) {
	t.Run("add, remove and list favorites", func(t *testing.T) {
		t.Setenv("HYDRO_FAVORITES_FILE", filepath.Join(t.TempDir(), "hydro", "favorites.json"))

		if res := run(t, "fav", "add", "2135", "2030", "4242"); res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if ids := readFavorites(t); !slices.Equal(ids, []uint16{2030, 2135, 4242}) {
			t.Errorf("expected [2030 2135 4242], got %v", ids)
		}
		if res := run(t, "fav", "rm", "2030"); res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if ids := readFavorites(t); !slices.Equal(ids, []uint16{2135, 4242}) {
			t.Errorf("expected [2135 4242], got %v", ids)
		}

		res := run(t, "fav", "-t")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stdout, "| 2135 |") || strings.Contains(res.stdout, "| 2030 |") {
			t.Errorf("expected only station 2135, got:\n%s", res.stdout)
		}
	})
	t.Run("add rejects invalid ids without touching the file", func(t *testing.T) {
		t.Setenv("HYDRO_FAVORITES_FILE", filepath.Join(t.TempDir(), "hydro", "favorites.json"))
		res := run(t, "fav", "add", "1", "x")
		if res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
		if _, err := os.Stat(os.Getenv("HYDRO_FAVORITES_FILE")); !os.IsNotExist(err) {
			t.Errorf("expected favorites file not to exist, got %v", err)
		}
	})
	t.Run("add and rm require ids", func(t *testing.T) {
		if res := run(t, "fav", "add"); res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
		if res := run(t, "fav", "rm"); res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
	})
}

func TestExecute_Config(t *testing.T) {
	t.Run("unknown subcommand fails", func(t *testing.T) {
		if res := run(t, "frobnicate"); res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
	})
	t.Run("invalid config file fails", func(t *testing.T) {
		res := run(t, "--config", "../../testdata/invalid.toml", "list")
		if res.code != 1 {
			t.Errorf("expected exit code 1, got %d", res.code)
		}
		if !strings.Contains(res.stderr, "failed to load config") {
			t.Errorf("expected config error in log output, got: %s", res.stderr)
		}
		if res.fetches != 0 {
			t.Errorf("expected no fetches, got %d", res.fetches)
		}
	})
	t.Run("sample config file is accepted", func(t *testing.T) {
		res := run(t, "--config", "../../etc/config.toml", "list")
		if res.code != 0 {
			t.Errorf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
	})
	t.Run("only favorites commands need the user config dir", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME is only honored on linux")
		}
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "")
		t.Setenv("HYDRO_FAVORITES_FILE", "")

		if res := runWith(t, "list"); res.code != 0 {
			t.Errorf("list: expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if res := runWith(t, "get", "2416"); res.code != 0 {
			t.Errorf("get: expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		res := runWith(t, "fav")
		if res.code != 1 {
			t.Errorf("fav: expected exit code 1, got %d", res.code)
		}
		if !strings.Contains(res.stderr, "failed to load favorites") {
			t.Errorf("fav: expected favorites error in log output, got: %s", res.stderr)
		}
		if res.fetches != 0 {
			t.Errorf("fav: expected no fetches, got %d", res.fetches)
		}
	})
	t.Run("debug flag enables debug logging", func(t *testing.T) {
		res := run(t, "--debug", "list")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stderr, "level=DEBUG") {
			t.Errorf("expected debug output, got: %s", res.stderr)
		}
	})
	t.Run("version flag prints the version", func(t *testing.T) {
		res := run(t, "--version")
		if res.code != 0 {
			t.Fatalf("expected exit code 0, got %d", res.code)
		}
		if !strings.Contains(res.stdout, "test") {
			t.Errorf("expected version in output, got: %s", res.stdout)
		}
	})
}
