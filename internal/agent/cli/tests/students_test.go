package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/agent/cli"
)

func TestStudentsList_WithoutCohortFlag_UsesBasePath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "s1", "firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com"},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewStudentsCmd(newApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := out.String(); !strings.Contains(got, `"firstName": "Ada"`) {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStudentsList_WithCohortFlag_UsesNestedPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/cohort/c1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "s1", "firstName": "Ada"},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewStudentsCmd(newApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"list", "--cohort", "c1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestStudentsCreate_MissingRequiredFlags_ReturnsError(t *testing.T) {
	cmd := cli.NewStudentsCmd(newApp("https://127.0.0.1:5005"))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"create", "--first-name", "Ada"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStudentsCreate_SendsListsAndCohort(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		langs, ok := req["languages"].([]any)
		if !ok || len(langs) != 2 {
			t.Fatalf("expected two languages, got %#v", req["languages"])
		}
		if req["cohort"] != "c1" {
			t.Fatalf("expected cohort=c1, got %#v", req["cohort"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": "s1", "firstName": "Ada"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewStudentsCmd(newApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"create",
		"--first-name", "Ada",
		"--last-name", "Lovelace",
		"--email", "ada@example.com",
		"--languages", "English,French",
		"--cohort", "c1",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

// --cohort="" отвязывает студента: в теле явное пустое значение
func TestStudentsUpdate_EmptyCohortFlag_SendsDetach(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/s1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		v, present := req["cohort"]
		if !present || v != "" {
			t.Fatalf("expected explicit empty cohort, got %#v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "s1", "firstName": "Ada"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewStudentsCmd(newApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"update", "s1", "--cohort", ""})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestStudentsDelete_PrintsConfirmation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/s1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewStudentsCmd(newApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"delete", "s1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := out.String(); !strings.Contains(got, "student deleted") {
		t.Fatalf("unexpected output: %q", got)
	}
}
