package cli_test

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// prismVM is one VM as the fake cluster knows it.
type prismVM struct{ ID, Name string }

// fakePrism is a minimal stateful stand-in for a Prism Element cluster
// plus Prism Central, enough for the listpds and move-vms flows.
type fakePrism struct {
	domain      string
	members     []prismVM
	unprotected [][]string
	categories  map[string]map[string]string // vm uuid -> categories from the last PUT
}

func newFakePrism(domain string, members ...prismVM) *fakePrism {
	return &fakePrism{
		domain:     domain,
		members:    members,
		categories: map[string]map[string]string{},
	}
}

func (p *fakePrism) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	base := "/api/nutanix/v2.0/protection_domains/" + p.domain

	mux.HandleFunc(base, func(w http.ResponseWriter, r *http.Request) {
		vms := make([]map[string]string, 0, len(p.members))
		for _, m := range p.members {
			vms = append(vms, map[string]string{"vm_id": m.ID, "vm_name": m.Name})
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"name": p.domain, "vms": vms}); err != nil {
			t.Errorf("encode pd document: %v", err)
		}
	})

	mux.HandleFunc(base+"/unprotect_vms", func(w http.ResponseWriter, r *http.Request) {
		var names []string
		if err := json.NewDecoder(r.Body).Decode(&names); err != nil {
			t.Errorf("decode unprotect body: %v", err)
		}
		p.unprotected = append(p.unprotected, names)
		keep := p.members[:0]
		for _, m := range p.members {
			removed := false
			for _, n := range names {
				if m.Name == n {
					removed = true
				}
			}
			if !removed {
				keep = append(keep, m)
			}
		}
		p.members = keep
		w.Write([]byte(`{"value":true}`))
	})

	mux.HandleFunc("/api/nutanix/v3/vms/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/nutanix/v3/vms/")
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"api_version":"3.1","metadata":{"kind":"vm","uuid":"` + id + `"},"spec":{"name":"` + id + `"}}`))
		case http.MethodPut:
			var doc struct {
				Metadata struct {
					Categories map[string]string `json:"categories"`
				} `json:"metadata"`
			}
			if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
				t.Errorf("decode vm PUT body: %v", err)
			}
			p.categories[id] = doc.Metadata.Categories
			w.WriteHeader(http.StatusAccepted)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	srv := httptest.NewTLSServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// writeParamsFile writes a JSON parameters file pointing at the fake
// server; category may be empty for list-only configs.
func writeParamsFile(t *testing.T, srv *httptest.Server, domain, category string) string {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatal(err)
	}

	params := map[string]any{
		"cluster_ip": host,
		"pc_ip":      host,
		"port":       port,
		"username":   "admin",
		"password":   "secret",
		"pd":         domain,
		"insecure":   true,
	}
	if category != "" {
		params["category"] = category
	}
	data, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "params.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
