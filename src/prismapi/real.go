package prismapi

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Endpoint describes one Prism API endpoint and its credential pair.
type Endpoint struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (e Endpoint) base() string {
	return fmt.Sprintf("https://%s:%d", e.Host, e.Port)
}

// RealClient talks to a Prism Element cluster (v2.0 API) for protection
// domain operations and to Prism Central (v3 API) for category
// operations.
type RealClient struct {
	pe   Endpoint
	pc   Endpoint
	http *http.Client
}

// Connect builds a client for the given endpoints. When insecure is set,
// TLS certificate verification is skipped; clusters commonly still run
// the self-signed default certificate.
func Connect(pe, pc Endpoint, insecure bool) *RealClient {
	return &RealClient{
		pe: pe,
		pc: pc,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure},
			},
		},
	}
}

// pdDocument is the slice of the v2.0 protection domain document we need.
type pdDocument struct {
	VMs []pdVM `json:"vms"`
}

type pdVM struct {
	ID   string `json:"vm_id"`
	Name string `json:"vm_name"`
}

// vmIntent is the v3 VM intent document, minus its status section: a PUT
// must not echo status back, so decoding into this type drops it.
type vmIntent struct {
	APIVersion string                     `json:"api_version"`
	Metadata   map[string]json.RawMessage `json:"metadata"`
	Spec       json.RawMessage            `json:"spec"`
}

func (r *RealClient) ListProtectionDomainEntities(domain string) ([]EntityRef, error) {
	path := "/api/nutanix/v2.0/protection_domains/" + url.PathEscape(domain)
	status, data, err := r.do(r.pe, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, &NotFoundError{Resource: "protection domain", Name: domain}
	case status != http.StatusOK:
		return nil, &APIError{Status: status, Body: string(data)}
	}

	var doc pdDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding protection domain %s: %w", domain, err)
	}
	out := make([]EntityRef, 0, len(doc.VMs))
	for _, vm := range doc.VMs {
		if vm.ID == "" || vm.Name == "" {
			return nil, fmt.Errorf("protection domain %s: vm entry missing vm_id or vm_name", domain)
		}
		out = append(out, EntityRef{UUID: vm.ID, Name: vm.Name})
	}
	return out, nil
}

func (r *RealClient) DetachEntityFromDomain(domain string, entity EntityRef) error {
	path := "/api/nutanix/v2.0/protection_domains/" + url.PathEscape(domain) + "/unprotect_vms"
	// unprotect_vms takes a JSON array of VM names; we send one at a time.
	status, data, err := r.do(r.pe, http.MethodPost, path, []string{entity.Name})
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusNotFound:
		return &NotFoundError{Resource: "protection domain", Name: domain}
	case http.StatusConflict:
		return &ConflictError{Resource: "vm", Name: entity.Name}
	default:
		return &APIError{Status: status, Body: string(data)}
	}
}

func (r *RealClient) AttachEntityToCategory(entity EntityRef, key, value string) error {
	path := "/api/nutanix/v3/vms/" + url.PathEscape(entity.UUID)
	status, data, err := r.do(r.pc, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusNotFound:
		return &NotFoundError{Resource: "vm", Name: entity.UUID}
	case status != http.StatusOK:
		return &APIError{Status: status, Body: string(data)}
	}

	var intent vmIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		return fmt.Errorf("decoding vm %s: %w", entity.UUID, err)
	}
	if intent.Metadata == nil || len(intent.Spec) == 0 {
		return fmt.Errorf("vm %s: intent document missing spec or metadata", entity.UUID)
	}

	categories := map[string]string{}
	if raw, ok := intent.Metadata["categories"]; ok {
		if err := json.Unmarshal(raw, &categories); err != nil {
			return fmt.Errorf("decoding vm %s categories: %w", entity.UUID, err)
		}
	}
	categories[key] = value
	merged, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	intent.Metadata["categories"] = merged

	status, data, err = r.do(r.pc, http.MethodPut, path, intent)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		// the v3 API rejects unknown category values on the PUT
		return &NotFoundError{Resource: "category", Name: key + ":" + value}
	default:
		return &APIError{Status: status, Body: string(data)}
	}
}

// do issues one request with basic auth and JSON headers, returning the
// response status and body. Transport failures become NetworkError and
// credential rejections become AuthError; other statuses are left to the
// caller to interpret.
func (r *RealClient) do(ep Endpoint, method, path string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ep.base()+path, body)
	if err != nil {
		return 0, nil, err
	}
	req.SetBasicAuth(ep.Username, ep.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return 0, nil, &NetworkError{Endpoint: ep.base(), Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Endpoint: ep.base(), Err: err}
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return resp.StatusCode, data, &AuthError{Endpoint: ep.base()}
	}
	return resp.StatusCode, data, nil
}
