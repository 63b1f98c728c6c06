// Command smoke drives a running server through the core request lifecycle
// and reports per-step status. Intended for manual checks against a dev
// instance; it mutates the store it points at.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type step struct {
	Name   string
	Method string
	Path   string
	Body   interface{}
	Expect int
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func main() {
	var (
		base    string
		prefix  string
		timeout time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&prefix, "prefix", "/api/v1", "API route prefix")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}

	docNo, err := submitQR(client, base+prefix)
	if err != nil {
		log.Fatalf("submit QR: %v", err)
	}
	fmt.Printf("submitted %s\n", docNo)

	steps := []step{
		{Name: "list register", Method: http.MethodGet, Path: "/requests?kind=QR", Expect: http.StatusOK},
		{Name: "get document", Method: http.MethodGet, Path: "/requests/" + docNo, Expect: http.StatusOK},
		{Name: "count hits", Method: http.MethodGet, Path: "/requests/" + docNo + "/hits?q=pump", Expect: http.StatusOK},
		{Name: "enable admin", Method: http.MethodPut, Path: "/session/role", Body: map[string]bool{"admin": true}, Expect: http.StatusOK},
		{Name: "add quotation", Method: http.MethodPost, Path: "/requests/" + docNo + "/attachments",
			Body: map[string]string{"bucket": "quotation", "filename": "smoke-quote.pdf"}, Expect: http.StatusOK},
		{Name: "close document", Method: http.MethodPost, Path: "/requests/" + docNo + "/events",
			Body: map[string]string{"event": "CLOSE"}, Expect: http.StatusOK},
		{Name: "export pdf", Method: http.MethodGet, Path: "/requests/" + docNo + "/export", Expect: http.StatusOK},
		{Name: "export register csv", Method: http.MethodGet, Path: "/requests/export?kind=QR", Expect: http.StatusOK},
		{Name: "disable admin", Method: http.MethodPut, Path: "/session/role", Body: map[string]bool{"admin": false}, Expect: http.StatusOK},
	}

	failures := 0
	for _, s := range steps {
		status, err := run(client, base+prefix, s)
		switch {
		case err != nil:
			failures++
			fmt.Printf("FAIL %-20s %v\n", s.Name, err)
		case status != s.Expect:
			failures++
			fmt.Printf("FAIL %-20s expected %d got %d\n", s.Name, s.Expect, status)
		default:
			fmt.Printf("ok   %-20s %d\n", s.Name, status)
		}
	}

	if failures > 0 {
		fmt.Printf("%d step(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all steps passed")
}

func submitQR(client *http.Client, base string) (string, error) {
	payload := map[string]interface{}{
		"kind":      "QR",
		"requester": "Smoke Runner",
		"phone":     "000-000-0000",
		"project":   "Smoke check",
		"items": []map[string]interface{}{
			{"name": "Hydraulic pump", "qty": 1, "unit": "ea"},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	resp, err := client.Post(base+"/requests", "application/json", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", err
	}
	var doc struct {
		DocNo string `json:"docNo"`
	}
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		return "", err
	}
	if doc.DocNo == "" {
		return "", fmt.Errorf("no docNo in response: %s", body)
	}
	return doc.DocNo, nil
}

func run(client *http.Client, base string, s step) (int, error) {
	var body io.Reader
	if s.Body != nil {
		raw, err := json.Marshal(s.Body)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(s.Method, base+s.Path, body)
	if err != nil {
		return 0, err
	}
	if s.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
