package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Walks the admin API against a running server: login, create a post,
// save it, list, delete, sign out.

func baseURL() string {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000/api"
}

func sendRequest(method, path, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL()+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(title, method, path, token string, body interface{}) map[string]interface{} {
	color.Yellow("\n%s", title)
	resp, raw, err := sendRequest(method, path, token, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 300 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}

	var out map[string]interface{}
	_ = json.Unmarshal(raw, &out)
	if msg, ok := out["message"]; ok {
		fmt.Printf("  %v\n", msg)
	}
	return out
}

func main() {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	color.Cyan("Admin API smoke test against %s", baseURL())

	res := step("1. Login", "POST", "/auth/login", "", map[string]string{"password": password})
	data, _ := res["data"].(map[string]interface{})
	token, _ := data["access_token"].(string)
	if token == "" {
		color.Red("No token, aborting")
		os.Exit(1)
	}

	step("2. Start post draft", "POST", "/admin/posts/draft", token, nil)
	step("3. Set title", "PATCH", "/admin/posts/draft", token, map[string]string{"field": "title", "value": "Smoke test"})
	saved := step("4. Save", "POST", "/admin/posts/draft/save", token, nil)

	savedData, _ := saved["data"].(map[string]interface{})
	record, _ := savedData["record"].(map[string]interface{})
	id, _ := record["id"].(string)

	step("5. List posts", "GET", "/admin/posts", token, nil)
	if id != "" {
		step("6. Delete post", "DELETE", "/admin/posts/"+id+"?confirm=true", token, nil)
	}
	step("7. Logout", "POST", "/auth/logout", token, nil)

	color.Cyan("\nDone")
}
