package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := os.Getenv("CLASSMEM_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	checks := []struct {
		name string
		path string
		key  string
	}{
		{"Health", "/healthz", "status"},
		{"List students", "/api/students", "students"},
		{"List events", "/api/events", "events"},
		{"Gallery", "/api/gallery", "recent"},
		{"Recent memories", "/api/memories/recent", "memories"},
		{"Search", "/api/search?q=class", "results"},
		{"Timeline", "/api/timeline", "years"},
	}

	for i, check := range checks {
		fmt.Printf("%d. %s...\n", i+1, check.name)
		body, ok := getJSON(baseURL + check.path)
		if !ok {
			fmt.Printf("FAILED: %s\n", check.name)
			os.Exit(1)
		}
		if _, found := body[check.key]; !found {
			fmt.Printf("FAILED: %s (missing %q in response)\n", check.name, check.key)
			os.Exit(1)
		}
		fmt.Printf("PASSED: %s\n", check.name)
	}

	// Lookups of a listed student must round-trip.
	body, ok := getJSON(baseURL + "/api/students")
	if !ok {
		os.Exit(1)
	}
	if students, _ := body["students"].([]interface{}); len(students) > 0 {
		first := students[0].(map[string]interface{})
		id := int(first["id"].(float64))
		student, ok := getJSON(fmt.Sprintf("%s/api/students/%d", baseURL, id))
		if !ok || student["name"] != first["name"] {
			fmt.Println("FAILED: Student lookup")
			os.Exit(1)
		}
		fmt.Println("PASSED: Student lookup")
	}

	fmt.Println("Integration Test Completed Successfully!")
}

func getJSON(url string) (map[string]interface{}, bool) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Status: %d, Body: %s\n", resp.StatusCode, string(bodyBytes))
		return nil, false
	}

	var body map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		fmt.Printf("Invalid JSON: %v\n", err)
		return nil, false
	}
	return body, true
}
