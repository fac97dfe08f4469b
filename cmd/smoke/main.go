package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type smokeCase struct {
	query    string
	location string
	wantCard string
}

func main() {
	baseURL := os.Getenv("CARDSMITH_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	fmt.Println("Starting smoke test against", baseURL)
	if !get(baseURL + "/health") {
		fmt.Println("FAILED: health")
		os.Exit(1)
	}

	// Expectations hold for the keyword classifier; a real model may choose differently.
	cases := []smokeCase{
		{"book a flight to Seattle next friday", "JFK", "FlightsCard"},
		{"buy running shoes", "", "ShoppingSearchResults"},
		{"good restaurant for dinner", "", "YelpCard"},
	}

	failed := false
	for _, c := range cases {
		name, err := initial(baseURL, c)
		switch {
		case err != nil:
			fmt.Printf("FAILED: %q: %v\n", c.query, err)
			failed = true
		case name != c.wantCard:
			fmt.Printf("MISMATCH: %q: got %s, want %s\n", c.query, name, c.wantCard)
		default:
			fmt.Printf("PASSED: %q -> %s\n", c.query, name)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func get(url string) bool {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func initial(baseURL string, c smokeCase) (string, error) {
	body, _ := json.Marshal(map[string]string{"query": c.query})
	req, err := http.NewRequest(http.MethodPost, baseURL+"/initial", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.location != "" {
		req.Header.Set("X-Brain-User-Location", c.location)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}

	var out struct {
		CardList []struct {
			CardName string `json:"card_name"`
		} `json:"card_list"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	if len(out.CardList) != 1 {
		return "", fmt.Errorf("expected one card, got %d", len(out.CardList))
	}
	return out.CardList[0].CardName, nil
}
