package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// loginResponse mirrors the POST /login payload
type loginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// result contains metrics for a single initiate+verify cycle
type result struct {
	Success      bool
	ResponseTime time.Duration
	Error        error
}

type stats struct {
	Successful    int
	Failed        int
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	Lock          sync.Mutex
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	adminUser := flag.String("admin", "admin", "Username with initiate+verify rights")
	adminPass := flag.String("password", "admin", "Password for the admin account")
	beneficiariesStr := flag.String("b", "user", "Comma-separated beneficiary usernames")
	cycles := flag.Int("n", 50, "Initiate+verify cycles per beneficiary")
	delayMs := flag.Int("delay", 100, "Delay between cycles in milliseconds")
	flag.Parse()

	beneficiaries := strings.Split(*beneficiariesStr, ",")

	client := &http.Client{Timeout: 10 * time.Second}

	token, err := login(client, *baseURL, *adminUser, *adminPass)
	if err != nil {
		fmt.Println("login failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing %s across %d beneficiaries, %d cycles each\n",
		*baseURL, len(beneficiaries), *cycles)

	st := &stats{ErrorCounts: make(map[string]int)}
	results := make(chan result, len(beneficiaries)*(*cycles))

	// One worker per beneficiary: the pending-event guard serialises writes
	// within a beneficiary anyway, so parallelism across beneficiaries is
	// the only parallelism the API allows
	var wg sync.WaitGroup
	start := time.Now()
	for _, beneficiary := range beneficiaries {
		wg.Add(1)
		go func(beneficiary string) {
			defer wg.Done()
			worker(client, *baseURL, token, beneficiary, *cycles, *delayMs, results)
		}(strings.TrimSpace(beneficiary))
	}

	go func() {
		for r := range results {
			st.Lock.Lock()
			if r.Success {
				st.Successful++
			} else {
				st.Failed++
				msg := "unknown"
				if r.Error != nil {
					msg = r.Error.Error()
				}
				st.ErrorCounts[msg]++
			}
			st.ResponseTimes = append(st.ResponseTimes, r.ResponseTime)
			st.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	total := time.Since(start)

	printResults(st, total)
}

func login(client *http.Client, baseURL, username, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := client.Post(baseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", err
	}
	return lr.AccessToken, nil
}

func worker(client *http.Client, baseURL, token, beneficiary string, cycles, delayMs int, results chan<- result) {
	for i := 0; i < cycles; i++ {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		id := fmt.Sprintf("%s_%d_%d", beneficiary, time.Now().UnixNano(), i)
		start := time.Now()

		err := post(client, baseURL+"/initiatetransaction", token, map[string]any{
			"transaction_id": id,
			"payment_method": "cash",
			"amount":         100,
			"initiated_for":  beneficiary,
			"comments":       "load test",
		}, http.StatusCreated)
		if err == nil {
			err = post(client, baseURL+"/modifytransaction", token, map[string]any{
				"transaction_id": id,
				"status":         "VERIFIED",
			}, http.StatusOK)
		}

		results <- result{
			Success:      err == nil,
			ResponseTime: time.Since(start),
			Error:        err,
		}
	}
}

func post(client *http.Client, url, token string, payload map[string]any, want int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != want {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func printResults(st *stats, total time.Duration) {
	totalCycles := st.Successful + st.Failed
	var avg time.Duration
	var sum time.Duration
	for _, t := range st.ResponseTimes {
		sum += t
	}
	if len(st.ResponseTimes) > 0 {
		avg = sum / time.Duration(len(st.ResponseTimes))
	}

	sorted := make([]time.Duration, len(st.ResponseTimes))
	copy(sorted, st.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Cycles:        %d (initiate + verify)\n", totalCycles)
	fmt.Printf("Successful:          %d\n", st.Successful)
	fmt.Printf("Failed:              %d\n", st.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", total.Seconds())
	fmt.Printf("Cycles/second:       %.2f\n", float64(totalCycles)/total.Seconds())
	fmt.Printf("Average Cycle Time:  %v\n", avg)
	fmt.Printf("P50:                 %v\n", percentile(50))
	fmt.Printf("P90:                 %v\n", percentile(90))
	fmt.Printf("P99:                 %v\n", percentile(99))

	if st.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range st.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
