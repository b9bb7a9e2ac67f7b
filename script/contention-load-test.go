package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// ReservationRequest is the POST /reservations payload
type ReservationRequest struct {
	AssetID   uint64    `json:"assetId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ErrorResponse is the API error body
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Rule    string `json:"rule,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	StatusCode   int
	Rule         string
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	Admitted      int
	Rejected      int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	RuleCounts    map[string]int
	StatusCounts  map[int]int
	AdmittedUsers []string
	UserStats     map[string]int
	Lock          sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 20, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	userIDsStr := flag.String("u", "student-1,student-2", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	assetID := flag.Uint64("asset", 2, "Asset every request competes for")
	startStr := flag.String("start", "", "Block start as RFC3339 (required)")
	endStr := flag.String("end", "", "Block end as RFC3339 (required)")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	start, err := time.Parse(time.RFC3339, *startStr)
	if err != nil {
		fmt.Println("invalid -start:", err)
		return
	}
	end, err := time.Parse(time.RFC3339, *endStr)
	if err != nil {
		fmt.Println("invalid -end:", err)
		return
	}

	var userIDs []string
	for _, id := range strings.Split(*userIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []string{"student-1"}
	}

	fmt.Printf("Contention test on asset %d for %s - %s\n", *assetID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	fmt.Printf("Users: %v\n", userIDs)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		RuleCounts:    make(map[string]int),
		StatusCounts:  make(map[int]int),
		UserStats:     make(map[string]int),
	}

	payload := ReservationRequest{AssetID: *assetID, StartTime: start, EndTime: end}
	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, userIDs, payload, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		collect(stats, result)
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(baseURL string, delayMs int, userIDs []string, payload ReservationRequest, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	body, _ := json.Marshal(payload)

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		result := TestResult{UserID: userID}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/reservations", bytes.NewReader(body))
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", userID)

		began := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(began)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		if resp.StatusCode >= 400 {
			var errBody ErrorResponse
			if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
				result.Rule = errBody.Rule
			}
		}
		resp.Body.Close()

		results <- result
	}
}

func collect(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.UserStats[result.UserID]++
	switch {
	case result.Error != nil:
		stats.Failed++
		return
	case result.StatusCode == http.StatusCreated:
		stats.Admitted++
		stats.AdmittedUsers = append(stats.AdmittedUsers, result.UserID)
	case result.StatusCode == http.StatusConflict:
		stats.Rejected++
	default:
		stats.Failed++
	}

	rule := result.Rule
	if rule == "" {
		rule = "-"
	}
	stats.RuleCounts[rule]++
	stats.StatusCounts[result.StatusCode]++
	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Admitted (201):      %d\n", stats.Admitted)
	fmt.Printf("Rejected (409):      %d\n", stats.Rejected)
	fmt.Printf("Other/Failed:        %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- REJECTION RULES -----------------")
	for rule, count := range stats.RuleCounts {
		fmt.Printf("%-22s: %d\n", rule, count)
	}

	fmt.Println("\n----------------- USER DISTRIBUTION -----------------")
	for userID, count := range stats.UserStats {
		fmt.Printf("%-12s: %d requests\n", userID, count)
	}

	fmt.Println("\n================= CONCLUSION =================")
	switch stats.Admitted {
	case 0:
		fmt.Println("⚠️ No request was admitted; check the block window and asset id")
	case 1:
		fmt.Printf("✅ Exactly one reservation admitted (user %s)\n", stats.AdmittedUsers[0])
	default:
		fmt.Printf("❌ DOUBLE BOOKING: %d reservations admitted for one block: %v\n", stats.Admitted, stats.AdmittedUsers)
	}
	fmt.Println("================================================")
}
