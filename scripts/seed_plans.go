// seed_plans.go — standalone script to post interval CSV files to the
// planfold API as plan requests.
//
// Usage:
//
//	go run scripts/seed_plans.go -input intervals.csv -api http://localhost:8700 -tradeoff 0.8
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	input := flag.String("input", "intervals.csv", "path to intervals CSV file")
	apiURL := flag.String("api", "http://localhost:8700", "planfold API base URL")
	tradeOff := flag.Float64("tradeoff", 0.5, "trade-off parameter")
	source := flag.String("source", "seed", "source tag recorded on the plan run")
	dryRun := flag.Bool("dry-run", false, "print the request without posting")
	flag.Parse()

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	url := fmt.Sprintf("%s/api/v1/plans/csv?trade_off=%g&source=%s", *apiURL, *tradeOff, *source)
	if *dryRun {
		fmt.Printf("POST %s\n%s", url, data)
		return
	}

	resp, err := http.Post(url, "text/csv", bytes.NewReader(data))
	if err != nil {
		log.Fatalf("post plan: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("unexpected status %d", resp.StatusCode)
	}
	fmt.Println("plan created")
}
