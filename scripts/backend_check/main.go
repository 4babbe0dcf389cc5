package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/pkg/apiclient"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type target struct {
	Resource models.ResourceType
	Critical bool
}

// Collections the portal cannot start a session without are critical.
var targets = []target{
	{Resource: models.ResourceRequest, Critical: true},
	{Resource: models.ResourceUserCredentials, Critical: true},
	{Resource: models.ResourceStatusType, Critical: true},
	{Resource: models.ResourceFormType, Critical: true},
	{Resource: models.ResourceDepartment, Critical: true},
	{Resource: models.ResourceRole, Critical: true},
	{Resource: models.ResourceApprover},
	{Resource: models.ResourcePurposeOfTravel},
	{Resource: models.ResourceFlightRequest},
	{Resource: models.ResourceFlier},
	{Resource: models.ResourceBookingDetails},
	{Resource: models.ResourceProgressUpdate},
	{Resource: models.ResourceNotification},
	{Resource: models.ResourceUserProfile},
}

type check struct {
	Target   target
	Records  int
	Duration time.Duration
	Error    error
}

func main() {
	var (
		base    string
		prefix  string
		token   string
		timeout time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:5000", "Backend base URL")
	flag.StringVar(&prefix, "prefix", "/api/v1", "Backend API prefix")
	flag.StringVar(&token, "token", "", "Optional bearer token for the backend")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client, err := apiclient.New(apiclient.Config{BaseURL: base, APIPrefix: prefix, Timeout: timeout, Token: token})
	if err != nil {
		log.Fatalf("invalid backend: %v", err)
	}

	ctx := context.Background()
	var (
		results  []check
		breaking int
		optional int
	)
	for _, t := range targets {
		p := run(ctx, client, t)
		if p.Error != nil {
			if t.Critical {
				breaking++
			} else {
				optional++
			}
		}
		results = append(results, p)
	}

	printReport(client.BaseURL(), results)

	fmt.Printf("Critical failures: %d, Optional failures: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, client *apiclient.Client, t target) check {
	p := check{Target: t}
	var records []json.RawMessage
	start := time.Now()
	err := client.List(ctx, string(t.Resource), &records)
	p.Duration = time.Since(start)
	if err != nil {
		p.Error = err
		return p
	}
	p.Records = len(records)
	return p
}

func printReport(base string, results []check) {
	fmt.Printf("Backend: %s\n\n", base)
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "RESOURCE\tCRITICAL\tRECORDS\tDURATION\tRESULT")
	for _, p := range results {
		result := "ok"
		if p.Error != nil {
			appErr := appErrors.FromError(p.Error)
			result = fmt.Sprintf("%s: %s", appErr.Code, appErrors.Message(p.Error))
		}
		fmt.Fprintf(w, "%s\t%t\t%d\t%s\t%s\n", p.Target.Resource, p.Target.Critical, p.Records, p.Duration.Round(time.Millisecond), result)
	}
	_ = w.Flush()
	fmt.Println()
}
